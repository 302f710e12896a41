package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"ledbackground/internal/terminal"
	"ledbackground/internal/window"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "ledbackground",
		Short:         "animated LED grid background",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWindow,
	}
	bindGlobalFlags(rootCmd.PersistentFlags())
	bindWindowFlags(rootCmd.Flags())

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "render the LED grid in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}
	bindTerminalFlags(termCmd.Flags())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(termCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ledbackground: %v\n", err)
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if done, err := writeConfig(cfg); done {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	opts := window.Options{}
	if recordDefaultPGO {
		opts.AutoPointer = defaultPGODuration
		log.Printf("Recording %s for %v", defaultPGOPath, defaultPGODuration)
	}
	if path := profilePath(); path != "" {
		stop, err := startCPUProfile(path)
		if err != nil {
			return err
		}
		defer stop()
	}
	if err := window.Run(ctx, cfg, opts); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if done, err := writeConfig(cfg); done {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	// The screen owns stdout and stderr until Run returns.
	prev := log.Writer()
	defer log.SetOutput(prev)
	if logFilePath != "" {
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if cpuProfilePath != "" {
		stop, err := startCPUProfile(cpuProfilePath)
		if err != nil {
			return err
		}
		defer stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.SeedOr(time.Now().UnixNano())))
	if err := terminal.Run(ctx, screen, cfg, rng); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
