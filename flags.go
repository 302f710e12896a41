package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ledbackground/internal/config"
)

// Command-line flags. Values set on the command line override the config
// file, which in turn overrides the embedded defaults.
var (
	// configPath names a YAML file layered over the defaults.
	configPath string

	// seedFlag fixes the random source; 0 seeds from the clock.
	seedFlag int64

	// debugFlag enables the stats overlay and periodic stats logging.
	debugFlag bool

	noCaptionFlag     bool
	statsIntervalFlag time.Duration

	// writeConfigPath saves the effective config there instead of running.
	writeConfigPath string

	// cpuProfilePath writes a CPU profile for the whole run.
	cpuProfilePath string

	// recordDefaultPGO drives a scripted pointer for 15s while capturing
	// default.pgo.
	recordDefaultPGO bool

	widthFlag, heightFlag int
	fullscreenFlag        bool
	vsyncFlag             bool
	tpsFlag               int

	fpsFlag int

	// logFilePath receives log output while the terminal host owns the screen.
	logFilePath string
)

const (
	defaultPGOPath     = "default.pgo"
	defaultPGODuration = 15 * time.Second
)

func bindGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "config file path (yaml)")
	fs.Int64Var(&seedFlag, "seed", 0, "random seed (0 uses the clock)")
	fs.BoolVar(&debugFlag, "debug", false, "show stats overlay and log periodic stats")
	fs.BoolVar(&noCaptionFlag, "no-caption", false, "hide the caption panel")
	fs.DurationVar(&statsIntervalFlag, "stats-interval", 5*time.Second, "interval between stats log lines in debug mode")
	fs.StringVar(&writeConfigPath, "write-config", "", "write the effective config to this file and exit")
	fs.StringVar(&cpuProfilePath, "cpuprofile", "", "write a CPU profile to this file")
}

func bindWindowFlags(fs *pflag.FlagSet) {
	fs.IntVar(&widthFlag, "width", 1280, "window width")
	fs.IntVar(&heightFlag, "height", 720, "window height")
	fs.BoolVar(&fullscreenFlag, "fullscreen", false, "start fullscreen")
	fs.BoolVar(&vsyncFlag, "vsync", true, "enable vsync")
	fs.IntVar(&tpsFlag, "tps", 0, "animation ticks per second (0 syncs with the display)")
	fs.BoolVar(&recordDefaultPGO, "record-default-pgo", false, "drive a scripted pointer for 15s while capturing default.pgo")
}

func bindTerminalFlags(fs *pflag.FlagSet) {
	fs.IntVar(&fpsFlag, "fps", 30, "terminal frames per second")
	fs.StringVar(&logFilePath, "log-file", "", "append log output to this file while the terminal is in use")
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if fs.Changed("debug") {
		cfg.Debug = debugFlag
	}
	if noCaptionFlag {
		cfg.Caption.Enabled = false
	}
	if fs.Changed("stats-interval") {
		cfg.StatsInterval = statsIntervalFlag
	}
	if fs.Changed("width") {
		cfg.Window.Width = widthFlag
	}
	if fs.Changed("height") {
		cfg.Window.Height = heightFlag
	}
	if fs.Changed("fullscreen") {
		cfg.Window.Fullscreen = fullscreenFlag
	}
	if fs.Changed("vsync") {
		cfg.Window.VSync = vsyncFlag
	}
	if fs.Changed("tps") {
		cfg.Window.TPS = tpsFlag
	}
	if fs.Changed("fps") {
		cfg.Terminal.FPS = fpsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeConfig saves cfg when --write-config is set and reports whether it did.
func writeConfig(cfg *config.Config) (bool, error) {
	if writeConfigPath == "" {
		return false, nil
	}
	if err := config.Save(writeConfigPath, cfg); err != nil {
		return true, fmt.Errorf("writing config: %w", err)
	}
	log.Printf("Config written to %s", writeConfigPath)
	return true, nil
}
