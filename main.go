package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/game"
)

var (
	configPath string
	logLevel   = "info"
	debug      bool
	withSound  bool
	gradient   bool
	hideNeedle bool
)

func setupLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}
	return nil
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.TraceFrames = true
	}
	if flags.Changed("sound") {
		cfg.Sound.Enabled = withSound
	}
	if flags.Changed("gradient") {
		cfg.Gauge.UseColorGradient = gradient
	}
	if flags.Changed("hide-needle") {
		cfg.Gauge.ShowNeedle = !hideNeedle
	}

	if err := setupLogger(cfg.Logging.Level); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runWindow(cfg config.Config) error {
	g, err := game.NewGame(cfg, logrus.StandardLogger())
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	logrus.WithFields(logrus.Fields{
		"value":    cfg.InitialValue(),
		"max":      cfg.Gauge.MaxValue,
		"gradient": cfg.Gauge.UseColorGradient,
	}).Info("starting meter")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meter",
		Short: "An animated gauge driven by the arrow keys",
		Long: `meter shows a 90° arc gauge whose needle springs toward a target value.

Hold the left or right arrow key to move the target, or cycle through the presets
with the on-screen button (or P). N toggles the needle, G the spectrum colors.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	f.StringVarP(&logLevel, "log-level", "l", logLevel, "log level (trace, debug, info, warn, error)")
	f.BoolVar(&debug, "debug", false, "trace every animation frame and show the debug overlay")

	cmd.Flags().BoolVar(&withSound, "sound", false, "click when the needle passes a scale mark")
	cmd.Flags().BoolVar(&gradient, "gradient", false, "start in spectrum mode")
	cmd.Flags().BoolVar(&hideNeedle, "hide-needle", false, "start with the needle hidden")

	cmd.AddCommand(NewSimulateCommand())
	return cmd
}

func main() {
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
