package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile string
	cfg     *Config
	log     = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "pinwheel",
		Short: "Noise-animated sphere of spinning patches",
		Long: `Renders a latitude/longitude band of quad patches on a sphere. Each patch
spins about an axis tangent to the sphere by an angle read from a noise field,
and the scene is drawn back to front through an orthographic camera.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return setupLogging(cfg.LogLevel)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pinwheel/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64("seed", 0, "noise seed (0 picks a random seed)")
	rootCmd.PersistentFlags().String("noise", "simplex", "noise field (simplex, perlin)")
	rootCmd.PersistentFlags().Bool("axes", false, "draw the spin axis")

	_ = v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("animation.seed", rootCmd.PersistentFlags().Lookup("seed"))
	_ = v.BindPFlag("animation.noise", rootCmd.PersistentFlags().Lookup("noise"))
	_ = v.BindPFlag("axes", rootCmd.PersistentFlags().Lookup("axes"))

	rootCmd.AddCommand(
		windowCmd(),
		renderCmd(v),
		configCmd(),
	)

	return rootCmd
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func windowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Animate the scene in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunWindow(cfg, log.WithField("host", "window"))
		},
	}
}

func renderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames without a window into an animated GIF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err := RunHeadless(ctx, cfg, log.WithField("host", "headless"))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().Int("frames", 120, "number of frames to render")
	cmd.Flags().String("out", "pinwheel.gif", "output GIF file")
	cmd.Flags().Bool("realtime", false, "pace frames with the wall clock")

	_ = v.BindPFlag("render.frames", cmd.Flags().Lookup("frames"))
	_ = v.BindPFlag("render.out", cmd.Flags().Lookup("out"))
	_ = v.BindPFlag("render.realtime", cmd.Flags().Lookup("realtime"))

	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "encode config")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
