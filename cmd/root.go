package cmd

import (
	"fmt"
	"strings"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zhakazx/animeinfo/internal/config"
)

const envPrefix = "ANIMEINFO"

// NewRootCommand builds the animeinfo command tree around a single configuration.
func NewRootCommand(cfg *config.Configuration) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "animeinfo",
		Short:         "Anime browsing backend backed by Jikan and YouTube",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			func(cmd *cobra.Command, args []string) error {
				return setupLogger(cfg.Log)
			},
		),
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (console or json)")

	rootCmd.AddCommand(
		NewRunCommand(cfg),
		NewSearchCommand(cfg),
		NewShowCommand(cfg),
	)

	return rootCmd
}

func setupLogger(cfg config.Log) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log-level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "json":
		zcfg = zap.NewProductionConfig()
	case "console":
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.DisableStacktrace = true
	default:
		return fmt.Errorf("invalid log-format %q: must be console or json", cfg.Format)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)

	return nil
}
