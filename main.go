package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/zhakazx/animeinfo/cmd"
	"github.com/zhakazx/animeinfo/internal/config"
)

func main() {
	cfg := config.NewConfigurationWithOptionsAndDefaults()

	if err := cmd.NewRootCommand(cfg).ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		_ = zap.L().Sync()
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
