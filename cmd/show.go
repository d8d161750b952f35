package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/internal/services"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
	"github.com/zhakazx/animeinfo/pkg/scheduler"
	"github.com/zhakazx/animeinfo/pkg/seo"
)

func NewShowCommand(cfg *config.Configuration) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the detail page of an anime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 1 {
				return srvErrors.NewValidationError("invalid anime id %q", args[0])
			}
			if err := validateUpstreamConfiguration(cfg); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			up, err := newUpstream(ctx, cfg)
			if err != nil {
				return err
			}
			defer up.Close()

			sched := scheduler.NewScheduler(cfg.NumWorkers)
			defer sched.Close()

			site := seo.Site{Name: cfg.Site.Name, URL: cfg.Site.URL}
			page, err := services.NewAnimeService(sched, up.jikan, up.youtube, site).Page(ctx, id)
			if err != nil {
				return err
			}

			printAnimePage(cmd.OutOrStdout(), page)
			return nil
		},
	}

	fs := showCmd.Flags()
	fs.IntVar(&cfg.NumWorkers, "num-workers", cfg.NumWorkers, "Number of workers assembling the page")
	registerJikanFlags(fs, cfg)
	registerYouTubeFlags(fs, cfg)
	registerCacheFlags(fs, cfg)

	return showCmd
}
