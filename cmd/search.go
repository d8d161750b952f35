package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhakazx/animeinfo/internal/config"
	"github.com/zhakazx/animeinfo/internal/models"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

func NewSearchCommand(cfg *config.Configuration) *cobra.Command {
	params := models.SearchParams{Page: 1}

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search anime on Jikan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Query = strings.Join(args, " ")
			if err := validateSearchParams(params); err != nil {
				return err
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

			list, err := up.jikan.SearchAnime(ctx, params)
			if err != nil {
				return err
			}

			printAnimeList(cmd.OutOrStdout(), list)
			return nil
		},
	}

	fs := searchCmd.Flags()
	fs.StringVar(&params.Type, "type", "", "Anime type (tv, movie, ova, special, ona, music)")
	fs.StringVar(&params.Status, "status", "", "Airing status (airing, complete, upcoming)")
	fs.StringVar(&params.OrderBy, "order-by", "", "Order by (mal_id, title, start_date, end_date, episodes, score, scored_by, rank, popularity, members, favorites)")
	fs.StringVar(&params.Sort, "sort", "", "Sort direction (asc or desc)")
	fs.IntVar(&params.Page, "page", params.Page, "Result page")
	fs.IntVar(&params.Limit, "limit", 10, "Results per page (1..25)")
	registerJikanFlags(fs, cfg)
	registerCacheFlags(fs, cfg)

	return searchCmd
}

var searchTypes = []string{"tv", "movie", "ova", "special", "ona", "music"}

func validateSearchParams(p models.SearchParams) error {
	if strings.TrimSpace(p.Query) == "" {
		return srvErrors.NewValidationError("query cannot be empty")
	}
	if p.Page < 1 {
		return srvErrors.NewValidationError("page must be at least 1")
	}
	if p.Limit < 1 || p.Limit > 25 {
		return srvErrors.NewValidationError("limit must be between 1 and 25")
	}
	if p.Type != "" && !contains(searchTypes, p.Type) {
		return srvErrors.NewValidationError("type must be one of %s", strings.Join(searchTypes, ", "))
	}
	if p.Sort != "" && p.Sort != "asc" && p.Sort != "desc" {
		return srvErrors.NewValidationError("sort must be asc or desc")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
