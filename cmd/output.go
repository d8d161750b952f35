package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zhakazx/animeinfo/internal/models"
	"github.com/zhakazx/animeinfo/pkg/format"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	labelColor = color.New(color.FgHiBlack)
	scoreColor = color.New(color.FgYellow)
)

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func entityNames(in []models.Entity) string {
	names := make([]string, 0, len(in))
	for _, e := range in {
		names = append(names, e.Name)
	}
	return strings.Join(names, ", ")
}

func printAnimeList(w io.Writer, list *models.AnimeList) {
	if len(list.Data) == 0 {
		fmt.Fprintln(w, "No anime found.")
		return
	}

	for _, a := range list.Data {
		titleColor.Fprintf(w, "%6d  %s", a.MalID, a.Title)
		if score := format.Score(a.Score); score != "" {
			fmt.Fprint(w, "  ")
			scoreColor.Fprintf(w, "★ %s", score)
		}
		fmt.Fprintln(w)

		details := []string{format.Type(a.Type)}
		if a.Episodes != nil {
			details = append(details, fmt.Sprintf("%d eps", *a.Episodes))
		}
		if y := format.Year(deref(a.Aired.From)); y != "" {
			details = append(details, y)
		}
		labelColor.Fprintf(w, "        %s\n", strings.Join(details, " · "))
	}

	p := list.Pagination
	fmt.Fprintf(w, "\nPage %d of %d", p.CurrentPage, p.LastVisiblePage)
	if p.Items.Total > 0 {
		fmt.Fprintf(w, " (%s results)", format.Number(p.Items.Total))
	}
	fmt.Fprintln(w)
}

func printField(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	labelColor.Fprintf(w, "%-12s", label)
	fmt.Fprintln(w, value)
}

func printAnimePage(w io.Writer, page *models.AnimePage) {
	a := page.Anime

	titleColor.Fprintln(w, a.Title)
	if a.TitleEnglish != nil && *a.TitleEnglish != a.Title {
		fmt.Fprintln(w, *a.TitleEnglish)
	}
	fmt.Fprintln(w)

	printField(w, "Score", format.Score(a.Score))
	printField(w, "Type", format.Type(a.Type))
	printField(w, "Episodes", format.Number(deref(a.Episodes)))
	printField(w, "Status", a.Status)
	printField(w, "Aired", format.Date(deref(a.Aired.From)))
	printField(w, "Season", format.Season(deref(a.Season), deref(a.Year)))
	printField(w, "Duration", format.Duration(deref(a.Duration)))
	printField(w, "Members", format.Number(deref(a.Members)))
	printField(w, "Genres", entityNames(a.Genres))
	printField(w, "Studios", entityNames(a.Studios))

	if s := deref(a.Synopsis); s != "" {
		fmt.Fprintf(w, "\n%s\n", s)
	}

	if len(page.Characters) > 0 {
		titleColor.Fprintln(w, "\nCharacters")
		for _, c := range page.Characters {
			line := fmt.Sprintf("  %s (%s)", c.Character.Name, c.Role)
			if len(c.VoiceActors) > 0 {
				line += " - " + c.VoiceActors[0].Person.Name
			}
			fmt.Fprintln(w, line)
		}
	}

	if len(page.Streaming) > 0 {
		titleColor.Fprintln(w, "\nWhere to watch")
		for _, s := range page.Streaming {
			fmt.Fprintf(w, "  %s: %s\n", s.Name, s.URL)
		}
	}

	if page.TrailerEmbedURL != "" {
		fmt.Fprintln(w)
		printField(w, "Trailer", page.TrailerEmbedURL)
	}
}
