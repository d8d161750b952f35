package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/zhakazx/animeinfo/internal/models"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap lists the static routes of the site.
func Sitemap(site Site, now time.Time) []models.SitemapURL {
	return []models.SitemapURL{
		{Loc: site.URL, LastModified: now, ChangeFrequency: "daily", Priority: 1},
		{Loc: site.abs("/search"), LastModified: now, ChangeFrequency: "weekly", Priority: 0.8},
	}
}

// WriteSitemap renders urls as a sitemaps.org XML document.
func WriteSitemap(w io.Writer, urls []models.SitemapURL) error {
	set := xmlURLSet{Xmlns: sitemapNamespace}
	for _, u := range urls {
		entry := xmlURL{
			Loc:        u.Loc,
			ChangeFreq: u.ChangeFrequency,
			Priority:   strconv.FormatFloat(u.Priority, 'f', 1, 64),
		}
		if !u.LastModified.IsZero() {
			entry.LastMod = u.LastModified.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, entry)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return nil
}
