package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/eloqagency/website/pkg/logger"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap lists the landing page and the legal pages.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	base := h.baseURL(r)
	lastMod := h.now().UTC().Format("2006-01-02")
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/", LastMod: lastMod, ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: base + "/privacy", ChangeFreq: "yearly", Priority: "0.3"},
			{Loc: base + "/terms", ChangeFreq: "yearly", Priority: "0.3"},
		},
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		h.log.Warn("encode sitemap", logger.Error(err))
	}
}
