package components

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// BaseURL is the absolute site origin used in structured data.
	// Relative links are emitted when empty.
	BaseURL string
	// NoIndex keeps error pages out of search results.
	NoIndex bool
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "ELOQ' - Legal Precision, Designed"
	}

	if config.Description == "" {
		config.Description = "A strategic digital agency combining legal rigour with brutalist aesthetics. We build authoritative web experiences."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				g.If(config.NoIndex, Meta(Name("robots"), Content("noindex"))),

				Link(Rel("stylesheet"), Href("/static/styles.css")),
				organizationJSONLD(config),
			),
			Body(
				Class("bg-brand-white min-h-screen flex flex-col font-sans"),
				g.Group(content),

				Script(Src("/static/js/email-protect.js"), g.Attr("defer")),
				Script(Src("/static/js/navigation.js"), g.Attr("defer")),
				Script(Src("/static/js/strategist.js"), g.Attr("defer")),
			),
		),
	})
}

type organization struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

// organizationJSONLD renders the Schema.org Organization block. The contact
// address is left out so it never appears in plain text.
func organizationJSONLD(config PageConfig) g.Node {
	base := strings.TrimRight(config.BaseURL, "/")
	org := organization{
		Context:     "https://schema.org",
		Type:        "Organization",
		Name:        "ELOQ Agency",
		URL:         base + "/",
		Logo:        base + "/static/images/og-image.svg",
		Description: config.Description,
	}
	data, err := json.Marshal(org)
	if err != nil {
		return nil
	}
	// json.Marshal escapes <, > and &, so the payload cannot close the script.
	return Script(Type("application/ld+json"), g.Raw(string(data)))
}

// MainContent wraps the page sections between navigation and footer.
func MainContent(sections ...g.Node) g.Node {
	return Main(Class("flex-grow"), g.Group(sections))
}
