package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo renders the wordmark with its emphasized apostrophe.
func Logo() g.Node {
	return A(
		Href("#"),
		Class("text-2xl font-bold tracking-tighter text-brand-black z-50"),
		g.Text("ELOQ"),
		Span(Class("text-brand-black"), g.Text("'")),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an inline SVG sprite reference, e.g. "lucide--arrow-up-right size-6".
func Icon(iconClass, ariaLabel string) g.Node {
	name := strings.TrimPrefix(convertIconName(iconClass), "lucide:")
	classes := "icon inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("icon inline-block %s", size)
	}

	return g.El("svg",
		Class(classes),
		g.If(ariaLabel == "", g.Attr("aria-hidden", "true")),
		g.If(ariaLabel != "", g.Attr("role", "img")),
		g.If(ariaLabel != "", g.Attr("aria-label", ariaLabel)),
		g.El("use", Href("/static/icons.svg#"+name)),
	)
}

func Pill(label string) g.Node {
	return Span(
		Class("text-xs border border-brand-gray/40 px-2 py-1 rounded-full text-brand-gray uppercase group-hover:border-brand-accent group-hover:text-brand-accent transition-colors"),
		g.Text(label),
	)
}
