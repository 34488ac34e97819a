package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type NavItem struct {
	Label string
	Href  string
}

var navItems = []NavItem{
	{"Work", "#work"},
	{"Services", "#services"},
	{"Agency", "#agency"},
	{"AI Strategy", "#ai-strategy"},
	{"Contact", "#contact"},
}

func Navigation() g.Node {
	return Nav(
		ID("top-nav"),
		g.Attr("data-scrolled", "false"),
		Class("fixed top-0 left-0 w-full z-50 transition-all duration-300 border-b bg-transparent border-transparent data-[scrolled=true]:bg-brand-white/90 data-[scrolled=true]:backdrop-blur-md data-[scrolled=true]:border-brand-gray/20"),

		Div(
			Class("max-w-7xl mx-auto px-6 h-20 flex items-center justify-between"),

			Logo(),

			Div(
				Class("hidden md:flex items-center space-x-8"),
				g.Group(g.Map(navItems, func(item NavItem) g.Node {
					return A(
						Href(item.Href),
						Class("text-sm font-medium text-brand-gray hover:text-brand-accent transition-colors tracking-wide uppercase"),
						g.Text(item.Label),
					)
				})),
			),

			Input(
				ID("mobile-menu-toggle"),
				Type("checkbox"),
				Class("peer hidden"),
			),
			Label(
				g.Attr("for", "mobile-menu-toggle"),
				g.Attr("aria-label", "Toggle menu"),
				Class("md:hidden text-brand-black z-50 cursor-pointer"),
				Icon("lucide--menu size-6", ""),
			),

			Div(
				Class("fixed inset-0 bg-brand-white flex flex-col items-center justify-center space-y-8 transition-opacity duration-300 md:hidden opacity-0 pointer-events-none peer-checked:opacity-100 peer-checked:pointer-events-auto"),
				g.Group(g.Map(navItems, func(item NavItem) g.Node {
					return A(
						Href(item.Href),
						g.Attr("data-close-menu", ""),
						Class("text-3xl font-bold text-brand-black tracking-tighter hover:text-brand-accent transition-colors"),
						g.Text(item.Label),
					)
				})),
			),
		),
	)
}
