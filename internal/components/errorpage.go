package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage renders a status page that routes the visitor back to the
// services and the contact form.
func ErrorPage(status int, title, message string) g.Node {
	return Section(
		ID("error"),
		g.Attr("data-status", strconv.Itoa(status)),
		Class("py-24 bg-brand-white"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Span(Class("text-xs uppercase tracking-widest font-bold text-brand-accent"), g.Text("Error "+strconv.Itoa(status))),
			H1(Class("text-5xl md:text-8xl font-bold tracking-tighter text-brand-black mt-4 mb-6"), g.Text(title)),
			P(Class("text-brand-gray text-lg mb-16 max-w-xl"), g.Text(message)),

			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-0 border-t border-l border-brand-gray/20 mb-16"),
				g.Group(g.Map(services, func(s Service) g.Node {
					return A(
						Href("/#services"),
						Class("group p-8 border-r border-b border-brand-gray/20 hover:bg-brand-silver transition-colors"),
						Span(Class("text-xs text-brand-gray font-mono mb-4 block"), g.Text("0"+s.ID)),
						Span(Class("text-2xl font-bold text-brand-black tracking-tight group-hover:text-brand-accent transition-colors"), g.Text(s.Title)),
					)
				})),
			),

			Div(
				Class("flex flex-col sm:flex-row gap-4"),
				A(
					Href("/"),
					Class("bg-brand-black text-white px-8 py-4 font-bold tracking-wide uppercase hover:bg-brand-accent transition-colors text-center"),
					g.Text("Back to home"),
				),
				A(
					Href("/#contact"),
					Class("border border-brand-black text-brand-black px-8 py-4 font-bold tracking-wide uppercase hover:border-brand-accent hover:text-brand-accent transition-colors text-center"),
					g.Text("Contact us"),
				),
			),
		),
	)
}
