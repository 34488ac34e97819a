package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Project struct {
	ID       string
	Title    string
	Client   string
	Category string
	Image    string
}

var projects = []Project{
	{"p1", "FinTech Revolution", "NeoBank", "App Design", "https://picsum.photos/800/600?grayscale&random=1"},
	{"p2", "Urban Architecture", "Construct Co", "Web Development", "https://picsum.photos/800/600?grayscale&random=2"},
	{"p3", "Future Fashion", "Vogue X", "Commerce", "https://picsum.photos/800/600?grayscale&random=3"},
	{"p4", "Data Systems", "Oracle", "Dashboard", "https://picsum.photos/800/600?grayscale&random=4"},
}

func Work() g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, projectCard(p, i%2 != 0))
	}

	return Section(
		ID("work"),
		Class("py-24 bg-brand-white"),

		Div(
			Class("max-w-7xl mx-auto px-6"),

			H2(
				Class("text-4xl md:text-6xl font-bold tracking-tighter text-brand-black mb-16 text-right"),
				g.Text("SELECTED"), Br(), g.Text("WORKS"),
			),

			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-12"),
				g.Group(cards),
			),

			Div(
				Class("mt-24 text-center"),
				A(
					Href("#work"),
					Class("text-brand-black border-b border-brand-black pb-1 hover:text-brand-accent hover:border-brand-accent transition-all uppercase tracking-widest text-sm"),
					g.Text("View Archive"),
				),
			),
		),
	)
}

// projectCard renders one portfolio entry; odd cards are staggered down.
func projectCard(p Project, staggered bool) g.Node {
	class := "group cursor-pointer"
	if staggered {
		class += " md:mt-24"
	}

	return Div(
		Class(class),

		Div(
			Class("overflow-hidden mb-6 border border-brand-gray/20 relative"),
			Div(Class("absolute inset-0 bg-brand-accent/0 group-hover:bg-brand-accent/10 transition-colors z-10 duration-500")),
			Img(
				Src(p.Image),
				Alt(p.Title),
				g.Attr("loading", "lazy"),
				Class("w-full h-auto aspect-[4/3] object-cover transition-transform duration-700 group-hover:scale-105 filter grayscale group-hover:grayscale-0"),
			),
		),

		Div(
			Class("flex justify-between items-start border-t border-brand-black pt-4"),
			Div(
				H3(Class("text-2xl font-bold text-brand-black mb-1 group-hover:text-brand-accent transition-colors"), g.Text(p.Title)),
				P(Class("text-brand-gray text-sm"), g.Text(p.Client)),
			),
			Span(
				Class("text-xs uppercase tracking-widest border border-brand-gray/40 px-3 py-1 text-brand-gray rounded-full group-hover:border-brand-accent group-hover:text-brand-accent transition-colors"),
				g.Text(p.Category),
			),
		),
	)
}
