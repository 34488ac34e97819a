package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Service struct {
	ID          string
	Title       string
	Description string
	Tags        []string
}

var services = []Service{
	{"1", "Strategy", "Market analysis, brand positioning, and digital transformation roadmaps.", []string{"Research", "Audit", "Planning"}},
	{"2", "Design", "UI/UX design, design systems, and interaction models that define brands.", []string{"UI/UX", "Motion", "Systems"}},
	{"3", "Development", "Full-stack engineering, headless CMS implementation, and performance tuning.", []string{"Go", "Wagtail", "Python"}},
}

func Services() g.Node {
	return Section(
		ID("services"),
		Class("py-24 bg-brand-white border-b border-brand-gray/20"),

		Div(
			Class("max-w-7xl mx-auto px-6"),

			Div(
				Class("flex flex-col md:flex-row justify-between items-end mb-16"),
				H2(
					Class("text-4xl md:text-6xl font-bold tracking-tighter text-brand-black"),
					g.Text("OUR"), Br(), g.Text("EXPERTISE"),
				),
				Span(
					Class("text-brand-gray uppercase tracking-widest text-sm mt-4 md:mt-0"),
					g.Text("Full Cycle Production"),
				),
			),

			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-0 border-t border-l border-brand-gray/20"),
				g.Group(g.Map(services, serviceCard)),
			),
		),
	)
}

func serviceCard(s Service) g.Node {
	return Div(
		Class("group p-8 border-r border-b border-brand-gray/20 hover:bg-brand-silver transition-colors duration-300 relative min-h-[400px] flex flex-col justify-between"),

		Div(
			Class("absolute top-8 right-8 opacity-0 group-hover:opacity-100 transition-opacity text-brand-accent"),
			Icon("lucide--arrow-up-right size-6", ""),
		),

		Div(
			Span(Class("text-xs text-brand-gray font-mono mb-4 block"), g.Text(fmt.Sprintf("0%s", s.ID))),
			H3(
				Class("text-3xl font-bold text-brand-black mb-4 tracking-tight group-hover:text-brand-accent transition-colors"),
				g.Text(s.Title),
			),
		),

		Div(
			P(Class("text-brand-gray text-sm leading-relaxed mb-6"), g.Text(s.Description)),
			Div(
				Class("flex flex-wrap gap-2"),
				g.Group(g.Map(s.Tags, Pill)),
			),
		),
	)
}
