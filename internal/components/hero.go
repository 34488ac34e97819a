package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("agency"),
		Class("relative min-h-screen flex items-center pt-20 bg-brand-white overflow-hidden border-b border-brand-gray/20"),

		Div(Class("absolute inset-0 z-0 opacity-50 hero-gradient pointer-events-none")),

		Div(
			Class("max-w-7xl mx-auto px-6 w-full relative z-10"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-12 gap-12"),

				Div(
					Class("lg:col-span-8"),
					H1(
						Class("text-6xl md:text-8xl lg:text-9xl font-bold tracking-tighter text-brand-black leading-[0.9] mb-8"),
						g.Text("LEGAL"), Br(),
						g.Text("PRECISION"), Br(),
						Span(Class("text-brand-accent"), g.Text("DESIGNED.")),
					),
				),

				Div(
					Class("lg:col-span-4 flex flex-col justify-end pb-4"),
					P(
						Class("text-lg md:text-xl text-brand-gray leading-relaxed mb-8 max-w-md"),
						g.Text("A strategic digital agency combining legal rigour with brutalist aesthetics. We build authoritative web experiences."),
					),
					Div(
						Class("flex flex-col space-y-4"),
						Div(Class("h-[1px] w-full bg-brand-black")),
						Div(
							Class("flex justify-between text-sm text-brand-black uppercase tracking-widest"),
							Span(g.Text("EST. 2024")),
							Span(g.Text("Milano")),
						),
					),
				),
			),
		),
	)
}
