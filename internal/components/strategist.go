package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eloqagency/website/internal/strategy"
)

const (
	consoleIdle    = "// Waiting for input stream..."
	consoleLoading = "// Analyzing parameters..."
	consoleModel   = "// Consultating Gemini Flash Model..."
)

// Strategist renders the AI strategy form and its output console for the
// given flow state. The brief that produced the state is echoed back into
// the textarea.
func Strategist(snap strategy.Snapshot) g.Node {
	loading := snap.Status == strategy.StatusLoading

	return Section(
		ID("ai-strategy"),
		Class("py-24 bg-brand-silver border-y border-brand-gray/20"),

		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-16"),

				Div(
					Div(
						Class("flex items-center space-x-2 mb-6 text-brand-accent"),
						Icon("lucide--sparkles size-5", ""),
						Span(Class("text-xs uppercase tracking-widest font-bold"), g.Text("AI Strategist Alpha")),
					),
					H2(
						Class("text-4xl md:text-5xl font-bold tracking-tighter text-brand-black mb-6"),
						g.Text("ACCELERATE"), Br(), g.Text("YOUR VISION."),
					),
					P(
						Class("text-brand-gray text-lg mb-8 max-w-md"),
						g.Text("Use our proprietary Gemini-powered engine to generate an instant strategic outline for your next digital product."),
					),

					Form(
						ID("strategist-form"),
						Method("post"),
						Action("/strategy"),
						Class("space-y-4"),
						Textarea(
							ID("strategist-prompt"),
							Name("prompt"),
							Required(),
							Placeholder("Describe your project (e.g., A minimalist e-commerce site for luxury watches targeting Gen Z)..."),
							Class("w-full bg-brand-white border border-brand-gray/30 p-4 text-brand-black placeholder-brand-gray/50 focus:outline-none focus:border-brand-accent transition-colors h-32 resize-none shadow-sm"),
							g.Text(snap.Prompt),
						),
						Button(
							ID("strategist-submit"),
							Type("submit"),
							g.If(loading, Disabled()),
							Class("bg-brand-black text-white px-8 py-4 font-bold tracking-wide uppercase hover:bg-brand-accent transition-colors disabled:opacity-50 disabled:cursor-not-allowed flex items-center justify-center w-full md:w-auto"),
							g.If(loading, g.Group([]g.Node{Icon("lucide--loader-2 animate-spin mr-2", ""), g.Text("Processing")})),
							g.If(!loading, g.Text("Generate Brief")),
						),
					),
				),

				Div(
					Class("relative"),
					Div(
						Class("h-full w-full bg-brand-dark border border-brand-black p-8 min-h-[400px] shadow-2xl"),
						Div(
							Class("flex justify-between items-center mb-6 border-b border-gray-800 pb-4"),
							Span(Class("text-xs uppercase tracking-widest text-gray-500"), g.Text("Output Console")),
							Div(
								Class("flex space-x-2"),
								Div(Class("w-2 h-2 rounded-full bg-brand-accent")),
								Div(Class("w-2 h-2 rounded-full bg-gray-600")),
								Div(Class("w-2 h-2 rounded-full bg-gray-600")),
							),
						),
						Div(
							ID("strategist-output"),
							g.Attr("data-status", snap.Status.String()),
							g.Attr("aria-live", "polite"),
							Class("font-mono text-sm leading-relaxed whitespace-pre-wrap text-gray-300"),
							consoleBody(snap),
						),
					),
					Div(Class("absolute -z-10 top-4 left-4 w-full h-full border border-brand-gray/30 opacity-50 bg-white")),
				),
			),
		),
	)
}

func consoleBody(snap strategy.Snapshot) g.Node {
	switch snap.Status {
	case strategy.StatusLoading:
		return Span(Class("animate-pulse text-brand-accent"), g.Text(consoleLoading), Br(), g.Text(consoleModel))
	case strategy.StatusSuccess:
		return Span(Class("text-white"), g.Text(snap.Result))
	case strategy.StatusError:
		return Span(Class("text-brand-accent"), g.Text(snap.Result))
	default:
		return Span(Class("opacity-50 text-gray-500"), g.Text(consoleIdle))
	}
}
