package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eloqagency/website/internal/obfuscate"
)

// Contact form outcomes carried back in the ?contact= query parameter.
const (
	ContactSent    = "sent"
	ContactInvalid = "invalid"
	ContactError   = "error"
)

type FooterConfig struct {
	Email         string
	ContactStatus string
	Year          int
}

var legalLinks = []NavItem{
	{"Privacy", "/privacy"},
	{"Terms", "/terms"},
}

var socialLinks = []NavItem{
	{"Instagram", "#"},
	{"Twitter", "#"},
	{"LinkedIn", "#"},
}

// PageFooter renders the contact section. The address is only present
// base64-encoded and is revealed in the browser on hover.
func PageFooter(config FooterConfig) g.Node {
	return Footer(
		ID("contact"),
		Class("bg-brand-dark pt-24 pb-12 border-t border-brand-gray/20"),

		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-12 mb-24"),

				Div(
					H2(
						Class("text-5xl md:text-7xl font-bold tracking-tighter text-white mb-8"),
						g.Text("LET'S"), Br(), g.Text("TALK."),
					),
					obfuscate.ProtectedEmail(config.Email, "Email us",
						obfuscate.ShowOnHover(),
						obfuscate.LinkOnHover(),
						obfuscate.WithClass("text-xl md:text-2xl text-brand-gray hover:text-brand-accent transition-colors border-b border-brand-gray/30 pb-1"),
					),
				),

				Div(
					Class("flex flex-col justify-end"),
					contactForm(config.ContactStatus),
				),
			),

			Div(
				Class("flex flex-col md:flex-row justify-between items-center text-xs text-brand-gray uppercase tracking-widest pt-12 border-t border-brand-gray/10"),
				Div(
					Class("mb-4 md:mb-0"),
					g.Raw("&copy; "), g.Text(fmt.Sprintf("%d ELOQ Agency.", config.Year)),
				),
				Div(
					Class("flex space-x-6"),
					g.Group(g.Map(legalLinks, footerLink)),
					g.Group(g.Map(socialLinks, footerLink)),
				),
			),
		),
	)
}

func footerLink(item NavItem) g.Node {
	return A(Href(item.Href), Class("hover:text-white transition-colors"), g.Text(item.Label))
}

func contactForm(status string) g.Node {
	fieldClass := "w-full bg-transparent border-b border-brand-gray/30 py-2 text-white focus:outline-none focus:border-brand-accent transition-colors"
	labelClass := "block text-xs uppercase tracking-widest text-brand-gray mb-2"

	return Form(
		ID("contact-form"),
		Method("post"),
		Action("/contact"),
		Class("space-y-6 max-w-md ml-auto w-full"),

		contactNotice(status),

		Div(
			Label(g.Attr("for", "contact-email"), Class(labelClass), g.Text("Email")),
			Input(ID("contact-email"), Name("email"), Type("email"), Required(), Class(fieldClass)),
		),
		Div(
			Label(g.Attr("for", "contact-message"), Class(labelClass), g.Text("Message")),
			Textarea(ID("contact-message"), Name("message"), Rows("3"), Required(), Class(fieldClass)),
		),
		Button(
			Type("submit"),
			Class("text-white text-sm font-bold uppercase tracking-widest text-left hover:text-brand-accent transition-colors pt-4"),
			g.Raw("Send Message &rarr;"),
		),
	)
}

func contactNotice(status string) g.Node {
	var text, class string
	switch status {
	case ContactSent:
		text, class = "Message received. We will be in touch.", "text-white"
	case ContactInvalid:
		text, class = "Please provide a valid email and a message.", "text-brand-accent"
	case ContactError:
		text, class = "System Offline. Please try again later.", "text-brand-accent"
	default:
		return nil
	}
	return P(
		ID("contact-status"),
		g.Attr("role", "status"),
		Class("text-sm uppercase tracking-widest "+class),
		g.Text(text),
	)
}
