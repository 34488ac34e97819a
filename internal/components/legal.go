package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/eloqagency/website/internal/obfuscate"
)

type LegalSection struct {
	Heading    string
	Paragraphs []string
}

// LegalDocument is a static legal text. The contact address is appended by
// LegalPage, obfuscated like the footer one.
type LegalDocument struct {
	Title    string
	Subtitle string
	Updated  string
	Sections []LegalSection
}

var PrivacyPolicy = LegalDocument{
	Title:    "Privacy Policy",
	Subtitle: "How ELOQ Agency handles the data you send through this site, under Regulation (EU) 2016/679 (GDPR).",
	Updated:  "May 2026",
	Sections: []LegalSection{
		{"Controller", []string{
			"ELOQ Agency is the data controller for personal data collected through this website.",
		}},
		{"What we collect", []string{
			"The contact form collects the email address and message you submit. They are relayed to our inbox and are not stored by the website.",
			"The AI strategist keeps your brief and its generated outline in memory for the duration of your session, keyed by an anonymous session cookie. Briefs are sent to Google Gemini to produce the outline.",
			"Our servers log request metadata such as IP address, path and status for security and rate limiting.",
		}},
		{"Cookies", []string{
			"We set a single functional cookie (eloq_sid) that links your browser to your strategist session. It expires after thirty minutes of inactivity and is not used for tracking or advertising.",
		}},
		{"Retention", []string{
			"Session data is discarded when the session expires. Contact messages are kept in our mailbox for as long as needed to answer them and handle any resulting engagement.",
		}},
		{"Your rights", []string{
			"You may request access to, correction of or erasure of your personal data, and you may lodge a complaint with your supervisory authority.",
		}},
	},
}

var TermsOfUse = LegalDocument{
	Title:   "Terms of Use",
	Updated: "May 2026",
	Sections: []LegalSection{
		{"Use of the site", []string{
			"This website presents the services of ELOQ Agency. By using it you agree to these terms.",
		}},
		{"AI strategist", []string{
			"Outlines produced by the AI strategist are generated automatically and are provided for information only. They are not legal, financial or professional advice and do not constitute an offer.",
			"Do not submit confidential or personal information in your brief.",
		}},
		{"Acceptable use", []string{
			"Automated or abusive submissions are rate limited and may be blocked.",
		}},
		{"Intellectual property", []string{
			"Content, design and code on this site belong to ELOQ Agency unless stated otherwise. Case studies are shown with our clients' permission.",
		}},
		{"Liability", []string{
			"The site is provided as is. ELOQ Agency is not liable for losses arising from its use or from reliance on generated content.",
		}},
	},
}

// SubpageHeader is the navigation bar for pages outside the landing page.
func SubpageHeader() g.Node {
	return Header(
		Class("w-full border-b border-brand-gray/20 bg-brand-white"),
		Div(
			Class("max-w-7xl mx-auto px-6 h-20 flex items-center justify-between"),
			A(
				Href("/"),
				Class("text-2xl font-bold tracking-tighter text-brand-black"),
				g.Text("ELOQ"),
				Span(Class("text-brand-black"), g.Text("'")),
			),
			A(
				Href("/"),
				Class("flex items-center text-sm font-medium text-brand-gray hover:text-brand-accent transition-colors tracking-wide uppercase"),
				Icon("lucide--arrow-left size-4 mr-2", ""),
				g.Text("Back to site"),
			),
		),
	)
}

// LegalPage renders doc as an article followed by the contact address.
func LegalPage(doc LegalDocument, email string) g.Node {
	return Section(
		ID("legal"),
		Class("py-24 bg-brand-white"),
		Article(
			Class("max-w-3xl mx-auto px-6"),
			H1(Class("text-4xl md:text-6xl font-bold tracking-tighter text-brand-black mb-4"), g.Text(doc.Title)),
			g.If(doc.Subtitle != "", P(Class("text-brand-gray text-lg mb-4"), g.Text(doc.Subtitle))),
			g.If(doc.Updated != "", P(Class("text-xs uppercase tracking-widest text-brand-gray mb-16"), g.Text("Last updated "+doc.Updated))),

			g.Group(g.Map(doc.Sections, func(s LegalSection) g.Node {
				return Div(
					Class("mb-12"),
					H2(Class("text-xl font-bold uppercase tracking-wide text-brand-black mb-4"), g.Text(s.Heading)),
					g.Group(g.Map(s.Paragraphs, func(p string) g.Node {
						return P(Class("text-brand-gray leading-relaxed mb-4"), g.Text(p))
					})),
				)
			})),

			Div(
				Class("border-t border-brand-gray/20 pt-8"),
				H2(Class("text-xl font-bold uppercase tracking-wide text-brand-black mb-4"), g.Text("Contact")),
				P(
					Class("text-brand-gray leading-relaxed"),
					g.Text("Questions about this document can be sent to "),
					obfuscate.ProtectedEmail(email, "our inbox",
						obfuscate.ShowOnHover(),
						obfuscate.LinkOnHover(),
						obfuscate.WithClass("text-brand-black border-b border-brand-gray/30 hover:text-brand-accent transition-colors"),
					),
					g.Text("."),
				),
			),
		),
	)
}
