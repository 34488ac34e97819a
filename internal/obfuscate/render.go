package obfuscate

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type renderOptions struct {
	showText   bool
	linkTarget bool
	class      string
}

// Option configures ProtectedEmail.
type Option func(*renderOptions)

// ShowOnHover replaces the label with the address on the first hover.
func ShowOnHover() Option {
	return func(o *renderOptions) { o.showText = true }
}

// LinkOnHover rewrites the href to the mailto target on the first hover.
func LinkOnHover() Option {
	return func(o *renderOptions) { o.linkTarget = true }
}

// WithClass sets the anchor's class attribute.
func WithClass(class string) Option {
	return func(o *renderOptions) { o.class = class }
}

// ProtectedEmail renders an anchor whose address only exists base64-encoded.
// label is the visible text until the address is revealed.
func ProtectedEmail(addr, label string, opts ...Option) g.Node {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	return h.A(
		h.Href("#"),
		g.If(o.class != "", h.Class(o.class)),
		g.Attr(AttrEncoded, Encode(addr)),
		g.If(o.linkTarget, g.Attr(AttrLink)),
		g.If(o.showText, g.Attr(AttrShowText)),
		g.Attr("rel", "nofollow"),
		g.Text(label),
	)
}
