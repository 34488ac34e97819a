// Package obfuscate hides email addresses from scrapers. Addresses are
// rendered base64-encoded in a data attribute and decoded only when a visitor
// clicks or hovers the element.
package obfuscate

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eloqagency/website/pkg/logger"
)

// Attributes read from the page.
const (
	AttrEncoded  = "data-email"
	AttrLink     = "data-email-link"
	AttrShowText = "data-show-email"
)

var errEmptyAddress = errors.New("decoded address is empty")

// Encode returns the base64 form of addr.
func Encode(addr string) string {
	return base64.StdEncoding.EncodeToString([]byte(addr))
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("decode email: %w", err)
	}
	if len(raw) == 0 {
		return "", errEmptyAddress
	}
	return string(raw), nil
}

// MailtoURL builds the mail-to target for addr.
func MailtoURL(addr string) string {
	return "mailto:" + addr
}

// Element is the state record of one encoded email element.
type Element struct {
	Encoded string
	// LinkTarget rewrites Href to the mailto target on hover.
	LinkTarget bool
	// ShowText replaces Text with the address on hover.
	ShowText bool

	Text string
	Href string

	revealed bool
}

// Revealed reports whether a hover has already applied the address.
func (e *Element) Revealed() bool {
	return e.revealed
}

// Navigator opens a URL, as the browser does for window.location.
type Navigator interface {
	Navigate(url string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(url string)

func (f NavigatorFunc) Navigate(url string) { f(url) }

// Obfuscator applies the click and hover behavior to elements.
type Obfuscator struct {
	nav    Navigator
	log    *slog.Logger
	decode func(string) (string, error)
}

// New creates an Obfuscator that navigates through nav.
func New(nav Navigator, log *slog.Logger) *Obfuscator {
	return &Obfuscator{
		nav:    nav,
		log:    log.With(logger.Scope("obfuscate")),
		decode: Decode,
	}
}

// Click decodes the element and navigates to its mailto target. Default
// navigation is always prevented, so the return value is always true.
// A malformed value is logged and nothing is navigated.
func (o *Obfuscator) Click(el *Element) (preventDefault bool) {
	addr, err := o.decode(el.Encoded)
	if err != nil {
		o.log.Warn("email decode failed on click",
			slog.String("encoded", el.Encoded),
			logger.Error(err),
		)
		return true
	}
	o.nav.Navigate(MailtoURL(addr))
	return true
}

// Hover reveals the address on the first hover of a flagged element.
// Later hovers do nothing.
func (o *Obfuscator) Hover(el *Element) {
	if el.revealed || (!el.ShowText && !el.LinkTarget) {
		return
	}

	addr, err := o.decode(el.Encoded)
	if err != nil {
		o.log.Warn("email decode failed on hover",
			slog.String("encoded", el.Encoded),
			logger.Error(err),
		)
		return
	}

	if el.ShowText {
		el.Text = addr
	}
	if el.LinkTarget {
		el.Href = MailtoURL(addr)
	}
	el.revealed = true
}
