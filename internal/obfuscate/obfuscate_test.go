package obfuscate

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	urls []string
}

func (n *recordingNavigator) Navigate(url string) {
	n.urls = append(n.urls, url)
}

func newTestObfuscator() (*Obfuscator, *recordingNavigator, *bytes.Buffer) {
	var buf bytes.Buffer
	nav := &recordingNavigator{}
	log := slog.New(slog.NewTextHandler(&buf, nil))
	return New(nav, log), nav, &buf
}

func TestEncodeDecode(t *testing.T) {
	encoded := Encode("a@b.com")
	assert.Equal(t, "YUBiLmNvbQ==", encoded)

	addr, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", addr)
}

func TestDecode_Errors(t *testing.T) {
	for _, in := range []string{"%%%not-base64", "YUBiLmNvbQ", ""} {
		t.Run(in, func(t *testing.T) {
			_, err := Decode(in)
			assert.Error(t, err)
		})
	}
}

func TestClick_NavigatesToMailtoOncePerClick(t *testing.T) {
	o, nav, _ := newTestObfuscator()
	el := &Element{Encoded: Encode("a@b.com")}

	assert.True(t, o.Click(el))
	assert.Equal(t, []string{"mailto:a@b.com"}, nav.urls)

	assert.True(t, o.Click(el))
	assert.Equal(t, []string{"mailto:a@b.com", "mailto:a@b.com"}, nav.urls)
}

func TestHover_ShowTextIsIdempotent(t *testing.T) {
	o, nav, _ := newTestObfuscator()
	decodes := 0
	o.decode = func(s string) (string, error) {
		decodes++
		return Decode(s)
	}
	el := &Element{Encoded: Encode("a@b.com"), ShowText: true, Text: "Email us"}

	o.Hover(el)
	assert.Equal(t, "a@b.com", el.Text)
	assert.True(t, el.Revealed())
	assert.Equal(t, 1, decodes)

	el.Text = "changed by someone else"
	o.Hover(el)
	assert.Equal(t, 1, decodes, "second hover must not decode again")
	assert.Equal(t, "changed by someone else", el.Text)
	assert.Empty(t, nav.urls, "hover never navigates")
}

func TestHover_LinkTargetRewritesHref(t *testing.T) {
	o, _, _ := newTestObfuscator()
	el := &Element{Encoded: Encode("hello@eloq.agency"), LinkTarget: true, Href: "#", Text: "Write to us"}

	o.Hover(el)

	assert.Equal(t, "mailto:hello@eloq.agency", el.Href)
	assert.Equal(t, "Write to us", el.Text, "text is only replaced with the show flag")
	assert.True(t, el.Revealed())
}

func TestHover_UnflaggedElementIsUntouched(t *testing.T) {
	o, _, _ := newTestObfuscator()
	decodes := 0
	o.decode = func(s string) (string, error) {
		decodes++
		return Decode(s)
	}
	el := &Element{Encoded: Encode("a@b.com"), Text: "Email", Href: "#"}

	o.Hover(el)

	assert.Zero(t, decodes)
	assert.Equal(t, "Email", el.Text)
	assert.Equal(t, "#", el.Href)
	assert.False(t, el.Revealed())
}

func TestMalformedValue_IsLoggedNotPropagated(t *testing.T) {
	o, nav, logs := newTestObfuscator()
	el := &Element{Encoded: "***", ShowText: true, LinkTarget: true, Text: "Email", Href: "#"}

	assert.NotPanics(t, func() {
		assert.True(t, o.Click(el))
		o.Hover(el)
	})

	assert.Empty(t, nav.urls)
	assert.Equal(t, "Email", el.Text)
	assert.Equal(t, "#", el.Href)
	assert.False(t, el.Revealed())

	out := logs.String()
	assert.Equal(t, 2, strings.Count(out, "email decode failed"))
	assert.Contains(t, out, "scope=obfuscate")
}
