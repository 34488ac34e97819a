package obfuscate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestScan_FindsEncodedElements(t *testing.T) {
	page := `<!DOCTYPE html><html><body>
		<a href="#" data-email="` + Encode("a@b.com") + `" data-show-email>Show <b>email</b></a>
		<p>Nothing here</p>
		<span data-email="` + Encode("c@d.com") + `" data-email-link>Link</span>
		<a href="/about">About</a>
	</body></html>`

	elements, err := Scan(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, elements, 2)

	first := elements[0]
	assert.Equal(t, Encode("a@b.com"), first.Encoded)
	assert.True(t, first.ShowText)
	assert.False(t, first.LinkTarget)
	assert.Equal(t, "Show email", first.Text)
	assert.Equal(t, "#", first.Href)

	second := elements[1]
	assert.True(t, second.LinkTarget)
	assert.False(t, second.ShowText)
	assert.Equal(t, "Link", second.Text)
}

func TestScan_EmptyPage(t *testing.T) {
	elements, err := Scan(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestProtectedEmail_RendersNoPlaintext(t *testing.T) {
	var buf bytes.Buffer
	node := h.Div(
		ProtectedEmail("hello@eloq.agency", "Get in touch", ShowOnHover(), LinkOnHover(), WithClass("mail")),
	)
	require.NoError(t, node.Render(&buf))

	out := buf.String()
	assert.NotContains(t, out, "hello@eloq.agency")
	assert.Contains(t, out, `data-email="`+Encode("hello@eloq.agency")+`"`)
	assert.Contains(t, out, "data-show-email")
	assert.Contains(t, out, "data-email-link")
	assert.Contains(t, out, `class="mail"`)
	assert.Contains(t, out, "Get in touch")
}

func TestProtectedEmail_RoundTripThroughScan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, g.Group([]g.Node{
		ProtectedEmail("a@b.com", "Email", ShowOnHover()),
		ProtectedEmail("c@d.com", "Mail"),
	}).Render(&buf))

	elements, err := Scan(&buf)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	o, nav, _ := newTestObfuscator()
	o.Hover(elements[0])
	assert.Equal(t, "a@b.com", elements[0].Text)

	o.Click(elements[1])
	assert.Equal(t, []string{"mailto:c@d.com"}, nav.urls)
	assert.False(t, elements[1].ShowText)
}
