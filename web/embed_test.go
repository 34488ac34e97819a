package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticFS_Assets(t *testing.T) {
	for _, name := range []string{
		"styles.css",
		"icons.svg",
		"images/og-image.svg",
		"js/email-protect.js",
		"js/navigation.js",
		"js/strategist.js",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fs.Stat(StaticFS(), name)
			assert.NoError(t, err)
		})
	}
}

// The browser script mirrors the obfuscate package: it reveals on hover and
// navigates on click, nothing else.
func TestEmailProtectScript_Events(t *testing.T) {
	src, err := fs.ReadFile(StaticFS(), "js/email-protect.js")
	require.NoError(t, err)

	script := string(src)
	assert.Contains(t, script, "addEventListener('click'")
	assert.Contains(t, script, "addEventListener('mouseenter'")
	assert.NotContains(t, script, "'focus'")
}

func TestIconSprite_HasArrowLeft(t *testing.T) {
	src, err := fs.ReadFile(StaticFS(), "icons.svg")
	require.NoError(t, err)
	assert.Contains(t, string(src), `<symbol id="arrow-left"`)
}
