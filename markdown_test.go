package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	for _, name := range []string{"", rendererCommonMark, rendererBlackfriday} {
		r, err := newRenderer(name)
		require.NoError(t, err, name)

		out, err := r.render([]byte("Hello *world*\n"))
		require.NoError(t, err, name)
		assert.Equal(t, "<p>Hello <em>world</em></p>\n", out, name)
	}

	_, err := newRenderer("textile")
	assert.Error(t, err)
}

func TestCommonMarkPassesRawHTML(t *testing.T) {
	out, err := newCommonMarkRenderer().render([]byte("<div class=\"x\">raw</div>\n"))
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"x\">raw</div>\n", out)
}

func TestBlackfridayExtensions(t *testing.T) {
	out, err := newBlackfridayRenderer().render([]byte("~~gone~~\n"))
	require.NoError(t, err)
	assert.Equal(t, "<p><del>gone</del></p>\n", out)
}
