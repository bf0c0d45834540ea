package main

import (
	"bytes"
	"fmt"

	"github.com/russross/blackfriday/v2"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type renderer interface {
	render(in []byte) (string, error)
}

const (
	rendererCommonMark  = "commonmark"
	rendererBlackfriday = "blackfriday"
)

func newRenderer(name string) (renderer, error) {
	switch name {
	case "", rendererCommonMark:
		return newCommonMarkRenderer(), nil
	case rendererBlackfriday:
		return newBlackfridayRenderer(), nil
	}
	return nil, fmt.Errorf("unknown markdown renderer %q", name)
}

// Entries may carry raw HTML, so it is passed through untouched.
func newCommonMarkRenderer() renderer {
	md := goldmark.New(
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	return &goldmarkRenderer{md}
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

func (g *goldmarkRenderer) render(in []byte) (string, error) {
	var b bytes.Buffer
	if err := g.md.Convert(in, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

const htmlFlags = blackfriday.UseXHTML |
	blackfriday.Smartypants |
	blackfriday.SmartypantsFractions |
	blackfriday.SmartypantsLatexDashes

const extensions = blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Autolink |
	blackfriday.Strikethrough

func newBlackfridayRenderer() renderer {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags})
	return &blackfridayHtmlRenderer{r, extensions}
}

type blackfridayHtmlRenderer struct {
	r          blackfriday.Renderer
	extensions blackfriday.Extensions
}

func (b *blackfridayHtmlRenderer) render(in []byte) (string, error) {
	out := blackfriday.Run(in, blackfriday.WithRenderer(b.r), blackfriday.WithExtensions(b.extensions))
	return string(out), nil
}
