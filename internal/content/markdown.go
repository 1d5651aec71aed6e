package content

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// RenderBio renders the markdown about-me text. Raw HTML in the source is
// dropped by goldmark's default (unsafe rendering is off).
func (c *Content) RenderBio() (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(c.About.Bio), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
