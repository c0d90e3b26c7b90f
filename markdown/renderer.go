package markdown

import (
	"bytes"

	attributes "github.com/mdigger/goldmark-attributes"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	gm goldmark.Markdown
}

// NewRenderer builds the converter used for the README and per-tool
// documentation files. Raw HTML is passed through so the splice marker
// comments survive conversion.
func NewRenderer(codeStyle string) *Renderer {
	return &Renderer{
		gm: goldmark.New(
			attributes.Enable,
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(highlighting.WithStyle(codeStyle)),
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (r *Renderer) Render(markdown []byte) (string, error) {
	b := &bytes.Buffer{}
	if err := r.gm.Convert(markdown, b); err != nil {
		return "", err
	}
	return b.String(), nil
}
