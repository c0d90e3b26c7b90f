package markdown

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// MessageRenderer converts commit messages to HTML. Messages are
// untrusted input: they are escaped before conversion and the result
// is sanitised, so message text can never inject markup into the
// colophon.
type MessageRenderer struct {
	gm     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMessageRenderer() *MessageRenderer {
	return &MessageRenderer{
		gm: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(htmlrenderer.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *MessageRenderer) Render(message string) (string, error) {
	b := &bytes.Buffer{}
	if err := r.gm.Convert([]byte(html.EscapeString(message)), b); err != nil {
		return "", err
	}
	return r.policy.Sanitize(b.String()), nil
}
