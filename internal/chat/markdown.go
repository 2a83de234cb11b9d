package chat

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer turns assistant markdown into HTML that is safe to inject.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *Renderer) HTML(markdown string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return r.policy.Sanitize(markdown)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes()))
}
