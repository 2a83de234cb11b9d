package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gk2403-techi/greenscape/internal/core"
)

const (
	pollinationsBaseURL = "https://image.pollinations.ai/prompt/"
	pollinationsMaxSeed = 99999
)

// Pollinations builds keyless prompt-to-image URLs. It never fails, which
// makes it the last link of every image chain.
type Pollinations struct {
	rnd core.Random
}

func NewPollinations(rnd core.Random) *Pollinations {
	if rnd == nil {
		rnd = core.SystemRandom()
	}
	return &Pollinations{rnd: rnd}
}

func (p *Pollinations) Name() string { return "pollinations" }

func (p *Pollinations) URL(prompt string) string {
	seed := p.rnd.IntN(pollinationsMaxSeed) + 1
	return fmt.Sprintf(
		"%s%s?width=1280&height=720&seed=%d&model=flux&nologo=true",
		pollinationsBaseURL,
		quotePrompt(prompt),
		seed,
	)
}

func (p *Pollinations) Generate(_ context.Context, prompt string) (string, error) {
	return p.URL(prompt), nil
}

// quotePrompt percent-encodes every byte except ASCII letters, digits,
// "_.-~" and "/", so commas, colons and query delimiters stay inside the path.
func quotePrompt(prompt string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(prompt) * 3)
	for i := 0; i < len(prompt); i++ {
		c := prompt[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '_', c == '.', c == '-', c == '~', c == '/':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}

// StaticText always answers with the same reply.
type StaticText string

func (s StaticText) Name() string { return "static" }

func (s StaticText) Complete(context.Context, string) (string, error) {
	return string(s), nil
}
