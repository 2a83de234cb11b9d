package llm

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Gk2403-techi/greenscape/internal/core"
	"github.com/Gk2403-techi/greenscape/internal/logging"
)

var tracer = otel.Tracer("github.com/Gk2403-techi/greenscape/internal/llm")

type named interface {
	Name() string
}

func providerName(p any) string {
	if n, ok := p.(named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}

// ImageChain tries each provider in order and ends with a fallback that
// cannot fail, so Generate always yields a URL.
type ImageChain struct {
	providers []core.ImageProvider
	fallback  *Pollinations
	logger    *zap.Logger
}

func NewImageChain(fallback *Pollinations, logger *zap.Logger, providers ...core.ImageProvider) *ImageChain {
	if fallback == nil {
		fallback = NewPollinations(nil)
	}
	return &ImageChain{
		providers: providers,
		fallback:  fallback,
		logger:    logging.OrNop(logger),
	}
}

func (c *ImageChain) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.image.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	for _, p := range c.providers {
		name := providerName(p)
		url, err := p.Generate(ctx, prompt)
		if err == nil && url != "" {
			span.SetAttributes(attribute.String("llm.provider", name))
			return url, nil
		}
		if err == nil {
			err = ErrNoImage
		}
		span.RecordError(err, trace.WithAttributes(attribute.String("llm.provider", name)))
		c.logger.Warn("image provider failed, falling back",
			zap.String("provider", name),
			zap.Error(err),
		)
	}

	span.SetAttributes(attribute.String("llm.provider", c.fallback.Name()))
	return c.fallback.URL(prompt), nil
}

// TextChain tries each provider in order and answers with a fixed reply
// when all of them fail.
type TextChain struct {
	providers []core.TextProvider
	fallback  StaticText
	logger    *zap.Logger
}

func NewTextChain(fallback StaticText, logger *zap.Logger, providers ...core.TextProvider) *TextChain {
	return &TextChain{
		providers: providers,
		fallback:  fallback,
		logger:    logging.OrNop(logger),
	}
}

func (c *TextChain) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.text.complete", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	var lastErr error
	for _, p := range c.providers {
		name := providerName(p)
		text, err := p.Complete(ctx, prompt)
		if err == nil && text != "" {
			span.SetAttributes(attribute.String("llm.provider", name))
			return text, nil
		}
		if err == nil {
			err = ErrEmptyResponse
		}
		lastErr = err
		span.RecordError(err, trace.WithAttributes(attribute.String("llm.provider", name)))
		c.logger.Warn("text provider failed, falling back",
			zap.String("provider", name),
			zap.Error(err),
		)
	}

	if c.fallback == "" {
		if lastErr == nil {
			lastErr = ErrEmptyResponse
		}
		span.SetStatus(codes.Error, lastErr.Error())
		return "", lastErr
	}

	span.SetAttributes(attribute.String("llm.provider", c.fallback.Name()))
	return c.fallback.Complete(ctx, prompt)
}
