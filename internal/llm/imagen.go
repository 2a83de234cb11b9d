package llm

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/Gk2403-techi/greenscape/internal/storage"
)

type imageGenerator interface {
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// ImagenProvider renders with Imagen and uploads the PNG to an object store.
// The URL it returns is the stored object's public URL.
type ImagenProvider struct {
	gen   imageGenerator
	store storage.ObjectStore
	model string
}

func NewImagenProvider(gen imageGenerator, store storage.ObjectStore, model string) *ImagenProvider {
	return &ImagenProvider{gen: gen, store: store, model: model}
}

// NewGenAIClient builds a Gemini API backed genai client.
func NewGenAIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func (p *ImagenProvider) Name() string { return "imagen" }

func (p *ImagenProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.gen == nil || p.store == nil {
		return "", fmt.Errorf("imagen: provider not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, imageTimeout)
	defer cancel()

	resp, err := p.gen.GenerateImages(ctx, p.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:    1,
		AspectRatio:       "16:9",
		SafetyFilterLevel: genai.SafetyFilterLevelBlockOnlyHigh,
		OutputMIMEType:    "image/png",
	})
	if err != nil {
		return "", fmt.Errorf("imagen generate: %w", err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return "", ErrNoImage
	}
	img := resp.GeneratedImages[0].Image
	if img == nil || len(img.ImageBytes) == 0 {
		return "", ErrNoImage
	}

	key := "renders/" + uuid.NewString() + ".png"
	url, err := p.store.Put(ctx, key, bytes.NewReader(img.ImageBytes), "image/png")
	if err != nil {
		return "", fmt.Errorf("imagen upload: %w", err)
	}
	return url, nil
}
