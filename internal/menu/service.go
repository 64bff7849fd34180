package menu

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"
)

// PlaceholderImage replaces a dish photo whose generation failed.
const PlaceholderImage = "/placeholder-dish.jpg"

type OCRClient interface {
	Recognize(ctx context.Context, image string) (string, error)
}

type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Archive stores the original upload and returns its public URL.
type Archive interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	ocr     OCRClient
	images  ImageGenerator
	archive Archive // nil when object storage is not configured
}

func NewService(ocr OCRClient, images ImageGenerator, archive Archive) *Service {
	return &Service{ocr: ocr, images: images, archive: archive}
}

// Process runs one menu-processing request: OCR the uploaded image,
// extract dish candidates, generate a food photo per candidate. OCR
// failure fails the whole request; a single image-generation failure
// degrades that item to the placeholder and nothing else.
func (s *Service) Process(ctx context.Context, image string) (*Result, error) {
	text, err := s.ocr.Recognize(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("ocr failed: %w", err)
	}

	items := ExtractItems(text)

	enriched := make([]EnrichedItem, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item Item) {
			defer wg.Done()

			url, err := s.images.Generate(ctx, foodPrompt(item.Name))
			if err != nil {
				log.Printf("IMAGE_FALLBACK item=%s name=%q err=%v", item.ID, item.Name, err)
				url = PlaceholderImage
			}

			enriched[i] = EnrichedItem{Item: item, ImageURL: url}
		}(i, item)
	}
	wg.Wait()

	return &Result{
		MenuItems:     enriched,
		OriginalImage: s.archiveOriginal(ctx, image),
		ExtractedText: text,
	}, nil
}

// foodPrompt derives the deterministic image-generation prompt for a dish.
func foodPrompt(name string) string {
	return fmt.Sprintf(
		"Professional food photography of %s, appetizing, high quality, restaurant style, on a white plate, natural lighting",
		name,
	)
}

// archiveOriginal uploads the submitted image to object storage when
// configured. Any failure is non-fatal: the caller gets the data URL back,
// exactly as if no archive existed.
func (s *Service) archiveOriginal(ctx context.Context, image string) string {
	if s.archive == nil {
		return image
	}

	mediaType, data, err := DecodeImage(image)
	if err != nil {
		log.Printf("ARCHIVE_SKIPPED err=%v", err)
		return image
	}

	ext, err := ImageExtension(mediaType)
	if err != nil {
		log.Printf("ARCHIVE_SKIPPED type=%s err=%v", mediaType, err)
		return image
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)

	url, err := s.archive.Upload(ctx, key, bytes.NewReader(data), mediaType)
	if err != nil {
		log.Printf("ARCHIVE_FAILED key=%s err=%v", key, err)
		return image
	}

	return url
}
