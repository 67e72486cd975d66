package capture

import (
	"context"
	"io"
	"log"

	"github.com/promovia/promovia-api/models"
	"github.com/promovia/promovia-api/services/extraction"
	"github.com/promovia/promovia-api/services/overlay"
	"github.com/promovia/promovia-api/services/storage"
)

// MaxImages caps how many artifacts one capture may carry.
const MaxImages = 50

// Extractor produces a structured result for one image. Implementations
// are best effort and return an empty result instead of failing.
type Extractor interface {
	Extract(image []byte, contentType, prompt string) extraction.Result
}

// BlobStore stores artifacts and serves them publicly.
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Annotator renders text lines onto an image.
type Annotator func(src []byte, lines []string) ([]byte, error)

// Image is one uploaded artifact.
type Image struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Input carries everything one capture request submits.
type Input struct {
	EntryType     string
	ProjectID     string
	PromoterID    string
	VendorID      string
	ActivityID    string
	ActivityLocID string
	Name          string
	Phone         string
	Latitude      string
	Longitude     string
	Location      string
	DeviceInfo    string
	Images        []Image
}

// Engine runs the capture pipeline: extract each image, annotate and store
// it, classify the results, validate and deduplicate, then persist exactly
// one captured order.
type Engine struct {
	store         Store
	extractor     Extractor
	blobs         BlobStore
	annotate      Annotator
	defaultPrompt string

	// Notify, when set, is called with every successfully captured order.
	Notify func(order *models.CapturedOrder)
}

func NewEngine(store Store, extractor Extractor, blobs BlobStore, defaultPrompt string) *Engine {
	if defaultPrompt == "" {
		defaultPrompt = extraction.DefaultPrompt
	}
	return &Engine{
		store:         store,
		extractor:     extractor,
		blobs:         blobs,
		annotate:      overlay.Annotate,
		defaultPrompt: defaultPrompt,
	}
}

func (e *Engine) Capture(ctx context.Context, in Input) (*models.CapturedOrder, error) {
	switch in.EntryType {
	case models.EntryTypeOrder, models.EntryTypeSignup, models.EntryTypeBoth:
	default:
		return nil, ErrInvalidEntryType
	}
	if len(in.Images) == 0 {
		return nil, ErrNoImages
	}
	if len(in.Images) > MaxImages {
		return nil, ErrTooManyImages
	}

	prompt := e.promptFor(in.ProjectID)
	lines := overlayLines(in)

	uploads := newUploadSet(e.blobs)
	defer uploads.discard()

	slots := &artifactSlots{}
	for _, img := range in.Images {
		result := e.extractor.Extract(img.Data, img.ContentType, prompt)

		data, contentType := img.Data, img.ContentType
		if annotated, err := e.annotate(img.Data, lines); err != nil {
			log.Printf("Error annotating %s, storing original: %v", img.Filename, err)
		} else {
			data, contentType = annotated, "image/jpeg"
		}

		url, err := uploads.add(ctx, storage.ObjectKey("orders", img.Filename), data, contentType)
		if err != nil {
			return nil, err
		}

		slots.place(result, url)
	}

	order, err := e.validateAndPersist(ctx, in, slots)
	if err != nil {
		return nil, err
	}
	uploads.commit()

	if in.PromoterID != "" {
		if err := e.store.TouchPromoter(in.PromoterID); err != nil {
			log.Printf("Error refreshing promoter %s activity: %v", in.PromoterID, err)
		}
	}
	if e.Notify != nil {
		e.Notify(order)
	}
	return order, nil
}

func (e *Engine) promptFor(projectID string) string {
	prompt, err := e.store.ProjectPrompt(projectID)
	if err != nil {
		log.Printf("Error loading project prompt: %v", err)
	}
	if prompt == "" {
		return e.defaultPrompt
	}
	return prompt
}
