package capture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/promovia/promovia-api/models"
	"github.com/promovia/promovia-api/services/extraction"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	orders   []*models.CapturedOrder
	prompts  map[string]string
	touched  []string
	touchErr error
}

func (s *fakeStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	return fn(s)
}

func (s *fakeStore) OrderIDExists(projectID, orderID string) (bool, error) {
	for _, o := range s.orders {
		if inScope(o.ProjectID, projectID) && o.OrderID != nil && *o.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) PhoneExists(projectID, phone string) (bool, error) {
	for _, o := range s.orders {
		if inScope(o.ProjectID, projectID) && o.CustomerPhone != nil && *o.CustomerPhone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateOrder(order *models.CapturedOrder) error {
	s.orders = append(s.orders, order)
	return nil
}

func (s *fakeStore) TouchPromoter(promoterID string) error {
	s.touched = append(s.touched, promoterID)
	return s.touchErr
}

func (s *fakeStore) ProjectPrompt(projectID string) (string, error) {
	return s.prompts[projectID], nil
}

func inScope(ptr *string, projectID string) bool {
	if projectID == "" {
		return ptr == nil
	}
	return ptr != nil && *ptr == projectID
}

// fakeExtractor returns a canned result keyed by the image bytes, so each
// test image can stand in for a receipt, a profile screen or a blurry photo.
type fakeExtractor struct {
	results map[string]extraction.Result
	prompts []string
}

func (e *fakeExtractor) Extract(image []byte, contentType, prompt string) extraction.Result {
	e.prompts = append(e.prompts, prompt)
	if result, ok := e.results[string(image)]; ok {
		return result
	}
	return extraction.Result{}
}

type fakeBlobs struct {
	uploaded []string
	types    []string
	deleted  []string
	failAt   int
}

func (b *fakeBlobs) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if b.failAt > 0 && len(b.uploaded)+1 == b.failAt {
		return "", errors.New("bucket unavailable")
	}
	b.uploaded = append(b.uploaded, key)
	b.types = append(b.types, contentType)
	return "https://cdn.test/" + key, nil
}

func (b *fakeBlobs) Delete(ctx context.Context, key string) error {
	b.deleted = append(b.deleted, key)
	return nil
}

func newTestEngine(store *fakeStore, ext *fakeExtractor, blobs *fakeBlobs) *Engine {
	engine := NewEngine(store, ext, blobs, "")
	engine.annotate = func(src []byte, lines []string) ([]byte, error) {
		return src, nil
	}
	return engine
}

func img(name string) Image {
	return Image{Data: []byte(name), Filename: name + ".jpg", ContentType: "image/jpeg"}
}

func manyImages(n int) []Image {
	images := make([]Image, n)
	for i := range images {
		images[i] = img(fmt.Sprintf("shot-%d", i))
	}
	return images
}

// standardResults maps test image names to the extraction each one stands for.
func standardResults() map[string]extraction.Result {
	return map[string]extraction.Result{
		"receipt": {
			"orderId":         "ORD123",
			"deliveryAddress": "12 Baker Street",
			"orderPlaced":     "2026-02-01 18:30",
			"promoVoucher":    "Rs.50 cashback",
		},
		"profile": {
			"phone":        "9876543210",
			"customerName": "Asha Verma",
		},
		"na-receipt":      {"orderId": "N/A"},
		"literal-receipt": {"orderId": "string"},
		"id-card":         {"customerName": "Asha Verma"},
		"blank-profile":   {"phone": ""},
	}
}

func TestCaptureOrder(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: standardResults()}
	blobs := &fakeBlobs{}
	engine := newTestEngine(store, ext, blobs)

	var notified *models.CapturedOrder
	engine.Notify = func(order *models.CapturedOrder) { notified = order }

	order, err := engine.Capture(context.Background(), Input{
		EntryType:  models.EntryTypeOrder,
		ProjectID:  "proj-1",
		PromoterID: "prom-1",
		Name:       "Asha",
		Phone:      "9876543210",
		Images:     []Image{img("receipt"), img("history")},
	})
	if err != nil {
		t.Fatalf("Expected capture to succeed, got %v", err)
	}

	if order.OrderID == nil || *order.OrderID != "ORD123" {
		t.Errorf("Expected order id ORD123, got %v", order.OrderID)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Expected status %s, got %s", models.OrderStatusPending, order.Status)
	}
	if !order.CashbackAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected cashback 50, got %s", order.CashbackAmount)
	}
	if order.OrderAddress != "12 Baker Street" {
		t.Errorf("Expected delivery address from extraction, got %q", order.OrderAddress)
	}
	if order.OrderPlacedAt != "2026-02-01 18:30" {
		t.Errorf("Expected order placed time from extraction, got %q", order.OrderPlacedAt)
	}
	if !strings.Contains(order.OrderImageURL, "receipt") {
		t.Errorf("Expected order image URL for the receipt shot, got %q", order.OrderImageURL)
	}
	if !strings.Contains(order.OrderHistoryImageURL, "history") {
		t.Errorf("Expected history image URL for the second shot, got %q", order.OrderHistoryImageURL)
	}
	if order.RawExtraction == nil {
		t.Error("Expected raw extraction to be stored")
	}

	if len(store.orders) != 1 {
		t.Fatalf("Expected exactly one stored order, got %d", len(store.orders))
	}
	if notified != order {
		t.Error("Expected the captured order to be handed to Notify")
	}
	if len(store.touched) != 1 || store.touched[0] != "prom-1" {
		t.Errorf("Expected promoter prom-1 activity refresh, got %v", store.touched)
	}
	if len(blobs.deleted) != 0 {
		t.Errorf("Expected no artifact cleanup after success, deleted %v", blobs.deleted)
	}
}

func TestCaptureSignupUsesProfileIdentity(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: standardResults()}
	blobs := &fakeBlobs{}
	engine := newTestEngine(store, ext, blobs)

	order, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeSignup,
		ProjectID: "proj-1",
		Name:      "Form Name",
		Phone:     "0000000000",
		Images:    []Image{img("profile")},
	})
	if err != nil {
		t.Fatalf("Expected signup capture to succeed, got %v", err)
	}

	if order.CustomerName != "Asha Verma" {
		t.Errorf("Expected extracted name to win over the form value, got %q", order.CustomerName)
	}
	if order.CustomerPhone == nil || *order.CustomerPhone != "9876543210" {
		t.Errorf("Expected extracted phone to win over the form value, got %v", order.CustomerPhone)
	}
	if order.OrderID != nil {
		t.Errorf("Expected no order id on a signup, got %v", *order.OrderID)
	}
	if !strings.Contains(order.ProfileImageURL, "profile") {
		t.Errorf("Expected profile image URL, got %q", order.ProfileImageURL)
	}
}

func TestCaptureBoth(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: standardResults()}
	blobs := &fakeBlobs{}
	engine := newTestEngine(store, ext, blobs)

	order, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeBoth,
		ProjectID: "proj-1",
		Images:    []Image{img("receipt"), img("profile"), img("history")},
	})
	if err != nil {
		t.Fatalf("Expected capture to succeed, got %v", err)
	}

	if order.OrderID == nil || *order.OrderID != "ORD123" {
		t.Errorf("Expected order id ORD123, got %v", order.OrderID)
	}
	if order.CustomerPhone == nil || *order.CustomerPhone != "9876543210" {
		t.Errorf("Expected profile phone, got %v", order.CustomerPhone)
	}
	if order.OrderImageURL == "" || order.ProfileImageURL == "" || order.OrderHistoryImageURL == "" {
		t.Errorf("Expected all three artifact URLs, got %q %q %q",
			order.OrderImageURL, order.ProfileImageURL, order.OrderHistoryImageURL)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(order.RawExtraction, &raw); err != nil {
		t.Fatalf("Expected raw extraction to be valid JSON: %v", err)
	}
	if _, ok := raw["order"]; !ok {
		t.Error("Expected raw extraction to carry the order result")
	}
	if _, ok := raw["profile"]; !ok {
		t.Error("Expected raw extraction to carry the profile result")
	}
}

func TestCaptureRejections(t *testing.T) {
	existingOrderID := "ORD123"
	existingPhone := "9876543210"
	projectID := "proj-1"
	seeded := []*models.CapturedOrder{{
		OrderID:       &existingOrderID,
		CustomerPhone: &existingPhone,
		ProjectID:     &projectID,
	}}

	tests := []struct {
		name string
		seed []*models.CapturedOrder
		in   Input
		want RejectError
	}{
		{
			name: "duplicate order id",
			seed: seeded,
			in:   Input{EntryType: models.EntryTypeOrder, ProjectID: "proj-1", Images: []Image{img("receipt")}},
			want: ErrOrderExists,
		},
		{
			name: "duplicate profile phone",
			seed: seeded,
			in:   Input{EntryType: models.EntryTypeSignup, ProjectID: "proj-1", Images: []Image{img("profile")}},
			want: ErrProfileExists,
		},
		{
			name: "placeholder order id N/A",
			in:   Input{EntryType: models.EntryTypeOrder, ProjectID: "proj-1", Images: []Image{img("na-receipt")}},
			want: ErrOrderImage,
		},
		{
			name: "placeholder order id string",
			in:   Input{EntryType: models.EntryTypeOrder, ProjectID: "proj-1", Images: []Image{img("literal-receipt")}},
			want: ErrOrderImage,
		},
		{
			name: "signup without readable phone",
			in:   Input{EntryType: models.EntryTypeSignup, ProjectID: "proj-1", Images: []Image{img("id-card")}},
			want: ErrProfileImage,
		},
		{
			name: "signup with empty extracted phone",
			in:   Input{EntryType: models.EntryTypeSignup, ProjectID: "proj-1", Images: []Image{img("blank-profile")}},
			want: ErrProfileImage,
		},
		{
			name: "both without profile image",
			in:   Input{EntryType: models.EntryTypeBoth, ProjectID: "proj-1", Images: []Image{img("receipt")}},
			want: ErrProfileImage,
		},
		{
			name: "both without order image",
			in:   Input{EntryType: models.EntryTypeBoth, ProjectID: "proj-1", Images: []Image{img("profile")}},
			want: ErrOrderImage,
		},
		{
			name: "unknown entry type",
			in:   Input{EntryType: "refund", Images: []Image{img("receipt")}},
			want: ErrInvalidEntryType,
		},
		{
			name: "no images",
			in:   Input{EntryType: models.EntryTypeOrder},
			want: ErrNoImages,
		},
		{
			name: "too many images",
			in:   Input{EntryType: models.EntryTypeOrder, Images: manyImages(MaxImages + 1)},
			want: ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{orders: tt.seed}
			ext := &fakeExtractor{results: standardResults()}
			blobs := &fakeBlobs{}
			engine := newTestEngine(store, ext, blobs)

			_, err := engine.Capture(context.Background(), tt.in)

			var reject RejectError
			if !errors.As(err, &reject) {
				t.Fatalf("Expected a rejection, got %v", err)
			}
			if reject != tt.want {
				t.Errorf("Expected rejection %q, got %q", tt.want, reject)
			}
			if len(store.orders) != len(tt.seed) {
				t.Errorf("Expected no new rows, store has %d", len(store.orders))
			}
			if len(blobs.deleted) != len(blobs.uploaded) {
				t.Errorf("Expected uploaded artifacts to be cleaned up, uploaded %d deleted %d",
					len(blobs.uploaded), len(blobs.deleted))
			}
			if len(store.touched) != 0 {
				t.Errorf("Expected no promoter activity refresh on rejection, got %v", store.touched)
			}
		})
	}
}

func TestCaptureDoubleSubmit(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: standardResults()}
	engine := newTestEngine(store, ext, &fakeBlobs{})

	in := Input{
		EntryType: models.EntryTypeOrder,
		ProjectID: "proj-1",
		Images:    []Image{img("receipt")},
	}

	if _, err := engine.Capture(context.Background(), in); err != nil {
		t.Fatalf("Expected the first submission to succeed, got %v", err)
	}

	_, err := engine.Capture(context.Background(), in)
	if !errors.Is(err, ErrOrderExists) {
		t.Fatalf("Expected %q on resubmission, got %v", ErrOrderExists, err)
	}
	if len(store.orders) != 1 {
		t.Errorf("Expected exactly one stored row, got %d", len(store.orders))
	}
}

func TestCaptureDuplicateFormPhone(t *testing.T) {
	existingPhone := "9876543210"
	projectID := "proj-1"
	store := &fakeStore{orders: []*models.CapturedOrder{{
		CustomerPhone: &existingPhone,
		ProjectID:     &projectID,
	}}}
	ext := &fakeExtractor{results: standardResults()}
	engine := newTestEngine(store, ext, &fakeBlobs{})

	_, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeOrder,
		ProjectID: "proj-1",
		Phone:     "9876543210",
		Images:    []Image{img("receipt")},
	})
	if !errors.Is(err, ErrProfileExists) {
		t.Fatalf("Expected %q for a form phone already captured, got %v", ErrProfileExists, err)
	}
	if len(store.orders) != 1 {
		t.Errorf("Expected no new rows, got %d", len(store.orders))
	}
}

func TestCaptureDuplicateScopedToProject(t *testing.T) {
	existingOrderID := "ORD123"
	projectID := "proj-1"
	store := &fakeStore{orders: []*models.CapturedOrder{{
		OrderID:   &existingOrderID,
		ProjectID: &projectID,
	}}}
	ext := &fakeExtractor{results: standardResults()}
	engine := newTestEngine(store, ext, &fakeBlobs{})

	_, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeOrder,
		ProjectID: "proj-2",
		Images:    []Image{img("receipt")},
	})
	if err != nil {
		t.Fatalf("Expected the same order id to be accepted in another project, got %v", err)
	}

	_, err = engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeOrder,
		Images:    []Image{img("receipt")},
	})
	if err != nil {
		t.Fatalf("Expected the same order id to be accepted outside any project, got %v", err)
	}
}

func TestCaptureFirstOrderImageWins(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: map[string]extraction.Result{
		"receipt-a": {"orderId": "ORD1"},
		"receipt-b": {"orderId": "ORD2"},
	}}
	blobs := &fakeBlobs{}
	engine := newTestEngine(store, ext, blobs)

	order, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeOrder,
		ProjectID: "proj-1",
		Images:    []Image{img("receipt-a"), img("receipt-b")},
	})
	if err != nil {
		t.Fatalf("Expected capture to succeed, got %v", err)
	}

	if order.OrderID == nil || *order.OrderID != "ORD1" {
		t.Errorf("Expected the first receipt to win, got %v", order.OrderID)
	}
	if !strings.Contains(order.OrderHistoryImageURL, "receipt-b") {
		t.Errorf("Expected the second receipt to land in the history slot, got %q", order.OrderHistoryImageURL)
	}
}

func TestCaptureUploadFailure(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: standardResults()}
	blobs := &fakeBlobs{failAt: 2}
	engine := newTestEngine(store, ext, blobs)

	_, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeOrder,
		ProjectID: "proj-1",
		Images:    []Image{img("receipt"), img("history")},
	})
	if err == nil {
		t.Fatal("Expected the capture to fail when an upload fails")
	}

	var reject RejectError
	if errors.As(err, &reject) {
		t.Errorf("Expected an internal error, got rejection %q", reject)
	}
	if len(store.orders) != 0 {
		t.Errorf("Expected no stored order, got %d", len(store.orders))
	}
	if len(blobs.deleted) != 1 {
		t.Fatalf("Expected the successful upload to be cleaned up, deleted %v", blobs.deleted)
	}
	if blobs.deleted[0] != blobs.uploaded[0] {
		t.Errorf("Expected cleanup of %q, deleted %q", blobs.uploaded[0], blobs.deleted[0])
	}
}

func TestCapturePromptSelection(t *testing.T) {
	t.Run("brand prompt", func(t *testing.T) {
		store := &fakeStore{prompts: map[string]string{"proj-1": "read the loyalty card"}}
		ext := &fakeExtractor{results: standardResults()}
		engine := newTestEngine(store, ext, &fakeBlobs{})

		_, err := engine.Capture(context.Background(), Input{
			EntryType: models.EntryTypeOrder,
			ProjectID: "proj-1",
			Images:    []Image{img("receipt")},
		})
		if err != nil {
			t.Fatalf("Expected capture to succeed, got %v", err)
		}
		if len(ext.prompts) == 0 || ext.prompts[0] != "read the loyalty card" {
			t.Errorf("Expected the brand prompt to be used, got %v", ext.prompts)
		}
	})

	t.Run("default prompt", func(t *testing.T) {
		store := &fakeStore{}
		ext := &fakeExtractor{results: standardResults()}
		engine := newTestEngine(store, ext, &fakeBlobs{})

		_, err := engine.Capture(context.Background(), Input{
			EntryType: models.EntryTypeOrder,
			ProjectID: "proj-without-brand",
			Images:    []Image{img("receipt")},
		})
		if err != nil {
			t.Fatalf("Expected capture to succeed, got %v", err)
		}
		if len(ext.prompts) == 0 || ext.prompts[0] != extraction.DefaultPrompt {
			t.Error("Expected the default prompt when the project has none")
		}
	})
}

func TestCaptureAnnotationFallback(t *testing.T) {
	store := &fakeStore{}
	ext := &fakeExtractor{results: standardResults()}
	blobs := &fakeBlobs{}
	engine := newTestEngine(store, ext, blobs)
	engine.annotate = func(src []byte, lines []string) ([]byte, error) {
		return nil, errors.New("not an image")
	}

	_, err := engine.Capture(context.Background(), Input{
		EntryType: models.EntryTypeOrder,
		ProjectID: "proj-1",
		Images:    []Image{{Data: []byte("receipt"), Filename: "receipt.png", ContentType: "image/png"}},
	})
	if err != nil {
		t.Fatalf("Expected annotation failure to be tolerated, got %v", err)
	}
	if len(blobs.types) != 1 || blobs.types[0] != "image/png" {
		t.Errorf("Expected the original bytes and content type to be stored, got %v", blobs.types)
	}
}

func TestCaptureTouchPromoterFailureTolerated(t *testing.T) {
	store := &fakeStore{touchErr: errors.New("connection reset")}
	ext := &fakeExtractor{results: standardResults()}
	engine := newTestEngine(store, ext, &fakeBlobs{})

	order, err := engine.Capture(context.Background(), Input{
		EntryType:  models.EntryTypeOrder,
		ProjectID:  "proj-1",
		PromoterID: "prom-1",
		Images:     []Image{img("receipt")},
	})
	if err != nil {
		t.Fatalf("Expected capture to succeed despite the activity refresh failing, got %v", err)
	}
	if order == nil {
		t.Fatal("Expected a stored order")
	}
}
