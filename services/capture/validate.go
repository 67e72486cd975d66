package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/promovia/promovia-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RejectError is a validation rejection whose text is shown to the caller.
type RejectError string

func (e RejectError) Error() string { return string(e) }

const (
	ErrInvalidEntryType = RejectError("Invalid entry type")
	ErrNoImages         = RejectError("At least one image is required")
	ErrTooManyImages    = RejectError("A maximum of 50 images are allowed")
	ErrOrderImage       = RejectError("Order Image is required")
	ErrProfileImage     = RejectError("Profile Image is required")
	ErrOrderExists      = RejectError("Order already exists")
	ErrProfileExists    = RejectError("Profile already exists")
)

// placeholderOrderIDs are literal values vision models emit when a receipt
// carries no readable order number. They count as absent.
var placeholderOrderIDs = map[string]bool{
	"N/A":    true,
	"string": true,
}

func sanitizeOrderID(id string) string {
	if placeholderOrderIDs[id] {
		return ""
	}
	return id
}

// validateAndPersist runs the duplicate checks and completeness rules
// inside one transaction and inserts exactly one captured order. The
// unique indexes on the orders table back the checks up, so two captures
// racing past the existence checks still produce one row and one
// rejection.
func (e *Engine) validateAndPersist(ctx context.Context, in Input, slots *artifactSlots) (*models.CapturedOrder, error) {
	orderID := ""
	if slots.orderData != nil {
		orderID = sanitizeOrderID(slots.orderData.OrderID())
	}
	phone := effectivePhone(in, slots)

	var order *models.CapturedOrder
	err := e.store.WithinTx(ctx, func(tx Store) error {
		if orderID != "" {
			exists, err := tx.OrderIDExists(in.ProjectID, orderID)
			if err != nil {
				return err
			}
			if exists {
				return ErrOrderExists
			}
		}
		// The phone check guards the value the row will store, whether
		// it came from a profile image or the submitted form.
		if phone != "" {
			exists, err := tx.PhoneExists(in.ProjectID, phone)
			if err != nil {
				return err
			}
			if exists {
				return ErrProfileExists
			}
		}
		if err := checkCompleteness(in.EntryType, slots, orderID); err != nil {
			return err
		}

		order = buildOrder(in, slots, orderID)
		return tx.CreateOrder(order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// checkCompleteness enforces what each entry type must have extracted
// before a capture may be stored.
func checkCompleteness(entryType string, slots *artifactSlots, orderID string) error {
	switch entryType {
	case models.EntryTypeOrder:
		if orderID == "" {
			return ErrOrderImage
		}
	case models.EntryTypeSignup:
		if slots.profileData == nil || slots.profileData.Phone() == "" {
			return ErrProfileImage
		}
	case models.EntryTypeBoth:
		if slots.orderImageURL == "" || orderID == "" {
			return ErrOrderImage
		}
		if slots.profileImageURL == "" || slots.profileData == nil || slots.profileData.Phone() == "" {
			return ErrProfileImage
		}
	default:
		return ErrInvalidEntryType
	}
	return nil
}

// effectivePhone is the phone value a capture will persist: the
// profile-extracted phone when one was read, else the raw form value.
func effectivePhone(in Input, slots *artifactSlots) string {
	if slots.profileData != nil {
		if p := slots.profileData.Phone(); p != "" {
			return p
		}
	}
	return in.Phone
}

// buildOrder assembles the row to insert. Profile-derived identity wins
// over the raw form values when a profile was extracted.
func buildOrder(in Input, slots *artifactSlots, orderID string) *models.CapturedOrder {
	name := in.Name
	phone := effectivePhone(in, slots)
	if slots.profileData != nil {
		if n := slots.profileData.CustomerName(); n != "" {
			name = n
		}
	}

	order := &models.CapturedOrder{
		OrderID:              nullable(orderID),
		CustomerName:         name,
		CustomerPhone:        nullable(phone),
		ProjectID:            nullable(in.ProjectID),
		VendorID:             nullable(in.VendorID),
		PromoterID:           nullable(in.PromoterID),
		ActivityID:           nullable(in.ActivityID),
		ActivityLocID:        nullable(in.ActivityLocID),
		OrderImageURL:        slots.orderImageURL,
		ProfileImageURL:      slots.profileImageURL,
		OrderHistoryImageURL: slots.historyImageURL,
		RawExtraction:        mergeRaw(slots),
		Status:               models.OrderStatusPending,
		Latitude:             in.Latitude,
		Longitude:            in.Longitude,
		Location:             in.Location,
		DeviceInfo:           in.DeviceInfo,
	}
	if slots.orderData != nil {
		order.OrderAddress = slots.orderData.DeliveryAddress()
		order.OrderPlacedAt = slots.orderData.OrderPlaced()
		order.CashbackAmount = parseCashback(slots.orderData.PromoVoucher())
	}
	return order
}

// parseCashback pulls the first numeric run out of a voucher string such
// as "Rs.50 cashback" or "50".
func parseCashback(text string) decimal.Decimal {
	start, end := -1, -1
	for i, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			if start == -1 {
				start = i
			}
			end = i + 1
			continue
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(strings.Trim(text[start:end], "."))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func mergeRaw(slots *artifactSlots) datatypes.JSON {
	raw := map[string]any{}
	if slots.orderData != nil {
		raw["order"] = map[string]any(slots.orderData)
	}
	if slots.profileData != nil {
		raw["profile"] = map[string]any(slots.profileData)
	}
	if len(raw) == 0 {
		return nil
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	return datatypes.JSON(buf)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// overlayLines builds the audit text stamped onto every stored artifact.
func overlayLines(in Input) []string {
	lines := []string{time.Now().Format("2006-01-02 15:04:05 MST")}
	if in.Latitude != "" || in.Longitude != "" {
		lines = append(lines, fmt.Sprintf("GPS %s, %s", in.Latitude, in.Longitude))
	}
	if in.Location != "" {
		lines = append(lines, in.Location)
	}
	return lines
}
