package capture

import "github.com/promovia/promovia-api/services/extraction"

// artifactSlots buckets per-image extraction results into the three
// artifact categories a captured order can carry. Each slot is first
// match wins: once order evidence is found, later order-looking images
// fall through to the profile check, then to the history slot.
type artifactSlots struct {
	orderData   extraction.Result
	profileData extraction.Result

	orderImageURL   string
	profileImageURL string
	historyImageURL string
}

func (s *artifactSlots) place(result extraction.Result, url string) {
	switch {
	case result.OrderID() != "" && s.orderData == nil:
		s.orderData = result
		s.orderImageURL = url
	case result.Phone() != "" && s.profileData == nil:
		s.profileData = result
		s.profileImageURL = url
	default:
		if s.historyImageURL == "" {
			s.historyImageURL = url
		}
	}
}
