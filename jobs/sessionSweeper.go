package jobs

import (
	"context"
	"log"
	"time"

	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
)

// StartSessionSweeper periodically clears expired OTPs and stale promoter
// sessions so single-session enforcement does not rest on token expiry
// alone.
func StartSessionSweeper(ctx context.Context, interval, sessionTTL time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(sessionTTL)
			}
		}
	}()
}

func sweep(sessionTTL time.Duration) {
	now := time.Now()

	result := initializers.DB.Model(&models.Promoter{}).
		Where("otp != '' AND otp_expires_at < ?", now).
		Updates(map[string]any{"otp": "", "otp_expires_at": nil})
	if result.Error != nil {
		log.Println("Error clearing expired OTPs:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("Cleared %d expired OTPs.", result.RowsAffected)
	}

	cutoff := now.Add(-sessionTTL)
	result = initializers.DB.Model(&models.Promoter{}).
		Where("session_token != '' AND last_active_at < ?", cutoff).
		Update("session_token", "")
	if result.Error != nil {
		log.Println("Error clearing stale sessions:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("Cleared %d stale promoter sessions.", result.RowsAffected)
	}
}
