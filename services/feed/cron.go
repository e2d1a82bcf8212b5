package feed

import (
	"context"
	"log"
	"time"
)

// StartFeedCron refreshes the featured-caregiver cache on a fixed interval
// until ctx is cancelled.
func StartFeedCron(ctx context.Context, svc FeaturedService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Feed cron shutdown signal received.")
			return
		case <-ticker.C:
			if err := svc.Refresh(ctx); err != nil {
				log.Printf("Featured caregiver refresh failed: %v\n", err)
			}
		}
	}
}
