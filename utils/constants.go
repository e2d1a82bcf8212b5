// File: utils/constants.go
package utils

import "time"

// FeedCachePrefix is the prefix used for featured-caregiver cache keys.
const FeedCachePrefix = "feed:caregivers:"

// FeedCacheTTL is the time-to-live for featured-caregiver cache entries.
const FeedCacheTTL = 24 * time.Hour
