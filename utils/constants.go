// File: utils/constants.go
package utils

import "time"

// SubKeyCachePrefix is the prefix used for Redis subscription-key cache entries.
const SubKeyCachePrefix = "subkey:"

// SubKeyCacheTTL is the time-to-live for subscription-key cache entries.
const SubKeyCacheTTL = 10 * time.Minute

// FeedCachePrefix is the prefix used for rendered calendar feed cache entries.
const FeedCachePrefix = "feed:"

// FeedCacheTTL is the time-to-live for rendered calendar feeds.
const FeedCacheTTL = 5 * time.Minute
