// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis session record keys.
const SessionCachePrefix = "session:"

// SessionTTL is the time-to-live for session records.
const SessionTTL = 24 * time.Hour
