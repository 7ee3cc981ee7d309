package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// HotelCachePrefix is the prefix used for cached hotel documents.
const HotelCachePrefix = "hotel:"

// HotelCacheTTL is the time-to-live for cached hotel documents.
const HotelCacheTTL = 5 * time.Minute
