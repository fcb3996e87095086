package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"

	// maxRequestIDLen bounds a client supplied request id.
	maxRequestIDLen = 128

	limiterCacheSize = 1000
	limiterTTL       = 5 * time.Minute
)
