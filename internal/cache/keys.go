package cache

import "fmt"

// ChartKey addresses a memoized chart render by the hash of its ranked
// (label, confidence) pairs.
func ChartKey(hash string) string {
	return fmt.Sprintf("chart:render:%s", hash)
}

// RateLimitKey addresses the per-client request counter.
func RateLimitKey(client string) string {
	return fmt.Sprintf("ratelimit:%s", client)
}
