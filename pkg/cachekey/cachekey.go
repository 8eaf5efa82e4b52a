// ABOUTME: Deterministic cache key fingerprinting for logical requests
// ABOUTME: Two logically identical requests always resolve to the same key

// Package cachekey derives content-addressed cache keys from a source tag
// and a query or identifier.
package cachekey

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the cache key for a logical request against a source.
// The key is the md5 hex digest of the lower-cased, whitespace-collapsed
// "source:query" pair, so repeated runs within the TTL window reuse prior
// work regardless of case or spacing differences.
func Fingerprint(source, query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(source+":"+query)), " ")
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
