package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dmitrymomot/portfolio/pkg/clientip"
)

// maxKeyLength keeps storage keys short in backends like Redis.
const maxKeyLength = 64

// KeyFunc identifies the client of a request. An empty key skips limiting.
type KeyFunc func(*http.Request) string

// ByClientIP keys on the address stored by clientip.Middleware, resolving
// it from the request when the middleware did not run.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// Prefixed namespaces the keys of fn, e.g. to give login its own budget.
func Prefixed(prefix string, fn KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		key := fn(r)
		if key == "" {
			return ""
		}
		return prefix + ":" + key
	}
}

// Composite joins the non-empty keys of several functions. Joined keys
// longer than maxKeyLength are replaced by a 128-bit SHA-256 prefix.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			sum := sha256.Sum256([]byte(combined))
			return hex.EncodeToString(sum[:16])
		}
		return combined
	}
}
