// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxResetFormSize bounds the counter reset form, which carries only
	// the confirmation token.
	MaxResetFormSize = 4 << 10 // 4 KB
)
