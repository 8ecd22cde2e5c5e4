package normalize

import (
	"regexp"
	"strings"
)

// minBareBase64Len is the minimum length at which a bare base64-looking
// blob is assumed to be image bytes rather than an id or short token.
const minBareBase64Len = 100

var (
	// mime/subtype;base64, prefix missing only the data: scheme.
	reMimeBase64 = regexp.MustCompile(`^[a-zA-Z0-9.+-]+/[a-zA-Z0-9.+-]+;base64,`)

	// Contiguous standard-alphabet base64 (padding allowed anywhere, the
	// sheet concatenates chunks).
	reBareBase64 = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
)

// NormalizeImageRef turns a raw image cell value into something the page
// can put in an <img src>. In order:
//   - data URIs and absolute http(s) URLs pass through unchanged;
//   - a "mime/subtype;base64," value is completed into a data URI;
//   - a long bare base64 blob is wrapped as a PNG data URI;
//   - anything else passes through as-is and may fail to render.
func NormalizeImageRef(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return s
	case strings.HasPrefix(s, "data:"):
		return s
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		return s
	case reMimeBase64.MatchString(s):
		return "data:" + s
	case len(s) >= minBareBase64Len && reBareBase64.MatchString(s):
		return "data:image/png;base64," + s
	default:
		return s
	}
}
