package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImageRef_Passthrough(t *testing.T) {
	assert.Equal(t, "https://x/y.png", NormalizeImageRef("https://x/y.png"))
	assert.Equal(t, "http://x/y.jpg", NormalizeImageRef("http://x/y.jpg"))
	assert.Equal(t, "data:image/jpeg;base64,abc", NormalizeImageRef("data:image/jpeg;base64,abc"))
}

func TestNormalizeImageRef_CompletesMimePrefix(t *testing.T) {
	got := NormalizeImageRef("image/webp;base64,UklGRg==")
	assert.Equal(t, "data:image/webp;base64,UklGRg==", got)
}

func TestNormalizeImageRef_WrapsLongBareBase64(t *testing.T) {
	// Repeated until the blob crosses the length threshold.
	blob := strings.Repeat("aGVsbG8td29ybGQ=", 7)
	assert.GreaterOrEqual(t, len(blob), 100)

	got := NormalizeImageRef(blob)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"), "got %q", got)
	assert.Equal(t, "data:image/png;base64,"+blob, got)
}

func TestNormalizeImageRef_ShortBase64NotWrapped(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", NormalizeImageRef("aGVsbG8="))
}

func TestNormalizeImageRef_UnknownValuePassesThrough(t *testing.T) {
	assert.Equal(t, "not an image!", NormalizeImageRef("not an image!"))
	assert.Equal(t, "", NormalizeImageRef("  "))
}
