package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textra/pkg/lang"
)

func TestDetectEnglish(t *testing.T) {
	info, ok := lang.Detect("The quick brown fox jumps over the lazy dog and keeps on running through the field.", 0)
	require.True(t, ok)
	assert.Equal(t, "eng", info.Language)
	assert.Greater(t, info.Confidence, 0.0)
}

func TestDetectEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		_, ok := lang.Detect(text, 0)
		assert.False(t, ok, "%q", text)
	}
}

func TestDetectRespectsThreshold(t *testing.T) {
	// An impossible threshold makes any detection unreliable.
	info, ok := lang.Detect("The quick brown fox jumps over the lazy dog.", 1.1)
	if ok {
		assert.False(t, info.Reliable)
	}
}

func TestDetectCode(t *testing.T) {
	assert.Equal(t, "", lang.DetectCode(""))
}

func TestIsEnglish(t *testing.T) {
	assert.False(t, lang.IsEnglish(""))
	assert.False(t, lang.IsEnglish("Дом находится на берегу большой реки, вода в которой очень холодная."))
}

func TestSupported(t *testing.T) {
	codes := lang.Supported()
	assert.NotEmpty(t, codes)
	assert.Contains(t, codes, "eng")
	assert.IsNonDecreasing(t, codes)
}
