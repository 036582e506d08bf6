// Package lang detects the language of extracted text.
package lang

import (
	"sort"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// DefaultMinConfidence is the threshold below which a detection is reported
// but flagged unreliable.
const DefaultMinConfidence = 0.8

// Info describes a detected language. Language is an ISO 639-3 code.
type Info struct {
	Language   string
	Confidence float64
	Reliable   bool
}

// Detect guesses the language of text. The second return is false when the
// text is empty or nothing could be detected. minConfidence <= 0 uses
// DefaultMinConfidence.
func Detect(text string, minConfidence float64) (Info, bool) {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	if strings.TrimSpace(text) == "" {
		return Info{}, false
	}

	res := whatlanggo.Detect(text)
	code := whatlanggo.LangToString(res.Lang)
	if code == "" {
		return Info{}, false
	}
	return Info{
		Language:   code,
		Confidence: res.Confidence,
		Reliable:   res.Confidence >= minConfidence,
	}, true
}

// DetectCode returns just the language code, or "" when detection fails.
func DetectCode(text string) string {
	info, ok := Detect(text, 0)
	if !ok {
		return ""
	}
	return info.Language
}

// IsEnglish reports whether text is reliably detected as English.
func IsEnglish(text string) bool {
	info, ok := Detect(text, 0)
	return ok && info.Language == "eng" && info.Reliable
}

// Supported returns the sorted ISO 639-3 codes the detector knows.
func Supported() []string {
	codes := make([]string, 0, len(whatlanggo.Langs))
	for lang := range whatlanggo.Langs {
		codes = append(codes, whatlanggo.LangToString(lang))
	}
	sort.Strings(codes)
	return codes
}
