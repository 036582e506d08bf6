// Package textenc reads text files whose encoding is not self-describing.
//
// Decoding is attempted at most twice: once strictly as UTF-8, then once with
// the charset sniffed from the raw bytes. Sniffing is heuristic; the second
// attempt may still pick a wrong-but-decodable charset, and that is accepted.
package textenc

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the first-attempt encoding for all text-bearing formats.
const DefaultEncoding = "UTF-8"

// DefaultSampleSize bounds how many bytes the sniffer inspects.
const DefaultSampleSize = 64 * 1024

// ErrDetectorUnavailable is returned when a file is not valid UTF-8 and no
// charset sniffer is configured. This is a configuration problem, not a data
// problem.
var ErrDetectorUnavailable = errors.New("text is not valid UTF-8 and no charset detector is available")

// DecodeError reports that decoding failed even after charset sniffing.
type DecodeError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s with encoding %q: %v", e.Path, e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Sniffer guesses the charset of a byte sample.
type Sniffer interface {
	Sniff(sample []byte) (string, error)
}

// chardetSniffer backs Sniff with the chardet universal detector.
type chardetSniffer struct{}

func (chardetSniffer) Sniff(sample []byte) (string, error) {
	res, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		return "", err
	}
	return res.Charset, nil
}

// Reader decodes text files with the two-tier fallback. A nil Sniffer means
// charset detection is unavailable and non-UTF-8 input fails with
// ErrDetectorUnavailable.
type Reader struct {
	Sniffer    Sniffer
	SampleSize int
}

// Default returns a Reader backed by the chardet sniffer.
func Default() *Reader {
	return &Reader{Sniffer: chardetSniffer{}, SampleSize: DefaultSampleSize}
}

// ReadFile is the package-level convenience using the default Reader.
func ReadFile(path string) (string, error) {
	return Default().ReadFile(path)
}

// ReadFile reads path and decodes it to a string. Valid UTF-8 is returned
// as-is without consulting the sniffer.
func (r *Reader) ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	if r.Sniffer == nil {
		return "", ErrDetectorUnavailable
	}

	charset, err := r.Sniffer.Sniff(r.sample(raw))
	if err != nil {
		return "", &DecodeError{Path: path, Encoding: "", Err: err}
	}
	return r.decode(path, raw, charset)
}

// DetectEncoding reads up to sampleSize bytes of path and returns the best
// charset guess. The default stands when the sniffer is unavailable or
// inconclusive. sampleSize <= 0 uses DefaultSampleSize.
func (r *Reader) DetectEncoding(path string, sampleSize int) (string, error) {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, sampleSize)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return DefaultEncoding, nil
	}

	if r.Sniffer == nil {
		return DefaultEncoding, nil
	}
	charset, err := r.Sniffer.Sniff(buf[:n])
	if err != nil || charset == "" {
		return DefaultEncoding, nil
	}
	return charset, nil
}

func (r *Reader) sample(raw []byte) []byte {
	size := r.SampleSize
	if size <= 0 {
		size = DefaultSampleSize
	}
	if len(raw) > size {
		return raw[:size]
	}
	return raw
}

func (r *Reader) decode(path string, raw []byte, charset string) (string, error) {
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return "", &DecodeError{Path: path, Encoding: charset, Err: err}
	}
	if enc == nil {
		return "", &DecodeError{Path: path, Encoding: charset, Err: errors.New("charset has no registered decoder")}
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &DecodeError{Path: path, Encoding: charset, Err: err}
	}
	return string(out), nil
}
