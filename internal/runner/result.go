package runner

import "golang.org/x/text/encoding/unicode"

// Result holds what a finished command left behind.
type Result struct {
	RunID    string // unique identifier for this run
	ExitCode int    // interpreter exit code
	Stdout   []byte // captured stdout
	Stderr   []byte // captured stderr, not printed
}

// Output returns stdout as text, with invalid UTF-8 replaced.
func (r *Result) Output() string {
	return DecodeLossy(r.Stdout)
}

// DecodeLossy converts b to UTF-8 text. Each maximal invalid subsequence
// (a stray byte, or a truncated multi-byte sequence) becomes one U+FFFD.
func DecodeLossy(b []byte) string {
	// The UTF-8 decoder replaces invalid input instead of reporting it.
	out, _ := unicode.UTF8.NewDecoder().Bytes(b)
	return string(out)
}
