// Package telemetry scrubs visitor supplied text before it reaches logs and
// trace attributes.
package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Mode selects how much visitor text survives redaction.
type Mode string

const (
	// ModeNone drops the text entirely.
	ModeNone Mode = "none"
	// ModeHashed keeps the text but replaces contact details with salted digests.
	ModeHashed Mode = "hashed"
	// ModeFull keeps the text verbatim. Local debugging only.
	ModeFull Mode = "full"
)

const redacted = "[REDACTED]"

type piiPattern struct {
	label string
	re    *regexp.Regexp
	// keepDigest replaces the match with a salted digest instead of a bare label.
	keepDigest bool
}

// Order matters: cards, passports and IPs are scrubbed before the looser phone
// pattern can claim them.
var piiPatterns = []piiPattern{
	{label: "EMAIL", re: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`), keepDigest: true},
	{label: "CARD", re: regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
	{label: "PASSPORT", re: regexp.MustCompile(`\b[A-Z]{1,2}\d{6,8}\b`)},
	{label: "IP", re: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`), keepDigest: true},
	{label: "PHONE", re: regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`), keepDigest: true},
}

// Redactor applies a Mode to free text and identifiers.
type Redactor struct {
	mode Mode
	salt string
}

// NewRedactor builds a redactor. salt is mixed into every digest.
func NewRedactor(mode Mode, salt string) *Redactor {
	return &Redactor{mode: ParseMode(string(mode)), salt: salt}
}

// ParseMode maps a config value to a Mode, defaulting to ModeHashed.
func ParseMode(raw string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeNone:
		return ModeNone
	case ModeFull:
		return ModeFull
	default:
		return ModeHashed
	}
}

// Text scrubs a chat utterance or other free text.
func (r *Redactor) Text(s string) string {
	if r == nil {
		return redacted
	}
	switch r.mode {
	case ModeFull:
		return s
	case ModeNone:
		return redacted
	}

	for _, p := range piiPatterns {
		s = p.re.ReplaceAllStringFunc(s, func(match string) string {
			if p.keepDigest {
				return "[" + p.label + ":" + r.digest(match) + "]"
			}
			return "[" + p.label + "]"
		})
	}
	return s
}

// Identifier scrubs a single value such as an email address.
func (r *Redactor) Identifier(s string) string {
	if s == "" {
		return ""
	}
	if r == nil {
		return redacted
	}
	switch r.mode {
	case ModeFull:
		return s
	case ModeNone:
		return redacted
	default:
		return r.digest(s)
	}
}

func (r *Redactor) digest(s string) string {
	sum := sha256.Sum256([]byte(r.salt + s))
	return hex.EncodeToString(sum[:4])
}
