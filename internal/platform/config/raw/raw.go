// Package raw is the bootstrap-time env reader.
// It must stay free of the logger package so logging can configure itself from it
package raw

import (
	"os"
	"strings"
)

// Conf is a prefixed view over environment variables (e.g. "ARC_", "LOG_")
type Conf struct{ prefix string }

// New returns a root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an extra prefix appended (e.g. "MODEL_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key builds the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// Get returns the trimmed env value or def when unset/empty
func (c Conf) Get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	if v == "" {
		return def
	}
	return v
}

// GetBool parses "1|true|yes" as true, anything else as false, def when empty
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(c.key(key))))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt parses a non-negative integer; non-numeric or empty -> def
func (c Conf) GetInt(key string, def int) int {
	s := strings.TrimSpace(os.Getenv(c.key(key)))
	if s == "" {
		return def
	}
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return def
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
