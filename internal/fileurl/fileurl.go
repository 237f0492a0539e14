package fileurl

// Package fileurl rewrites stored storage-relative attachment paths
// into externally resolvable URLs at read time. The stored value is
// always the relative path; the absolute form exists only in responses.

import "strings"

// Formatter qualifies relative storage paths with a configured base URL.
// The zero value formats nothing; construct with New.
type Formatter struct {
	base string
}

// New creates a Formatter for the given base URL (e.g. "https://api.example.com").
func New(baseURL string) *Formatter {
	return &Formatter{base: strings.TrimRight(baseURL, "/")}
}

// Format converts a storage-relative path into an absolute URL.
// Backslash separators are normalized to forward slashes. Empty input
// stays empty, and a value that is already an absolute URL is returned
// unchanged so repeated formatting never double-prefixes.
func (f *Formatter) Format(rel string) string {
	if rel == "" {
		return ""
	}
	p := strings.ReplaceAll(rel, `\`, "/")
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return f.base + "/" + strings.TrimLeft(p, "/")
}

// FormatAll formats every entry of a list, preserving order.
func (f *Formatter) FormatAll(rels []string) []string {
	if rels == nil {
		return nil
	}
	out := make([]string, len(rels))
	for i, r := range rels {
		out[i] = f.Format(r)
	}
	return out
}

// Strip reverses Format: given an absolute URL produced with the same
// base it returns the storage-relative path. Values that do not carry
// the base are returned normalized but otherwise untouched.
func (f *Formatter) Strip(abs string) string {
	p := strings.ReplaceAll(abs, `\`, "/")
	if rest, ok := strings.CutPrefix(p, f.base+"/"); ok {
		return rest
	}
	return p
}
