// Package canon converts heterogeneous raw review payloads into canonical records
// Pipeline per field
// 1 alias the producer key to its canonical name
// 2 soft-coerce the value, failures fall back to the field default
// 3 sanitize text fields and derive the text length once
package canon

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Raw is one incoming review payload with producer-specific keys
type Raw = map[string]any

// Review is the canonical record every downstream stage consumes
// the field set and JSON shape are stable regardless of input fields
type Review struct {
	Key         string         `json:"review_key,omitempty"`
	Title       string         `json:"review_title"`
	Body        string         `json:"review_body"`
	TextLen     int            `json:"review_length"`
	Rating      float64        `json:"rating"`
	Verified    bool           `json:"verified_purchase"`
	ImageCount  int            `json:"image_count"`
	AuthorName  string         `json:"author_name"`
	ProductASIN string         `json:"product_asin,omitempty"`
	PageURL     string         `json:"page_url,omitempty"`
	ScrapeTS    string         `json:"scrape_ts,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// fieldAlias maps producer keys to canonical names
// unmapped keys pass through into Extra rather than being dropped
var fieldAlias = map[string]string{
	"review":        "review_body",
	"review_text":   "review_body",
	"body":          "review_body",
	"title":         "review_title",
	"stars":         "rating",
	"verified":      "verified_purchase",
	"images_count":  "image_count",
	"author":        "author_name",
	"reviewer_name": "author_name",
	"id":            "review_key",
	"review_id":     "review_key",
	"asin":          "product_asin",
	"url":           "page_url",
	"ts":            "scrape_ts",
	"captured_at":   "scrape_ts",
}

// canonical field names consumed directly by the struct
var knownFields = map[string]struct{}{
	"review_key":        {},
	"review_title":      {},
	"review_body":       {},
	"review_length":     {}, // always recomputed, producer values are discarded
	"rating":            {},
	"verified_purchase": {},
	"image_count":       {},
	"author_name":       {},
	"product_asin":      {},
	"page_url":          {},
	"scrape_ts":         {},
}

// Normalizer converts Raw payloads to canonical Reviews
// the zero value is not usable, construct with New
type Normalizer struct{}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize converts one raw payload into a canonical Review
// it never fails: coercion errors fall back to field defaults
func (n *Normalizer) Normalize(raw Raw) Review {
	m := make(map[string]any, len(raw))
	for k, v := range raw {
		canonKey := k
		if a, ok := fieldAlias[k]; ok {
			canonKey = a
		}
		m[canonKey] = v
	}

	rv := Review{
		Key:         asString(m["review_key"]),
		Title:       Sanitize(asString(m["review_title"])),
		Body:        Sanitize(asString(m["review_body"])),
		Rating:      asFloat(m["rating"]),
		Verified:    asBool(m["verified_purchase"]),
		ImageCount:  asInt(m["image_count"]),
		AuthorName:  asString(m["author_name"]),
		ProductASIN: asString(m["product_asin"]),
		PageURL:     asString(m["page_url"]),
		ScrapeTS:    asString(m["scrape_ts"]),
	}

	if rv.ImageCount < 0 {
		rv.ImageCount = 0
	}
	if strings.TrimSpace(rv.AuthorName) == "" {
		rv.AuthorName = "Unknown"
	}

	// length derives from the sanitized text, exactly once
	rv.TextLen = TextLen(rv.Title, rv.Body)

	for k, v := range m {
		if _, known := knownFields[k]; known {
			continue
		}
		if rv.Extra == nil {
			rv.Extra = make(map[string]any)
		}
		rv.Extra[k] = v
	}

	return rv
}

// NormalizeBatch converts a batch preserving input order
func (n *Normalizer) NormalizeBatch(raws []Raw) []Review {
	out := make([]Review, len(raws))
	for i, r := range raws {
		out[i] = n.Normalize(r)
	}
	return out
}

// TextLen is the single review-length policy: rune count of title + " " + body,
// or body alone when the title is empty
func TextLen(title, body string) int {
	if title == "" {
		return utf8.RuneCountInString(body)
	}
	return utf8.RuneCountInString(title) + 1 + utf8.RuneCountInString(body)
}

// Text returns the scoring text for a canonical review under the same policy
func Text(r Review) string {
	if r.Title == "" {
		return r.Body
	}
	return r.Title + " " + r.Body
}

// pool of fresh transformer chains, order matters
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Sanitize normalizes a text field: UTF-8 repair, NFKC, zero-width strip,
// width fold, whitespace collapse, trim. Case is preserved
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// collapseSpaces converts whitespace runs to a single ASCII space and trims
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
