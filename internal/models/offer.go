package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Offer is a time-limited promotional deal on a course or product.
type Offer struct {
	ID              string    `json:"id"`
	Provider        string    `json:"provider"`
	Logo            string    `json:"logo,omitempty"`
	Course          string    `json:"course"`
	OriginalPrice   string    `json:"original_price,omitempty"`
	DiscountedPrice string    `json:"discounted_price,omitempty"`
	IsFree          bool      `json:"is_free,omitempty"`
	ExpiresAt       time.Time `json:"expires_at"`
	URL             string    `json:"url"`
	Featured        bool      `json:"featured,omitempty"`
}

// DiscountPercent derives the percentage saved from the original and
// discounted price strings. It reports ok=false when the offer is free,
// either price is absent or unparseable, or the original price parses
// to zero; callers skip the discount badge in that case.
func (o Offer) DiscountPercent() (int, bool) {
	if o.IsFree || o.OriginalPrice == "" || o.DiscountedPrice == "" {
		return 0, false
	}
	original, ok := parsePrice(o.OriginalPrice)
	if !ok || original == 0 {
		return 0, false
	}
	discounted, ok := parsePrice(o.DiscountedPrice)
	if !ok {
		return 0, false
	}
	return int(math.Round((original - discounted) / original * 100)), true
}

// parsePrice extracts the numeric portion of a price string, discarding
// currency symbols, separators and unit suffixes ("₹3,999/month" -> 3999).
func parsePrice(value string) (float64, bool) {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
