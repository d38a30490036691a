// Package pricing turns catalog price text into whole Rupiah amounts and
// derives the checkout price breakdown.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPricePerPax is used whenever a legacy price string cannot be read.
	DefaultPricePerPax int64 = 1_500_000

	// ServiceFee and Discount are fixed amounts shown on the review step.
	ServiceFee int64 = 50_000
	Discount   int64 = 100_000
)

// ParsePrice reads "IDR 1.2M", "IDR 850K" or "IDR 2,500,000" into Rupiah.
// It never fails: unreadable or zero prices fall back to DefaultPricePerPax.
func ParsePrice(text string) int64 {
	num, ok := leadingNumber(stripPrice(text))
	if !ok || num <= 0 || math.IsInf(num, 0) {
		return DefaultPricePerPax
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "m"):
		num *= 1_000_000
	case strings.Contains(lower, "k"):
		num *= 1_000
	}
	if num > math.MaxInt64/2 {
		return DefaultPricePerPax
	}
	// float artifacts only, e.g. 1.2*1e6
	return int64(math.Round(num))
}

// TotalPrice is pricePerPax times participants, no rounding.
func TotalPrice(pricePerPax int64, participantCount int) int64 {
	return pricePerPax * int64(participantCount)
}

// Breakdown is the review-step recap.
type Breakdown struct {
	Subtotal   int64 `json:"subtotal"`
	ServiceFee int64 `json:"serviceFee"`
	Discount   int64 `json:"discount"`
	Total      int64 `json:"total"`
}

// NewBreakdown applies the service fee and discount. The discount never
// exceeds subtotal plus fee, so Total is never negative.
func NewBreakdown(pricePerPax int64, participantCount int) Breakdown {
	subtotal := TotalPrice(pricePerPax, participantCount)
	discount := min(Discount, max(subtotal+ServiceFee, 0))
	return Breakdown{
		Subtotal:   subtotal,
		ServiceFee: ServiceFee,
		Discount:   discount,
		Total:      subtotal + ServiceFee - discount,
	}
}

func stripPrice(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// leadingNumber parses the longest digits[.digits] prefix, so "1.500.000" reads as 1.5.
func leadingNumber(s string) (float64, bool) {
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if seenDot {
				break
			}
			seenDot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	prefix := strings.TrimSuffix(s[:end], ".")
	if prefix == "" || prefix == "." {
		return 0, false
	}
	n, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
