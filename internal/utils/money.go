package utils

import (
	"strconv"
)

// FormatRupiah renders whole Rupiah the way the checkout shows prices:
// "IDR 2.350.000", "-IDR 100.000".
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-IDR " + groupThousands(strconv.FormatInt(-amount, 10))
	}
	return "IDR " + groupThousands(strconv.FormatInt(amount, 10))
}

// groupThousands inserts '.' every three digits from the right.
func groupThousands(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	out := []byte(digits[:head])
	for i := head; i < len(digits); i += 3 {
		out = append(out, '.')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
