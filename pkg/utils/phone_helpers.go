package utils

import (
	"regexp"
	"strings"
)

var nonDigitRegexp = regexp.MustCompile(`\D`)

const (
	phoneDigits  = 10
	idCardDigits = 13
)

// DigitsOnly выкидывает из строки всё, кроме цифр.
func DigitsOnly(s string) string {
	return nonDigitRegexp.ReplaceAllString(s, "")
}

// FormatThaiPhoneNumber приводит ввод к виду 081-234-5678.
// Неполный ввод форматируется по мере набора: "081", "081-23", "081-234-5".
func FormatThaiPhoneNumber(raw string) string {
	input := truncate(DigitsOnly(raw), phoneDigits)

	switch {
	case len(input) > 6:
		return input[:3] + "-" + input[3:6] + "-" + input[6:]
	case len(input) > 3:
		return input[:3] + "-" + input[3:]
	default:
		return input
	}
}

// FormatThaiIDCard приводит номер удостоверения к виду 1 2345 67890 12 3.
func FormatThaiIDCard(raw string) string {
	input := truncate(DigitsOnly(raw), idCardDigits)

	// группы 1-4-5-2-1
	bounds := []int{1, 5, 10, 12, 13}
	parts := make([]string, 0, len(bounds))
	start := 0
	for _, end := range bounds {
		if start >= len(input) {
			break
		}
		if end > len(input) {
			end = len(input)
		}
		parts = append(parts, input[start:end])
		start = end
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
