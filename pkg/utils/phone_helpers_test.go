package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThaiPhoneNumber(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"0":              "0",
		"081":            "081",
		"0812":           "081-2",
		"081234":         "081-234",
		"0812345":        "081-234-5",
		"0812345678":     "081-234-5678",
		"081-234-5678":   "081-234-5678",
		"(081) 234 5678": "081-234-5678",
		"08123456789999": "081-234-5678",
		"abc":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatThaiPhoneNumber(in), "input %q", in)
	}
}

func TestFormatThaiIDCard(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"1":                  "1",
		"12":                 "1 2",
		"12345":              "1 2345",
		"123456":             "1 2345 6",
		"1234567890":         "1 2345 67890",
		"12345678901":        "1 2345 67890 1",
		"123456789012":       "1 2345 67890 12",
		"1234567890123":      "1 2345 67890 12 3",
		"1-2345-67890-12-3":  "1 2345 67890 12 3",
		"123456789012345678": "1 2345 67890 12 3",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatThaiIDCard(in), "input %q", in)
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "0812345678", DigitsOnly("081-234-5678"))
	assert.Equal(t, "", DigitsOnly("สวัสดี"))
}
