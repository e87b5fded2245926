package helpers

import (
	"strconv"
	"strings"
)

var persianToLatin = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

const persianDigits = "۰۱۲۳۴۵۶۷۸۹"

// NormalizePersianNumbers converts Persian/Arabic numerals to Latin
func NormalizePersianNumbers(input string) string {
	var result strings.Builder
	for _, char := range input {
		if latinDigit, found := persianToLatin[char]; found {
			result.WriteRune(latinDigit)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// ToPersianDigits converts Latin digits to Persian ones, leaving everything else untouched.
// Example: "1403/01/01" -> "۱۴۰۳/۰۱/۰۱"
func ToPersianDigits(input string) string {
	digits := []rune(persianDigits)

	var result strings.Builder
	for _, char := range input {
		if char >= '0' && char <= '9' {
			result.WriteRune(digits[char-'0'])
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// ParseInt parses a string to int64 after normalizing Persian numbers
func ParseInt(s string) (int64, error) {
	normalized := NormalizePersianNumbers(strings.TrimSpace(s))
	return strconv.ParseInt(normalized, 10, 64)
}
