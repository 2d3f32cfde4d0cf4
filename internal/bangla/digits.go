package bangla

import (
	"fmt"
	"strconv"
	"strings"
)

const bengaliZero = '০'

// Digits formats n with Bengali numerals.
func Digits(n int) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return bengaliZero + (r - '0')
		}
		return r
	}, strconv.Itoa(n))
}

// ParseDigits parses an integer written with ASCII or Bengali numerals.
func ParseDigits(s string) (int, error) {
	ascii := strings.Map(func(r rune) rune {
		if r >= bengaliZero && r <= bengaliZero+9 {
			return '0' + (r - bengaliZero)
		}
		return r
	}, strings.TrimSpace(s))

	n, err := strconv.Atoi(ascii)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", s, err)
	}
	return n, nil
}
