package utilcss

import (
	"regexp"
	"strconv"
	"strings"
)

// SpacingScale maps spacing keys to lengths. Numeric keys outside the table fall
// back to key/4 rem.
var SpacingScale = map[string]string{
	"0":   "0rem",
	"px":  "1px",
	"0.5": "0.125rem",
	"1":   "0.25rem",
	"1.5": "0.375rem",
	"2":   "0.5rem",
	"2.5": "0.625rem",
	"3":   "0.75rem",
	"3.5": "0.875rem",
	"4":   "1rem",
	"5":   "1.25rem",
	"6":   "1.5rem",
	"8":   "2rem",
	"10":  "2.5rem",
	"11":  "2.75rem",
	"12":  "3rem",
	"16":  "4rem",
	"20":  "5rem",
	"24":  "6rem",
}

var numericKey = regexp.MustCompile(`^\d+$`)

// Spacing resolves a spacing key
func Spacing(key string) (string, bool) {
	if v, ok := SpacingScale[key]; ok {
		return v, true
	}
	if !numericKey.MatchString(key) {
		return "", false
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return "", false
	}
	return formatNumber(float64(n)/4) + "rem", true
}

// Fraction resolves "1/2" to "50%"
func Fraction(key string) (string, bool) {
	num, den, ok := strings.Cut(key, "/")
	if !ok || !numericKey.MatchString(num) || !numericKey.MatchString(den) {
		return "", false
	}
	n, _ := strconv.Atoi(num)
	d, _ := strconv.Atoi(den)
	if d == 0 {
		return "", false
	}
	pct := strconv.FormatFloat(float64(n)*100/float64(d), 'f', 6, 64)
	pct = strings.TrimRight(strings.TrimRight(pct, "0"), ".")
	return pct + "%", true
}

// FontSize pairs a font size with its line height
type FontSize struct {
	Size       string
	LineHeight string
}

// FontSizes is the text-<size> scale
var FontSizes = map[string]FontSize{
	"text-xs":   {Size: "0.75rem", LineHeight: "1rem"},
	"text-sm":   {Size: "0.875rem", LineHeight: "1.25rem"},
	"text-base": {Size: "1rem", LineHeight: "1.5rem"},
	"text-lg":   {Size: "1.125rem", LineHeight: "1.75rem"},
	"text-xl":   {Size: "1.25rem", LineHeight: "1.75rem"},
	"text-2xl":  {Size: "1.5rem", LineHeight: "2rem"},
	"text-3xl":  {Size: "1.875rem", LineHeight: "2.25rem"},
}
