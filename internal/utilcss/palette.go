package utilcss

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette maps semantic color keys to hex values
var Palette = map[string]string{
	"white": "#ffffff",
	"black": "#000000",

	"blue-50":  "#eff6ff",
	"blue-100": "#dbeafe",
	"blue-200": "#bfdbfe",
	"blue-300": "#93c5fd",
	"blue-400": "#60a5fa",
	"blue-500": "#3b82f6",
	"blue-600": "#2563eb",
	"blue-700": "#1d4ed8",
	"blue-800": "#1e40af",
	"blue-900": "#1e3a8a",

	"gray-50":  "#f9fafb",
	"gray-100": "#f1f5f9",
	"gray-200": "#e5e7eb",
	"gray-300": "#d1d5db",
	"gray-400": "#9ca3af",
	"gray-500": "#6b7280",
	"gray-600": "#4b5563",
	"gray-700": "#374151",
	"gray-800": "#1f2937",
	"gray-900": "#111827",

	"green-50":  "#ecfdf5",
	"green-200": "#bbf7d0",
	"green-800": "#065f46",
	"green-900": "#064e3b",

	"red-50":  "#fef2f2",
	"red-200": "#fecaca",
	"red-500": "#ef4444",
	"red-600": "#dc2626",
	"red-700": "#b91c1c",
	"red-800": "#991b1b",
	"red-900": "#7f1d1d",

	"yellow-50":  "#fffbeb",
	"yellow-200": "#fde68a",
	"yellow-300": "#fcd34d",
	"yellow-400": "#fbbf24",
	"yellow-800": "#92400e",
	"yellow-900": "#78350f",
}

// RGB is a decoded palette color
type RGB struct {
	R, G, B uint8
}

// ParseHex decodes "#rrggbb" or "#rgb"
func ParseHex(hex string) (RGB, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// RGBA renders the color at the given alpha: "rgba(59, 130, 246, 0.5)"
func (c RGB) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatNumber(alpha))
}

// ColorValue resolves a palette key, optionally with an "/<alpha>" percentage suffix.
// "blue-500" -> "#3b82f6", "blue-500/50" -> "rgba(59, 130, 246, 0.5)"
func ColorValue(key string) (string, bool) {
	name, alphaPart, hasAlpha := strings.Cut(key, "/")
	hex, ok := Palette[name]
	if !ok {
		return "", false
	}
	if !hasAlpha {
		return hex, true
	}
	alpha, err := strconv.Atoi(alphaPart)
	if err != nil || alpha < 0 || alpha > 100 {
		return "", false
	}
	return paletteRGBA(name, float64(alpha)/100)
}

// paletteRGBA renders palette color name at alpha
func paletteRGBA(name string, alpha float64) (string, bool) {
	hex, ok := Palette[name]
	if !ok {
		return "", false
	}
	c, err := ParseHex(hex)
	if err != nil {
		return "", false
	}
	return c.RGBA(alpha), true
}

// formatNumber prints the shortest decimal form: 0.5, 0.45, 1, 2.75
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
