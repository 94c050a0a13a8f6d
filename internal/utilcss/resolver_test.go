package utilcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		base string
		kind Kind
		want string
	}{
		// Static table
		{"block", KindStatic, "display: block;"},
		{"hidden", KindStatic, "display: none;"},
		{"truncate", KindStatic, "overflow: hidden; text-overflow: ellipsis; white-space: nowrap;"},
		{"border", KindStatic, "border-width: 1px; border-style: solid;"},
		{"-translate-x-full", KindStatic, "transform: translateX(-100%);"},
		{"outline-none", KindStatic, "outline: 2px solid transparent; outline-offset: 2px;"},

		// Font sizes carry a line height
		{"text-sm", KindFontSize, "font-size: 0.875rem; line-height: 1.25rem;"},
		{"text-3xl", KindFontSize, "font-size: 1.875rem; line-height: 2.25rem;"},

		// Palette colors
		{"bg-blue-500", KindColor, "background-color: #3b82f6;"},
		{"text-gray-700", KindColor, "color: #374151;"},
		{"border-red-200", KindColor, "border-color: #fecaca;"},
		{"bg-blue-500/50", KindColor, "background-color: rgba(59, 130, 246, 0.5);"},
		{"text-white/75", KindColor, "color: rgba(255, 255, 255, 0.75);"},

		// Arbitrary values
		{"grid-cols-[2fr,1fr]", KindArbitrary, "grid-template-columns: 2fr 1fr;"},
		{"grid-cols-[200px_minmax(0,1fr)]", KindArbitrary, "grid-template-columns: 200px minmax(0,1fr);"},
		{"min-h-[70vh]", KindArbitrary, "min-height: 70vh;"},
		{"w-[calc(100%_-_2rem)]", KindArbitrary, "width: calc(100% - 2rem);"},
		{"bg-[#0f172a]", KindArbitrary, "background-color: #0f172a;"},

		// Spacing scale, table and numeric fallback
		{"p-5", KindSpacing, "padding: 1.25rem;"},
		{"px-0.5", KindSpacing, "padding-left: 0.125rem; padding-right: 0.125rem;"},
		{"mt-7", KindSpacing, "margin-top: 1.75rem;"},
		{"gap-x-3", KindSpacing, "column-gap: 0.75rem;"},
		{"-mt-2", KindSpacing, "margin-top: -0.5rem;"},
		{"-mx-px", KindSpacing, "margin-left: -1px; margin-right: -1px;"},
		{"my-auto", KindSpacing, "margin-top: auto; margin-bottom: auto;"},
		{"w-1/2", KindSpacing, "width: 50%;"},
		{"w-1/3", KindSpacing, "width: 33.333333%;"},
		{"w-72", KindSpacing, "width: 18rem;"},
		{"h-screen", KindStatic, "height: 100vh;"},
		{"w-screen", KindSpacing, "width: 100vw;"},
		{"size-8", KindSpacing, "width: 2rem; height: 2rem;"},
		{"top-1/2", KindSpacing, "top: 50%;"},
		{"-left-4", KindSpacing, "left: -1rem;"},
		{"inset-y-0", KindSpacing, "top: 0rem; bottom: 0rem;"},
		{"grid-cols-3", KindSpacing, "grid-template-columns: repeat(3, minmax(0, 1fr));"},

		// Space between
		{"space-y-4", KindSpace, "margin-top: 1rem;"},
		{"space-x-2", KindSpace, "margin-left: 0.5rem;"},

		// Ring family
		{"ring-1", KindRing, "box-shadow: 0 0 0 1px rgba(148, 163, 184, 0.4);"},
		{"ring-2", KindRing, "box-shadow: 0 0 0 2px rgba(148, 163, 184, 0.4);"},
		{"ring-offset-2", KindRing, "--fb-focus-ring-offset: 2px;"},
		{"ring-blue-500", KindRing, "box-shadow: 0 0 0 1px #3b82f6; --fb-focus-ring-color: rgba(59, 130, 246, 0.45);"},
		{"ring-offset-gray-900", KindRing, "--fb-focus-ring-offset-color: #111827;"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			decl := Resolve(tt.base)
			require.NotNil(t, decl)
			assert.Equal(t, tt.kind, decl.Kind)
			assert.Equal(t, tt.want, decl.String())
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	tests := []string{
		"",
		"btn",
		"bg-brand-500",
		"text-blue-500/150",
		"text-blue-500/abc",
		"p-x",
		"-p-4",
		"px-1/2",
		"grid-cols-0",
		"grid-cols-[]",
		"space-y-foo",
		"ring-purple-500",
		"ring-offset-teal-100",
		"w-1/0",
		"group-hover",
	}

	for _, base := range tests {
		t.Run(base, func(t *testing.T) {
			assert.Nil(t, Resolve(base))
		})
	}
}

func TestResolve_FocusBehavior(t *testing.T) {
	tests := []struct {
		base  string
		mode  FocusMode
		focus string
	}{
		{"ring-2", FocusCompose, "--fb-focus-ring-width: 2px;"},
		{"ring-offset-2", FocusCompose, "--fb-focus-ring-offset: 2px;"},
		{"ring-blue-500", FocusCompose, "--fb-focus-ring-color: rgba(59, 130, 246, 0.45);"},
		{"ring-red-500", FocusCompose, "--fb-focus-ring-color: rgba(239, 68, 68, 0.45);"},
		{"ring-blue-500/20", FocusCompose, "--fb-focus-ring-color: rgba(59, 130, 246, 0.2);"},
		{"ring-offset-gray-900", FocusCompose, "--fb-focus-ring-offset-color: rgba(17, 24, 39, 1);"},
		{"ring-offset-red-900", FocusCompose, "--fb-focus-ring-offset-color: rgba(127, 29, 29, 1);"},
		{"outline-none", FocusOverride, "outline: none;"},
		{"bg-blue-500", FocusPseudo, ""},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			decl := Resolve(tt.base)
			require.NotNil(t, decl)
			assert.Equal(t, tt.mode, decl.FocusMode)
			assert.Equal(t, tt.focus, Block(decl.Focus))
		})
	}
}

func TestResolve_SpaceAxis(t *testing.T) {
	assert.Equal(t, "y", Resolve("space-y-6").Axis)
	assert.Equal(t, "x", Resolve("space-x-6").Axis)
}

func TestColorValue(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"blue-500", "#3b82f6", true},
		{"blue-500/0", "rgba(59, 130, 246, 0)", true},
		{"blue-500/100", "rgba(59, 130, 246, 1)", true},
		{"black/5", "rgba(0, 0, 0, 0.05)", true},
		{"blue-500/101", "", false},
		{"blue-500/-1", "", false},
		{"indigo-500", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ColorValue(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 59, G: 130, B: 246}, c)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, c)

	_, err = ParseHex("#12345")
	require.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	require.Error(t, err)
}

func TestSpacing(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"0", "0rem", true},
		{"px", "1px", true},
		{"2.5", "0.625rem", true},
		{"11", "2.75rem", true},
		{"7", "1.75rem", true},
		{"64", "16rem", true},
		{"9.5", "", false},
		{"auto", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Spacing(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFraction(t *testing.T) {
	got, ok := Fraction("2/3")
	require.True(t, ok)
	assert.Equal(t, "66.666667%", got)

	got, ok = Fraction("4/4")
	require.True(t, ok)
	assert.Equal(t, "100%", got)

	_, ok = Fraction("1/0")
	assert.False(t, ok)
	_, ok = Fraction("half")
	assert.False(t, ok)
}
