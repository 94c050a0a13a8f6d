package utilcss

// props builds a property list from name/value pairs
func props(pairs ...string) []Property {
	out := make([]Property, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Property{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

const easing = "cubic-bezier(0.4, 0, 0.2, 1)"

// staticUtilities are exact-match utilities with a fixed declaration block
var staticUtilities = map[string][]Property{
	// Display
	"block":        props("display", "block"),
	"inline":       props("display", "inline"),
	"inline-block": props("display", "inline-block"),
	"inline-flex":  props("display", "inline-flex"),
	"flex":         props("display", "flex"),
	"grid":         props("display", "grid"),
	"hidden":       props("display", "none"),

	// Flexbox
	"flex-row":        props("flex-direction", "row"),
	"flex-col":        props("flex-direction", "column"),
	"flex-wrap":       props("flex-wrap", "wrap"),
	"flex-1":          props("flex", "1 1 0%"),
	"flex-none":       props("flex", "none"),
	"shrink-0":        props("flex-shrink", "0"),
	"grow":            props("flex-grow", "1"),
	"items-start":     props("align-items", "flex-start"),
	"items-center":    props("align-items", "center"),
	"items-end":       props("align-items", "flex-end"),
	"justify-start":   props("justify-content", "flex-start"),
	"justify-between": props("justify-content", "space-between"),
	"justify-center":  props("justify-content", "center"),
	"justify-end":     props("justify-content", "flex-end"),

	// Position
	"static":    props("position", "static"),
	"relative":  props("position", "relative"),
	"absolute":  props("position", "absolute"),
	"fixed":     props("position", "fixed"),
	"sticky":    props("position", "sticky"),
	"top-0":     props("top", "0"),
	"left-0":    props("left", "0"),
	"right-0":   props("right", "0"),
	"bottom-0":  props("bottom", "0"),
	"inset-x-0": props("left", "0", "right", "0"),

	// Fixed spacing presets
	"gap-1":   props("gap", "0.25rem"),
	"gap-2":   props("gap", "0.5rem"),
	"gap-3":   props("gap", "0.75rem"),
	"gap-4":   props("gap", "1rem"),
	"gap-6":   props("gap", "1.5rem"),
	"gap-8":   props("gap", "2rem"),
	"p-1":     props("padding", "0.25rem"),
	"p-2":     props("padding", "0.5rem"),
	"p-3":     props("padding", "0.75rem"),
	"p-4":     props("padding", "1rem"),
	"p-6":     props("padding", "1.5rem"),
	"p-8":     props("padding", "2rem"),
	"px-2":    props("padding-left", "0.5rem", "padding-right", "0.5rem"),
	"px-3":    props("padding-left", "0.75rem", "padding-right", "0.75rem"),
	"px-4":    props("padding-left", "1rem", "padding-right", "1rem"),
	"px-6":    props("padding-left", "1.5rem", "padding-right", "1.5rem"),
	"py-0.5":  props("padding-top", "0.125rem", "padding-bottom", "0.125rem"),
	"py-1":    props("padding-top", "0.25rem", "padding-bottom", "0.25rem"),
	"py-2":    props("padding-top", "0.5rem", "padding-bottom", "0.5rem"),
	"py-3":    props("padding-top", "0.75rem", "padding-bottom", "0.75rem"),
	"py-4":    props("padding-top", "1rem", "padding-bottom", "1rem"),
	"pb-6":    props("padding-bottom", "1.5rem"),
	"pl-2":    props("padding-left", "0.5rem"),
	"pl-3":    props("padding-left", "0.75rem"),
	"pl-6":    props("padding-left", "1.5rem"),
	"pl-11":   props("padding-left", "2.75rem"),
	"pt-20":   props("padding-top", "5rem"),
	"mx-auto": props("margin-left", "auto", "margin-right", "auto"),
	"mx-4":    props("margin-left", "1rem", "margin-right", "1rem"),
	"mt-1":    props("margin-top", "0.25rem"),
	"mt-2":    props("margin-top", "0.5rem"),
	"mt-3":    props("margin-top", "0.75rem"),
	"mt-4":    props("margin-top", "1rem"),
	"mt-6":    props("margin-top", "1.5rem"),
	"mt-20":   props("margin-top", "5rem"),
	"mt-24":   props("margin-top", "6rem"),
	"mb-4":    props("margin-bottom", "1rem"),
	"mb-6":    props("margin-bottom", "1.5rem"),
	"ml-3":    props("margin-left", "0.75rem"),
	"ml-auto": props("margin-left", "auto"),

	// Sizing
	"w-full":     props("width", "100%"),
	"w-auto":     props("width", "auto"),
	"w-64":       props("width", "16rem"),
	"w-10":       props("width", "2.5rem"),
	"w-6":        props("width", "1.5rem"),
	"w-5":        props("width", "1.25rem"),
	"w-4":        props("width", "1rem"),
	"h-10":       props("height", "2.5rem"),
	"h-8":        props("height", "2rem"),
	"h-6":        props("height", "1.5rem"),
	"h-5":        props("height", "1.25rem"),
	"h-4":        props("height", "1rem"),
	"h-full":     props("height", "100%"),
	"h-screen":   props("height", "100vh"),
	"max-w-full": props("max-width", "100%"),
	"max-w-md":   props("max-width", "28rem"),
	"max-w-lg":   props("max-width", "32rem"),

	// Overflow
	"overflow-hidden": props("overflow", "hidden"),
	"overflow-y-auto": props("overflow-y", "auto"),
	"overflow-x-auto": props("overflow-x", "auto"),
	"truncate":        props("overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"),

	// Borders
	"rounded":       props("border-radius", "0.25rem"),
	"rounded-md":    props("border-radius", "0.375rem"),
	"rounded-lg":    props("border-radius", "0.5rem"),
	"rounded-xl":    props("border-radius", "0.75rem"),
	"rounded-2xl":   props("border-radius", "1rem"),
	"rounded-full":  props("border-radius", "9999px"),
	"border":        props("border-width", "1px", "border-style", "solid"),
	"border-0":      props("border-width", "0"),
	"border-2":      props("border-width", "2px", "border-style", "solid"),
	"border-b":      props("border-bottom-width", "1px", "border-style", "solid"),
	"border-t":      props("border-top-width", "1px", "border-style", "solid"),
	"border-r":      props("border-right-width", "1px", "border-style", "solid"),
	"border-l":      props("border-left-width", "1px", "border-style", "solid"),
	"border-dashed": props("border-style", "dashed"),

	// Transforms and transitions
	"-translate-x-full":    props("transform", "translateX(-100%)"),
	"translate-x-0":        props("transform", "translateX(0)"),
	"transition":           props("transition", "all 0.2s "+easing),
	"transition-colors":    props("transition-property", "color, background-color, border-color", "transition-duration", "0.2s", "transition-timing-function", easing),
	"transition-transform": props("transition-property", "transform", "transition-duration", "0.2s", "transition-timing-function", easing),
	"duration-200":         props("transition-duration", "0.2s"),
	"duration-300":         props("transition-duration", "0.3s"),
	"ease-in-out":          props("transition-timing-function", easing),

	// Effects
	"shadow-sm":     props("box-shadow", "0 1px 2px rgba(15, 23, 42, 0.05)"),
	"shadow":        props("box-shadow", "0 1px 3px rgba(15, 23, 42, 0.1), 0 1px 2px rgba(15, 23, 42, 0.06)"),
	"shadow-md":     props("box-shadow", "0 4px 6px -1px rgba(15, 23, 42, 0.1), 0 2px 4px -1px rgba(15, 23, 42, 0.06)"),
	"shadow-xl":     props("box-shadow", "0 20px 25px -5px rgba(15, 23, 42, 0.1), 0 10px 10px -5px rgba(15, 23, 42, 0.04)"),
	"backdrop-blur": props("backdrop-filter", "blur(8px)"),
	"opacity-50":    props("opacity", "0.5"),

	// Typography
	"font-normal":     props("font-weight", "400"),
	"font-medium":     props("font-weight", "500"),
	"font-semibold":   props("font-weight", "600"),
	"font-bold":       props("font-weight", "700"),
	"uppercase":       props("text-transform", "uppercase"),
	"capitalize":      props("text-transform", "capitalize"),
	"tracking-wide":   props("letter-spacing", "0.05em"),
	"tracking-widest": props("letter-spacing", "0.1em"),
	"text-left":       props("text-align", "left"),
	"text-center":     props("text-align", "center"),
	"text-right":      props("text-align", "right"),
	"underline":       props("text-decoration-line", "underline"),
	"cursor-pointer":  props("cursor", "pointer"),

	// Stacking
	"z-10": props("z-index", "10"),
	"z-20": props("z-index", "20"),
	"z-30": props("z-index", "30"),
	"z-40": props("z-index", "40"),
	"z-50": props("z-index", "50"),

	// Lists
	"list-disc": props("list-style-type", "disc"),
	"list-none": props("list-style", "none"),

	// Project components referenced by server-rendered templates
	"object-tools":              props("display", "flex", "gap", "0.5rem", "list-style", "none", "margin", "0", "padding", "0"),
	"changelist-form-container": props("overflow-x", "auto"),
	"cancel-link":               props("display", "inline-block", "margin-left", "1rem", "color", "#4b5563"),

	"outline-none": props("outline", "2px solid transparent", "outline-offset", "2px"),
}

// focusOverrides replace a static declaration when the utility carries focus:
var focusOverrides = map[string][]Property{
	"outline-none": props("outline", "none"),
}
