package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*[0-9.]+\s*\)$`)
	ansiPattern = regexp.MustCompile(`^color\((\d{1,3})\)$`)
)

// ParseColor normalises a CSS colour value. Hex and rgb() values are returned
// unchanged, rgba() drops its alpha and becomes #rrggbb, and anything else
// (named colours, malformed input) passes through untouched.
func ParseColor(value string) string {
	v := strings.TrimSpace(value)
	switch {
	case hexPattern.MatchString(v):
		return value
	case rgbPattern.MatchString(v):
		return value
	}
	if m := rgbaPattern.FindStringSubmatch(v); m != nil {
		return channelsToHex(m[1], m[2], m[3])
	}
	return value
}

func channelsToHex(r, g, b string) string {
	ch := func(s string) float64 {
		n, _ := strconv.Atoi(s)
		return float64(n) / 255.0
	}
	return colorful.Color{R: ch(r), G: ch(g), B: ch(b)}.Clamped().Hex()
}

// ToTerminal converts a colour token into a lipgloss colour. Unknown tokens
// map to lipgloss.NoColor so the renderer leaves the attribute unset.
func ToTerminal(token string) lipgloss.TerminalColor {
	t := strings.TrimSpace(token)
	if t == "" || strings.EqualFold(t, "default") {
		return lipgloss.NoColor{}
	}

	if strings.HasPrefix(t, "#") {
		c := chroma.ParseColour(t)
		if !c.IsSet() {
			return lipgloss.NoColor{}
		}
		return lipgloss.Color(c.String())
	}
	if m := rgbPattern.FindStringSubmatch(t); m != nil {
		return lipgloss.Color(channelsToHex(m[1], m[2], m[3]))
	}
	if m := rgbaPattern.FindStringSubmatch(t); m != nil {
		return lipgloss.Color(channelsToHex(m[1], m[2], m[3]))
	}
	if m := ansiPattern.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n < 256 {
			return lipgloss.ANSIColor(n)
		}
		return lipgloss.NoColor{}
	}
	if n, err := strconv.Atoi(t); err == nil {
		if n >= 0 && n < 256 {
			return lipgloss.ANSIColor(n)
		}
		return lipgloss.NoColor{}
	}

	name := normaliseName(t)
	if n, ok := ansiNames[name]; ok {
		return lipgloss.ANSIColor(n)
	}
	if hex, ok := cssNames[name]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.NoColor{}
}

// IsKnown reports whether ToTerminal can resolve the token.
func IsKnown(token string) bool {
	_, none := ToTerminal(token).(lipgloss.NoColor)
	return !none
}

// Luminance returns the WCAG relative luminance of a hex colour, or -1 if the
// value is not a hex colour.
func Luminance(hex string) float64 {
	parsed := chroma.ParseColour(strings.TrimSpace(hex))
	if !parsed.IsSet() {
		return -1
	}
	c, err := colorful.Hex(parsed.String())
	if err != nil {
		return -1
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Hex converts a sampled colour into #rrggbb.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

func normaliseName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "gray", "grey")
	return n
}

// ansiNames maps rich/xterm colour names to 256-colour palette indices.
var ansiNames = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3, "blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"bright_black": 8, "bright_red": 9, "bright_green": 10, "bright_yellow": 11,
	"bright_blue": 12, "bright_magenta": 13, "bright_cyan": 14, "bright_white": 15,
	"grey0": 16, "navy_blue": 17, "dark_blue": 18, "blue3": 20, "blue1": 21, "dark_green": 22,
	"deep_sky_blue4": 25, "dodger_blue2": 27, "dodger_blue1": 33, "green4": 28, "spring_green4": 29,
	"turquoise4": 30, "deep_sky_blue3": 32, "green3": 40, "spring_green3": 41, "dark_cyan": 36,
	"light_sea_green": 37, "deep_sky_blue1": 39, "cyan3": 43, "dark_turquoise": 44, "turquoise2": 45,
	"green1": 46, "spring_green2": 47, "spring_green1": 48, "medium_spring_green": 49, "cyan2": 50,
	"cyan1": 51, "dark_red": 52, "deep_pink4": 53, "purple4": 54, "purple3": 56, "blue_violet": 57,
	"orange4": 58, "grey37": 59, "medium_purple4": 60, "slate_blue3": 61, "royal_blue1": 63,
	"chartreuse4": 64, "dark_sea_green4": 65, "pale_turquoise4": 66, "steel_blue": 67,
	"steel_blue3": 68, "cornflower_blue": 69, "chartreuse3": 70, "cadet_blue": 72, "sky_blue3": 74,
	"steel_blue1": 75, "pale_green3": 77, "sea_green3": 78, "aquamarine3": 79, "medium_turquoise": 80,
	"chartreuse2": 82, "sea_green2": 83, "sea_green1": 84, "aquamarine1": 86, "dark_slate_grey2": 87,
	"dark_magenta": 90, "dark_violet": 92, "purple": 129, "light_pink4": 95, "plum4": 96,
	"medium_purple3": 97, "slate_blue1": 99, "yellow4": 100, "wheat4": 101, "grey53": 102,
	"light_slate_grey": 103, "medium_purple": 104, "light_slate_blue": 105, "dark_olive_green3": 107,
	"dark_sea_green": 108, "light_sky_blue3": 109, "sky_blue2": 111, "dark_sea_green3": 115,
	"dark_slate_grey3": 116, "sky_blue1": 117, "chartreuse1": 118, "light_green": 119,
	"pale_green1": 121, "dark_slate_grey1": 123, "red3": 124, "medium_violet_red": 126,
	"magenta3": 127, "dark_orange3": 130, "indian_red": 131, "hot_pink3": 132, "medium_orchid3": 133,
	"medium_orchid": 134, "medium_purple2": 135, "dark_goldenrod": 136, "light_salmon3": 137,
	"rosy_brown": 138, "grey63": 139, "medium_purple1": 141, "gold3": 142, "dark_khaki": 143,
	"navajo_white3": 144, "grey69": 145, "light_steel_blue3": 146, "light_steel_blue": 147,
	"yellow3": 148, "dark_sea_green2": 151, "light_cyan3": 152, "light_sky_blue1": 153,
	"green_yellow": 154, "dark_olive_green2": 155, "dark_sea_green1": 158, "pale_turquoise1": 159,
	"deep_pink3": 161, "magenta2": 165, "hot_pink2": 169, "orchid": 170, "medium_orchid1": 171,
	"orange3": 172, "light_pink3": 174, "pink3": 175, "plum3": 176, "violet": 177, "light_goldenrod3": 179,
	"tan": 180, "misty_rose3": 181, "thistle3": 182, "plum2": 183, "khaki3": 185,
	"light_goldenrod2": 186, "light_yellow3": 187, "grey84": 188, "light_steel_blue1": 189,
	"yellow2": 190, "dark_olive_green1": 191, "honeydew2": 194, "light_cyan1": 195, "red1": 196,
	"deep_pink2": 197, "deep_pink1": 198, "magenta1": 201, "orange_red1": 202, "indian_red1": 203,
	"hot_pink": 205, "dark_orange": 208, "salmon1": 209, "light_coral": 210, "pale_violet_red1": 211,
	"orchid2": 212, "orchid1": 213, "orange1": 214, "sandy_brown": 215, "light_salmon1": 216,
	"light_pink1": 217, "pink1": 218, "plum1": 219, "gold1": 220, "light_goldenrod1": 227,
	"navajo_white1": 223, "misty_rose1": 224, "thistle1": 225, "yellow1": 226, "khaki1": 228,
	"wheat1": 229, "cornsilk1": 230, "grey100": 231,
	"grey3": 232, "grey7": 233, "grey11": 234, "grey15": 235, "grey19": 236, "grey23": 237,
	"grey27": 238, "grey30": 239, "grey35": 240, "grey39": 241, "grey42": 242, "grey46": 243,
	"grey50": 244, "grey54": 245, "grey58": 246, "grey62": 247, "grey66": 248, "grey70": 249,
	"grey74": 250, "grey78": 251, "grey82": 252, "grey85": 253, "grey89": 254, "grey93": 255,
}

// cssNames covers CSS colour keywords that stylers commonly emit and that have
// no entry in the terminal palette above.
var cssNames = map[string]string{
	"orange":      "#ffa500",
	"pink":        "#ffc0cb",
	"gold":        "#ffd700",
	"lightgreen":  "#90ee90",
	"lightblue":   "#add8e6",
	"lightgrey":   "#d3d3d3",
	"darkgrey":    "#a9a9a9",
	"grey":        "#808080",
	"navy":        "#000080",
	"teal":        "#008080",
	"maroon":      "#800000",
	"olive":       "#808000",
	"lime":        "#00ff00",
	"silver":      "#c0c0c0",
	"salmon":      "#fa8072",
	"crimson":     "#dc143c",
	"coral":       "#ff7f50",
	"khaki":       "#f0e68c",
	"lavender":    "#e6e6fa",
	"beige":       "#f5f5dc",
	"tomato":      "#ff6347",
	"firebrick":   "#b22222",
	"forestgreen": "#228b22",
	"skyblue":     "#87ceeb",
	"steelblue":   "#4682b4",
	"whitesmoke":  "#f5f5f5",
}

// clamp01 keeps sample positions inside the colormap domain.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	return math.Max(0, math.Min(1, v))
}
