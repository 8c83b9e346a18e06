// Package color resolves CSS-like colour expressions into tokens the
// terminal renderer understands and samples named colormaps into palettes.
package color

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColormap is returned when a colormap name is not registered.
var ErrUnknownColormap = errors.New("unknown colormap")

// DefaultColormap is used for data gradients requested as "gradient".
const DefaultColormap = "PuBu"

// DefaultIndexColormap is used for index gradients requested as "gradient".
const DefaultIndexColormap = "viridis"

// Colormap is a continuous mapping from [0,1] to a colour, defined by evenly
// spaced control points and interpolated linearly in RGB.
type Colormap struct {
	Name  string
	stops []colorful.Color
}

// At samples the colormap at t. Values outside [0,1] are clamped.
func (c Colormap) At(t float64) colorful.Color {
	if t <= 0 || len(c.stops) == 1 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}
	pos := t * float64(len(c.stops)-1)
	i := int(pos)
	return c.stops[i].BlendRgb(c.stops[i+1], pos-float64(i)).Clamped()
}

// Reversed returns the colormap traversed from 1 to 0.
func (c Colormap) Reversed() Colormap {
	stops := make([]colorful.Color, len(c.stops))
	for i, s := range c.stops {
		stops[len(stops)-1-i] = s
	}
	return Colormap{Name: c.Name + "_r", stops: stops}
}

var registry = map[string]Colormap{}

func register(name string, hexes ...string) {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("colormap %s: %v", name, err))
		}
		stops[i] = c
	}
	registry[name] = Colormap{Name: name, stops: stops}
}

func init() {
	register("viridis", "#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c", "#28ae80", "#5ec962", "#addc30", "#fde725")
	register("plasma", "#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778", "#e56b5d", "#f89540", "#fdc328", "#f0f921")
	register("inferno", "#000004", "#1f0c48", "#550f6d", "#88226a", "#ba3655", "#e35933", "#f98e09", "#f9cb35", "#fcffa4")
	register("magma", "#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55964", "#fb8761", "#fec287", "#fcfdbf")
	register("cividis", "#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8678", "#a59c74", "#c3b369", "#fee838")
	register("coolwarm", "#3b4cc0", "#5977e3", "#7b9ff9", "#9ebeff", "#c0d4f5", "#dddcdc", "#f2cbb7", "#f7ac8e", "#ee8468", "#d65244", "#b40426")
	register("RdYlBu", "#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf", "#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695")
	register("RdYlGn", "#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837")
	register("Spectral", "#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2")
	register("PuBu", "#fff7fb", "#ece7f2", "#d0d1e6", "#a6bddb", "#74a9cf", "#3690c0", "#0570b0", "#045a8d", "#023858")
	register("Blues", "#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b")
	register("Greens", "#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b")
	register("Reds", "#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d")
	register("Greys", "#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696", "#737373", "#525252", "#252525", "#000000")
	register("YlOrRd", "#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a", "#e31a1c", "#bd0026", "#800026")
	register("BuGn", "#f7fcfd", "#e5f5f9", "#ccece6", "#99d8c9", "#66c2a4", "#41ae76", "#238b45", "#006d2c", "#00441b")
}

// Lookup returns the named colormap. A "_r" suffix selects the reversed map.
// Names are case-sensitive.
func Lookup(name string) (Colormap, error) {
	if cm, ok := registry[name]; ok {
		return cm, nil
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		if cm, ok := registry[base]; ok {
			return cm.Reversed(), nil
		}
	}
	return Colormap{}, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// Names returns the registered colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps the "gradient" alias to fallback and returns other names unchanged.
func Resolve(name, fallback string) string {
	if name == "" || name == "gradient" {
		return fallback
	}
	return name
}
