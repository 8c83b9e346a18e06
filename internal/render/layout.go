package render

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Box style names understood by the terminal renderer.
const (
	BoxRounded  = "rounded"
	BoxSquare   = "square"
	BoxMinimal  = "minimal"
	BoxSimple   = "simple"
	BoxHeavy    = "heavy"
	BoxDouble   = "double"
	BoxASCII    = "ascii"
	BoxMarkdown = "markdown"
	BoxHidden   = "hidden"
)

var boxNames = map[string]bool{
	BoxRounded: true, BoxSquare: true, BoxMinimal: true, BoxSimple: true, BoxHeavy: true,
	BoxDouble: true, BoxASCII: true, BoxMarkdown: true, BoxHidden: true,
}

// IsKnownBox reports whether name is a supported box style.
func IsKnownBox(name string) bool { return boxNames[name] }

// BoxNames returns the supported box style names, sorted.
func BoxNames() []string {
	out := make([]string, 0, len(boxNames))
	for n := range boxNames {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Padding is cell padding in terminal cells.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// NewPadding builds padding from one value (all sides), two values
// (vertical, horizontal) or four values (top, right, bottom, left).
func NewPadding(values ...int) (Padding, error) {
	for _, v := range values {
		if v < 0 {
			return Padding{}, fmt.Errorf("padding %v: negative value", values)
		}
	}
	switch len(values) {
	case 1:
		v := values[0]
		return Padding{v, v, v, v}, nil
	case 2:
		return Padding{values[0], values[1], values[0], values[1]}, nil
	case 4:
		return Padding{values[0], values[1], values[2], values[3]}, nil
	}
	return Padding{}, fmt.Errorf("padding needs 1, 2 or 4 values, got %d", len(values))
}

// UnmarshalYAML accepts a single integer or a sequence of 1, 2 or 4.
func (p *Padding) UnmarshalYAML(node *yaml.Node) error {
	var values []int
	if node.Kind == yaml.ScalarNode {
		var v int
		if err := node.Decode(&v); err != nil {
			return err
		}
		values = []int{v}
	} else if err := node.Decode(&values); err != nil {
		return err
	}
	parsed, err := NewPadding(values...)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML writes the padding in its shortest form.
func (p Padding) MarshalYAML() (interface{}, error) {
	if p.Top == p.Bottom && p.Left == p.Right {
		if p.Top == p.Left {
			return p.Top, nil
		}
		return []int{p.Top, p.Right}, nil
	}
	return []int{p.Top, p.Right, p.Bottom, p.Left}, nil
}

// Layout is the table-level visual configuration.
type Layout struct {
	Box             string
	Padding         Padding
	CollapsePadding bool
	ShowEdge        bool
	PadEdge         bool
	Expand          bool
	ShowHeader      bool
	Width           int
	Style           string
	Title           string
	TitleStyle      string
	Caption         string
	CaptionStyle    string
	BorderStyle     string
	// Compact records which preset the layout started from.
	Compact bool
}

// CompactLayout is the preset used when cells carry backgrounds.
func CompactLayout() Layout {
	return Layout{
		Box:             BoxMinimal,
		Padding:         Padding{},
		CollapsePadding: true,
		ShowEdge:        true,
		PadEdge:         false,
		Expand:          false,
		ShowHeader:      true,
		Compact:         true,
	}
}

// SpaciousLayout is the default preset.
func SpaciousLayout() Layout {
	return Layout{
		Box:             BoxRounded,
		Padding:         Padding{Top: 0, Right: 1, Bottom: 0, Left: 1},
		CollapsePadding: false,
		ShowEdge:        true,
		PadEdge:         true,
		Expand:          false,
		ShowHeader:      true,
	}
}

// ManualOverrides are individually settable layout fields. Nil fields keep
// the preset value.
type ManualOverrides struct {
	Box             *string  `yaml:"box,omitempty"`
	Padding         *Padding `yaml:"padding,omitempty"`
	CollapsePadding *bool    `yaml:"collapse_padding,omitempty"`
	ShowEdge        *bool    `yaml:"show_edge,omitempty"`
	PadEdge         *bool    `yaml:"pad_edge,omitempty"`
	Expand          *bool    `yaml:"expand,omitempty"`
}

// PlanLayout picks the compact preset when hasBackground or forceCompact is
// set and the spacious preset otherwise, then applies manual overrides and
// finally the caller's keyword table, field by field. Keyword entries that
// are unknown or of the wrong type are skipped and reported.
func PlanLayout(hasBackground, forceCompact bool, manual ManualOverrides, caller map[string]any) (Layout, []error) {
	layout := SpaciousLayout()
	if hasBackground || forceCompact {
		layout = CompactLayout()
	}

	var errs []error
	if manual.Box != nil {
		if IsKnownBox(*manual.Box) {
			layout.Box = *manual.Box
		} else {
			errs = append(errs, fmt.Errorf("box: unknown box style %q", *manual.Box))
		}
	}
	if manual.Padding != nil {
		layout.Padding = *manual.Padding
	}
	if manual.CollapsePadding != nil {
		layout.CollapsePadding = *manual.CollapsePadding
	}
	if manual.ShowEdge != nil {
		layout.ShowEdge = *manual.ShowEdge
	}
	if manual.PadEdge != nil {
		layout.PadEdge = *manual.PadEdge
	}
	if manual.Expand != nil {
		layout.Expand = *manual.Expand
	}

	keys := make([]string, 0, len(caller))
	for k := range caller {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := applyKeyword(&layout, k, caller[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return layout, errs
}

func applyKeyword(l *Layout, key string, value any) error {
	var err error
	switch key {
	case "box":
		var s string
		if s, err = asString(value); err == nil {
			if !IsKnownBox(s) {
				return fmt.Errorf("box: unknown box style %q", s)
			}
			l.Box = s
		}
	case "padding":
		var p Padding
		if p, err = asPadding(value); err == nil {
			l.Padding = p
		}
	case "collapse_padding":
		err = setBool(&l.CollapsePadding, value)
	case "show_edge":
		err = setBool(&l.ShowEdge, value)
	case "pad_edge":
		err = setBool(&l.PadEdge, value)
	case "expand":
		err = setBool(&l.Expand, value)
	case "show_header":
		err = setBool(&l.ShowHeader, value)
	case "width":
		var n int
		if n, err = asInt(value); err == nil {
			if n < 0 {
				return fmt.Errorf("width: must not be negative")
			}
			l.Width = n
		}
	case "style":
		err = setString(&l.Style, value)
	case "title":
		err = setString(&l.Title, value)
	case "title_style":
		err = setString(&l.TitleStyle, value)
	case "caption":
		err = setString(&l.Caption, value)
	case "caption_style":
		err = setString(&l.CaptionStyle, value)
	case "border_style":
		err = setString(&l.BorderStyle, value)
	default:
		return fmt.Errorf("unknown table option %q", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return s, nil
}

func setString(dst *string, v any) error {
	s, err := asString(v)
	if err == nil {
		*dst = s
	}
	return err
}

func setBool(dst *bool, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", v)
	}
	*dst = b
	return nil
}

func asInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x == float64(int(x)) {
			return int(x), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %v (%T)", v, v)
}

func asPadding(v any) (Padding, error) {
	switch x := v.(type) {
	case Padding:
		return x, nil
	case []int:
		return NewPadding(x...)
	case []any:
		values := make([]int, len(x))
		for i, e := range x {
			n, err := asInt(e)
			if err != nil {
				return Padding{}, err
			}
			values[i] = n
		}
		return NewPadding(values...)
	}
	n, err := asInt(v)
	if err != nil {
		return Padding{}, err
	}
	return NewPadding(n)
}
