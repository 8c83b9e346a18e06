package styler

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Axis selects how values are grouped when a gradient or highlight is
// normalised.
type Axis int

const (
	// AxisIndex normalises each column on its own.
	AxisIndex Axis = iota
	// AxisColumns normalises each row on its own.
	AxisColumns
	// AxisTable normalises across every selected cell.
	AxisTable
)

func (a Axis) String() string {
	switch a {
	case AxisIndex:
		return "index"
	case AxisColumns:
		return "columns"
	case AxisTable:
		return "table"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts 0/1, "index"/"rows", "columns" and "table"/"none".
func ParseAxis(v any) (Axis, error) {
	switch x := v.(type) {
	case nil:
		return AxisTable, nil
	case Axis:
		return x, nil
	case int:
		switch x {
		case 0:
			return AxisIndex, nil
		case 1:
			return AxisColumns, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "0", "index", "rows":
			return AxisIndex, nil
		case "1", "columns":
			return AxisColumns, nil
		case "table", "none", "null":
			return AxisTable, nil
		}
	}
	return AxisIndex, fmt.Errorf("invalid axis %v", v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Axis) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseAxis(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Subset is a list of column names. In YAML it may be written as a single
// name or a sequence.
type Subset []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Subset) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = Subset{node.Value}
		return nil
	}
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	*s = names
	return nil
}

// DefaultTextColorThreshold is the luminance below which a gradient
// background gets light text.
const DefaultTextColorThreshold = 0.408

// GradientOptions tunes BackgroundGradient and TextGradient.
type GradientOptions struct {
	// Cmap optionally names the colormap; callers decide whether it
	// overrides the explicit argument.
	Cmap   string   `yaml:"cmap,omitempty"`
	Axis   Axis     `yaml:"axis,omitempty"`
	Subset Subset   `yaml:"subset,omitempty"`
	Low    float64  `yaml:"low,omitempty"`
	High   float64  `yaml:"high,omitempty"`
	Vmin   *float64 `yaml:"vmin,omitempty"`
	Vmax   *float64 `yaml:"vmax,omitempty"`
	// TextColorThreshold defaults to DefaultTextColorThreshold when zero.
	TextColorThreshold float64 `yaml:"text_color_threshold,omitempty"`
}

// GradientOptionsFromMap decodes a keyword table such as
// {"axis": 1, "subset": ["A"], "low": 0.2}. An explicit nil axis selects
// AxisTable. Unknown keys are rejected.
func GradientOptionsFromMap(m map[string]any) (GradientOptions, error) {
	var opts GradientOptions
	if len(m) == 0 {
		return opts, nil
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return opts, fmt.Errorf("encode gradient options: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return GradientOptions{}, fmt.Errorf("decode gradient options: %w", err)
	}

	if v, ok := m["axis"]; ok && v == nil {
		opts.Axis = AxisTable
	}
	return opts, nil
}

func (o GradientOptions) threshold() float64 {
	if o.TextColorThreshold <= 0 {
		return DefaultTextColorThreshold
	}
	return o.TextColorThreshold
}
