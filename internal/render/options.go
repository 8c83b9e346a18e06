package render

// Options configures Assemble. The zero value is not the default; start
// from DefaultOptions.
type Options struct {
	ShowIndex        bool   `yaml:"show_index"`
	IndexStyle       string `yaml:"index_style,omitempty"`
	IndexHeaderStyle string `yaml:"index_header_style,omitempty"`
	IndexJustify     string `yaml:"index_justify,omitempty"`
	IndexWidth       int    `yaml:"index_width,omitempty"`

	// Bg names a colormap for a background gradient; "gradient" selects
	// the default map.
	Bg       string         `yaml:"bg,omitempty"`
	BgKwargs map[string]any `yaml:"bg_kwargs,omitempty"`
	// Tg names a colormap for a text colour gradient.
	Tg       string         `yaml:"tg,omitempty"`
	TgKwargs map[string]any `yaml:"tg_kwargs,omitempty"`
	// IndexBg names a colormap spread over the index rows.
	IndexBg       string         `yaml:"index_bg,omitempty"`
	IndexBgKwargs map[string]any `yaml:"index_bg_kwargs,omitempty"`

	ColumnHeaderStyle string `yaml:"column_header_style,omitempty"`

	AlternatingRows      bool      `yaml:"alternating_rows,omitempty"`
	AlternatingRowColors [2]string `yaml:"alternating_row_colors,flow"`

	TableStyle  string `yaml:"table_style,omitempty"`
	Title       string `yaml:"title,omitempty"`
	BorderStyle string `yaml:"border_style,omitempty"`

	AutoOptimize    bool `yaml:"auto_optimize"`
	ManualOverrides `yaml:",inline"`

	// Format is a format string, a function, or a mapping from column
	// name to either.
	Format any    `yaml:"format,omitempty"`
	NaRep  string `yaml:"na_rep,omitempty"`

	MinimizeGaps bool `yaml:"minimize_gaps,omitempty"`

	// Theme names a configured theme or a chroma style.
	Theme string `yaml:"theme,omitempty"`
	// ResolvedTheme, when set, is used instead of looking Theme up.
	ResolvedTheme *Theme `yaml:"-"`

	// Kwargs is the free-form table keyword table; it wins over every
	// other layout setting.
	Kwargs map[string]any `yaml:"kwargs,omitempty"`
}

// DefaultAlternatingRowColors are the even and odd row overlays.
var DefaultAlternatingRowColors = [2]string{"", "on grey11"}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ShowIndex:            true,
		IndexJustify:         JustifyLeft,
		AlternatingRowColors: DefaultAlternatingRowColors,
		AutoOptimize:         true,
	}
}

// tableKeywords merges the option-level table settings under the caller's
// keyword table.
func (o Options) tableKeywords() map[string]any {
	out := make(map[string]any, len(o.Kwargs)+3)
	if o.TableStyle != "" {
		out["style"] = o.TableStyle
	}
	if o.Title != "" {
		out["title"] = o.Title
	}
	if o.BorderStyle != "" {
		out["border_style"] = o.BorderStyle
	}
	for k, v := range o.Kwargs {
		out[k] = v
	}
	return out
}
