package render

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
)

// Theme supplies default style strings for the table chrome. Empty fields
// leave the corresponding option alone.
type Theme struct {
	Name              string `yaml:"name"`
	ColumnHeaderStyle string `yaml:"column_header_style,omitempty"`
	IndexHeaderStyle  string `yaml:"index_header_style,omitempty"`
	IndexStyle        string `yaml:"index_style,omitempty"`
	BorderStyle       string `yaml:"border_style,omitempty"`
	TitleStyle        string `yaml:"title_style,omitempty"`
	TableStyle        string `yaml:"table_style,omitempty"`
}

// ThemeFromChroma derives a theme from a chroma syntax style: keywords
// colour the column headers, names colour the index, comments colour the
// border and generic headings colour the title. The boolean is false when
// no chroma style has that name.
func ThemeFromChroma(name string) (Theme, bool) {
	cs, ok := styles.Registry[name]
	if !ok {
		return Theme{Name: name}, false
	}

	fg := func(tt chroma.TokenType) string {
		if e := cs.Get(tt); e.Colour.IsSet() {
			return e.Colour.String()
		}
		return ""
	}
	bold := func(colour string) string {
		if colour == "" {
			return "bold"
		}
		return "bold " + colour
	}

	t := Theme{
		Name:              name,
		ColumnHeaderStyle: bold(fg(chroma.Keyword)),
		IndexHeaderStyle:  bold(fg(chroma.NameClass)),
		IndexStyle:        fg(chroma.NameFunction),
		BorderStyle:       fg(chroma.Comment),
		TitleStyle:        bold(fg(chroma.GenericHeading)),
	}
	if bg := cs.Get(chroma.Background); bg.Colour.IsSet() && bg.Background.IsSet() {
		t.TableStyle = bg.Colour.String() + " on " + bg.Background.String()
	}
	return t, true
}

// ChromaThemes lists the chroma style names usable as themes.
func ChromaThemes() []string { return styles.Names() }

// apply fills options the caller left empty from the theme.
func (t Theme) apply(o Options) (Options, string) {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&o.ColumnHeaderStyle, t.ColumnHeaderStyle)
	fill(&o.IndexHeaderStyle, t.IndexHeaderStyle)
	fill(&o.IndexStyle, t.IndexStyle)
	fill(&o.BorderStyle, t.BorderStyle)
	fill(&o.TableStyle, t.TableStyle)
	return o, t.TitleStyle
}
