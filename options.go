package richframe

import (
	"github.com/pirrtools/richframe/internal/config"
	rferrors "github.com/pirrtools/richframe/internal/errors"
	"github.com/pirrtools/richframe/internal/render"
)

type configProfile = config.Profile

// Option adjusts one render call.
type Option func(*settings)

type settings struct {
	profile    string
	configPath string
	base       *Options
	mods       []func(*Options)
	source     StyleSource
	width      int
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *settings) manager() (*config.Manager, error) {
	if s.configPath != "" {
		return config.NewManagerWithPath(s.configPath), nil
	}
	return config.NewManager()
}

// resolve builds the options: defaults or the named profile, then every
// field option in the order given. Profile and theme lookup failures are
// returned as warnings.
func (s *settings) resolve() (Options, []Warning) {
	var warnings []Warning
	warn := func(operation string, err error) {
		w := rferrors.NewConfigurationError("richframe").
			WithOperation(operation).
			WithMessage("option ignored").
			WithCause(err).
			Build().
			AsWarning()
		warnings = append(warnings, *w)
	}

	opts := render.DefaultOptions()
	if s.base != nil {
		opts = *s.base
	}

	var mgr *config.Manager
	if s.profile != "" {
		m, err := s.manager()
		if err == nil {
			mgr = m
			var p *config.Profile
			if p, err = m.LoadProfile(s.profile); err == nil {
				opts = p.Options
			}
		}
		if err != nil {
			warn("load profile", err)
		}
	}

	for _, mod := range s.mods {
		mod(&opts)
	}

	if opts.Theme != "" && opts.ResolvedTheme == nil {
		if mgr == nil {
			mgr, _ = s.manager()
		}
		if mgr != nil {
			if theme, err := mgr.LoadTheme(opts.Theme); err == nil {
				opts.ResolvedTheme = theme
			}
		}
	}
	return opts, warnings
}

func (s *settings) set(fn func(*Options)) {
	s.mods = append(s.mods, fn)
}

func (s *settings) keyword(key string, value any) {
	s.set(func(o *Options) {
		kw := make(map[string]any, len(o.Kwargs)+1)
		for k, v := range o.Kwargs {
			kw[k] = v
		}
		kw[key] = value
		o.Kwargs = kw
	})
}

// WithOptions replaces the starting options. A profile still wins over it.
func WithOptions(o Options) Option {
	return func(s *settings) { s.base = &o }
}

// WithProfile starts from a saved profile instead of the defaults.
func WithProfile(name string) Option {
	return func(s *settings) { s.profile = name }
}

// WithConfigPath reads profiles and themes from path instead of the
// per-user file.
func WithConfigPath(path string) Option {
	return func(s *settings) { s.configPath = path }
}

// WithStyler supplies the cell styles and formats. A nil styler is ignored.
func WithStyler(st *Styler) Option {
	return func(s *settings) {
		if st != nil {
			s.source = st
		}
	}
}

// WithStyleSource supplies cell styles from any StyleSource.
func WithStyleSource(src StyleSource) Option {
	return func(s *settings) { s.source = src }
}

// WithBackgroundGradient colours cell backgrounds by value. kwargs takes
// the gradient keywords (cmap, axis, subset, low, high, vmin, vmax,
// text_color_threshold).
func WithBackgroundGradient(cmap string, kwargs map[string]any) Option {
	return func(s *settings) {
		s.set(func(o *Options) {
			o.Bg = orGradient(cmap)
			o.BgKwargs = kwargs
		})
	}
}

// WithTextGradient colours cell text by value.
func WithTextGradient(cmap string, kwargs map[string]any) Option {
	return func(s *settings) {
		s.set(func(o *Options) {
			o.Tg = orGradient(cmap)
			o.TgKwargs = kwargs
		})
	}
}

// WithIndexGradient spreads a colormap over the index rows.
func WithIndexGradient(cmap string, kwargs map[string]any) Option {
	return func(s *settings) {
		s.set(func(o *Options) {
			o.IndexBg = orGradient(cmap)
			o.IndexBgKwargs = kwargs
		})
	}
}

func orGradient(cmap string) string {
	if cmap == "" {
		return "gradient"
	}
	return cmap
}

// WithAlternatingRows stripes data rows. Up to two overlay styles may be
// given for even and odd rows.
func WithAlternatingRows(styles ...string) Option {
	return func(s *settings) {
		s.set(func(o *Options) {
			o.AlternatingRows = true
			for i := 0; i < len(styles) && i < 2; i++ {
				o.AlternatingRowColors[i] = styles[i]
			}
		})
	}
}

// WithTitle sets the table title.
func WithTitle(title string) Option {
	return func(s *settings) { s.set(func(o *Options) { o.Title = title }) }
}

// WithCaption sets the line drawn under the table.
func WithCaption(caption string) Option {
	return func(s *settings) { s.keyword("caption", caption) }
}

// WithFormat sets display formatters: a format string, a function or a
// mapping from column name to either. Missing values render as naRep.
func WithFormat(spec any, naRep string) Option {
	return func(s *settings) {
		s.set(func(o *Options) {
			o.Format = spec
			o.NaRep = naRep
		})
	}
}

// WithIndex shows or hides the index column.
func WithIndex(show bool) Option {
	return func(s *settings) { s.set(func(o *Options) { o.ShowIndex = show }) }
}

// WithIndexStyle styles the index column and its header.
func WithIndexStyle(cellStyle, headerStyle, justify string) Option {
	return func(s *settings) {
		s.set(func(o *Options) {
			o.IndexStyle = cellStyle
			o.IndexHeaderStyle = headerStyle
			if justify != "" {
				o.IndexJustify = justify
			}
		})
	}
}

// WithHeaderStyle styles the column headers.
func WithHeaderStyle(style string) Option {
	return func(s *settings) { s.set(func(o *Options) { o.ColumnHeaderStyle = style }) }
}

// WithBorderStyle styles the table border.
func WithBorderStyle(style string) Option {
	return func(s *settings) { s.set(func(o *Options) { o.BorderStyle = style }) }
}

// WithTheme selects a configured theme or a chroma style by name.
func WithTheme(name string) Option {
	return func(s *settings) { s.set(func(o *Options) { o.Theme = name }) }
}

// WithBox overrides the box style.
func WithBox(name string) Option {
	return func(s *settings) { s.set(func(o *Options) { o.Box = &name }) }
}

// WithPadding overrides cell padding with 1, 2 or 4 values.
func WithPadding(values ...int) Option {
	return func(s *settings) { s.keyword("padding", values) }
}

// WithMinimizeGaps forces the compact layout.
func WithMinimizeGaps() Option {
	return func(s *settings) { s.set(func(o *Options) { o.MinimizeGaps = true }) }
}

// WithAutoOptimize turns the switch to the compact layout for coloured
// tables on or off.
func WithAutoOptimize(on bool) Option {
	return func(s *settings) { s.set(func(o *Options) { o.AutoOptimize = on }) }
}

// WithKeyword sets a raw table keyword such as "expand" or "show_header".
// Keywords win over every other layout setting.
func WithKeyword(key string, value any) Option {
	return func(s *settings) { s.keyword(key, value) }
}

// WithWidth sets the width expanded tables fill. Zero detects the terminal.
func WithWidth(width int) Option {
	return func(s *settings) { s.width = width }
}
