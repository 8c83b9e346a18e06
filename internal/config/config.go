// Package config loads and stores named render profiles and themes in a
// YAML file. A profile is a saved set of render options; a theme supplies
// default chrome styles and is referenced from profiles by name.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pirrtools/richframe/internal/logging"
	"github.com/pirrtools/richframe/internal/render"
	"github.com/pirrtools/richframe/internal/style"
	"github.com/pirrtools/richframe/internal/styler"
)

// DefaultProfile is the profile that always exists and cannot be deleted.
const DefaultProfile = "default"

// Config is the on-disk file layout.
type Config struct {
	Profiles map[string]Profile      `yaml:"profiles"`
	Themes   map[string]render.Theme `yaml:"themes"`
}

// Profile is a named set of render options. Fields missing from the file
// keep their render.DefaultOptions value.
type Profile struct {
	Name           string `yaml:"name,omitempty"`
	render.Options `yaml:",inline"`
}

// UnmarshalYAML decodes a profile on top of the default options.
func (p *Profile) UnmarshalYAML(node *yaml.Node) error {
	type plain Profile
	v := plain{Options: render.DefaultOptions()}
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Profile(v)
	return nil
}

// Manager reads and writes one configuration file. It caches the parsed
// file and is not safe for concurrent use.
type Manager struct {
	configPath   string
	cachedConfig *Config
	logger       *logging.Logger
}

// NewManager returns a manager for the per-user configuration file.
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine configuration path: %w", err)
	}
	return NewManagerWithPath(configPath), nil
}

// NewManagerWithPath returns a manager for an explicit file path.
func NewManagerWithPath(path string) *Manager {
	return &Manager{
		configPath: path,
		logger:     logging.GetConfigLogger(),
	}
}

// getConfigPath resolves $XDG_CONFIG_HOME/richframe/profiles.yaml, falling
// back to ~/.config.
func getConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "richframe", "profiles.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "richframe", "profiles.yaml"), nil
}

// loadConfig returns the cached configuration, reading the file on first
// use. A missing file yields the built-in defaults without touching disk.
func (m *Manager) loadConfig() (*Config, error) {
	if m.cachedConfig != nil {
		return m.cachedConfig, nil
	}

	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		m.logger.Debug("No configuration file, using defaults", "config_path", m.configPath)
		m.cachedConfig = createDefaultConfig()
		return m.cachedConfig, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}
	if config.Themes == nil {
		config.Themes = make(map[string]render.Theme)
	}
	if _, ok := config.Profiles[DefaultProfile]; !ok {
		config.Profiles[DefaultProfile] = Profile{Name: DefaultProfile, Options: render.DefaultOptions()}
	}

	m.cachedConfig = &config
	return &config, nil
}

// saveConfig writes the configuration, creating the directory if needed.
func (m *Manager) saveConfig(config *Config) error {
	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	m.cachedConfig = config
	return nil
}

func createDefaultConfig() *Config {
	ocean := render.DefaultOptions()
	ocean.Bg = "PuBu"
	ocean.Theme = "ocean"
	return &Config{
		Profiles: map[string]Profile{
			DefaultProfile: {Name: DefaultProfile, Options: render.DefaultOptions()},
			"ocean":        {Name: "ocean", Options: ocean},
		},
		Themes: map[string]render.Theme{
			"plain": {
				Name:              "plain",
				ColumnHeaderStyle: "bold",
				IndexHeaderStyle:  "bold",
			},
			"ocean": {
				Name:              "ocean",
				ColumnHeaderStyle: "bold #89b4fa",
				IndexHeaderStyle:  "bold #74c7ec",
				IndexStyle:        "#94e2d5",
				BorderStyle:       "#6c7086",
				TitleStyle:        "bold italic #89b4fa",
			},
		},
	}
}

// LoadProfile returns a validated profile by name.
func (m *Manager) LoadProfile(name string) (*Profile, error) {
	m.logger.LogConfigLoad(m.configPath, name)
	config, err := m.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	profile, exists := config.Profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile '%s' not found", name)
	}
	profile.Name = name

	if err := m.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile '%s' is invalid: %w", name, err)
	}
	return &profile, nil
}

// SaveProfile validates and stores a profile, replacing any with the same
// name.
func (m *Manager) SaveProfile(profile *Profile) error {
	if err := m.ValidateProfile(profile); err != nil {
		return fmt.Errorf("cannot save invalid profile: %w", err)
	}
	config, err := m.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	config.Profiles[profile.Name] = *profile
	if err := m.saveConfig(config); err != nil {
		m.logger.LogConfigError("save profile", err)
		return err
	}
	return nil
}

// ListProfiles returns the profile names in sorted order.
func (m *Manager) ListProfiles() ([]string, error) {
	config, err := m.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	names := make([]string, 0, len(config.Profiles))
	for name := range config.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteProfile removes a profile. The default profile cannot be deleted.
func (m *Manager) DeleteProfile(name string) error {
	if name == DefaultProfile {
		return fmt.Errorf("cannot delete the default profile")
	}
	config, err := m.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if _, exists := config.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	delete(config.Profiles, name)
	return m.saveConfig(config)
}

// LoadTheme returns a configured theme by name. Every style string in the
// theme must parse.
func (m *Manager) LoadTheme(name string) (*render.Theme, error) {
	config, err := m.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	theme, exists := config.Themes[name]
	if !exists {
		return nil, fmt.Errorf("theme '%s' not found", name)
	}
	theme.Name = name

	for field, value := range map[string]string{
		"column_header_style": theme.ColumnHeaderStyle,
		"index_header_style":  theme.IndexHeaderStyle,
		"index_style":         theme.IndexStyle,
		"border_style":        theme.BorderStyle,
		"title_style":         theme.TitleStyle,
		"table_style":         theme.TableStyle,
	} {
		if err := validStyle(field, value); err != nil {
			return nil, fmt.Errorf("theme '%s' is invalid: %w", name, err)
		}
	}
	return &theme, nil
}

// ResolveTheme looks name up among the configured themes and then among
// the chroma styles.
func (m *Manager) ResolveTheme(name string) (*render.Theme, error) {
	theme, err := m.LoadTheme(name)
	if err == nil {
		return theme, nil
	}
	if t, ok := render.ThemeFromChroma(name); ok {
		return &t, nil
	}
	return nil, err
}

// ValidateProfile checks the fields a profile file can get wrong.
func (m *Manager) ValidateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	o := profile.Options
	if o.IndexJustify != "" && !render.IsValidJustify(o.IndexJustify) {
		return fmt.Errorf("index_justify must be one of left, center, right, full; got %q", o.IndexJustify)
	}
	if o.Format != nil {
		switch o.Format.(type) {
		case string, map[string]any, map[string]string:
		default:
			return fmt.Errorf("format must be a string or a mapping, got %T", o.Format)
		}
		if err := styler.ValidateFormat(o.Format); err != nil {
			return err
		}
	}
	if p := o.Padding; p != nil {
		if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
			return fmt.Errorf("padding values must not be negative")
		}
	}
	if o.Box != nil && !render.IsKnownBox(*o.Box) {
		return fmt.Errorf("unknown box %q, expected one of %s", *o.Box, strings.Join(render.BoxNames(), ", "))
	}
	if o.IndexWidth < 0 {
		return fmt.Errorf("index_width must not be negative")
	}

	for field, value := range map[string]string{
		"index_style":         o.IndexStyle,
		"index_header_style":  o.IndexHeaderStyle,
		"column_header_style": o.ColumnHeaderStyle,
		"table_style":         o.TableStyle,
		"border_style":        o.BorderStyle,
	} {
		if err := validStyle(field, value); err != nil {
			return err
		}
	}
	return nil
}

func validStyle(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := style.Parse(value); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

// GetConfigPath returns the configuration file path.
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// InvalidateCache forces the next access to re-read the file.
func (m *Manager) InvalidateCache() {
	m.cachedConfig = nil
}
