// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML configuration via gopkg.in/yaml.v3; validation suggests known key names

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/keyprobe/internal/log"
	"github.com/mauromedda/keyprobe/pkg/tui/fuzzy"
	"github.com/mauromedda/keyprobe/pkg/tui/key"
)

// DefaultMaxEvents bounds the viewer history when max_events is unset.
const DefaultMaxEvents = 200

// Settings holds the merged configuration.
type Settings struct {
	// KittyProtocol is a pointer so a project file can turn off a global true.
	KittyProtocol *bool    `yaml:"kitty_protocol,omitempty"`
	Platform      string   `yaml:"platform,omitempty"`
	LogLevel      string   `yaml:"log_level,omitempty"`
	LogFile       string   `yaml:"log_file,omitempty"`
	Highlight     []string `yaml:"highlight,omitempty"`
	MaxEvents     int      `yaml:"max_events,omitempty"`
}

// Kitty reports whether the kitty keyboard protocol is enabled.
func (s *Settings) Kitty() bool {
	return s.KittyProtocol != nil && *s.KittyProtocol
}

// EventLimit returns MaxEvents, or DefaultMaxEvents when unset.
func (s *Settings) EventLimit() int {
	if s.MaxEvents <= 0 {
		return DefaultMaxEvents
	}
	return s.MaxEvents
}

// Load reads and merges global and project-local settings, then expands
// ${VAR} references. Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles merges the given files in order; later files override earlier
// ones. Missing files are skipped.
func LoadFiles(paths ...string) (*Settings, error) {
	merged := &Settings{}
	for _, path := range paths {
		s, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		log.Debug("config: loaded %s", path)
		merged = merge(merged, s)
	}
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Set project values override global values; highlight lists are unioned.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.KittyProtocol != nil {
		v := *project.KittyProtocol
		result.KittyProtocol = &v
	}
	if project.Platform != "" {
		result.Platform = project.Platform
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.MaxEvents != 0 {
		result.MaxEvents = project.MaxEvents
	}
	result.Highlight = union(global.Highlight, project.Highlight)

	return &result
}

func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// Validate checks field values. Unknown highlight names are reported with
// the closest known key names.
func (s *Settings) Validate() error {
	var errs []error

	if s.LogLevel != "" {
		if _, err := log.ParseLevel(s.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	if s.MaxEvents < 0 {
		errs = append(errs, fmt.Errorf("max_events must not be negative, got %d", s.MaxEvents))
	}

	names := key.Names()
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	for _, h := range s.Highlight {
		if known[h] {
			continue
		}
		msg := fmt.Sprintf("unknown key name %q in highlight", h)
		if hints := fuzzy.Suggest(h, names, 3); len(hints) > 0 {
			msg += "; did you mean " + strings.Join(hints, ", ") + "?"
		}
		errs = append(errs, errors.New(msg))
	}

	return errors.Join(errs...)
}
