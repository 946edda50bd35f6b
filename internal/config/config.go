package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/viper"

	"github.com/koyomi-ui/koyomi/core"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Holiday HolidayConfig
	Fields  []FieldConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	WeekStart string
}

// HolidayConfig points at the holiday source and its local cache.
type HolidayConfig struct {
	SourceURL string
	CachePath string
}

// FieldConfig declares one picker-bound input and its per-field options.
type FieldConfig struct {
	Name       string
	Label      string
	Mode       string
	Format     string
	MinuteStep int
	MinDate    string
	MaxDate    string
}

// Load reads configuration from file and env. Env var overrides use prefix KOYOMI_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.week_start", "sunday")
	v.SetDefault("holiday.source_url", "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv")
	v.SetDefault("holiday.cache_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "koyomi", "koyomi.db"))
	v.SetDefault("fields", []map[string]any{
		{"name": "due", "label": "Due date", "mode": "date", "format": "YYYY/MM/DD"},
		{"name": "reminder", "label": "Reminder", "mode": "time", "minutestep": 15},
		{"name": "meeting", "label": "Meeting", "mode": "datetime", "minutestep": 30, "mindate": "today"},
	})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KOYOMI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "koyomi"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KOYOMI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// ValidateMode parses a configured mode string, suggesting the nearest
// valid spelling on a typo.
func ValidateMode(s string) (core.Mode, error) {
	mode, err := core.ParseMode(s)
	if err == nil {
		return mode, nil
	}
	if hint := SuggestMode(s); hint != "" {
		return mode, fmt.Errorf("%w (did you mean %q?)", err, hint)
	}
	return mode, err
}

// SuggestMode returns the closest known mode name within an edit distance
// of 3, or "" when nothing is close enough to be a plausible typo.
func SuggestMode(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	best := ""
	bestDist := 4
	for _, name := range core.ModeNames() {
		if d := levenshtein.ComputeDistance(s, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}
