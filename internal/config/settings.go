package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"tstag/internal/formatting"
)

const (
	defaultLogLevel   = "info"
	defaultFeedbackMS = 2000
)

type Config struct {
	Logging   LoggingConfig   `toml:"logging"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Preview   PreviewConfig   `toml:"preview"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type ClipboardConfig struct {
	FeedbackMS   int  `toml:"feedback_ms"`
	DisableOSC52 bool `toml:"disable_osc52"`
}

// PreviewConfig overrides the Go time layout of individual preview styles.
// Blank values keep the built-in layout.
type PreviewConfig struct {
	ShortDateTime string `json:"short_date_time" toml:"short_date_time"`
	LongDateTime  string `json:"long_date_time" toml:"long_date_time"`
	ShortTime     string `json:"short_time" toml:"short_time"`
	LongTime      string `json:"long_time" toml:"long_time"`
	ShortDate     string `json:"short_date" toml:"short_date"`
	LongDate      string `json:"long_date" toml:"long_date"`
}

func DefaultConfig() Config {
	layouts := formatting.DefaultLayouts()
	return Config{
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		Clipboard: ClipboardConfig{
			FeedbackMS: defaultFeedbackMS,
		},
		Preview: PreviewConfig{
			ShortDateTime: layouts.ShortDateTime,
			LongDateTime:  layouts.LongDateTime,
			ShortTime:     layouts.ShortTime,
			LongTime:      layouts.LongTime,
			ShortDate:     layouts.ShortDate,
			LongDate:      layouts.LongDate,
		},
	}
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func (c Config) LogLevel() string {
	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch level {
	case "debug", "info", "warn", "error":
		return level
	case "warning":
		return "warn"
	default:
		return defaultLogLevel
	}
}

// CopyFeedback is how long a row shows its copy acknowledgment.
func (c Config) CopyFeedback() time.Duration {
	ms := c.Clipboard.FeedbackMS
	if ms <= 0 {
		ms = defaultFeedbackMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (c Config) OSC52Enabled() bool {
	return !c.Clipboard.DisableOSC52
}

func (c Config) Layouts() formatting.Layouts {
	return formatting.Layouts{
		ShortDateTime: strings.TrimSpace(c.Preview.ShortDateTime),
		LongDateTime:  strings.TrimSpace(c.Preview.LongDateTime),
		ShortTime:     strings.TrimSpace(c.Preview.ShortTime),
		LongTime:      strings.TrimSpace(c.Preview.LongTime),
		ShortDate:     strings.TrimSpace(c.Preview.ShortDate),
		LongDate:      strings.TrimSpace(c.Preview.LongDate),
	}.Merge(formatting.DefaultLayouts())
}

func loadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
