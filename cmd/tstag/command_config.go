package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"tstag/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

type configOutput struct {
	ConfigPath string                   `json:"config_path,omitempty" toml:"config_path,omitempty"`
	Logging    effectiveLoggingConfig   `json:"logging" toml:"logging"`
	Clipboard  effectiveClipboardConfig `json:"clipboard" toml:"clipboard"`
	Preview    config.PreviewConfig     `json:"preview" toml:"preview"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

type effectiveClipboardConfig struct {
	FeedbackMS   int64 `json:"feedback_ms" toml:"feedback_ms"`
	DisableOSC52 bool  `json:"disable_osc52" toml:"disable_osc52"`
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *ConfigCommand {
	if loadConfig == nil {
		loadConfig = config.Load
	}
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	cfg := config.DefaultConfig()
	if !*defaults {
		cfg, err = c.loadConfig()
		if err != nil {
			return err
		}
	}
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, buildConfigOutput(path, cfg))
}

func buildConfigOutput(path string, cfg config.Config) configOutput {
	layouts := cfg.Layouts()
	return configOutput{
		ConfigPath: path,
		Logging: effectiveLoggingConfig{
			Level: cfg.LogLevel(),
		},
		Clipboard: effectiveClipboardConfig{
			FeedbackMS:   cfg.CopyFeedback().Milliseconds(),
			DisableOSC52: !cfg.OSC52Enabled(),
		},
		Preview: config.PreviewConfig{
			ShortDateTime: layouts.ShortDateTime,
			LongDateTime:  layouts.LongDateTime,
			ShortTime:     layouts.ShortTime,
			LongTime:      layouts.LongTime,
			ShortDate:     layouts.ShortDate,
			LongDate:      layouts.LongDate,
		},
	}
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
