// pkg/config/settings.go
package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Settings is the hub's own configuration, merged from hardcoded
// defaults, an optional YAML file, and command-line flags, in that
// precedence order.
type Settings struct {
	Log    LogSettings    `koanf:"log"`
	Output OutputSettings `koanf:"output"`
}

// LogSettings holds logging related configuration.
type LogSettings struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

// OutputSettings holds defaults for reporter output resolution.
type OutputSettings struct {
	// Filename is the default output file attached to reporter options
	// that do not name their own. Empty keeps stdout.
	Filename string `koanf:"filename"`
}

var validate = validator.New()

// DefaultSettings returns the baseline configuration used when no other
// source overrides it.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "error",
			Format: "text",
		},
	}
}

// defaultsAsMap flattens DefaultSettings for koanf's confmap provider.
func defaultsAsMap() map[string]any {
	def := DefaultSettings()
	return map[string]any{
		"log.level":       def.Log.Level,
		"log.format":      def.Log.Format,
		"output.filename": def.Output.Filename,
	}
}

// Load merges defaults, the optional config file at path, and flag
// overrides into a validated Settings value.
func Load(flags *pflag.FlagSet, path string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsAsMap(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	if flags != nil {
		// posflag keeps existing keys when a flag was not set explicitly.
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Settings{}, fmt.Errorf("load command-line flags: %w", err)
		}
	}

	var s Settings
	if err := k.UnmarshalWithConf("", &s, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("validate settings: %w", err)
	}
	return s, nil
}

// BindFlags defines command-line flags that override file and default
// settings. Call when setting up the root cobra command.
func BindFlags(flags *pflag.FlagSet) {
	flags.String("log.level", "", "Log level (trace, debug, info, warn, error)")
	flags.String("log.format", "", "Log format (text, json)")
	flags.String("output.filename", "", "Default output file for reporters")
}

type ctxKey string

const settingsKey ctxKey = "config.settings"

// WithContext stores loaded settings on the context.
func WithContext(ctx context.Context, s Settings) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, settingsKey, s)
}

// FromContext returns the settings stored by WithContext, or defaults.
func FromContext(ctx context.Context) Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey).(Settings); ok {
			return s
		}
	}
	return DefaultSettings()
}
