// Package config holds the runtime settings of the profiler, read once
// from the environment when the engine initializes.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/kolkov/libsee/internal/see/rawout"
)

// Config is the runtime configuration of the profiler.
type Config struct {
	// Output is where the report goes: stdout, stderr, tty or a file path.
	// PIDVerb in a path is replaced by the process id.
	Output string `env:"LIBSEE_OUTPUT"`
	// Trace prints a line to stderr when each intercepted call starts and
	// when it returns.
	Trace bool `env:"LIBSEE_TRACE"`
	// Grouping separates thousands in the report with '_'.
	Grouping bool `env:"LIBSEE_GROUPING"`
	// Signals emits the report when the process receives SIGINT or
	// SIGTERM.
	Signals bool `env:"LIBSEE_SIGNALS"`
	// LogLevel is the zerolog level of engine diagnostics on stderr.
	LogLevel string `env:"LIBSEE_LOG"`
}

// PIDVerb in Output stands for the process id, so that processes sharing
// one environment, such as the test binaries of one go test run, write
// separate reports.
const PIDVerb = "%p"

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Output:   rawout.TargetStdout,
		Grouping: true,
		LogLevel: "disabled",
	}
}

// Separator returns the digit-grouping separator for the report, 0 when
// grouping is off.
func (c Config) Separator() byte {
	if c.Grouping {
		return rawout.DefaultSeparator
	}
	return 0
}

// FromEnv loads the configuration from the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load starts from Default and overrides every field whose variable
// lookup returns. Variables that are set but empty are ignored. A value
// that does not parse leaves its field at the default; all such errors
// are returned together with the configuration.
func Load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	err := loadFromEnv(reflect.ValueOf(&cfg).Elem(), lookup)
	cfg.Output = strings.ReplaceAll(cfg.Output, PIDVerb, strconv.Itoa(os.Getpid()))
	return cfg, err
}

func loadFromEnv(v reflect.Value, lookup func(string) (string, bool)) error {
	var result *multierror.Error
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		envTag := t.Field(i).Tag.Get("env")
		if envTag == "" {
			continue
		}
		envValue, ok := lookup(envTag)
		envValue = strings.TrimSpace(envValue)
		if !ok || envValue == "" {
			continue
		}
		if err := setFieldValue(field, envValue, envTag); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func setFieldValue(field reflect.Value, value, envVar string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", envVar, err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s for %s", field.Kind(), envVar)
	}
	return nil
}
