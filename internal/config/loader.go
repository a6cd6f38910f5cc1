package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR} and ${VAR:-default} placeholders. Expansion
// runs over the raw bytes before YAML parsing, so a placeholder works
// anywhere a scalar appears.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-((?:[^}\\]|\\.)*))?\}`)

// Load reads the YAML file at path, expands environment placeholders, and
// decodes it. Structural checks live in Validate, which is a separate step
// so callers can inspect a parsed config that is not runnable yet.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	expanded, err := expandEnv(raw)
	if err != nil {
		return nil, fmt.Errorf("config: expand %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}

// expandEnv substitutes every environment placeholder. A variable that is
// unset and carries no default is collected rather than failing fast, so
// one run reports every unresolved name at once.
func expandEnv(raw []byte) ([]byte, error) {
	var errs []error

	result := envVarPattern.ReplaceAllFunc(raw, func(match []byte) []byte {
		subs := envVarPattern.FindSubmatch(match)
		name := string(subs[1])

		if value, ok := os.LookupEnv(name); ok {
			return []byte(value)
		}
		// subs[2] is non-nil whenever the :- form was written, even with
		// an empty default.
		if subs[2] != nil {
			return subs[2]
		}

		errs = append(errs, fmt.Errorf("unresolved variable: %s", name))
		return match
	})

	return result, errors.Join(errs...)
}
