package features

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadSettingsFile indicates that a settings file could not be read or
// decoded. The wrapping error carries the path and the underlying cause.
var ErrBadSettingsFile = errors.New("features: cannot load settings file")

// Load reads Settings from a YAML file. Decoding is strict: unknown keys are
// rejected so a typo like "enable_jitt" surfaces immediately instead of
// silently taking the default. Keys that are simply absent stay nil and
// resolve to their defaults.
//
// Example file:
//
//	enable_jit: true
//	enable_auto_optimize: false
//	fail_on_evalerror: true
func Load(path string) (Settings, error) {
	var s Settings

	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %v", ErrBadSettingsFile, path, err)
	}

	var probe map[string]bool
	if err = yaml.Unmarshal(raw, &probe); err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %v", ErrBadSettingsFile, path, err)
	}
	for key := range probe {
		if !knownSettingKey(key) {
			return Settings{}, fmt.Errorf("%w: %s: unknown key %q", ErrBadSettingsFile, path, key)
		}
	}

	if err = yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %v", ErrBadSettingsFile, path, err)
	}

	return s, nil
}

// knownSettingKey whitelists the YAML keys accepted by Load.
func knownSettingKey(key string) bool {
	switch key {
	case "enable_jit", "enable_ad_cache", "enable_auto_optimize",
		"disable_fpoptimizer", "fail_on_evalerror":
		return true
	}

	return false
}
