package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrNotSet is returned by the strict getters when a key has no value.
var ErrNotSet = errors.New("configuration key not set")

// Manager reads termblog settings. The strict getters return errors; the
// WithDefault getters fall back on missing or malformed values. Nothing in
// here panics.
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
	GetBoolWithDefault(key string, defaultValue bool) bool
	GetFloatWithDefault(key string, defaultValue float64) float64
	GetTerminalConfig() TerminalConfig
}

// Lookup returns the raw value of a key. An empty value counts as unset.
type Lookup func(key string) string

// DefaultManager reads from a Lookup, the process environment by default.
type DefaultManager struct {
	lookup Lookup
}

func NewConfigManager() Manager {
	return NewConfigManagerFrom(os.Getenv)
}

// NewConfigManagerFrom reads settings from lookup instead of the environment.
func NewConfigManagerFrom(lookup Lookup) Manager {
	if lookup == nil {
		lookup = os.Getenv
	}
	return &DefaultManager{lookup: lookup}
}

func (m *DefaultManager) GetString(key string) (string, error) {
	value := m.lookup(key)
	if value == "" {
		return "", fmt.Errorf("%s: %w", key, ErrNotSet)
	}
	return value, nil
}

func (m *DefaultManager) GetStringWithDefault(key, defaultValue string) string {
	if value := m.lookup(key); value != "" {
		return value
	}
	return defaultValue
}

func (m *DefaultManager) GetInt(key string) (int, error) {
	value, err := m.GetString(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s has invalid integer value %q: %w", key, value, err)
	}
	return n, nil
}

func (m *DefaultManager) GetIntWithDefault(key string, defaultValue int) int {
	return withDefault(m, key, defaultValue, strconv.Atoi)
}

func (m *DefaultManager) GetBoolWithDefault(key string, defaultValue bool) bool {
	return withDefault(m, key, defaultValue, strconv.ParseBool)
}

func (m *DefaultManager) GetFloatWithDefault(key string, defaultValue float64) float64 {
	return withDefault(m, key, defaultValue, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func withDefault[T any](m *DefaultManager, key string, defaultValue T, parse func(string) (T, error)) T {
	value := m.lookup(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
