// Package settings loads, validates and persists display preferences.
package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/pytype/internal/model"
)

// StorageKey is the single key the settings blob is stored under.
const StorageKey = "pytype-settings"

const (
	DefaultFontSize = 16
	MinFontSize     = 12
	MaxFontSize     = 28
)

// KV is the key-value store settings are persisted to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Deleter is implemented by stores that can drop a key.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

type blob struct {
	Hints       bool   `json:"hints"`
	LineNumbers bool   `json:"lineNumbers"`
	Zen         bool   `json:"zen"`
	Theme       string `json:"theme"`
	FontSize    int    `json:"fontSize"`
}

// Defaults returns the settings used when nothing valid is stored.
func Defaults() model.Settings {
	return model.Settings{
		Hints:       true,
		LineNumbers: true,
		Zen:         false,
		Theme:       model.ThemeAurora,
		FontSize:    DefaultFontSize,
	}
}

// Decode parses a stored blob. It never fails: malformed input yields the
// defaults, and each field that is missing or invalid falls back on its own.
func Decode(raw string) model.Settings {
	s := Defaults()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return s
	}
	decodeBool(fields["hints"], &s.Hints)
	decodeBool(fields["lineNumbers"], &s.LineNumbers)
	decodeBool(fields["zen"], &s.Zen)
	if v := fields["theme"]; present(v) {
		var name string
		if err := json.Unmarshal(v, &name); err == nil {
			if theme := model.Theme(strings.ToLower(name)); theme.Valid() {
				s.Theme = theme
			}
		}
	}
	if v := fields["fontSize"]; present(v) {
		if size, ok := decodeFontSize(v); ok {
			s.FontSize = ClampFontSize(size)
		}
	}
	return s
}

// Encode serializes settings to the stored blob format.
func Encode(s model.Settings) (string, error) {
	data, err := json.Marshal(blob{
		Hints:       s.Hints,
		LineNumbers: s.LineNumbers,
		Zen:         s.Zen,
		Theme:       string(s.Theme),
		FontSize:    s.FontSize,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load reads settings from kv. Absent or corrupt data yields defaults; only a
// failing store returns an error, alongside the defaults.
func Load(ctx context.Context, kv KV) (model.Settings, error) {
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return Defaults(), fmt.Errorf("failed to read settings: %w", err)
	}
	if !ok {
		return Defaults(), nil
	}
	return Decode(raw), nil
}

// Save writes settings to kv.
func Save(ctx context.Context, kv KV, s model.Settings) error {
	raw, err := Encode(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := kv.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Reset drops stored settings when the store supports it, otherwise it
// stores the defaults.
func Reset(ctx context.Context, kv KV) error {
	if d, ok := kv.(Deleter); ok {
		if err := d.Delete(ctx, StorageKey); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		return nil
	}
	return Save(ctx, kv, Defaults())
}

// ClampFontSize bounds size to the supported range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// present reports whether a field was given a non-null value.
func present(raw json.RawMessage) bool {
	return raw != nil && string(bytes.TrimSpace(raw)) != "null"
}

func decodeBool(raw json.RawMessage, target *bool) {
	if !present(raw) {
		return
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err == nil {
		*target = v
	}
}

// decodeFontSize accepts a JSON number or a numeric string.
func decodeFontSize(raw json.RawMessage) (int, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(parsed) {
			return 0, false
		}
		n = parsed
	}
	n = math.Max(MinFontSize, math.Min(MaxFontSize, math.Round(n)))
	return int(n), true
}
