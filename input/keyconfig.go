package input

import (
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// UnbindAction is the sentinel action name that removes a key from the
// merged result
const UnbindAction = "none"

// KeymapEntry is one keymap file override: a combo rebound to an action,
// or unbound when Unbind is set
type KeymapEntry struct {
	Combo    Combo
	Action   string
	Category string
	Unbind   bool
}

// Keymap holds parsed keymap overrides in deterministic order
type Keymap struct {
	Entries []KeymapEntry
}

// LoadKeymap parses TOML keymap data. Each section is a category whose
// keys are combo strings and whose values are action names:
//
//	[app]
//	"ctrl+q" = "app.quit"
//	f9 = "none"
//
// Sections and keys within them apply in sorted order. Returns an error
// on invalid combos, empty actions, or parse failure
func LoadKeymap(data []byte) (*Keymap, error) {
	var raw map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	km := &Keymap{}

	sections := make([]string, 0, len(raw))
	for name := range raw {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, section := range sections {
		keys := make([]string, 0, len(raw[section]))
		for k := range raw[section] {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, keyStr := range keys {
			combo, err := ParseCombo(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
			}
			action := strings.ToLower(strings.TrimSpace(raw[section][keyStr]))
			if action == "" {
				return nil, fmt.Errorf("[%s] key %q: empty action", section, keyStr)
			}
			km.Entries = append(km.Entries, KeymapEntry{
				Combo:    combo,
				Action:   action,
				Category: section,
				Unbind:   action == UnbindAction,
			})
		}
	}

	return km, nil
}

// ApplyKeymap merges overrides into base and returns a new registry.
// Override combos register first, with the file section as category and
// description carried over from the action's base binding. Base bindings
// whose combos appear in the overrides are excluded, so a rebound combo
// loses its old action and an unbound combo matches nothing. Returns an
// error when an override names an action the base registry never bound
func ApplyKeymap(base *Registry, overrides *Keymap) (*Registry, error) {
	known := make(map[string]Binding)
	for _, b := range base.Bindings() {
		if _, ok := known[b.Action]; !ok {
			known[b.Action] = b
		}
	}

	merged := NewRegistry()
	overridden := make(map[Combo]struct{}, len(overrides.Entries))

	for _, e := range overrides.Entries {
		overridden[e.Combo] = struct{}{}
		if e.Unbind {
			continue
		}
		src, ok := known[e.Action]
		if !ok {
			return nil, fmt.Errorf("[%s] key %q: unknown action %q", e.Category, e.Combo.Token(), e.Action)
		}
		merged.Register(Binding{
			Combo:       e.Combo,
			Action:      e.Action,
			Description: src.Description,
			Category:    e.Category,
			Priority:    src.Priority,
		})
	}

	for _, b := range base.Bindings() {
		if _, ok := overridden[b.Combo]; ok {
			continue
		}
		merged.Register(b)
	}

	return merged, nil
}
