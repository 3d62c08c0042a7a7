package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Action names a viewer command that can be bound to keys
type Action string

const (
	ActionNone              Action = ""
	ActionQuit              Action = "quit"
	ActionLineUp            Action = "line_up"
	ActionLineDown          Action = "line_down"
	ActionPageUp            Action = "page_up"
	ActionPageDown          Action = "page_down"
	ActionDocStart          Action = "doc_start"
	ActionDocEnd            Action = "doc_end"
	ActionToggleMinimap     Action = "toggle_minimap"
	ActionYankMinimap       Action = "yank_minimap"
	ActionToggleLineNumbers Action = "toggle_line_numbers"
)

// KeyBinding represents a single action's key bindings
type KeyBinding struct {
	Primary   string `toml:"primary"`
	Alternate string `toml:"alternate,omitempty"`
}

// KeybindingsConfig holds all configurable keybindings
type KeybindingsConfig struct {
	Quit              KeyBinding `toml:"quit"`
	LineUp            KeyBinding `toml:"line_up"`
	LineDown          KeyBinding `toml:"line_down"`
	PageUp            KeyBinding `toml:"page_up"`
	PageDown          KeyBinding `toml:"page_down"`
	DocStart          KeyBinding `toml:"doc_start"`
	DocEnd            KeyBinding `toml:"doc_end"`
	ToggleMinimap     KeyBinding `toml:"toggle_minimap"`
	YankMinimap       KeyBinding `toml:"yank_minimap"`
	ToggleLineNumbers KeyBinding `toml:"toggle_line_numbers"`
}

// DefaultKeybindings returns the default keybinding configuration
func DefaultKeybindings() *KeybindingsConfig {
	return &KeybindingsConfig{
		Quit:              KeyBinding{Primary: "q", Alternate: "ctrl+q"},
		LineUp:            KeyBinding{Primary: "up", Alternate: "k"},
		LineDown:          KeyBinding{Primary: "down", Alternate: "j"},
		PageUp:            KeyBinding{Primary: "pgup", Alternate: "ctrl+b"},
		PageDown:          KeyBinding{Primary: "pgdown", Alternate: "ctrl+f"},
		DocStart:          KeyBinding{Primary: "home", Alternate: "g"},
		DocEnd:            KeyBinding{Primary: "end", Alternate: "G"},
		ToggleMinimap:     KeyBinding{Primary: "m", Alternate: "f2"},
		YankMinimap:       KeyBinding{Primary: "y"},
		ToggleLineNumbers: KeyBinding{Primary: "ctrl+l"},
	}
}

// ActionNames maps action names for display
var ActionNames = map[Action]string{
	ActionQuit:              "Quit",
	ActionLineUp:            "Scroll Up",
	ActionLineDown:          "Scroll Down",
	ActionPageUp:            "Page Up",
	ActionPageDown:          "Page Down",
	ActionDocStart:          "Document Start",
	ActionDocEnd:            "Document End",
	ActionToggleMinimap:     "Toggle Minimap",
	ActionYankMinimap:       "Copy Minimap",
	ActionToggleLineNumbers: "Toggle Line Numbers",
}

// KeybindingsPath returns the path to the keybindings file
func KeybindingsPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "keybindings.toml"), nil
}

// LoadKeybindings loads keybindings from disk, returning defaults if not found
func LoadKeybindings() *KeybindingsConfig {
	path, err := KeybindingsPath()
	if err != nil {
		return DefaultKeybindings()
	}
	return LoadKeybindingsFrom(path)
}

// LoadKeybindingsFrom loads keybindings from path over the defaults.
// Unreadable or malformed files yield the defaults.
func LoadKeybindingsFrom(path string) *KeybindingsConfig {
	kb := DefaultKeybindings()

	if _, err := os.Stat(path); err != nil {
		return kb
	}

	if _, err := toml.DecodeFile(path, kb); err != nil {
		return DefaultKeybindings()
	}

	return kb
}

// binding returns a pointer to the binding for action, or nil
func (kb *KeybindingsConfig) binding(action Action) *KeyBinding {
	switch action {
	case ActionQuit:
		return &kb.Quit
	case ActionLineUp:
		return &kb.LineUp
	case ActionLineDown:
		return &kb.LineDown
	case ActionPageUp:
		return &kb.PageUp
	case ActionPageDown:
		return &kb.PageDown
	case ActionDocStart:
		return &kb.DocStart
	case ActionDocEnd:
		return &kb.DocEnd
	case ActionToggleMinimap:
		return &kb.ToggleMinimap
	case ActionYankMinimap:
		return &kb.YankMinimap
	case ActionToggleLineNumbers:
		return &kb.ToggleLineNumbers
	}
	return nil
}

// GetBinding returns the KeyBinding for a given action
func (kb *KeybindingsConfig) GetBinding(action Action) KeyBinding {
	if b := kb.binding(action); b != nil {
		return *b
	}
	return KeyBinding{}
}

// AllActions returns a list of all actions in display order
func AllActions() []Action {
	return []Action{
		ActionLineUp, ActionLineDown, ActionPageUp, ActionPageDown,
		ActionDocStart, ActionDocEnd,
		ActionToggleMinimap, ActionYankMinimap, ActionToggleLineNumbers,
		ActionQuit,
	}
}

// Lookup returns the action bound to key, if any
func (kb *KeybindingsConfig) Lookup(key string) Action {
	for _, action := range AllActions() {
		if kb.GetBinding(action).Matches(key) {
			return action
		}
	}
	return ActionNone
}

// Matches checks if a key string matches this binding (primary or alternate).
// Single characters compare case-sensitively so "g" and "G" can differ.
func (b KeyBinding) Matches(key string) bool {
	return keyEqual(b.Primary, key) || keyEqual(b.Alternate, key)
}

func keyEqual(bound, key string) bool {
	if bound == "" {
		return false
	}
	if len(bound) == 1 || len(key) == 1 {
		return bound == key
	}
	return strings.EqualFold(bound, key)
}

// DisplayString returns a human-readable string for the binding
func (b KeyBinding) DisplayString() string {
	if b.Primary == "" && b.Alternate == "" {
		return "(none)"
	}
	if b.Alternate == "" {
		return FormatKeyForDisplay(b.Primary)
	}
	return FormatKeyForDisplay(b.Primary) + " / " + FormatKeyForDisplay(b.Alternate)
}

// FormatKeyForDisplay converts a key string to a more readable format
func FormatKeyForDisplay(key string) string {
	if len(key) <= 1 {
		return key
	}
	parts := strings.Split(key, "+")
	for i, p := range parts {
		switch {
		case len(p) == 1:
			parts[i] = strings.ToUpper(p)
		case p == "pgup":
			parts[i] = "PgUp"
		case p == "pgdown":
			parts[i] = "PgDn"
		case p[0] == 'f' && len(p) <= 3 && p[1] >= '0' && p[1] <= '9':
			parts[i] = "F" + p[1:]
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}

// FindConflicts returns keys bound to more than one action
func (kb *KeybindingsConfig) FindConflicts() map[string][]Action {
	keyToActions := make(map[string][]Action)
	for _, action := range AllActions() {
		b := kb.GetBinding(action)
		for _, key := range []string{b.Primary, b.Alternate} {
			if key == "" {
				continue
			}
			if len(key) > 1 {
				key = strings.ToLower(key)
			}
			keyToActions[key] = append(keyToActions[key], action)
		}
	}

	conflicts := make(map[string][]Action)
	for key, actions := range keyToActions {
		if len(actions) > 1 {
			conflicts[key] = actions
		}
	}
	return conflicts
}
