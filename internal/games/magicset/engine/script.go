package engine

import (
	"fmt"
	"strings"
)

var intentNames = map[string]Intent{
	"up":      IntentMoveUp,
	"u":       IntentMoveUp,
	"down":    IntentMoveDown,
	"d":       IntentMoveDown,
	"left":    IntentMoveLeft,
	"l":       IntentMoveLeft,
	"right":   IntentMoveRight,
	"r":       IntentMoveRight,
	"confirm": IntentConfirm,
	"mark":    IntentConfirm,
	"c":       IntentConfirm,
	"cancel":  IntentCancel,
	"x":       IntentCancel,
	"wait":    IntentNone,
	"_":       IntentNone,
}

// ParseIntent parses an intent name ("left", "confirm", ...) or its one-letter
// short form. "wait" and "_" parse as IntentNone.
func ParseIntent(s string) (Intent, error) {
	in, ok := intentNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return IntentNone, fmt.Errorf("engine: unknown intent %q", s)
	}
	return in, nil
}

// ParseScript parses a tick-by-tick intent script. Ticks are separated by ';'
// or newlines, intents within a tick by ',' or spaces:
//
//	c; r c; r c
//
// A tick holding only "wait" advances the session without input.
func ParseScript(s string) ([][]Intent, error) {
	var ticks [][]Intent
	for n, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) == 0 {
			continue
		}
		tick := make([]Intent, 0, len(fields))
		for _, f := range fields {
			in, err := ParseIntent(f)
			if err != nil {
				return nil, fmt.Errorf("engine: tick %d: %w", n+1, err)
			}
			if in != IntentNone {
				tick = append(tick, in)
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks, nil
}
