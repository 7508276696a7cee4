package rorskin

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// MaterialBinding is anything carrying a rewritable material name,
// such as a sub-mesh or a sub-entity.
type MaterialBinding interface {
	MaterialName() string
	SetMaterialName(name string)
}

// ReplacementTable maps original names to replacement names.
// Entries are never removed. The zero value is ready to use.
type ReplacementTable struct {
	entries map[string]string
	mu      sync.RWMutex
}

// NewReplacementTable creates an empty table.
func NewReplacementTable() *ReplacementTable {
	return &ReplacementTable{entries: make(map[string]string)}
}

// Register inserts or overwrites the replacement for original.
func (t *ReplacementTable) Register(original, replacement string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.entries == nil {
		t.entries = make(map[string]string)
	}
	t.entries[original] = replacement
}

// Has reports whether original has a registered replacement.
func (t *ReplacementTable) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Get returns the replacement for name, or an empty string when none is registered.
// An empty result is ambiguous; use Has or Lookup to tell "absent" from "mapped to empty".
func (t *ReplacementTable) Get(name string) string {
	repl, _ := t.Lookup(name)
	return repl
}

// Lookup returns the replacement for name and whether it was registered.
func (t *ReplacementTable) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	repl, ok := t.entries[name]
	return repl, ok
}

// Len returns the number of registered replacements.
func (t *ReplacementTable) Len() int {
	if t == nil {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}

// Names returns the registered original names in sorted order.
func (t *ReplacementTable) Names() []string {
	if t == nil {
		return nil
	}

	t.mu.RLock()
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	t.mu.RUnlock()

	sort.Strings(out)
	return out
}

// Merge registers every entry of other into t; entries of other win.
func (t *ReplacementTable) Merge(other *ReplacementTable) {
	if other == nil || other == t {
		return
	}

	for _, name := range other.Names() {
		if repl, ok := other.Lookup(name); ok {
			t.Register(name, repl)
		}
	}
}

// Apply rewrites the material of every target whose current material has a
// replacement and returns the number of rewritten targets.
// Nil targets are skipped.
func Apply[T MaterialBinding](t *ReplacementTable, targets []T) int {
	if t.Len() == 0 {
		return 0
	}

	n := 0
	for _, target := range targets {
		if isNilBinding(target) {
			continue
		}

		cur := target.MaterialName()
		repl, ok := t.Lookup(cur)
		if !ok {
			continue
		}

		target.SetMaterialName(repl)
		n++
		Logger().Debug("material replaced", zap.String("from", cur), zap.String("to", repl))
	}

	return n
}

// isNilBinding reports whether b is a nil interface or a typed nil pointer.
func isNilBinding(b MaterialBinding) bool {
	if b == nil {
		return true
	}

	switch v := b.(type) {
	case *SubMesh:
		return v == nil
	case *SubEntity:
		return v == nil
	default:
		return false
	}
}
