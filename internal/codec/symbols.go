package codec

import "fmt"

// SymbolTable interns Symbol names to single wire bytes in first-seen
// order. Interning is out of band: a run's encoder and
// its decoder must share one SymbolTable instance (the round-trip test in
// internal/proofreg constructs exactly one and passes it to both sides), since the three
// persisted output files (§6.3) carry no symbol dictionary of their own.
type SymbolTable struct {
	byName map[string]byte
	byID   []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]byte)}
}

// Intern returns name's wire id, assigning the next free one on first use.
func (t *SymbolTable) Intern(name string) (byte, error) {
	if id, ok := t.byName[name]; ok {
		return id, nil
	}
	if len(t.byID) >= 256 {
		return 0, fmt.Errorf("codec: symbol table exhausted (256 distinct symbols max)")
	}
	id := byte(len(t.byID))
	t.byName[name] = id
	t.byID = append(t.byID, name)
	return id, nil
}

// Name resolves a wire id back to its symbol name.
func (t *SymbolTable) Name(id byte) (string, bool) {
	if int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}
