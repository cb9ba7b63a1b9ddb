package naming

import "sync"

// Symbol is a handle to an interned string.
//
// Symbols are only meaningful inside the process that produced them.
type Symbol uint32

// Interner is an append-only string table.
//
// Thread-safety: all methods are safe for concurrent use. Interned strings
// are never removed, so a Symbol returned by Intern stays valid for the
// lifetime of the Interner.
type Interner struct {
	mu   sync.RWMutex
	ids  map[string]Symbol
	strs []string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]Symbol)}
}

// Intern returns the Symbol for s, adding s to the table if needed.
func (in *Interner) Intern(s string) Symbol {
	in.mu.RLock()
	id, ok := in.ids[s]
	in.mu.RUnlock()
	if ok {
		return id
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	// Another goroutine may have won the race between the two locks.
	if id, ok := in.ids[s]; ok {
		return id
	}
	id = Symbol(len(in.strs))
	in.strs = append(in.strs, s)
	in.ids[s] = id
	return id
}

// Resolve returns the string for sym.
// Returns "" and false if sym was not issued by this Interner.
func (in *Interner) Resolve(sym Symbol) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(sym) >= len(in.strs) {
		return "", false
	}
	return in.strs[sym], true
}

// Len reports the number of interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strs)
}

var global = NewInterner()

// Intern interns s in the process-wide table.
func Intern(s string) Symbol {
	return global.Intern(s)
}

// Resolve resolves a Symbol from the process-wide table.
// Symbols that were never issued resolve to "".
func Resolve(sym Symbol) string {
	s, _ := global.Resolve(sym)
	return s
}
