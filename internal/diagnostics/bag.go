package diagnostics

import "sync"

// Bag is a passive, append-only accumulator of diagnostic entries. It is
// safe for concurrent writes, though the assembler's pipeline itself runs
// single-threaded (spec.md §5) — the lock only guards against callers that
// fan out pixel decoding or file discovery.
//
// Create a Bag with New(). It is passed by reference through the pipeline;
// every phase records entries into the same bag.
type Bag struct {
	mu      sync.Mutex
	entries []*Entry
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{}
}

func (b *Bag) record(kind Kind, loc Location, message string) *Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := &Entry{kind: kind, location: loc, message: message}
	b.entries = append(b.entries, e)
	return e
}

// Parse records a parse error (unknown directive/instruction, invalid
// register or literal, numeric overflow).
func (b *Bag) Parse(loc Location, message string) *Entry { return b.record(KindParse, loc, message) }

// Shape records an operand-shape error (wrong count, wrong variant,
// mismatched register families).
func (b *Bag) Shape(loc Location, message string) *Entry { return b.record(KindShape, loc, message) }

// Symbol records an undefined-label or undefined-data-pointer error.
func (b *Bag) Symbol(loc Location, message string) *Entry {
	return b.record(KindSymbol, loc, message)
}

// IO records a missing input path or unreadable image file.
func (b *Bag) IO(loc Location, message string) *Entry { return b.record(KindIO, loc, message) }

// Entries returns all recorded entries in insertion order.
func (b *Bag) Entries() []*Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]*Entry, len(b.entries))
	copy(result, b.entries)
	return result
}

// HasErrors reports whether any diagnostic has been recorded. Every Kind in
// this package represents a failure — there is no warning/info severity
// (spec.md never calls for one) — so this is simply "is the bag non-empty".
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries) > 0
}

// Count returns the total number of entries.
func (b *Bag) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
