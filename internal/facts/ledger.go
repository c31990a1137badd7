package facts

import "fmt"

// Key canonicalizes an operand pair so 3x7 and 7x3 share one ledger
// entry. The smaller operand always comes first.
func Key(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%dx%d", a, b)
}

// Stat tracks exposure and accuracy for a single fact.
type Stat struct {
	TimesSeen    int `json:"times_seen"`
	TimesCorrect int `json:"times_correct"`
}

// Ledger records which multiplication facts a student has been shown
// and how they did. It is scoped to one (student, skill) pair; callers
// own serialization and locking.
type Ledger struct {
	stats map[string]Stat
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{stats: make(map[string]Stat)}
}

// LedgerFromStats rebuilds a ledger from persisted per-fact stats.
func LedgerFromStats(stats map[string]Stat) *Ledger {
	l := NewLedger()
	for k, s := range stats {
		l.stats[k] = s
	}
	return l
}

// Record ingests one attempt on the fact a x b.
func (l *Ledger) Record(a, b int, correct bool) {
	s := l.stats[Key(a, b)]
	s.TimesSeen++
	if correct {
		s.TimesCorrect++
	}
	l.stats[Key(a, b)] = s
}

// Seen returns how many times the fact a x b has been presented.
func (l *Ledger) Seen(a, b int) int {
	return l.stats[Key(a, b)].TimesSeen
}

// Get returns the stat for a fact key.
func (l *Ledger) Get(key string) Stat {
	return l.stats[key]
}

// Stats returns a copy of all per-fact stats, for persistence.
func (l *Ledger) Stats() map[string]Stat {
	out := make(map[string]Stat, len(l.stats))
	for k, s := range l.stats {
		out[k] = s
	}
	return out
}
