package upstream

import "sync/atomic"

// Sequencer hands out monotonically increasing tickets for overlapping
// refreshes of a single UI region. A response whose ticket is no longer the
// latest lost the race and must be discarded, so a slow early request can
// never overwrite state produced by a later one.
type Sequencer struct {
	last atomic.Uint64
}

// Next dispatches a new ticket.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current reports whether seq is still the latest dispatched ticket.
func (s *Sequencer) Current(seq uint64) bool {
	return s.last.Load() == seq
}
