package model

import (
	"errors"
	"strings"
)

// ErrEmptyCandidateID is returned when a selection is bound to a blank candidate.
var ErrEmptyCandidateID = errors.New("candidate ID is required")

// SelectionSet is the set of signal IDs attributed to one candidate.
// Duplicates collapse; insertion order is kept for display only.
type SelectionSet struct {
	candidateID string
	ids         []string
	index       map[string]struct{}
}

// NewSelectionSet creates a selection for candidateID holding signalIDs.
func NewSelectionSet(candidateID string, signalIDs ...string) (*SelectionSet, error) {
	s := &SelectionSet{index: make(map[string]struct{}, len(signalIDs))}
	if err := s.SetCandidateID(candidateID); err != nil {
		return nil, err
	}
	for _, id := range signalIDs {
		s.Add(id)
	}
	return s, nil
}

// CandidateID returns the candidate the selection belongs to.
func (s *SelectionSet) CandidateID() string {
	return s.candidateID
}

// SetCandidateID rebinds the selection to another candidate.
func (s *SelectionSet) SetCandidateID(candidateID string) error {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return ErrEmptyCandidateID
	}
	s.candidateID = candidateID
	return nil
}

// Add selects signalID. Blank IDs are ignored. It reports whether the set changed.
func (s *SelectionSet) Add(signalID string) bool {
	if strings.TrimSpace(signalID) == "" {
		return false
	}
	if _, ok := s.index[signalID]; ok {
		return false
	}
	s.index[signalID] = struct{}{}
	s.ids = append(s.ids, signalID)
	return true
}

// Remove deselects signalID. It reports whether the set changed.
func (s *SelectionSet) Remove(signalID string) bool {
	if _, ok := s.index[signalID]; !ok {
		return false
	}
	delete(s.index, signalID)
	for i, id := range s.ids {
		if id == signalID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}

// Toggle flips membership of signalID and returns whether it is now selected.
func (s *SelectionSet) Toggle(signalID string) bool {
	if s.Remove(signalID) {
		return false
	}
	return s.Add(signalID)
}

// Contains reports whether signalID is selected.
func (s *SelectionSet) Contains(signalID string) bool {
	_, ok := s.index[signalID]
	return ok
}

// Clear deselects everything.
func (s *SelectionSet) Clear() {
	s.ids = nil
	s.index = make(map[string]struct{})
}

// Len returns the number of selected signals.
func (s *SelectionSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected IDs in insertion order.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clone returns an independent copy.
func (s *SelectionSet) Clone() *SelectionSet {
	c := &SelectionSet{
		candidateID: s.candidateID,
		ids:         make([]string, len(s.ids)),
		index:       make(map[string]struct{}, len(s.ids)),
	}
	copy(c.ids, s.ids)
	for _, id := range s.ids {
		c.index[id] = struct{}{}
	}
	return c
}
