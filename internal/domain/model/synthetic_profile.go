package model

// SyntheticProfile is a demo-only fixture: a candidate with a preset selection.
type SyntheticProfile struct {
	candidateID string
	signalIDs   []string
}

// NewSyntheticProfile creates a profile fixture.
func NewSyntheticProfile(candidateID string, signalIDs ...string) SyntheticProfile {
	ids := make([]string, len(signalIDs))
	copy(ids, signalIDs)
	return SyntheticProfile{candidateID: candidateID, signalIDs: ids}
}

func (p SyntheticProfile) CandidateID() string { return p.candidateID }

// SignalIDs returns a copy of the preset selection.
func (p SyntheticProfile) SignalIDs() []string {
	ids := make([]string, len(p.signalIDs))
	copy(ids, p.signalIDs)
	return ids
}

// Selection returns a fresh SelectionSet; mutating it never touches the fixture.
func (p SyntheticProfile) Selection() (*SelectionSet, error) {
	return NewSelectionSet(p.candidateID, p.signalIDs...)
}
