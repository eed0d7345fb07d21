package service

import (
	"errors"
	"fmt"

	"github.com/bibbank/signalgraph/internal/domain/model"
)

// ErrProfileNotFound is returned when a profile index is outside the catalog.
var ErrProfileNotFound = errors.New("synthetic profile not found")

// ProfileCatalog is the fixed, ordered list of demo profiles.
type ProfileCatalog struct {
	profiles []model.SyntheticProfile
}

// NewProfileCatalog creates a catalog over profiles in the given order.
func NewProfileCatalog(profiles ...model.SyntheticProfile) *ProfileCatalog {
	ps := make([]model.SyntheticProfile, len(profiles))
	copy(ps, profiles)
	return &ProfileCatalog{profiles: ps}
}

// DefaultProfileCatalog returns the three canned background-check scenarios.
func DefaultProfileCatalog() *ProfileCatalog {
	return NewProfileCatalog(
		model.NewSyntheticProfile("Candidate_Synth_001",
			"criminal_felony_old", "employment_gap", "alias_mismatch", "pattern_reform"),
		model.NewSyntheticProfile("Candidate_Synth_002",
			"criminal_felony_recent", "ssn_mismatch", "education_unverified"),
		model.NewSyntheticProfile("Candidate_Synth_003",
			"criminal_misdemeanor", "multiple_employers", "address_instability"),
	)
}

// Load returns a fresh selection for the profile at index.
func (c *ProfileCatalog) Load(index int) (*model.SelectionSet, error) {
	if index < 0 || index >= len(c.profiles) {
		return nil, fmt.Errorf("profile index %d: %w", index, ErrProfileNotFound)
	}
	return c.profiles[index].Selection()
}

// All returns the profiles in catalog order.
func (c *ProfileCatalog) All() []model.SyntheticProfile {
	out := make([]model.SyntheticProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

func (c *ProfileCatalog) Len() int {
	return len(c.profiles)
}

// ProfileScore is one bar of the profile comparison chart.
type ProfileScore struct {
	Name  string
	Score int
}

// Compare scores every profile with e, in catalog order.
func (c *ProfileCatalog) Compare(e Evaluator) []ProfileScore {
	out := make([]ProfileScore, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, ProfileScore{Name: p.CandidateID(), Score: e.Score(p.SignalIDs())})
	}
	return out
}
