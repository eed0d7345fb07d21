package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bibbank/signalgraph/internal/domain/model"
)

// SignalRegistry is a read-only catalog of signals in fixed display order.
// Lookups are tolerant: an unknown ID weighs 0 and is labelled by itself.
type SignalRegistry struct {
	byID    map[string]int
	signals []model.Signal
}

// NewSignalRegistry builds a registry from signals in the given order.
// IDs must be unique and non-blank.
func NewSignalRegistry(signals ...model.Signal) (*SignalRegistry, error) {
	r := &SignalRegistry{
		byID:    make(map[string]int, len(signals)),
		signals: make([]model.Signal, 0, len(signals)),
	}
	for _, s := range signals {
		if strings.TrimSpace(s.ID()) == "" {
			return nil, fmt.Errorf("signal ID must not be blank")
		}
		if _, dup := r.byID[s.ID()]; dup {
			return nil, fmt.Errorf("duplicate signal ID: %s", s.ID())
		}
		r.byID[s.ID()] = len(r.signals)
		r.signals = append(r.signals, s)
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *SignalRegistry {
	r, err := NewSignalRegistry(
		model.NewSignal("criminal_felony_recent", "Recent Felony", 8),
		model.NewSignal("criminal_felony_old", "Old Felony", 4),
		model.NewSignal("criminal_misdemeanor", "Misdemeanor", 3),
		model.NewSignal("alias_mismatch", "Alias Mismatch", 5),
		model.NewSignal("employment_gap", "Employment Gap", 4),
		model.NewSignal("education_unverified", "Education Unverified", 6),
		model.NewSignal("address_instability", "Address Instability", 3),
		model.NewSignal("ssn_mismatch", "SSN Mismatch", 7),
		model.NewSignal("jurisdiction_delay", "Jurisdiction Delay", 2),
		model.NewSignal("multiple_employers", "Multiple Employers", 2),
		model.NewSignal("pattern_reform", "Pattern of Reform", -5),
	)
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultSignalRegistry returns the process-wide background-check catalog.
func DefaultSignalRegistry() *SignalRegistry {
	return defaultRegistry()
}

// Lookup returns the signal registered under id.
func (r *SignalRegistry) Lookup(id string) (model.Signal, bool) {
	i, ok := r.byID[id]
	if !ok {
		return model.Signal{}, false
	}
	return r.signals[i], true
}

// WeightOf returns the weight of id, or 0 when id is not registered.
func (r *SignalRegistry) WeightOf(id string) int {
	s, ok := r.Lookup(id)
	if !ok {
		return 0
	}
	return s.Weight()
}

// LabelOf returns the display label of id, or id itself when not registered.
func (r *SignalRegistry) LabelOf(id string) string {
	s, ok := r.Lookup(id)
	if !ok {
		return id
	}
	return s.Label()
}

// All returns the catalog in display order.
func (r *SignalRegistry) All() []model.Signal {
	out := make([]model.Signal, len(r.signals))
	copy(out, r.signals)
	return out
}

// Len returns the number of registered signals.
func (r *SignalRegistry) Len() int {
	return len(r.signals)
}

// Order sorts ids into registry order. Unregistered IDs follow the
// registered ones, lexicographically, so the result is deterministic.
func (r *SignalRegistry) Order(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)

	sort.SliceStable(out, func(i, j int) bool {
		pi, iKnown := r.byID[out[i]]
		pj, jKnown := r.byID[out[j]]
		switch {
		case iKnown && jKnown:
			return pi < pj
		case iKnown != jKnown:
			return iKnown
		default:
			return out[i] < out[j]
		}
	})
	return out
}
