package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

func TestDefaultSignalRegistry_Catalog(t *testing.T) {
	reg := service.DefaultSignalRegistry()

	expected := []struct {
		id     string
		label  string
		weight int
	}{
		{"criminal_felony_recent", "Recent Felony", 8},
		{"criminal_felony_old", "Old Felony", 4},
		{"criminal_misdemeanor", "Misdemeanor", 3},
		{"alias_mismatch", "Alias Mismatch", 5},
		{"employment_gap", "Employment Gap", 4},
		{"education_unverified", "Education Unverified", 6},
		{"address_instability", "Address Instability", 3},
		{"ssn_mismatch", "SSN Mismatch", 7},
		{"jurisdiction_delay", "Jurisdiction Delay", 2},
		{"multiple_employers", "Multiple Employers", 2},
		{"pattern_reform", "Pattern of Reform", -5},
	}

	all := reg.All()
	require.Len(t, all, len(expected))
	assert.Equal(t, len(expected), reg.Len())

	for i, e := range expected {
		assert.Equal(t, e.id, all[i].ID())
		assert.Equal(t, e.label, all[i].Label())
		assert.Equal(t, e.weight, all[i].Weight())
	}
}

func TestDefaultSignalRegistry_IsShared(t *testing.T) {
	assert.Same(t, service.DefaultSignalRegistry(), service.DefaultSignalRegistry())
}

func TestSignalRegistry_AllReturnsCopy(t *testing.T) {
	reg := service.DefaultSignalRegistry()

	all := reg.All()
	all[0] = model.NewSignal("tampered", "Tampered", 100)

	assert.Equal(t, "criminal_felony_recent", reg.All()[0].ID())
}

func TestSignalRegistry_TolerantLookups(t *testing.T) {
	reg := service.DefaultSignalRegistry()

	_, ok := reg.Lookup("does_not_exist")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.WeightOf("does_not_exist"))
	assert.Equal(t, "does_not_exist", reg.LabelOf("does_not_exist"))

	s, ok := reg.Lookup("pattern_reform")
	require.True(t, ok)
	assert.True(t, s.Mitigating())
	assert.Equal(t, -5, reg.WeightOf("pattern_reform"))
	assert.Equal(t, "SSN Mismatch", reg.LabelOf("ssn_mismatch"))
}

func TestNewSignalRegistry_Rejects(t *testing.T) {
	t.Run("duplicate ID", func(t *testing.T) {
		_, err := service.NewSignalRegistry(
			model.NewSignal("a", "A", 1),
			model.NewSignal("a", "A again", 2),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("blank ID", func(t *testing.T) {
		_, err := service.NewSignalRegistry(model.NewSignal("  ", "Blank", 1))
		require.Error(t, err)
	})
}

func TestSignalRegistry_Order(t *testing.T) {
	reg := service.DefaultSignalRegistry()

	input := []string{"zzz_unknown", "pattern_reform", "aaa_unknown", "criminal_felony_old", "criminal_felony_recent"}
	ordered := reg.Order(input)

	assert.Equal(t, []string{
		"criminal_felony_recent",
		"criminal_felony_old",
		"pattern_reform",
		"aaa_unknown",
		"zzz_unknown",
	}, ordered)
	assert.Equal(t, "zzz_unknown", input[0], "input must not be reordered in place")
}
