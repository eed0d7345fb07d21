package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/signalgraph/internal/application/dto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvaluateCommand_CSV(t *testing.T) {
	out, err := run(t, "evaluate",
		"--candidate", "Candidate_X",
		"--signals", "ssn_mismatch,criminal_felony_recent",
		"--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Candidate ID,Flags\nCandidate_X,criminal_felony_recent,ssn_mismatch", out)
}

func TestEvaluateCommand_JSON(t *testing.T) {
	out, err := run(t, "evaluate", "--profile", "1", "-o", "json")
	require.NoError(t, err)

	var result dto.EvaluationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Candidate_Synth_002", result.CandidateID)
	assert.Equal(t, 21, result.Score)
	assert.Equal(t, "HIGH", result.Tier)
}

func TestEvaluateCommand_Text(t *testing.T) {
	out, err := run(t, "evaluate", "--signals", "pattern_reform")
	require.NoError(t, err)
	assert.Contains(t, out, "Candidate_001")
	assert.Contains(t, out, "-5")
	assert.Contains(t, out, "LOW")
	assert.Contains(t, out, "Pattern of Reform")
}

func TestEvaluateCommand_DOT(t *testing.T) {
	out, err := run(t, "evaluate", "--profile", "2", "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph SignalGraph {"))
}

func TestEvaluateCommand_Errors(t *testing.T) {
	_, err := run(t, "evaluate", "--profile", "9")
	require.Error(t, err)

	_, err = run(t, "evaluate", "--candidate", " ")
	require.Error(t, err)

	_, err = run(t, "evaluate", "--format", "pdf")
	require.Error(t, err)
}

func TestSignalsCommand(t *testing.T) {
	out, err := run(t, "signals")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Contains(t, lines[1], "criminal_felony_recent")
	assert.Contains(t, lines[11], "pattern_reform")
}

func TestProfilesCommand(t *testing.T) {
	out, err := run(t, "profiles")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Candidate_Synth_001")
	assert.Contains(t, lines[1], "21")
}
