package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/service"
)

var validate = validator.New()

// Validate checks a request DTO against its `validate` tags.
func Validate(req any) error {
	return validate.Struct(req)
}

// --- Requests ---

// EvaluateSelectionRequest scores an ad-hoc selection without a session.
type EvaluateSelectionRequest struct {
	CandidateID string   `json:"candidate_id" validate:"required,max=128"`
	SignalIDs   []string `json:"signal_ids" validate:"max=64,dive,required,max=64"`
}

// CreateSessionRequest opens a session. A blank candidate starts as Candidate_001.
type CreateSessionRequest struct {
	CandidateID string `json:"candidate_id" validate:"max=128"`
}

// GetSessionRequest identifies a session.
type GetSessionRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

// SetCandidateRequest rebinds a session to another candidate.
type SetCandidateRequest struct {
	CandidateID string    `json:"candidate_id" validate:"required,max=128"`
	SessionID   uuid.UUID `json:"session_id" validate:"required"`
}

// ToggleSignalRequest flips one signal in a session.
type ToggleSignalRequest struct {
	SignalID  string    `json:"signal_id" validate:"required,max=64"`
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

// LoadProfileRequest replaces a session's state with a synthetic profile.
type LoadProfileRequest struct {
	Index     *int      `json:"index" validate:"required,gte=0"`
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

// ExportSelectionRequest renders a session's evaluation for download.
type ExportSelectionRequest struct {
	Format    string    `json:"format" validate:"required,oneof=csv svg dot CSV SVG DOT"`
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

// --- Responses ---

// SignalResponse is one catalog entry.
type SignalResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Weight     int    `json:"weight"`
	Mitigating bool   `json:"mitigating"`
}

// GraphNodeResponse is a renderer-ready node.
type GraphNodeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Color string `json:"color"`
}

// GraphEdgeResponse is a renderer-ready edge.
type GraphEdgeResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// GraphResponse is the graph renderer contract.
type GraphResponse struct {
	Nodes []GraphNodeResponse `json:"nodes"`
	Edges []GraphEdgeResponse `json:"edges"`
}

// EvaluationResponse is the output of every evaluating use case.
type EvaluationResponse struct {
	CandidateID string        `json:"candidate_id"`
	Tier        string        `json:"tier"`
	Feedback    string        `json:"feedback"`
	SignalIDs   []string      `json:"signal_ids"`
	Graph       GraphResponse `json:"graph"`
	Score       int           `json:"score"`
}

// SessionResponse is a session together with its current evaluation.
type SessionResponse struct {
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	Evaluation EvaluationResponse `json:"evaluation"`
	ID         uuid.UUID          `json:"id"`
	Version    int                `json:"version"`
}

// ProfileResponse is one synthetic profile.
type ProfileResponse struct {
	CandidateID string   `json:"candidate_id"`
	SignalIDs   []string `json:"signal_ids"`
	Index       int      `json:"index"`
}

// ProfileScoreResponse is one bar of the comparison chart.
type ProfileScoreResponse struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ExportResponse is a rendered file.
type ExportResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

// --- Mapping ---

// FromSignal maps a catalog entry.
func FromSignal(s model.Signal) SignalResponse {
	return SignalResponse{
		ID:         s.ID(),
		Label:      s.Label(),
		Weight:     s.Weight(),
		Mitigating: s.Mitigating(),
	}
}

// FromEvaluation maps an evaluation, attaching node colours and tier feedback.
func FromEvaluation(e model.Evaluation) EvaluationResponse {
	g := GraphResponse{
		Nodes: make([]GraphNodeResponse, 0, len(e.Graph.Nodes)),
		Edges: make([]GraphEdgeResponse, 0, len(e.Graph.Edges)),
	}
	for _, n := range e.Graph.Nodes {
		g.Nodes = append(g.Nodes, GraphNodeResponse{
			ID:    n.ID,
			Label: n.Label,
			Kind:  n.Kind.String(),
			Color: n.Kind.Color(),
		})
	}
	for _, edge := range e.Graph.Edges {
		g.Edges = append(g.Edges, GraphEdgeResponse{From: edge.From, To: edge.To, Weight: edge.Weight})
	}

	ids := e.SignalIDs
	if ids == nil {
		ids = []string{}
	}

	return EvaluationResponse{
		CandidateID: e.CandidateID,
		SignalIDs:   ids,
		Score:       e.Score,
		Tier:        e.Tier.String(),
		Feedback:    e.Tier.Feedback(),
		Graph:       g,
	}
}

// FromSession maps a session and its evaluation.
func FromSession(s *model.Session, e model.Evaluation) SessionResponse {
	return SessionResponse{
		ID:         s.ID(),
		Version:    s.Version(),
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
		Evaluation: FromEvaluation(e),
	}
}

// FromProfile maps a synthetic profile at its catalog index.
func FromProfile(index int, p model.SyntheticProfile) ProfileResponse {
	return ProfileResponse{Index: index, CandidateID: p.CandidateID(), SignalIDs: p.SignalIDs()}
}

// FromProfileScore maps one comparison bar.
func FromProfileScore(s service.ProfileScore) ProfileScoreResponse {
	return ProfileScoreResponse{Name: s.Name, Score: s.Score}
}
