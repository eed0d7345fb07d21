package grpc

import "github.com/bibbank/signalgraph/internal/application/dto"

// Proto-aligned request/response message types.

type ListSignalsRequest struct{}

type ListSignalsResponse struct {
	Signals []*SignalMsg `json:"signals"`
}

// SignalMsg represents the proto Signal message.
type SignalMsg struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Weight     int32  `json:"weight"`
	Mitigating bool   `json:"mitigating"`
}

type EvaluateSelectionRequest struct {
	CandidateID string   `json:"candidate_id"`
	SignalIDs   []string `json:"signal_ids"`
}

type EvaluateSelectionResponse struct {
	Evaluation *EvaluationMsg `json:"evaluation"`
}

// GraphNodeMsg represents the proto GraphNode message.
type GraphNodeMsg struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	Color string `json:"color"`
}

// GraphEdgeMsg represents the proto GraphEdge message.
type GraphEdgeMsg struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int32  `json:"weight"`
}

// EvaluationMsg represents the proto Evaluation message.
type EvaluationMsg struct {
	CandidateID string          `json:"candidate_id"`
	Tier        string          `json:"tier"`
	Feedback    string          `json:"feedback"`
	SignalIDs   []string        `json:"signal_ids"`
	Nodes       []*GraphNodeMsg `json:"nodes"`
	Edges       []*GraphEdgeMsg `json:"edges"`
	Score       int32           `json:"score"`
}

// SessionMsg represents the proto Session message.
type SessionMsg struct {
	Evaluation *EvaluationMsg `json:"evaluation"`
	ID         string         `json:"id"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
	Version    int32          `json:"version"`
}

type SessionResponse struct {
	Session *SessionMsg `json:"session"`
}

type CreateSessionRequest struct {
	CandidateID string `json:"candidate_id"`
}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type DeleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

type DeleteSessionResponse struct{}

type SetCandidateRequest struct {
	SessionID   string `json:"session_id"`
	CandidateID string `json:"candidate_id"`
}

type ToggleSignalRequest struct {
	SessionID string `json:"session_id"`
	SignalID  string `json:"signal_id"`
}

type LoadProfileRequest struct {
	SessionID string `json:"session_id"`
	Index     int32  `json:"index"`
}

type ClearSelectionRequest struct {
	SessionID string `json:"session_id"`
}

type ListProfilesRequest struct{}

// ProfileMsg represents the proto SyntheticProfile message.
type ProfileMsg struct {
	CandidateID string   `json:"candidate_id"`
	SignalIDs   []string `json:"signal_ids"`
	Index       int32    `json:"index"`
}

type ListProfilesResponse struct {
	Profiles []*ProfileMsg `json:"profiles"`
}

type CompareProfilesRequest struct{}

// ProfileScoreMsg is one bar of the comparison chart.
type ProfileScoreMsg struct {
	Name  string `json:"name"`
	Score int32  `json:"score"`
}

type CompareProfilesResponse struct {
	Scores []*ProfileScoreMsg `json:"scores"`
}

type ExportSelectionRequest struct {
	SessionID string `json:"session_id"`
	Format    string `json:"format"`
}

type ExportSelectionResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

func toEvaluationMsg(e dto.EvaluationResponse) *EvaluationMsg {
	msg := &EvaluationMsg{
		CandidateID: e.CandidateID,
		Score:       int32(e.Score),
		Tier:        e.Tier,
		Feedback:    e.Feedback,
		SignalIDs:   e.SignalIDs,
		Nodes:       make([]*GraphNodeMsg, 0, len(e.Graph.Nodes)),
		Edges:       make([]*GraphEdgeMsg, 0, len(e.Graph.Edges)),
	}
	for _, n := range e.Graph.Nodes {
		msg.Nodes = append(msg.Nodes, &GraphNodeMsg{ID: n.ID, Label: n.Label, Kind: n.Kind, Color: n.Color})
	}
	for _, edge := range e.Graph.Edges {
		msg.Edges = append(msg.Edges, &GraphEdgeMsg{From: edge.From, To: edge.To, Weight: int32(edge.Weight)})
	}
	return msg
}

func toSessionResponse(s dto.SessionResponse) *SessionResponse {
	return &SessionResponse{
		Session: &SessionMsg{
			ID:         s.ID.String(),
			Version:    int32(s.Version),
			CreatedAt:  s.CreatedAt.Format(timeLayout),
			UpdatedAt:  s.UpdatedAt.Format(timeLayout),
			Evaluation: toEvaluationMsg(s.Evaluation),
		},
	}
}
