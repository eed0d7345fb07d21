package service

import (
	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

// Evaluator defines the scoring contract used by the application layer.
type Evaluator interface {
	Score(signalIDs []string) int
	Classify(score int) valueobject.RiskTier
	BuildGraph(candidateID string, signalIDs []string) model.Graph
	Evaluate(selection *model.SelectionSet) model.Evaluation
}

// RiskEvaluator scores selections against a SignalRegistry. All methods are
// total: unknown signal IDs weigh 0 and are labelled by their raw ID.
type RiskEvaluator struct {
	registry *SignalRegistry
}

// NewRiskEvaluator creates a RiskEvaluator. A nil registry means the default catalog.
func NewRiskEvaluator(registry *SignalRegistry) *RiskEvaluator {
	if registry == nil {
		registry = DefaultSignalRegistry()
	}
	return &RiskEvaluator{registry: registry}
}

// Registry returns the catalog the evaluator scores against.
func (e *RiskEvaluator) Registry() *SignalRegistry {
	return e.registry
}

// Score sums the weights of the distinct IDs in signalIDs.
func (e *RiskEvaluator) Score(signalIDs []string) int {
	score := 0
	for _, id := range distinct(signalIDs) {
		score += e.registry.WeightOf(id)
	}
	return score
}

// Classify maps a score to its risk tier.
func (e *RiskEvaluator) Classify(score int) valueobject.RiskTier {
	return valueobject.RiskTierFromScore(score)
}

// BuildGraph returns the star graph for candidateID: the entity node first,
// then one signal node and one edge per distinct selected ID in registry order.
func (e *RiskEvaluator) BuildGraph(candidateID string, signalIDs []string) model.Graph {
	ids := e.registry.Order(distinct(signalIDs))

	g := model.Graph{
		Nodes: make([]model.GraphNode, 0, len(ids)+1),
		Edges: make([]model.GraphEdge, 0, len(ids)),
	}
	g.Nodes = append(g.Nodes, model.GraphNode{
		ID:    candidateID,
		Label: candidateID,
		Kind:  valueobject.NodeKindEntity,
	})

	for _, id := range ids {
		g.Nodes = append(g.Nodes, model.GraphNode{
			ID:    id,
			Label: e.registry.LabelOf(id),
			Kind:  valueobject.NodeKindSignal,
		})
		g.Edges = append(g.Edges, model.GraphEdge{
			From:   candidateID,
			To:     id,
			Weight: edgeWeight(e.registry.WeightOf(id)),
		})
	}
	return g
}

// Evaluate scores, classifies and graphs a selection in one pass.
func (e *RiskEvaluator) Evaluate(selection *model.SelectionSet) model.Evaluation {
	ids := selection.IDs()
	score := e.Score(ids)

	return model.Evaluation{
		CandidateID: selection.CandidateID(),
		SignalIDs:   e.registry.Order(ids),
		Score:       score,
		Tier:        e.Classify(score),
		Graph:       e.BuildGraph(selection.CandidateID(), ids),
	}
}

// edgeWeight is the magnitude of a signal's weight; zero-weight signals
// still get a visible edge.
func edgeWeight(w int) int {
	if w < 0 {
		w = -w
	}
	if w == 0 {
		return 1
	}
	return w
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
