package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bibbank/signalgraph/internal/application/dto"
	"github.com/bibbank/signalgraph/internal/domain/model"
	"github.com/bibbank/signalgraph/internal/domain/service"
	"github.com/bibbank/signalgraph/internal/domain/valueobject"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tierStyles  = map[string]lipgloss.Style{
		valueobject.RiskTierHigh.String():     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		valueobject.RiskTierModerate.String(): lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		valueobject.RiskTierLow.String():      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

func newEvaluateCmd() *cobra.Command {
	var (
		candidateID string
		signalIDs   []string
		profile     int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a signal selection and print or export the result",
		Example: `  signalgraphd evaluate --candidate Candidate_001 --signals ssn_mismatch,alias_mismatch
  signalgraphd evaluate --profile 1 --format dot`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				selection *model.SelectionSet
				err       error
			)
			if cmd.Flags().Changed("profile") {
				selection, err = service.DefaultProfileCatalog().Load(profile)
			} else {
				selection, err = model.NewSelectionSet(candidateID, signalIDs...)
			}
			if err != nil {
				return err
			}

			evaluation := service.NewRiskEvaluator(nil).Evaluate(selection)
			return writeEvaluation(cmd.OutOrStdout(), evaluation, format)
		},
	}

	cmd.Flags().StringVar(&candidateID, "candidate", model.DefaultCandidateID, "candidate identifier")
	cmd.Flags().StringSliceVar(&signalIDs, "signals", nil, "comma-separated signal ids")
	cmd.Flags().IntVar(&profile, "profile", 0, "evaluate a synthetic profile by index instead")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json, csv, svg or dot")
	return cmd
}

func writeEvaluation(w io.Writer, e model.Evaluation, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		return writeEvaluationText(w, dto.FromEvaluation(e))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromEvaluation(e))
	}

	exportFormat, err := valueobject.NewExportFormat(format)
	if err != nil {
		return err
	}
	content, err := service.NewExporter(nil).Export(e, exportFormat)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}

func writeEvaluationText(w io.Writer, e dto.EvaluationResponse) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", headerStyle.Render("Candidate:"), e.CandidateID)
	fmt.Fprintf(&sb, "%s %d (%s)\n", headerStyle.Render("Risk Score:"), e.Score, tierStyles[e.Tier].Render(e.Tier))
	fmt.Fprintf(&sb, "%s\n", dimStyle.Render(e.Feedback))

	if len(e.SignalIDs) > 0 {
		sb.WriteString("\n")
		registry := service.DefaultSignalRegistry()
		for _, id := range e.SignalIDs {
			fmt.Fprintf(&sb, "  %-24s %-22s %+d\n", id, registry.LabelOf(id), registry.WeightOf(id))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func newSignalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signals",
		Short: "List the signal catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sb strings.Builder
			fmt.Fprintf(&sb, "%s\n", headerStyle.Render(fmt.Sprintf("%-24s %-22s %s", "ID", "LABEL", "WEIGHT")))
			for _, s := range service.DefaultSignalRegistry().All() {
				fmt.Fprintf(&sb, "%-24s %-22s %+d\n", s.ID(), s.Label(), s.Weight())
			}
			_, err := io.WriteString(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the synthetic profiles with their scores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := service.DefaultProfileCatalog()
			evaluator := service.NewRiskEvaluator(nil)

			var sb strings.Builder
			for i := range catalog.Len() {
				selection, err := catalog.Load(i)
				if err != nil {
					return err
				}
				e := evaluator.Evaluate(selection)
				fmt.Fprintf(&sb, "%d  %-20s %3d  %-8s %s\n",
					i, e.CandidateID, e.Score, tierStyles[e.Tier.String()].Render(e.Tier.String()),
					strings.Join(e.SignalIDs, ","))
			}
			_, err := io.WriteString(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
