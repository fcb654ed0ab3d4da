package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/config"
	"github.com/diagnostica/diagnostica/pkg/recommend"
	"github.com/diagnostica/diagnostica/pkg/report"
	"github.com/diagnostica/diagnostica/pkg/verdict"
)

func newAssessCmd() *cobra.Command {
	var (
		answersPath string
		configPath  string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Valuta un file di risposte e stampa il referto",
		Long:  `Legge le risposte JSON del questionario, calcola punteggi, verdetto e letture consigliate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(assessOpts{
				answersPath: answersPath,
				configPath:  configPath,
				outputFmt:   outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "File JSON con le risposte (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "File di configurazione (default: cerca .diagnostica/config.yaml)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

type assessOpts struct {
	answersPath string
	configPath  string
	outputFmt   string
}

func runAssess(opts assessOpts) error {
	data, err := os.ReadFile(opts.answersPath)
	if err != nil {
		return fmt.Errorf("reading answers: %w", err)
	}

	var answers assessment.AnswerMap
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("parsing answers: %w", err)
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cwd, _ := os.Getwd()
		cfgPath = config.FindConfigFile(cwd)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	engine := assessment.NewEngine(
		assessment.DefaultMatrix(),
		assessment.Breakpoints{
			NoviceMax:       cfg.Scoring.NoviceMax,
			PractitionerMax: cfg.Scoring.PractitionerMax,
		},
		cfg.Scoring.SecondaryWindow,
	)
	ranker := recommend.NewRanker(recommend.Weights{
		PriorityWeight: cfg.Recommend.PriorityWeight,
		DomainWeight:   cfg.Recommend.DomainWeight,
		InterestWeight: cfg.Recommend.InterestWeight,
		TieBoost:       cfg.Recommend.TieBoost,
		MaxResults:     cfg.Recommend.MaxResults,
	})

	rules := verdict.DefaultRules()
	if err := verdict.ValidateRules(rules); err != nil {
		return fmt.Errorf("verdict rules: %w", err)
	}

	totals := engine.Score(answers)
	rep := &report.Report{
		UUID:            uuid.New().String(),
		Scores:          totals,
		Recommendations: ranker.Rank(totals, recommend.DefaultCatalog()),
		Verdict:         verdict.Evaluate(answers, rules),
	}

	var renderer report.Renderer
	switch opts.outputFmt {
	case "json":
		renderer = &report.JSONRenderer{}
	default:
		renderer = &report.TerminalRenderer{}
	}
	return renderer.Render(os.Stdout, rep)
}
