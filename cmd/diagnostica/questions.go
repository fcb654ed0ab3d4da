package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/recommend"
)

func newQuestionsCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Stampa il questionario",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions := assessment.DefaultQuestionnaire()

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(questions)
			}

			for _, q := range questions {
				fmt.Printf("%s [%s]\n  %s\n", q.ID, q.Type, q.Text)
				for i, opt := range q.Options {
					fmt.Printf("    %d. %s\n", i, opt)
				}
				if q.Type == assessment.QuestionScale {
					fmt.Printf("    scala %d-%d\n", q.Min, q.Max)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Stampa il catalogo dei libri consigliabili",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := recommend.DefaultCatalog()

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}

			for _, b := range catalog {
				fmt.Printf("%s (priorità %d)\n", b.Title, b.Priority)
				fmt.Printf("  aree: %v  interessi: %v  livelli: %v\n", b.Domains, b.Interests, b.Levels)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	return cmd
}
