// Package main provides the diagnostica CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "diagnostica",
		Short: "Diagnosi di maturità marketing da riga di comando",
		Long: `Diagnostica valuta le risposte di un questionario di marketing, classifica
la maturità, individua le aree dominanti e consiglia le letture adatte.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newAssessCmd(),
		newQuestionsCmd(),
		newCatalogCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
