package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestAssessCmdFlags(t *testing.T) {
	cmd := newAssessCmd()
	f := cmd.Flags()

	// Test default output format
	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}

	// Test that flags exist
	for _, flag := range []string{"answers", "config", "output"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestQuestionsCmdFlags(t *testing.T) {
	cmd := newQuestionsCmd()
	if cmd.Flags().Lookup("output") == nil {
		t.Error("missing flag: output")
	}
}

func TestCatalogCmdFlags(t *testing.T) {
	cmd := newCatalogCmd()
	if cmd.Flags().Lookup("output") == nil {
		t.Error("missing flag: output")
	}
}

func TestRunAssess(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.json")
	answers := map[string]any{"d1": 3, "d9": 3}
	data, err := json.Marshal(answers)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(answersPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runAssess(assessOpts{answersPath: answersPath, outputFmt: "json"}); err != nil {
		t.Errorf("runAssess: %v", err)
	}
}

func TestRunAssessMissingFile(t *testing.T) {
	err := runAssess(assessOpts{answersPath: filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Error("expected error for missing answers file")
	}
}
