package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_MixedScriptProducesAllOutputFiles(t *testing.T) {
	outputDir := t.TempDir()
	input := filepath.Join("..", "..", "..", "testdata", "scripts", "mixed.sas")

	if err := run(input, outputDir, false, false, "", nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"mapping_mixed.csv", "macros_mixed.csv", "residuals_mixed.txt", "summary_mixed.txt", "flow_mixed.dot"} {
		path := filepath.Join(outputDir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}

	mapping, err := os.ReadFile(filepath.Join(outputDir, "mapping_mixed.csv"))
	if err != nil {
		t.Fatalf("read mapping: %v", err)
	}
	if !strings.Contains(string(mapping), "DATASTEP") {
		t.Errorf("expected mapping csv to contain a DATASTEP row, got:\n%s", mapping)
	}
	if !strings.Contains(string(mapping), "PROCIMPORT") || !strings.Contains(string(mapping), "PROCEXPORT") {
		t.Errorf("expected mapping csv to contain PROCIMPORT/PROCEXPORT rows, got:\n%s", mapping)
	}
}

func TestRun_KeywordFlagRecognizesAdditionalUserMacro(t *testing.T) {
	outputDir := t.TempDir()
	scriptDir := t.TempDir()
	scriptPath := filepath.Join(scriptDir, "custom_macro.sas")
	content := "%sitehook(work.raw, work.clean);\n"
	if err := os.WriteFile(scriptPath, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := run(scriptPath, outputDir, false, false, "", nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	withoutKeyword, err := os.ReadFile(filepath.Join(outputDir, "mapping_custom_macro.csv"))
	if err != nil {
		t.Fatalf("read mapping: %v", err)
	}
	if strings.Contains(string(withoutKeyword), "MACROCALLUSERDEF") {
		t.Fatalf("expected sitehook to go unrecognized without --keyword, got:\n%s", withoutKeyword)
	}

	if err := run(scriptPath, outputDir, false, false, "", []string{"sitehook"}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	withKeyword, err := os.ReadFile(filepath.Join(outputDir, "mapping_custom_macro.csv"))
	if err != nil {
		t.Fatalf("read mapping: %v", err)
	}
	if !strings.Contains(string(withKeyword), "MACROCALLUSERDEF") {
		t.Errorf("expected mapping csv to contain a user-macro-call row once sitehook is registered, got:\n%s", withKeyword)
	}
}
