package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_DataStepLogProducesOutputFiles(t *testing.T) {
	outputDir := t.TempDir()
	input := filepath.Join("..", "..", "..", "testdata", "logs", "e4_datastep.log")

	if err := run(input, outputDir, false, false); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for _, name := range []string{"mapping_e4_datastep.csv", "summary_e4_datastep.txt", "flow_e4_datastep.dot"} {
		path := filepath.Join(outputDir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output file %s: %v", name, err)
		}
	}

	mapping, err := os.ReadFile(filepath.Join(outputDir, "mapping_e4_datastep.csv"))
	if err != nil {
		t.Fatalf("read mapping: %v", err)
	}
	if !strings.Contains(string(mapping), "DATASTEP") {
		t.Errorf("expected mapping csv to contain a DATASTEP row, got:\n%s", mapping)
	}
	if !strings.Contains(string(mapping), "WORK.IN1") || !strings.Contains(string(mapping), "WORK.OUT1") {
		t.Errorf("expected mapping csv to contain WORK.IN1/WORK.OUT1, got:\n%s", mapping)
	}
}

func TestRun_LibrefAssignLogProducesNoGraphEdges(t *testing.T) {
	outputDir := t.TempDir()
	input := filepath.Join("..", "..", "..", "testdata", "logs", "e5_libref_assign.log")

	if err := run(input, outputDir, false, false); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	dot, err := os.ReadFile(filepath.Join(outputDir, "flow_e5_libref_assign.dot"))
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if strings.Contains(string(dot), "->") {
		t.Errorf("expected no edges for a libref-assign-only log, got:\n%s", dot)
	}
}
