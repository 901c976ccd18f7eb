package script

import (
	"testing"

	"github.com/viant-archive/lineagecli/internal/linebuf"
)

func TestExtractSymput_SingleLine(t *testing.T) {
	buf := linebuf.New([]string{`call symput('yr', put(year(today()), 4.));`})
	comps := extractSymput(buf)
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	if comps[0].MacroName != "yr" {
		t.Errorf("expected macro name yr, got %q", comps[0].MacroName)
	}
}

func TestExtractSymput_MultiLine(t *testing.T) {
	buf := linebuf.New([]string{
		`call symput('region',`,
		`  trim(left(region_name)));`,
	})
	comps := extractSymput(buf)
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	if comps[0].MacroName != "region" {
		t.Errorf("expected macro name region, got %q", comps[0].MacroName)
	}
	if comps[0].EndLine != 2 {
		t.Errorf("expected component to span both lines, got EndLine %d", comps[0].EndLine)
	}
}
