package linebuf

import "testing"

func TestBlank_PreservesLineCount(t *testing.T) {
	buf := New([]string{"data a;", "  set b;", "run;", "proc sort data=a;", "run;"})
	before := buf.Len()

	buf.Blank(Span{Start: 0, End: 3})
	if buf.Len() != before {
		t.Fatalf("Blank changed line count: before=%d after=%d", before, buf.Len())
	}
	for i := 0; i < 3; i++ {
		if buf.Line(i) != "" {
			t.Errorf("expected line %d blanked, got %q", i, buf.Line(i))
		}
	}
	if buf.Line(3) != "proc sort data=a;" {
		t.Errorf("expected line 3 untouched, got %q", buf.Line(3))
	}
}

func TestBlank_ClampsOutOfRangeSpans(t *testing.T) {
	buf := New([]string{"a", "b"})
	buf.Blank(Span{Start: -3, End: 10})
	if buf.Len() != 2 {
		t.Fatalf("expected length 2, got %d", buf.Len())
	}
	if buf.NonBlankCount() != 0 {
		t.Errorf("expected all lines blanked, got %d non-blank", buf.NonBlankCount())
	}
}

func TestJoined_ReassemblesSpanWithNewlines(t *testing.T) {
	buf := New([]string{"proc sql;", "create table a as", "select * from b;", "quit;"})
	got := buf.Joined(1, 3)
	want := "create table a as\nselect * from b;"
	if got != want {
		t.Errorf("Joined(1,3) = %q, want %q", got, want)
	}
}

func TestNonBlankCount_IgnoresWhitespaceOnlyLines(t *testing.T) {
	buf := New([]string{"data a;", "   ", "", "run;"})
	if got := buf.NonBlankCount(); got != 2 {
		t.Errorf("NonBlankCount = %d, want 2", got)
	}
}
