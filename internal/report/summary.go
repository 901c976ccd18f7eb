package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant-archive/lineagecli/internal/logextract"
	"github.com/viant-archive/lineagecli/internal/script"
)

// BuildSummary computes the per-file report for script mode: line count,
// residual-extraction ratio, comment-line ratio, and counts by component
// kind (descending).
//
// originalNonBlank/afterNonBlank are the buffer's NonBlankCount() taken
// before and after running script.Extract.
func BuildSummary(lineCount, originalNonBlank, afterNonBlank int, components []script.Component) Summary {
	var residualRatio float64
	if originalNonBlank > 0 {
		residualRatio = float64(originalNonBlank-afterNonBlank) / float64(originalNonBlank)
	}

	commentLines := 0
	counts := map[string]int{}
	for _, c := range components {
		counts[string(c.Kind)]++
		if c.Kind == script.CommentBlock || c.Kind == script.CommentInline {
			commentLines += c.EndLine - c.StartLine
		}
	}

	var commentRatio float64
	if originalNonBlank > 0 {
		commentRatio = float64(commentLines) / float64(originalNonBlank)
	}

	kindCounts := make([]KindCount, 0, len(counts))
	for k, n := range counts {
		kindCounts = append(kindCounts, KindCount{Kind: k, Count: n})
	}
	sort.Slice(kindCounts, func(i, j int) bool {
		if kindCounts[i].Count != kindCounts[j].Count {
			return kindCounts[i].Count > kindCounts[j].Count
		}
		return kindCounts[i].Kind < kindCounts[j].Kind
	})

	return Summary{
		LineCount:        lineCount,
		ResidualRatio:    residualRatio,
		CommentLineRatio: commentRatio,
		KindCounts:       kindCounts,
	}
}

// BuildLogSummary computes the per-file report for log mode: line count and
// counts by segmented-component kind and grouped-procedure kind. Log mode
// has no residual/comment notion (there is no blanking pass to measure
// coverage against), so those two fields are left at zero.
func BuildLogSummary(lineCount int, comps []logextract.Component, procedures []logextract.Procedure) Summary {
	counts := map[string]int{}
	for _, c := range comps {
		counts[string(c.Kind)]++
	}
	for _, p := range procedures {
		counts["Procedure:"+p.Kind]++
	}

	kindCounts := make([]KindCount, 0, len(counts))
	for k, n := range counts {
		kindCounts = append(kindCounts, KindCount{Kind: k, Count: n})
	}
	sort.Slice(kindCounts, func(i, j int) bool {
		if kindCounts[i].Count != kindCounts[j].Count {
			return kindCounts[i].Count > kindCounts[j].Count
		}
		return kindCounts[i].Kind < kindCounts[j].Kind
	})

	return Summary{
		LineCount:  lineCount,
		KindCounts: kindCounts,
	}
}

// FormatSummary renders a Summary as the human-readable text written to
// summary_NAME.txt.
func FormatSummary(name string, s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summary for %s\n", name)
	fmt.Fprintf(&b, "Line count: %d\n", s.LineCount)
	fmt.Fprintf(&b, "Residual ratio: %.4f\n", s.ResidualRatio)
	fmt.Fprintf(&b, "Comment line ratio: %.4f\n", s.CommentLineRatio)
	fmt.Fprintf(&b, "Component counts:\n")
	for _, kc := range s.KindCounts {
		fmt.Fprintf(&b, "  %-20s %d\n", kc.Kind, kc.Count)
	}
	if len(s.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings:\n")
		for _, w := range s.Warnings {
			fmt.Fprintf(&b, "  %s\n", w)
		}
	}
	return b.String()
}
