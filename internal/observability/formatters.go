// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMetadata outputs a summary of the ingested job posting.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	if meta.URL != "" {
		url := meta.URL
		if len(url) > 50 {
			url = url[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Source:   %s\n", url))
	}
	sb.WriteString(fmt.Sprintf("Words:    %d\n", meta.WordCount))
	sb.WriteString(fmt.Sprintf("Chars:    %d", meta.CharCount))

	p.printBox("JOB POSTING", sb.String())
}

// PrintScanResult outputs a human-readable summary of a lexical scan.
func (p *Printer) PrintScanResult(result *types.ScanResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:    %d%%  (%d of %d keywords)\n", result.MatchPercentage, result.MatchedCount, result.TotalKeywords))
	sb.WriteString("\n")

	if len(result.Matched) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(result.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			kw := result.Matched[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s (%d)\n", kw.Keyword, kw.Count))
		}
		if len(result.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matched)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Missing) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			kw := result.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", kw.Keyword))
			if kw.SuggestedPlacement != "" {
				placement := kw.SuggestedPlacement
				if len(placement) > 48 {
					placement = placement[:45] + "..."
				}
				sb.WriteString(fmt.Sprintf("    → %s\n", placement))
			}
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD SCAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEnhancedScanResult outputs a human-readable summary of a semantic scan.
func (p *Printer) PrintEnhancedScanResult(result *types.EnhancedScanResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:    %d%%  (%d matched, %d partial, %d missing)\n",
		result.MatchPercentage, result.MatchedCount, result.PartialCount, result.MissingCount))
	sb.WriteString("\n")

	p.writeEnhancedBucket(&sb, "Matched", "✓", result.Matched)
	p.writeEnhancedBucket(&sb, "Partial", "~", result.Partial)
	p.writeEnhancedBucket(&sb, "Missing", "✗", result.Missing)

	p.printBox("SEMANTIC SCAN", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) writeEnhancedBucket(sb *strings.Builder, label, marker string, results []types.EnhancedKeywordResult) {
	if len(results) == 0 {
		return
	}

	sb.WriteString(label + ":\n")
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := results[i]
		sb.WriteString(fmt.Sprintf("  %s %s (%.2f)\n", marker, kw.Keyword, kw.Similarity))
		if kw.SuggestedPlacement != "" {
			placement := kw.SuggestedPlacement
			if len(placement) > 48 {
				placement = placement[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    → %s\n", placement))
		}
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(results)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
