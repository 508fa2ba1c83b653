package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tristan-harris/cbr/internal/domain"
)

var (
	renamedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	trashedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	arrowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
)

// Reporter renders per-entry outcomes and dry-run previews. Color is
// decided once at construction; when disabled the same text renders plain.
type Reporter struct {
	out   io.Writer
	color bool
}

func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{out: out, color: color}
}

// NewDiscardReporter returns a reporter that renders nothing.
func NewDiscardReporter() *Reporter {
	return &Reporter{out: io.Discard}
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Result renders one completed operation.
func (r *Reporter) Result(result domain.OpResult) {
	switch result.Kind {
	case domain.OpRenamed:
		fmt.Fprintf(r.out, "%s '%s'\n", r.style(renamedStyle, "Renamed"), result.Original)
		fmt.Fprintf(r.out, "%s '%s'\n", r.style(arrowStyle, "     ->"), result.Target)
	case domain.OpRemoved:
		fmt.Fprintf(r.out, "%s '%s'\n", r.style(removedStyle, "Removed"), result.Original)
	case domain.OpTrashed:
		fmt.Fprintf(r.out, "%s '%s'\n", r.style(trashedStyle, "Trashed"), result.Original)
	}
}

// Preview renders what a run would do, without executing it. Rename
// targets are shown with the changed characters highlighted.
func (r *Reporter) Preview(actions []domain.Action) {
	for _, action := range actions {
		switch action.Kind {
		case domain.ActionUnchanged:
			// not shown
		case domain.ActionDelete:
			fmt.Fprintf(r.out, "%s '%s'\n", r.style(removedStyle, "Would remove"), action.Original)
		case domain.ActionTrash:
			fmt.Fprintf(r.out, "%s '%s'\n", r.style(trashedStyle, "Would trash"), action.Original)
		case domain.ActionRename, domain.ActionStagedRename:
			fmt.Fprintf(r.out, "%s '%s'\n", r.style(renamedStyle, "Would rename"), action.Original)
			fmt.Fprintf(r.out, "%s '%s'\n", r.style(arrowStyle, "          ->"), r.highlight(action.Original, action.Target))
		}
	}
}

// highlight renders target with characters absent from original in green
// and characters dropped from original struck through in red.
func (r *Reporter) highlight(original, target string) string {
	if !r.color {
		return target
	}
	var out string
	for _, seg := range domain.DiffNames(original, target) {
		switch seg.Kind {
		case domain.SegmentSame:
			out += seg.Text
		case domain.SegmentAdded:
			out += addedStyle.Render(seg.Text)
		case domain.SegmentRemoved:
			out += droppedStyle.Render(seg.Text)
		}
	}
	return out
}
