package formatter

import (
	"strings"
	"time"

	"github.com/evanmoss/dayboard/internal/domain"
)

// RenderNext renders the single next-up task, or a calm empty state.
func RenderNext(rep domain.Representative, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Next up"))
	b.WriteString("\n")

	if rep == nil {
		b.WriteString(Dim("All clear. Nothing is waiting on you.") + "\n")
		return b.String()
	}

	t := rep.Snapshot()
	b.WriteString(Bold(t.Description))
	if badge := RecurrenceBadge(t.Recurrence); badge != "" {
		b.WriteString(" " + badge)
	}
	b.WriteString("\n")
	b.WriteString("  " + Dim("ID  ") + "  " + TruncID(t.ID) + "\n")
	if t.Priority != domain.PriorityNone {
		b.WriteString("  " + Dim("PRIO") + "  " + PriorityBadge(t.Priority) + "\n")
	}
	if t.DueDate != nil {
		b.WriteString("  " + Dim("DUE ") + "  " + DueStyled(*t.DueDate, now) + "\n")
	}
	if t.Notes != "" {
		b.WriteString("  " + Dim("NOTE") + "  " + t.Notes + "\n")
	}
	if t.Link != "" {
		b.WriteString("  " + Dim("LINK") + "  " + StyleBlue.Render(t.Link) + "\n")
	}
	return b.String()
}
