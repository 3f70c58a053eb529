package formatter

import (
	"fmt"
	"strings"

	"github.com/evanmoss/dayboard/internal/contract"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgressBar renders a bar like [████░░░░] 45%, colored by how far
// along the day is: green above two thirds, yellow above one third, red below.
func RenderProgressBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderProgressReport renders the daily completion summary.
func RenderProgressReport(report *contract.ProgressReport) string {
	var b strings.Builder
	b.WriteString(Header("Progress " + report.Day.Format("Jan 2")))
	b.WriteString("\n")

	if report.Total == 0 {
		b.WriteString(Dim("No tasks in scope today.") + "\n")
		return b.String()
	}

	pct := float64(report.Completed) / float64(report.Total)
	b.WriteString(RenderProgressBar(pct, 24))
	b.WriteString(fmt.Sprintf("  %d/%d done", report.Completed, report.Total))
	if report.Overdue > 0 {
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("%d overdue", report.Overdue)))
	}
	b.WriteString("\n")
	return b.String()
}
