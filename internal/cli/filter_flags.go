package cli

import (
	"github.com/evanmoss/dayboard/internal/contract"
	"github.com/spf13/pflag"
)

// filterFlags are the shared dashboard filters accepted by every read
// command. Zero values mean "no filter".
type filterFlags struct {
	view     string
	search   string
	status   string
	category string
	priority string
	section  string
	focus    bool
	window   int
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.view, "view", "daily", "View mode (daily|all|archive)")
	fs.StringVar(&f.search, "search", "", "Match description, notes or link")
	fs.StringVar(&f.status, "status", "", "Filter by status (todo|completed|archived|skipped)")
	fs.StringVar(&f.category, "category", "", "Filter by category")
	fs.StringVar(&f.priority, "priority", "", "Filter by priority (low|medium|high)")
	fs.StringVar(&f.section, "section", "", "Filter by section id; \"none\" for unsectioned tasks")
	fs.BoolVar(&f.focus, "focus", false, "Limit to focus-eligible sections")
	fs.IntVar(&f.window, "window", 0, "Hide tasks due more than N days out; -1 disables")
}

// toQuery builds a TaskQuery, passing focus and window through only when the
// user set them so the stored profile keeps providing the defaults.
func (f *filterFlags) toQuery(fs *pflag.FlagSet) contract.TaskQuery {
	q := contract.NewTaskQuery()
	q.View = f.view
	q.Search = f.search
	q.Status = f.status
	q.Category = f.category
	q.Priority = f.priority
	q.Section = f.section
	if fs.Changed("focus") {
		q.FocusMode = &f.focus
	}
	if fs.Changed("window") {
		q.FutureWindowDays = &f.window
	}
	return q
}
