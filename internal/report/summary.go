package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/golfsim/internal/dynamo"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	green      = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// lengthMetrics are reported in the output units; everything else is SI.
var lengthMetrics = map[string]bool{"apex": true, "carry": true}

var metricUnits = map[string]string{
	"hang_time": "s",
	"max_speed": "m/s",
	"energy":    "J",
}

func StatusStyle(s dynamo.Status) lipgloss.Style {
	if s == dynamo.Landed {
		return green
	}
	return yellow
}

// Summary renders the outcome of a run.
func Summary(r *dynamo.Result, u Units) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}

	b.WriteString(titleStyle.Render("flight summary"))
	b.WriteByte('\n')
	b.WriteString(labelStyle.Render("status"))
	b.WriteString(StatusStyle(r.Status).Render(r.Status.String()))
	b.WriteByte('\n')
	row("ticks", fmt.Sprintf("%d", r.Ticks))
	row("total time", fmt.Sprintf("%.2fs", r.Elapsed))
	row("distance", fmt.Sprintf("%.2f %s", u.FromMeters(r.Distance), u.Abbrev()))

	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := r.Metrics[name]
		switch {
		case lengthMetrics[name]:
			row(name, fmt.Sprintf("%.2f %s", u.FromMeters(v), u.Abbrev()))
		case metricUnits[name] != "":
			row(name, fmt.Sprintf("%.2f %s", v, metricUnits[name]))
		default:
			row(name, fmt.Sprintf("%.4f", v))
		}
	}
	return b.String()
}

func WriteSummary(w io.Writer, r *dynamo.Result, u Units) error {
	_, err := io.WriteString(w, Summary(r, u))
	return err
}
