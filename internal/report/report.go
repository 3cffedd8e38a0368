// Package report renders the checklist findings and summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/envcheck/envcheck/internal/preflight"
	"github.com/envcheck/envcheck/internal/ui"
)

// Closing messages by aggregate status.
const (
	msgAllClear = "All checks passed. Run ./setup to install project dependencies."
	msgWarnings = "Ready with warnings. Review the notes above, then run ./setup."
	msgFailures = "Fix the failures above before running ./setup."
)

// Presenter formats a preflight report for humans or machines.
type Presenter struct {
	out     io.Writer
	styles  ui.Styles
	verbose bool
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithColor selects colored or plain styles.
func WithColor(enabled bool) Option {
	return func(p *Presenter) {
		if enabled {
			p.styles = ui.DefaultStyles()
		} else {
			p.styles = ui.NoColorStyles()
		}
	}
}

// WithVerbose includes check IDs alongside each finding.
func WithVerbose(verbose bool) Option {
	return func(p *Presenter) {
		p.verbose = verbose
	}
}

// New creates a Presenter writing to out. Plain styles by default.
func New(out io.Writer, opts ...Option) *Presenter {
	p := &Presenter{
		out:    out,
		styles: ui.NoColorStyles(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders the findings grouped into numbered sections, remediation
// sub-bullets under every non-passing line, and the closing summary.
// Write errors to a console are intentionally ignored.
func (p *Presenter) Print(rep *preflight.Report) {
	_, _ = fmt.Fprintln(p.out, p.styles.Header.Render("envcheck — environment diagnostic"))
	_, _ = fmt.Fprintln(p.out)

	section := 0
	for _, category := range categories(rep) {
		section++
		header := fmt.Sprintf("%d. %s", section, category)
		_, _ = fmt.Fprintln(p.out, p.styles.Section.Render(header))

		for _, res := range rep.Results {
			if res.Category != category {
				continue
			}
			p.printResult(res)
		}
		_, _ = fmt.Fprintln(p.out)
	}

	p.printClosing(rep)
}

// printResult renders one finding line plus its remediation bullets.
func (p *Presenter) printResult(res preflight.Result) {
	line := fmt.Sprintf("  %s %s", p.icon(res.Status), res.Message)
	if p.verbose {
		line += p.styles.Dim.Render(fmt.Sprintf("  [%s]", res.ID))
	}
	_, _ = fmt.Fprintln(p.out, line)

	for _, fix := range res.Remediation {
		_, _ = fmt.Fprintln(p.out, p.styles.Remedy.Render("      → "+fix))
	}
}

// printClosing renders the counts line and the status-specific next step.
func (p *Presenter) printClosing(rep *preflight.Report) {
	_, _ = fmt.Fprintln(p.out, p.styles.Dim.Render(strings.Repeat("─", 44)))
	_, _ = fmt.Fprintf(p.out, "Summary: %s\n", rep.Summary())

	switch rep.Status() {
	case preflight.StatusPass:
		_, _ = fmt.Fprintln(p.out, p.styles.Pass.Render(msgAllClear))
	case preflight.StatusWarn:
		_, _ = fmt.Fprintln(p.out, p.styles.Warn.Render(msgWarnings))
	case preflight.StatusFail:
		_, _ = fmt.Fprintln(p.out, p.styles.Fail.Render(msgFailures))
	}
}

// icon returns the status glyph for a finding line.
func (p *Presenter) icon(status preflight.Status) string {
	switch status {
	case preflight.StatusPass:
		return p.styles.Pass.Render("✓")
	case preflight.StatusWarn:
		return p.styles.Warn.Render("⚠")
	case preflight.StatusFail:
		return p.styles.Fail.Render("✗")
	default:
		return "?"
	}
}

// categories returns the report's categories in first-appearance order.
func categories(rep *preflight.Report) []string {
	seen := map[string]bool{}
	var order []string
	for _, res := range rep.Results {
		if !seen[res.Category] {
			seen[res.Category] = true
			order = append(order, res.Category)
		}
	}
	return order
}

// jsonReport is the machine-readable output shape.
type jsonReport struct {
	Status   string      `json:"status"`
	Checks   []jsonCheck `json:"checks"`
	Passed   int         `json:"passed"`
	Warned   int         `json:"warned"`
	Failed   int         `json:"failed"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// jsonCheck is a single check result for JSON output.
type jsonCheck struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	Code        string   `json:"code,omitempty"`
	Remediation []string `json:"remediation,omitempty"`
	Skipped     bool     `json:"skipped,omitempty"`
}

// PrintJSON renders the machine-readable report.
func (p *Presenter) PrintJSON(rep *preflight.Report) error {
	out := jsonReport{
		Status: statusString(rep.Status()),
		Checks: make([]jsonCheck, len(rep.Results)),
		Passed: rep.Passed,
		Warned: rep.Warned,
		Failed: rep.Failed,
	}

	for i, res := range rep.Results {
		out.Checks[i] = jsonCheck{
			ID:          res.ID,
			Category:    res.Category,
			Status:      statusString(res.Status),
			Message:     res.Message,
			Code:        res.Code,
			Remediation: res.Remediation,
			Skipped:     res.Skipped,
		}
		switch res.Status {
		case preflight.StatusWarn:
			out.Warnings = append(out.Warnings, res.ID+": "+res.Message)
		case preflight.StatusFail:
			out.Errors = append(out.Errors, res.ID+": "+res.Message)
		}
	}

	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// statusString lowercases a status for JSON consumers.
func statusString(s preflight.Status) string {
	switch s {
	case preflight.StatusPass:
		return "pass"
	case preflight.StatusWarn:
		return "warn"
	case preflight.StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}
