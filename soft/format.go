package soft

import (
	"fmt"
	"strings"
)

// FormatRecord renders a single failure as its message, followed by the indented part of its trace that comes after the message.
// If the message can't be found in the trace, then the whole trace is used.
func FormatRecord(rec *Record) string {
	var (
		msg     = rec.Message()
		message = msg
		stack   = rec.Trace
	)
	if len(stack) == 0 {
		stack = message
	}
	index := -1
	if len(message) > 0 {
		index = strings.Index(stack, message)
	}
	if index >= 0 {
		index += len(message)
		msg = stack[:index]
		if index+1 < len(stack) {
			stack = stack[index+1:]
		} else {
			stack = ""
		}
	}
	if rec.Uncaught {
		msg = "Uncaught " + msg
	}
	return msg + "\n" + indent(stack, "  ") + "\n"
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// FormatReport renders many failures into one report, in capture order.
func FormatReport(records []*Record) string {
	blocks := make([]string, len(records))
	for i, rec := range records {
		blocks[i] = FormatRecord(rec)
	}
	return fmt.Sprintf("Total failures are: %d\n\n%s", len(records), strings.Join(blocks, "\n\n"))
}

// Report is a structured form of the failures drained by a flush, suitable for encoding.
type Report struct {
	Total    int           `json:"total" yaml:"total"`
	Failures []ReportEntry `json:"failures" yaml:"failures"`
}

// ReportEntry is a single failure in a [Report].
type ReportEntry struct {
	Kind     string `json:"kind" yaml:"kind"`
	Message  string `json:"message" yaml:"message"`
	Trace    string `json:"trace,omitempty" yaml:"trace,omitempty"`
	Uncaught bool   `json:"uncaught,omitempty" yaml:"uncaught,omitempty"`
}

// NewReport creates a [Report] from records.
func NewReport(records []*Record) Report {
	r := Report{
		Total:    len(records),
		Failures: make([]ReportEntry, len(records)),
	}
	for i, rec := range records {
		r.Failures[i] = ReportEntry{
			Kind:     rec.Kind,
			Message:  rec.Message(),
			Trace:    rec.Trace,
			Uncaught: rec.Uncaught,
		}
	}
	return r
}
