package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/saylorsolutions/softassert/expect"
	"github.com/saylorsolutions/softassert/soft"
	"github.com/saylorsolutions/softassert/softexpect"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var ErrFormat = errors.New("unsupported format")

type options struct {
	format string
	color  bool
	strict bool
}

type scenario struct {
	name string
	fn   func(s *soft.Session)
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "Two failing assertions",
			fn: func(s *soft.Session) {
				s.Soft(func() { expect.That("a").To().Equal("b") })
				s.Soft(func() { expect.That("c").To().Equal("b") })
			},
		},
		{
			name: "One failing assertion",
			fn: func(s *soft.Session) {
				softexpect.That(s, []int{1, 2, 3}).To().Have().Len(3)
				softexpect.That(s, "soft").To().Contain("hard")
			},
		},
		{
			name: "Proxied fluent chain",
			fn: func(s *soft.Session) {
				s.Proxy(expect.That(false)).Get("To").Get("Be").Get("True")
			},
		},
		{
			name: "Nothing to report",
			fn: func(s *soft.Session) {
				s.Soft(func() { expect.That(1).To().Be().Below(2) })
			},
		},
	}
}

// Outcome is what a single scenario reported.
type Outcome struct {
	Scenario string      `json:"scenario" yaml:"scenario"`
	Report   soft.Report `json:"report" yaml:"report"`
	Text     string      `json:"-" yaml:"-"`
}

// runScenario runs sc in a new session and flushes it.
// In strict mode a failure isn't captured, so it's recovered here and reported on its own.
func runScenario(sc scenario, strict bool) (out Outcome) {
	out.Scenario = sc.name
	s := soft.New(soft.WithStrict(strict))
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			panic(r)
		}
		rec := &soft.Record{Err: err, Kind: "strict"}
		out.Report = soft.NewReport([]*soft.Record{rec})
		out.Text = soft.FormatRecord(rec)
	}()
	sc.fn(s)
	records := s.Records()
	err := s.Flush()
	out.Report = soft.NewReport(records)
	switch {
	case err == nil:
	case len(records) == 1:
		out.Text = soft.FormatRecord(records[0])
	default:
		out.Text = err.Error()
	}
	return out
}

func run(w io.Writer, opts options, scs []scenario) (failed bool, err error) {
	outcomes := make([]Outcome, len(scs))
	for i, sc := range scs {
		outcomes[i] = runScenario(sc, opts.strict)
		if outcomes[i].Report.Total > 0 {
			failed = true
		}
	}
	switch opts.format {
	case formatText:
		err = writeText(w, outcomes, opts.color)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(outcomes)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(outcomes)
		if err == nil {
			err = enc.Close()
		}
	default:
		return false, fmt.Errorf("%w: '%s'", ErrFormat, opts.format)
	}
	return failed, err
}

type styler func(...string) string

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

func writeText(w io.Writer, outcomes []Outcome, color bool) error {
	heading, failure, success := styler(plain), styler(plain), styler(plain)
	if color {
		renderer := lipgloss.NewRenderer(w)
		renderer.SetColorProfile(termenv.ANSI256)
		heading = renderer.NewStyle().Bold(true).Render
		failure = renderer.NewStyle().Foreground(lipgloss.Color("9")).Render
		success = renderer.NewStyle().Foreground(lipgloss.Color("10")).Render
	}
	var buf strings.Builder
	for i, out := range outcomes {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(heading(out.Scenario))
		buf.WriteString("\n")
		if out.Report.Total == 0 {
			buf.WriteString(success("No failures"))
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(failure(strings.TrimSuffix(out.Text, "\n")))
		buf.WriteString("\n")
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
