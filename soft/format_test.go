package soft_test

import (
	"testing"

	"github.com/saylorsolutions/softassert/expect"
	"github.com/saylorsolutions/softassert/soft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecord(t *testing.T) {
	tests := map[string]struct {
		rec      *soft.Record
		expected string
	}{
		"Message in trace": {
			rec: &soft.Record{
				Err:   &customFailure{msg: "boom"},
				Trace: "AssertionError: boom\nframe a\nframe b",
			},
			expected: "AssertionError: boom\n  frame a\n  frame b\n",
		},
		"Message not in trace": {
			rec: &soft.Record{
				Err:   &customFailure{msg: "boom"},
				Trace: "frame a\nframe b",
			},
			expected: "boom\n  frame a\n  frame b\n",
		},
		"No trace": {
			rec:      &soft.Record{Err: &customFailure{msg: "boom"}},
			expected: "boom\n  \n",
		},
		"Uncaught": {
			rec: &soft.Record{
				Err:      &customFailure{msg: "boom"},
				Trace:    "frame a",
				Uncaught: true,
			},
			expected: "Uncaught boom\n  frame a\n",
		},
		"Inspected": {
			rec: &soft.Record{
				Err:   &inspectedFailure{},
				Trace: "frame a",
			},
			expected: "inspected\n  frame a\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, soft.FormatRecord(tc.rec))
		})
	}
}

func TestFormatReport(t *testing.T) {
	records := []*soft.Record{
		{Err: &customFailure{msg: "first"}, Trace: "first\nframe 1"},
		{Err: &customFailure{msg: "second"}, Trace: "frame 2"},
	}
	expected := "Total failures are: 2\n\n" +
		"first\n  frame 1\n" +
		"\n\n" +
		"second\n  frame 2\n"
	assert.Equal(t, expected, soft.FormatReport(records))
}

func TestFormatRecord_CapturedTrace(t *testing.T) {
	s := soft.New()
	s.Soft(func() { expect.That("a").To().Equal("b") })
	s.Soft(func() { panic(&uncaughtFailure{customFailure{msg: "from elsewhere"}}) })
	records := s.Records()
	require.Len(t, records, 2)

	block := soft.FormatRecord(records[0])
	assert.Contains(t, block, "AssertionError: expected 'a' to equal 'b'\n  goroutine ")
	assert.True(t, records[1].Uncaught)
	assert.Contains(t, soft.FormatRecord(records[1]), "Uncaught from elsewhere\n")
	s.Reset()
}

func TestNewReport(t *testing.T) {
	records := []*soft.Record{
		{Err: &customFailure{msg: "first"}, Kind: soft.KindCapability, Trace: "trace"},
	}
	report := soft.NewReport(records)
	assert.Equal(t, soft.Report{
		Total: 1,
		Failures: []soft.ReportEntry{
			{Kind: soft.KindCapability, Message: "first", Trace: "trace"},
		},
	}, report)
}
