package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ctxpack/pkg/clipboard"
	"ctxpack/pkg/pack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterProgress(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Started("/work/MyProject")
	r.RulesLoaded("_AI_RULES.md", true)
	r.RulesLoaded("_AI_RULES.md", false)
	r.ScanStarted("/work/MyProject")

	out := buf.String()
	assert.Contains(t, out, "Packing context for MyProject")
	assert.Contains(t, out, "Reading project rules: _AI_RULES.md")
	assert.Contains(t, out, "_AI_RULES.md not found, packing code only")
	assert.Contains(t, out, "Scanning: /work/MyProject")
}

func TestReporterSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary pack.Summary
		want    []string
	}{
		{
			name: "clipboard ok",
			summary: pack.Summary{
				OutputPath: "_context_for_ai.txt",
				Packed:     3,
				Bytes:      2048,
				Clipboard:  clipboard.Result{Attempted: true},
			},
			want: []string{"Copied to clipboard!", "3 files packed.", "Saved as: _context_for_ai.txt (2.0 kB)"},
		},
		{
			name: "clipboard failed with unreadable files",
			summary: pack.Summary{
				OutputPath: "_context_for_ai.txt",
				Packed:     1,
				Failed:     2,
				Clipboard:  clipboard.Result{Attempted: true, Err: errors.New("no display")},
			},
			want: []string{"Could not copy to clipboard (no display)", "1 files packed, 2 unreadable."},
		},
		{
			name:    "clipboard skipped",
			summary: pack.Summary{OutputPath: "out.txt"},
			want:    []string{"Clipboard copy skipped", "0 files packed."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf).Summary(tt.summary)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestWaitForEnter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WaitForEnter(&buf, strings.NewReader("\n")))
	assert.Equal(t, "Press Enter to exit...", buf.String())

	require.NoError(t, WaitForEnter(&buf, strings.NewReader("")))
}
