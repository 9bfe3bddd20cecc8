package bot

import (
	"strings"
	"testing"
	"time"

	"odooclient/entity"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text no escaping",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "underscore escaped",
			input:    "run_id",
			expected: "run\\_id",
		},
		{
			name:     "dot escaped",
			input:    "res.partner",
			expected: "res\\.partner",
		},
		{
			name:     "dash escaped",
			input:    "foo-bar",
			expected: "foo\\-bar",
		},
		{
			name:     "parentheses escaped",
			input:    "func(arg)",
			expected: "func\\(arg\\)",
		},
		{
			name:     "backslash escaped",
			input:    "path\\to\\file",
			expected: "path\\\\to\\\\file",
		},
		{
			name:     "all reserved chars",
			input:    "\\_{}#+-.!|()[]=*",
			expected: "\\\\\\_\\{\\}\\#\\+\\-\\.\\!\\|\\(\\)\\[\\]\\=\\*",
		},
		{
			name:     "typical log message",
			input:    "[WARN] could not create record res.partner (skipped=1)",
			expected: "\\[WARN\\] could not create record res\\.partner \\(skipped\\=1\\)",
		},
		{
			name:     "unicode preserved",
			input:    "Привет мир",
			expected: "Привет мир",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.input)
			if result != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	report := &entity.SeedReport{
		RunID:   "20260824_120000",
		Started: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		Steps: []entity.SeedStep{
			{Name: "partners", Created: []int64{1, 2, 3}, Skipped: 1},
			{Name: "products", Created: []int64{4, 5}},
		},
	}

	msg := FormatReport(report)

	if !strings.Contains(msg, "20260824_120000") {
		t.Error("message should name the run")
	}
	if !strings.Contains(msg, "partners: 3 created, 1 skipped") {
		t.Errorf("message missing partners line: %q", msg)
	}
	if !strings.Contains(msg, "Total: 5 created, 1 skipped") {
		t.Errorf("message missing totals: %q", msg)
	}
}
