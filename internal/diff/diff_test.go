package diff

import (
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		md      string
		removed string
		added   string
	}{
		{
			name: "paragraphs survive",
			md:   "slept badly\nlong walk after lunch\n",
		},
		{
			name: "stable constructs survive",
			md:   "# Day\n- tea\n- [ ] call mum\n---\n",
		},
		{
			name:    "numbered items renumber",
			md:      "2. second\n",
			removed: "-2. second",
			added:   "+1. second",
		},
		{
			name:    "equations are dropped",
			md:      "$e=mc^2$\n",
			removed: "-$e=mc^2$",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoundTrip("entry.md", tt.md, nil)
			if err != nil {
				t.Fatalf("RoundTrip failed: %v", err)
			}

			if tt.removed == "" && tt.added == "" {
				if got != "" {
					t.Errorf("Expected empty diff, got:\n%s", got)
				}
				return
			}
			if !strings.Contains(got, "--- entry.md") {
				t.Errorf("Diff missing header:\n%s", got)
			}
			if tt.removed != "" && !strings.Contains(got, tt.removed) {
				t.Errorf("Diff missing %q:\n%s", tt.removed, got)
			}
			if tt.added != "" && !strings.Contains(got, tt.added) {
				t.Errorf("Diff missing %q:\n%s", tt.added, got)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}
