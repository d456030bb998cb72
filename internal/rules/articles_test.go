package rules

import "testing"

func TestArticlesWhitelist(t *testing.T) {
	r := NewArticles()

	tests := []struct {
		name        string
		in          string
		want        string
		explanation string
	}{
		{
			name:        "missing article before shaft assembly",
			in:          "Turn shaft assembly.",
			want:        "Turn the shaft assembly.",
			explanation: "Added 'the' before 'shaft assembly'",
		},
		{
			name:        "missing demonstrative before data module",
			in:          "Data module tells you how to operate the unit.",
			want:        "This data module tells you how to operate the unit.",
			explanation: "Added 'This' before 'data module'",
		},
		{
			name:        "missing article before unit",
			in:          "You must operate unit with care.",
			want:        "You must operate the unit with care.",
			explanation: "Added 'the' before 'unit'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Check(tt.in)
			if !out.Fired {
				t.Fatalf("Check(%q) did not fire", tt.in)
			}
			if out.Corrected != tt.want {
				t.Errorf("Corrected = %q, want %q", out.Corrected, tt.want)
			}
			if out.Explanation != tt.explanation {
				t.Errorf("Explanation = %q, want %q", out.Explanation, tt.explanation)
			}
		})
	}
}

func TestArticlesAppliesAllMatchingPatterns(t *testing.T) {
	r := NewArticles()

	out := r.Check("Data module tells you how to operate unit.")
	if !out.Fired {
		t.Fatal("Check did not fire")
	}

	want := "This data module tells you how to operate the unit."
	if out.Corrected != want {
		t.Errorf("Corrected = %q, want %q", out.Corrected, want)
	}

	wantExplanation := "Added 'This' before 'data module'; Added 'the' before 'unit'"
	if out.Explanation != wantExplanation {
		t.Errorf("Explanation = %q, want %q", out.Explanation, wantExplanation)
	}
}

func TestArticlesLeavesArticledPhrasesAlone(t *testing.T) {
	r := NewArticles()

	for _, sentence := range []string{
		"Turn the shaft assembly.",
		"This data module tells you how to start the engine.",
		"Operate the unit in manual mode.",
		"Check the oil level.",
	} {
		out := r.Check(sentence)
		if out.Fired {
			t.Errorf("Check(%q) fired: %q", sentence, out.Corrected)
		}
		if out.Corrected != sentence {
			t.Errorf("Check(%q) changed a non-matching sentence to %q", sentence, out.Corrected)
		}
	}
}

func TestArticlesMetadata(t *testing.T) {
	r := NewArticles()
	if r.Number() != 1 {
		t.Errorf("Number() = %d, want 1", r.Number())
	}
	if r.Name() == "" {
		t.Error("Name() is empty")
	}
}
