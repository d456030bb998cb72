package model

import (
	"reflect"
	"testing"
)

func TestNoMatch(t *testing.T) {
	out := NoMatch("Turn the shaft assembly.")
	if out.Fired {
		t.Error("Fired = true")
	}
	if out.Corrected != "Turn the shaft assembly." {
		t.Errorf("Corrected = %q, want the input", out.Corrected)
	}
	if out.Explanation != "" {
		t.Errorf("Explanation = %q, want empty", out.Explanation)
	}
}

func TestNewViolationSingleRule(t *testing.T) {
	v := NewViolation("Turn shaft assembly.", "Turn the shaft assembly.", []AppliedRule{
		{Number: 1, Explanation: "Added 'the' before 'shaft assembly'"},
	})

	if v.RuleNumber != 1 {
		t.Errorf("RuleNumber = %d, want 1", v.RuleNumber)
	}
	if v.RuleName != "Rule 1" {
		t.Errorf("RuleName = %q, want %q", v.RuleName, "Rule 1")
	}
	if !reflect.DeepEqual(v.Rules, []int{1}) {
		t.Errorf("Rules = %v, want [1]", v.Rules)
	}
	if v.Explanation != "Added 'the' before 'shaft assembly'" {
		t.Errorf("Explanation = %q", v.Explanation)
	}
}

func TestNewViolationMultipleRules(t *testing.T) {
	v := NewViolation("original", "corrected", []AppliedRule{
		{Number: 3, Explanation: "Split multiple instructions into separate sentences"},
		{Number: 4, Explanation: "Converted to imperative form"},
	})

	if v.RuleName != "Multiple Rules" {
		t.Errorf("RuleName = %q, want %q", v.RuleName, "Multiple Rules")
	}
	if v.RuleNumber != 3 {
		t.Errorf("RuleNumber = %d, want the lowest fired rule", v.RuleNumber)
	}
	if !reflect.DeepEqual(v.Rules, []int{3, 4}) {
		t.Errorf("Rules = %v, want [3 4]", v.Rules)
	}

	want := "Split multiple instructions into separate sentences; Converted to imperative form"
	if v.Explanation != want {
		t.Errorf("Explanation = %q, want %q", v.Explanation, want)
	}
}
