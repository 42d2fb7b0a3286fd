package commands

import (
	"testing"
)

func TestParseTaskID_Numeric(t *testing.T) {
	id, err := ParseTaskID([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Errorf("expected id 5, got %d", id)
	}
}

func TestParseTaskID_HashPrefix(t *testing.T) {
	id, err := ParseTaskID([]string{"#12"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 12 {
		t.Errorf("expected id 12, got %d", id)
	}
}

func TestParseTaskID_Zero(t *testing.T) {
	// Zero parses; the service rejects it as a non-positive id.
	id, err := ParseTaskID([]string{"0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 0 {
		t.Errorf("expected id 0, got %d", id)
	}
}

func TestParseTaskID_Empty(t *testing.T) {
	_, err := ParseTaskID(nil)
	if err != ErrTaskIDRequired {
		t.Errorf("expected ErrTaskIDRequired, got %v", err)
	}
}

func TestParseTaskID_Invalid(t *testing.T) {
	tests := []struct {
		args    []string
		wantMsg string
	}{
		{[]string{"abc"}, "invalid task id: abc"},
		{[]string{"-1"}, "invalid task id: -1"},
		{[]string{"#"}, "invalid task id: #"},
		{[]string{"1a"}, "invalid task id: 1a"},
		{[]string{"1", "2"}, "unexpected argument: 2"},
	}

	for _, tt := range tests {
		_, err := ParseTaskID(tt.args)
		if err == nil {
			t.Errorf("ParseTaskID(%v): expected error", tt.args)
			continue
		}
		if err.Error() != tt.wantMsg {
			t.Errorf("ParseTaskID(%v): expected %q, got %q", tt.args, tt.wantMsg, err.Error())
		}
	}
}

func TestIsAllDigits(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"0", true},
		{"123", true},
		{"12a", false},
		{" 1", false},
	}

	for _, tt := range tests {
		if got := isAllDigits(tt.input); got != tt.expected {
			t.Errorf("isAllDigits(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
