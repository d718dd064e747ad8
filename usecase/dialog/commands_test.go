package dialog

import "testing"

func TestClassifyCommands(t *testing.T) {
	cases := []struct {
		text    string
		kind    inputKind
		command Command
		arg     string
	}{
		{"/help", inputCommand, CommandHelp, ""},
		{"/add", inputCommand, CommandAdd, ""},
		{"/add Buy milk", inputCommand, CommandAdd, "Buy milk"},
		{"/done 2", inputCommand, CommandDone, "2"},
		{"/delete old chore", inputCommand, CommandDelete, "old chore"},
		{"/tasks", inputCommand, CommandTasks, ""},
		{"Add", inputButton, CommandAdd, ""},
		{"My tasks", inputButton, CommandTasks, ""},
		{"Complete", inputButton, CommandDone, ""},
		{"Delete", inputButton, CommandDelete, ""},
		{"/addfoo", inputFreeText, "", ""},
		{"add", inputFreeText, "", ""},
		{"random text", inputFreeText, "", ""},
		{"", inputFreeText, "", ""},
	}
	for _, tc := range cases {
		got := classify(tc.text)
		if got.kind != tc.kind || got.command != tc.command || got.arg != tc.arg {
			t.Fatalf("classify(%q) = %+v, want kind=%d command=%q arg=%q",
				tc.text, got, tc.kind, tc.command, tc.arg)
		}
	}
}

func TestIsPosition(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"0", true},
		{"12", true},
		{"", false},
		{"-1", false},
		{"+1", false},
		{"2a", false},
		{"two", false},
	}
	for _, tc := range cases {
		if got := isPosition(tc.text); got != tc.want {
			t.Fatalf("isPosition(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
