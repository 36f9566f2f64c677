package domain

import "testing"

func TestParseAction(t *testing.T) {
	cases := []struct {
		input    string
		expected ActionType
	}{
		{"MUTATE", ActionMutate},
		{"mutate", ActionMutate}, // Case-insensitive
		{"MUTATE_BATCH", ActionMutateBatch},
		{"UNDO", ActionUndo},
		{"REDO", ActionRedo},
		{"SNAPSHOT_CREATE", ActionSnapshotCreate},
		{"SNAPSHOT_RESTORE", ActionSnapshotRestore},
		{"SNAPSHOT_LIST", ActionSnapshotList},
		{"SNAPSHOT_DELETE", ActionSnapshotDelete},
		{"INSPECT", ActionInspect},
		{"DEVMODE", ActionDevMode},
		{"INIT", ActionInit},
		{"FIREBALL", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tc := range cases {
		if got := ParseAction(tc.input); got != tc.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for s, a := range actionStringToCmd {
		if a.String() != s {
			t.Errorf("ActionType(%d).String() = %q, want %q", a, a.String(), s)
		}
	}
	if ActionUnknown.String() != "UNKNOWN" {
		t.Errorf("ActionUnknown.String() = %q", ActionUnknown.String())
	}
}
