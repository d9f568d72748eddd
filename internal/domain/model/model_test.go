package model

import "testing"

func TestEntryTypeValues(t *testing.T) {
	cases := []struct {
		name  string
		got   EntryType
		value string
	}{
		{"charge", EntryCharge, "CHARGE"},
		{"use", EntryUse, "USE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}
