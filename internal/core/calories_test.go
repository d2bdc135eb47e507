package core

import "testing"

func TestParseCalories(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"95", 95, true},
		{"0", 0, true},
		{"007", 7, true},
		{"1000000000", 1_000_000_000, true},
		{"1000000001", 0, false},
		{"99999999999999999999", 0, false},
		{"", 0, false},
		{"12a", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{" 12", 0, false},
		{"1.5", 0, false},
		{"١٢", 0, false}, // non-ASCII digits
	}
	for _, tc := range cases {
		got, err := ParseCalories(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestIsCalorieText(t *testing.T) {
	for _, s := range []string{"", "0", "12", "123"} {
		if !IsCalorieText(s) {
			t.Fatalf("%q should be accepted", s)
		}
	}
	for _, s := range []string{"12a", "a", " ", "1 2", "-3"} {
		if IsCalorieText(s) {
			t.Fatalf("%q should be rejected", s)
		}
	}
}
