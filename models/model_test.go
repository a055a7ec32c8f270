package models

import "testing"

func TestParseCategory(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want Category
	}{
		{"Protein", CategoryProtein},
		{"protein", CategoryProtein},
		{"meat", CategoryProtein},
		{"Vegetables", CategoryVegetables},
		{"vegetable", CategoryVegetables},
		{"Fruits", CategoryFruits},
		{"Dairy", CategoryDairy},
		{"Grains", CategoryGrains},
		{"Pasta", CategoryGrains},
		{"  dairy  ", CategoryDairy},
		{"Snacks", CategoryOther},
		{"", CategoryOther},
	}
	for _, tc := range cases {
		if got := ParseCategory(tc.in); got != tc.want {
			t.Fatalf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidDeleteReason(t *testing.T) {
	t.Parallel()
	for _, reason := range []string{"mistake", "used_up", "thrown_away"} {
		if !ValidDeleteReason(reason) {
			t.Fatalf("expected %q to be valid", reason)
		}
	}
	for _, reason := range []string{"", "expired", "USED_UP"} {
		if ValidDeleteReason(reason) {
			t.Fatalf("expected %q to be invalid", reason)
		}
	}
}
