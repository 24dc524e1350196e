package utils

import "testing"

func TestRupees(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{0, "₹0.00"},
		{5, "₹0.05"},
		{3000, "₹30.00"},
		{11000, "₹110.00"},
		{12345, "₹123.45"},
		{-250, "-₹2.50"},
	}
	for _, tc := range cases {
		if got := Rupees(tc.paise); got != tc.want {
			t.Fatalf("Rupees(%d) = %q, want %q", tc.paise, got, tc.want)
		}
	}
}
