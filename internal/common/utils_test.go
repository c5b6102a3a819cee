package common

import "testing"

func TestCanonicalCity(t *testing.T) {
	cases := map[string]string{
		"  pune ":      "Pune",
		"ICHALKARANJI": "Ichalkaranji",
		"Mumbai":       "Mumbai",
	}
	for in, want := range cases {
		if got := CanonicalCity(in); got != want {
			t.Fatalf("CanonicalCity(%q) = %q, want %q", in, got, want)
		}
	}
}
