package matching_test

import (
	"testing"

	"github.com/chalkroute/teacher_match/matching"
)

func TestBand(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, matching.BandExcellent},
		{85, matching.BandExcellent},
		{80, matching.BandExcellent}, // boundary maps to the higher band
		{79, matching.BandGood},
		{65, matching.BandGood},
		{60, matching.BandGood},
		{59, matching.BandFair},
		{45, matching.BandFair},
		{40, matching.BandFair},
		{39, matching.BandLow},
		{10, matching.BandLow},
		{0, matching.BandLow},
	}
	for _, c := range cases {
		if got := matching.Band(c.score); got != c.want {
			t.Errorf("Band(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}
