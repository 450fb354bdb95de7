package livestats

import "testing"

func TestIndexPoints(t *testing.T) {
	idx := NewIndex([]Stats{
		{Element: 7, GW: 2, TotalPoints: 9},
		{Element: 7, GW: 3, TotalPoints: 1},
	})

	pts, ok := idx.Points(7, 2)
	if !ok || pts != 9 {
		t.Fatalf("expected 9 points for (7,2), got %d ok=%v", pts, ok)
	}
	if _, ok := idx.Points(7, 4); ok {
		t.Fatalf("expected missing stats for (7,4)")
	}
}
