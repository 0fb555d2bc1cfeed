package twspan

import "testing"

func TestBuildNoSpans(t *testing.T) {
	p, err := Build(2, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			tag, _ := p.At(r, c)
			if tag != None {
				t.Errorf("(%d,%d) = %v, want None", r, c, tag)
			}
		}
	}
}

func TestBuildColSpan(t *testing.T) {
	p, err := Build(1, 3, []Descriptor{{Row: 0, Col: 0, ColSpan: 3}})
	if err != nil {
		t.Fatal(err)
	}
	tag, idx := p.At(0, 0)
	if tag != Owner || idx != 0 {
		t.Errorf("(0,0) = %v/%d, want Owner/0", tag, idx)
	}
	for c := 1; c < 3; c++ {
		tag, idx := p.At(0, c)
		if tag != Covered || idx != 0 {
			t.Errorf("(0,%d) = %v/%d, want Covered/0", c, tag, idx)
		}
	}
}

func TestBuildRowSpanCrossing(t *testing.T) {
	p, err := Build(3, 2, []Descriptor{{Row: 0, Col: 0, RowSpan: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Crossings) != 2 {
		t.Fatalf("got %d crossing rows, want 2", len(p.Crossings))
	}
	if len(p.Crossings[0]) != 1 || p.Crossings[0][0] != 0 {
		t.Errorf("crossing at row 0 = %v, want [0]", p.Crossings[0])
	}
	if len(p.Crossings[1]) != 0 {
		t.Errorf("crossing at row 1 = %v, want []", p.Crossings[1])
	}
}

func TestBuildOverlapError(t *testing.T) {
	_, err := Build(2, 2, []Descriptor{
		{Row: 0, Col: 0, ColSpan: 2},
		{Row: 0, Col: 1, RowSpan: 2},
	})
	if err == nil {
		t.Fatal("expected overlap error")
	}
}

func TestBuildOutOfBoundsError(t *testing.T) {
	_, err := Build(2, 2, []Descriptor{{Row: 0, Col: 0, ColSpan: 3}})
	if err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestRowHeightSimple(t *testing.T) {
	p, err := Build(1, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := p.RowHeight(0, map[int]int{0: 3, 1: 1}, nil)
	if h != 3 {
		t.Errorf("got %d, want 3", h)
	}
}

func TestRowHeightSpanOwnerDividesAcrossRows(t *testing.T) {
	p, err := Build(2, 2, []Descriptor{{Row: 0, Col: 0, RowSpan: 2}})
	if err != nil {
		t.Fatal(err)
	}
	// owner cell naturally needs 5 lines, spread over 2 rows -> ceil(5/2)=3,
	// and that contribution must reach every row the span covers, not just
	// the owner's own row 0.
	spanLineCounts := map[int]int{0: 5}
	h0 := p.RowHeight(0, map[int]int{1: 1}, spanLineCounts)
	if h0 != 3 {
		t.Errorf("row 0 height = %d, want 3", h0)
	}
	h1 := p.RowHeight(1, map[int]int{1: 1}, spanLineCounts)
	if h1 != 3 {
		t.Errorf("row 1 height = %d, want 3", h1)
	}
}
