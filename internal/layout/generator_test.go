package layout

import (
	"math"
	"testing"

	"github.com/iliyamo/venue-seatmap-editor/internal/model"
)

func straightLayout(rows, cols int) model.VenueLayout {
	return model.VenueLayout{
		Rows:          rows,
		Columns:       cols,
		RowSpacing:    60,
		ColumnSpacing: 50,
		SeatSize:      30,
		VenueWidth:    1200,
		VenueHeight:   900,
		Stage:         model.StageConfig{X: 400, Y: 20, Width: 400, Height: 80},
	}
}

func arcLayout(cols int, span, start float64) model.VenueLayout {
	l := straightLayout(3, cols)
	l.ArcEnabled = true
	l.ArcRadius = 400
	l.ArcSpanDegrees = span
	l.ArcStartDegree = start
	return l
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*model.VenueLayout)
		want   error
	}{
		{"valid", func(l *model.VenueLayout) {}, nil},
		{"zero rows", func(l *model.VenueLayout) { l.Rows = 0 }, ErrNoRows},
		{"zero columns", func(l *model.VenueLayout) { l.Columns = 0 }, ErrNoColumns},
		{"negative row spacing", func(l *model.VenueLayout) { l.RowSpacing = -1 }, ErrBadRowSpacing},
		{"zero column spacing", func(l *model.VenueLayout) { l.ColumnSpacing = 0 }, ErrBadColSpacing},
		{"arc with one column", func(l *model.VenueLayout) { l.ArcEnabled = true; l.Columns = 1 }, ErrArcColumns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := straightLayout(2, 3)
			tc.mutate(&l)
			if got := Validate(l); got != tc.want {
				t.Fatalf("Validate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGenerate_StraightRows(t *testing.T) {
	t.Parallel()

	g := New(CounterIDs("seat"))
	seats, err := g.Generate(straightLayout(2, 3), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(seats) != 6 {
		t.Fatalf("expected 6 seats, got %d", len(seats))
	}

	// Row A centered under the venue midline: startX = 600 - 75 + 25.
	wantX := []float64{550, 600, 650}
	for c, s := range seats[:3] {
		if s.Row != "A" || s.Number != uint32(c+1) {
			t.Fatalf("seat %d = %s%d, want A%d", c, s.Row, s.Number, c+1)
		}
		if s.X != wantX[c] {
			t.Fatalf("seat A%d x = %v, want %v", s.Number, s.X, wantX[c])
		}
		// stage bottom 100 + margin 40.
		if s.Y != 140 {
			t.Fatalf("seat A%d y = %v, want 140", s.Number, s.Y)
		}
		if s.Status != model.SeatAvailable {
			t.Fatalf("seat A%d status = %s", s.Number, s.Status)
		}
		if s.Rotation != 0 {
			t.Fatalf("straight seat carries rotation %v", s.Rotation)
		}
	}
	if seats[3].Row != "B" || seats[3].Y != 200 {
		t.Fatalf("row B misplaced: %+v", seats[3])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	l := straightLayout(2, 3)
	a, err := New(CounterIDs("a")).Generate(l, "type-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := New(CounterIDs("b")).Generate(l, "type-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Row != b[i].Row || a[i].Number != b[i].Number || a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Fatalf("seat %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerate_ArcSymmetry(t *testing.T) {
	t.Parallel()

	g := New(CounterIDs("seat"))
	seats, err := g.Generate(arcLayout(5, 180, 0), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	row := seats[:5]
	for c, s := range row {
		wantAngle := float64(c) * 45
		if got := s.Rotation - 90; math.Abs(got-wantAngle) > 1e-9 {
			t.Fatalf("seat %d angle = %v, want %v", c, got, wantAngle)
		}
	}

	// Seats 0 and 4 sit symmetrically about the arc's angular midpoint (90°).
	mid := 90.0
	d0 := math.Abs((row[0].Rotation - 90) - mid)
	d4 := math.Abs((row[4].Rotation - 90) - mid)
	if math.Abs(d0-d4) > 1e-9 {
		t.Fatalf("angular distances differ: %v vs %v", d0, d4)
	}

	// Geometric symmetry about the venue midline as well.
	cx := 600.0
	if math.Abs((row[0].X-cx)+(row[4].X-cx)) > 1e-9 {
		t.Fatalf("seats 0 and 4 not mirrored about center: %v, %v", row[0].X, row[4].X)
	}
	if math.Abs(row[0].Y-row[4].Y) > 1e-9 {
		t.Fatalf("seats 0 and 4 at different heights: %v, %v", row[0].Y, row[4].Y)
	}
}

func TestGenerate_ArcRadiusShrinksPerRow(t *testing.T) {
	t.Parallel()

	g := New(CounterIDs("seat"))
	seats, err := g.Generate(arcLayout(5, 180, 0), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Seat 0 of each row sits at angle 0: x = cx + radius.
	first := seats[0].X - 600
	second := seats[5].X - 600
	if math.Abs(first-400) > 1e-9 {
		t.Fatalf("row A radius = %v, want 400", first)
	}
	if math.Abs(second-340) > 1e-9 {
		t.Fatalf("row B radius = %v, want 340 (shrunk by row spacing)", second)
	}
}

func TestRowLabels(t *testing.T) {
	t.Parallel()

	t.Run("explicit labels win, then alphabetic fallback", func(t *testing.T) {
		g := New(CounterIDs("seat"))
		l := straightLayout(3, 1)
		l.RowLabels = []string{"VIP", "BOX"}
		seats, err := g.Generate(l, "")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		got := []string{seats[0].Row, seats[1].Row, seats[2].Row}
		want := []string{"VIP", "BOX", "C"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("row %d label = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("labels continue past Z", func(t *testing.T) {
		if lbl := RowLabel(nil, 26); lbl != "AA" {
			t.Fatalf("row 26 label = %q, want AA", lbl)
		}
		if idx, ok := RowLabelIndex("AA"); !ok || idx != 26 {
			t.Fatalf("RowLabelIndex(AA) = %d, %v", idx, ok)
		}
	})
}

// Storage orders rows by (label length, label); that only matches the
// alphabetic sequence if the two orderings agree for every label pair.
func TestRowLabelSequenceMatchesLengthThenLexOrder(t *testing.T) {
	t.Parallel()

	byLength := func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	}
	for i := 0; i < 80; i++ {
		for j := 0; j < 80; j++ {
			a, b := indexToRowLabel(i), indexToRowLabel(j)
			if (i < j) != byLength(a, b) && i != j {
				t.Fatalf("labels %q (index %d) and %q (index %d) disagree with length-then-lex order", a, i, b, j)
			}
		}
	}
}

func TestFallbackTypeID(t *testing.T) {
	t.Parallel()

	if got := FallbackTypeID(nil); got != "" {
		t.Fatalf("empty set fallback = %q", got)
	}
	existing := []model.Seat{{ID: "s1", TypeID: "type-7"}, {ID: "s2", TypeID: "type-9"}}
	if got := FallbackTypeID(existing); got != "type-7" {
		t.Fatalf("fallback = %q, want type-7", got)
	}
}

func TestCarryOver(t *testing.T) {
	t.Parallel()

	old := []model.Seat{
		{ID: "old-1", Row: "A", Number: 1, TypeID: "vip", Status: model.SeatConfirmed, SeatType: "wheelchair"},
		{ID: "old-2", Row: "A", Number: 2, TypeID: "std", Status: model.SeatAvailable},
	}
	g := New(CounterIDs("new"))
	regenerated, err := g.Generate(straightLayout(1, 3), "std")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	merged := CarryOver(old, regenerated)
	if merged[0].TypeID != "vip" || merged[0].Status != model.SeatConfirmed || merged[0].SeatType != "wheelchair" {
		t.Fatalf("seat A1 lost hand edits: %+v", merged[0])
	}
	if merged[0].ID == "old-1" {
		t.Fatal("regeneration must assign a fresh id")
	}
	if merged[2].TypeID != "std" || merged[2].Status != model.SeatAvailable {
		t.Fatalf("new seat A3 should keep generated defaults: %+v", merged[2])
	}
}
