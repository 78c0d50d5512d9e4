package render

import (
	"math"
	"testing"
	"time"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
)

const eps = 1e-6

func midnightUTC() time.Time {
	return time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
}

func TestTimeToXBoundaryExactness(t *testing.T) {
	g := DefaultGeometry()
	mid := midnightUTC()

	if got := TimeToX(g, mid, mid); math.Abs(got-g.PaddingLeft) > eps {
		t.Fatalf("TimeToX(midnight) = %v, want %v", got, g.PaddingLeft)
	}

	want := g.PaddingLeft + g.GridWidth()
	if got := TimeToX(g, mid.Add(24*time.Hour), mid); math.Abs(got-want) > eps {
		t.Fatalf("TimeToX(midnight+24h) = %v, want %v", got, want)
	}
}

func TestTimeToXClamping(t *testing.T) {
	g := DefaultGeometry()
	mid := midnightUTC()
	rightEdge := g.PaddingLeft + g.GridWidth()

	before := []time.Time{
		mid.Add(-time.Millisecond),
		mid.Add(-5 * time.Hour),
		mid.AddDate(0, 0, -3),
	}
	for _, ts := range before {
		if got := TimeToX(g, ts, mid); got != g.PaddingLeft {
			t.Errorf("TimeToX(%v) = %v, want left edge %v", ts, got, g.PaddingLeft)
		}
	}

	after := []time.Time{
		mid.Add(24*time.Hour + time.Millisecond),
		mid.Add(25 * time.Hour),
		mid.AddDate(0, 0, 2),
	}
	for _, ts := range after {
		if got := TimeToX(g, ts, mid); math.Abs(got-rightEdge) > eps {
			t.Errorf("TimeToX(%v) = %v, want right edge %v", ts, got, rightEdge)
		}
	}
}

func TestTimeToXMonotonic(t *testing.T) {
	g := DefaultGeometry()
	mid := midnightUTC()

	prev := math.Inf(-1)
	for minutes := -120; minutes <= 26*60; minutes += 7 {
		ts := mid.Add(time.Duration(minutes) * time.Minute)
		x := TimeToX(g, ts, mid)
		if x < prev {
			t.Fatalf("TimeToX not monotonic at %v: %v < %v", ts, x, prev)
		}
		prev = x
	}
}

func TestTimeToXScenarioSixAM(t *testing.T) {
	g := DefaultGeometry()
	mid := midnightUTC()

	// leftPadding=100, gridWidth=890: 06:00 lands near 322.5.
	got := TimeToX(g, mid.Add(6*time.Hour), mid)
	if math.Abs(got-322.5) > 0.01 {
		t.Fatalf("TimeToX(06:00) = %v, want about 322.5", got)
	}
}

func TestTimeToXAlternateGeometry(t *testing.T) {
	g := DefaultGeometry()
	g.Width = 310
	g.PaddingLeft = 10
	g.PaddingRight = 60 // grid width 240, 10 px/hour

	mid := midnightUTC()
	if got := TimeToX(g, mid.Add(3*time.Hour), mid); math.Abs(got-40) > eps {
		t.Fatalf("TimeToX(03:00) = %v, want 40", got)
	}
}

func TestTimeToXIgnoresWallClockFields(t *testing.T) {
	g := DefaultGeometry()

	// Midnight expressed in one zone, timestamp in another: only the
	// absolute instant difference may matter.
	mid := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	ts := mid.Add(6 * time.Hour).In(time.FixedZone("X", -7*3600))

	want := TimeToX(g, mid.Add(6*time.Hour), mid)
	if got := TimeToX(g, ts, mid); math.Abs(got-want) > eps {
		t.Fatalf("TimeToX zone-shifted = %v, want %v", got, want)
	}
}

func TestStatusToYDistinctOrderedRows(t *testing.T) {
	g := DefaultGeometry()

	statuses := domain.AllStatuses()
	ys := make([]float64, 0, len(statuses))
	for _, s := range statuses {
		ys = append(ys, StatusToY(g, s))
	}

	for i := 1; i < len(ys); i++ {
		if ys[i] <= ys[i-1] {
			t.Fatalf("rows out of order: %v (status %s) <= %v", ys[i], statuses[i], ys[i-1])
		}
	}

	// Row midpoints sit inside the grid.
	if ys[0] <= g.PaddingTop || ys[len(ys)-1] >= g.GridBottom() {
		t.Fatalf("row midpoints %v escape the grid [%v, %v]", ys, g.PaddingTop, g.GridBottom())
	}
}
