package raster

import (
	"bytes"
	"image/color"
	"testing"
	"time"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

func testDay() domain.LogDay {
	mid := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	return domain.LogDay{
		Date: mid,
		Segments: []domain.DutySegment{
			{Start: mid, End: mid.Add(6 * time.Hour), Status: domain.StatusOffDuty},
			{Start: mid.Add(6 * time.Hour), End: mid.Add(14 * time.Hour), Status: domain.StatusDriving},
			{Start: mid.Add(14 * time.Hour), End: mid.Add(15 * time.Hour), Status: domain.StatusOnDuty,
				City: "Dallas", State: "TX", Remark: "Unloading at dock"},
			{Start: mid.Add(15 * time.Hour), End: mid.Add(24 * time.Hour), Status: domain.StatusOffDuty},
		},
	}
}

func TestNewSurfaceRejectsInvalidDimensions(t *testing.T) {
	g := render.DefaultGeometry()

	if _, err := NewSurface(g, 0, 1); err == nil {
		t.Fatal("expected error for zero container width")
	}
	if _, err := NewSurface(g, -100, 1); err == nil {
		t.Fatal("expected error for negative container width")
	}
	if _, err := NewSurface(g, 800, 0); err == nil {
		t.Fatal("expected error for zero density")
	}
}

func TestSurfacePixelSizeScalesWithDensity(t *testing.T) {
	g := render.DefaultGeometry()

	// Half the logical width at 2x density lands back on the logical
	// pixel dimensions.
	s, err := NewSurface(g, g.Width/2, 2)
	if err != nil {
		t.Fatal(err)
	}
	w, h := s.PixelSize()
	if w != int(g.Width) || h != int(g.Height()) {
		t.Fatalf("PixelSize() = (%d, %d), want (%v, %v)", w, h, g.Width, g.Height())
	}
}

func TestRenderToSurfaceIsByteIdempotent(t *testing.T) {
	g := render.DefaultGeometry()
	r := render.NewRenderer()
	day := testDay()

	encode := func() []byte {
		t.Helper()
		s, err := NewSurface(g, 800, 1)
		if err != nil {
			t.Fatal(err)
		}
		r.Render(s, day, 800)

		var buf bytes.Buffer
		if err := s.EncodePNG(&buf); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	first := encode()
	second := encode()
	if !bytes.Equal(first, second) {
		t.Fatal("two renders of the same day produced different PNG bytes")
	}
	if len(first) == 0 {
		t.Fatal("empty PNG output")
	}
}

func TestRenderPaintsBackground(t *testing.T) {
	g := render.DefaultGeometry()
	r := render.NewRenderer()

	s, err := NewSurface(g, 400, 1)
	if err != nil {
		t.Fatal(err)
	}
	r.Render(s, domain.LogDay{Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)}, 400)

	// A corner outside the grid carries the paper background color.
	got := s.Image().At(1, 1)
	cr, cg, cb, _ := got.RGBA()
	wr, wg, wb, _ := color.RGBA{0xff, 0xff, 0xff, 0xff}.RGBA()
	if cr != wr || cg != wg || cb != wb {
		t.Fatalf("corner pixel = %v, want white background", got)
	}
}
