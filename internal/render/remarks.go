package render

import (
	"regexp"
	"strings"

	"github.com/AYG3/Truck-Driver-Logbook/internal/domain"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
)

// Auto-filled placeholder remarks carry no information a reader cannot
// get from the trace itself, so they never earn a label.
var boilerplateRemark = regexp.MustCompile(`(?i)^(off[ -]?duty|on[ -]?duty|driving|sleeper([ -]berth)?)( \(cont'd\))?$`)

// KeywordRemarkPolicy flags driving remarks that mention a fuel or stop
// event. The keyword heuristic is inherited from the upstream remark
// vocabulary ("Fuel Stop", "30-minute Break", rest stops); swap in a
// different ports.RemarkPolicy to change the rule.
type KeywordRemarkPolicy struct {
	Keywords []string
}

func DefaultRemarkPolicy() KeywordRemarkPolicy {
	return KeywordRemarkPolicy{Keywords: []string{"fuel", "stop"}}
}

func (p KeywordRemarkPolicy) Notable(remark string) bool {
	lower := strings.ToLower(remark)
	for _, kw := range p.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// A remark label with its computed horizontal span and stacking row.
// xExt extends xEnd by the rotated label's horizontal overhang; collision
// checks use it so a long label over a narrow bracket still reserves the
// space it occupies.
type placedRemark struct {
	xStart float64
	xEnd   float64
	xExt   float64
	row    int
	label  string
}

// Horizontal fraction of a label's length at the rotation angle used in
// drawRemarks (cos 55 degrees).
const labelSlantFactor = 0.574

// shouldAnnotate is the eligibility filter: empty and boilerplate
// remarks are excluded; driving segments additionally pass through the
// pluggable notability policy.
func (r *Renderer) shouldAnnotate(seg domain.DutySegment) bool {
	remark := strings.TrimSpace(seg.Remark)
	if remark == "" {
		return false
	}
	if boilerplateRemark.MatchString(remark) {
		return false
	}
	if seg.Status == domain.StatusDriving {
		return r.policy().Notable(remark)
	}
	return true
}

// layoutRemarks selects eligible segments and assigns each a stacking
// row by greedy first-fit: scan rows from the top and take the first one
// where no already-placed span overlaps horizontally (expanded by the
// padding tolerance). Segments arrive in chronological order, so the
// scan is a deterministic interval-graph coloring that keeps every row
// collision free.
func (r *Renderer) layoutRemarks(day domain.LogDay, fontSize float64) []placedRemark {
	g := r.Geometry
	midnight := day.Midnight()

	var placed []placedRemark
	for _, seg := range r.visibleSegments(day) {
		if !r.shouldAnnotate(seg) {
			continue
		}

		xStart := TimeToX(g, seg.Start, midnight)
		xEnd := TimeToX(g, seg.End, midnight)
		if xEnd-xStart < g.MinRemarkSpan {
			// Too narrow to label legibly (under ~15 minutes).
			continue
		}

		label := remarkLabel(seg)
		xExt := xStart + textWidth(label, fontSize)*labelSlantFactor
		if xEnd > xExt {
			xExt = xEnd
		}

		row := 0
		for collides(placed, xStart, xExt, row, g.RemarkPadding) {
			row++
		}

		placed = append(placed, placedRemark{
			xStart: xStart,
			xEnd:   xEnd,
			xExt:   xExt,
			row:    row,
			label:  label,
		})
	}
	return placed
}

func collides(placed []placedRemark, xStart, xExt float64, row int, pad float64) bool {
	for _, p := range placed {
		if p.row != row {
			continue
		}
		if xStart-pad < p.xExt && xExt+pad > p.xStart {
			return true
		}
	}
	return false
}

// remarkLabel joins the segment location with its remark text, stripping
// the location out of the remark when upstream already appended it.
func remarkLabel(seg domain.DutySegment) string {
	remark := cleanRemark(seg.Remark, seg.City, seg.State)
	location := seg.Location()

	switch {
	case location == "":
		return remark
	case remark == "":
		return location
	}
	return location + " - " + remark
}

// cleanRemark removes redundant location substrings ("City, ST", then
// the bare city) and tidies the separators left behind.
func cleanRemark(remark, city, state string) string {
	out := strings.TrimSpace(remark)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)

	if city != "" {
		patterns := []string{city + ", " + state, city}
		if state == "" {
			patterns = patterns[1:]
		}
		for _, pat := range patterns {
			re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(pat))
			out = re.ReplaceAllString(out, "")
		}
	}

	out = strings.Trim(out, " \t-–,")
	return strings.TrimSpace(out)
}

// drawRemarks renders each placed remark as a paper-log bracket (a
// horizontal stroke with short stems reaching up toward the grid) plus a
// rotated label. Narrow viewports get a slightly larger font so rotated
// labels stay legible on phones.
func (r *Renderer) drawRemarks(cv ports.Canvas, day domain.LogDay, viewportWidth float64) {
	g := r.Geometry
	p := r.Palette

	fontSize := 10.0
	if viewportWidth < 640 {
		fontSize = 12
	}

	for _, pr := range r.layoutRemarks(day, fontSize) {
		y := align(g.RemarkLaneTop() + float64(pr.row)*g.RemarkRowHeight)
		xs := align(pr.xStart)
		xe := align(pr.xEnd)

		cv.StrokeLine(xs, y, xe, y, 1, p.Bracket)
		cv.StrokeLine(xs, y-5, xs, y, 1, p.Bracket)
		cv.StrokeLine(xe, y-5, xe, y, 1, p.Bracket)

		if pr.label != "" {
			cv.DrawTextRotated(pr.label, xs+2, y+fontSize+2, fontSize, 55, p.RemarkText)
		}
	}
}
