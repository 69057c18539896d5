package platform

// Rect is a screen-space rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Area() int { return r.W * r.H }

func (r Rect) centerDistSq(other Rect) int {
	dx := (r.X + r.W/2) - (other.X + other.W/2)
	dy := (r.Y + r.H/2) - (other.Y + other.H/2)
	return dx*dx + dy*dy
}

// ClampToMonitor constrains a thawed window rectangle to the monitor it
// overlaps most; if it overlaps none, the monitor whose center is nearest.
// The size is capped to the monitor and the position shifted so the whole
// window lands on it, even when restored from a since-disconnected display.
func ClampToMonitor(r Rect, monitors []Rect) Rect {
	if len(monitors) == 0 {
		return r
	}
	best := monitors[0]
	bestArea := r.Intersect(best).Area()
	bestDist := r.centerDistSq(best)
	for _, m := range monitors[1:] {
		area := r.Intersect(m).Area()
		dist := r.centerDistSq(m)
		if area > bestArea || (bestArea == 0 && area == 0 && dist < bestDist) {
			best, bestArea, bestDist = m, area, dist
		}
	}

	w := min(r.W, best.W)
	h := min(r.H, best.H)
	x := clampInt(r.X, best.X, best.Right()-w)
	y := clampInt(r.Y, best.Y, best.Bottom()-h)
	return Rect{X: x, Y: y, W: w, H: h}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
