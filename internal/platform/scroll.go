package platform

// Scrollbar positions are kept in 16.16 fixed point so that repeated
// line and page steps accumulate without float drift. The public contract
// is entirely in floats.
const scrollUnit = 65536

// Scrollbar models the vertical scrollbar attached to a window. The position
// is always clamped to [min, max-pageSize]; a page size larger than the range
// pins the position to min.
type Scrollbar struct {
	visible bool
	minP    int64
	maxP    int64
	pageP   int64
	pos     int64
}

func (s *Scrollbar) Visible() bool     { return s.visible }
func (s *Scrollbar) SetVisible(v bool) { s.visible = v }

// Configure sets the range and page size, re-clamping the current position.
func (s *Scrollbar) Configure(min, max, pageSize float64) {
	s.minP = int64(min * scrollUnit)
	s.maxP = int64(max * scrollUnit)
	s.pageP = int64(pageSize * scrollUnit)
	s.pos = s.clamp(s.pos)
}

func (s *Scrollbar) Position() float64 {
	return float64(s.pos) / scrollUnit
}

// SetPosition moves the thumb, clamping to the configured range. It reports
// whether the stored position changed.
func (s *Scrollbar) SetPosition(pos float64) bool {
	p := s.clamp(int64(pos * scrollUnit))
	if p == s.pos {
		return false
	}
	s.pos = p
	return true
}

// Line and page steps mirror the increments a native scrollbar applies: a
// line is 1.0 in document units, a page is the configured page size.
func (s *Scrollbar) LineUp() bool   { return s.step(-scrollUnit) }
func (s *Scrollbar) LineDown() bool { return s.step(scrollUnit) }
func (s *Scrollbar) PageUp() bool   { return s.step(-s.pageP) }
func (s *Scrollbar) PageDown() bool { return s.step(s.pageP) }

func (s *Scrollbar) ToTop() bool {
	return s.moveTo(s.minP)
}

func (s *Scrollbar) ToBottom() bool {
	return s.moveTo(s.maxP)
}

// PositionBounds returns the clamped range positions may occupy,
// [min, max-pageSize], as floats.
func (s *Scrollbar) PositionBounds() (lo, hi float64) {
	hiP := s.maxP - s.pageP
	if hiP < s.minP {
		hiP = s.minP
	}
	return float64(s.minP) / scrollUnit, float64(hiP) / scrollUnit
}

// Fraction reports where the thumb sits in [0, 1] for drawing; PageFraction
// reports the thumb's relative extent. Both are 0/1 when the range is empty.
func (s *Scrollbar) Fraction() float64 {
	span := s.maxP - s.pageP - s.minP
	if span <= 0 {
		return 0
	}
	return float64(s.pos-s.minP) / float64(span)
}

func (s *Scrollbar) PageFraction() float64 {
	span := s.maxP - s.minP
	if span <= 0 {
		return 1
	}
	f := float64(s.pageP) / float64(span)
	if f > 1 {
		f = 1
	}
	return f
}

func (s *Scrollbar) step(delta int64) bool {
	return s.moveTo(s.pos + delta)
}

func (s *Scrollbar) moveTo(p int64) bool {
	p = s.clamp(p)
	if p == s.pos {
		return false
	}
	s.pos = p
	return true
}

func (s *Scrollbar) clamp(p int64) int64 {
	hi := s.maxP - s.pageP
	if hi < s.minP {
		hi = s.minP
	}
	if p > hi {
		p = hi
	}
	if p < s.minP {
		p = s.minP
	}
	return p
}
