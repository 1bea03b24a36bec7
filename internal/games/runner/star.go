package runner

import "math/rand"

// Star is a background parallax dot.
type Star struct {
	X, Y    float64
	Size    float64
	Speed   float64
	Opacity float64
}

// starField scrolls the background in every phase.
type starField struct {
	stars []Star
	w, h  float64
	rng   *rand.Rand
}

func newStarField(count int, w, h float64, rng *rand.Rand) *starField {
	f := &starField{
		stars: make([]Star, count),
		w:     w,
		h:     h,
		rng:   rng,
	}
	for i := range f.stars {
		f.stars[i] = Star{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			Size:    rng.Float64() * 2,
			Speed:   rng.Float64()*2 + 1,
			Opacity: rng.Float64(),
		}
	}
	return f
}

// Update scrolls stars left, wrapping them to the right edge at a new height.
func (f *starField) Update() {
	for i := range f.stars {
		s := &f.stars[i]
		s.X -= s.Speed
		if s.X < 0 {
			s.X = f.w
			s.Y = f.rng.Float64() * f.h
		}
	}
}

// Stars returns the current stars.
func (f *starField) Stars() []Star {
	return f.stars
}
