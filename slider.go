package main

import "math"

// Slider stops are rounded to 1/SNAP_SCALE.
const SNAP_SCALE = 1e12

// Slider is a bounded scalar control with a fixed resolution. Every change
// of value is passed to the change handler before Set or Nudge returns.
type Slider struct {
	min, max, step float64
	value          float64
	onChange       func(float64) error
}

func NewSlider(min, max, step float64, onChange func(float64) error) *Slider {
	s := &Slider{min: min, max: max, step: step, onChange: onChange}
	s.value = s.snap(0)
	return s
}

func (s *Slider) Value() float64 {
	return s.value
}

// snap clamps v into the range and moves it to the nearest stop. Stops
// are counted from min, so a range whose ends are not multiples of step
// keeps even spacing all the way to both ends.
func (s *Slider) snap(v float64) float64 {
	v = math.Max(s.min, math.Min(s.max, v))
	n := math.Round((v - s.min) / s.step)
	v = s.min + n*s.step
	// Round off the representation error of n*step.
	v = math.Round(v*SNAP_SCALE) / SNAP_SCALE
	return math.Max(s.min, math.Min(s.max, v))
}

// Set moves the slider to v and emits the resulting value.
func (s *Slider) Set(v float64) error {
	s.value = s.snap(v)
	if s.onChange == nil {
		return nil
	}
	return s.onChange(s.value)
}

// Nudge moves the slider by n steps.
func (s *Slider) Nudge(n int) error {
	return s.Set(s.value + float64(n)*s.step)
}
