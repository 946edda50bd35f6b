package core

// Hours returns the 24 selectable hour values.
func Hours() []int {
	out := make([]int, 24)
	for i := range out {
		out[i] = i
	}
	return out
}

// Minutes returns the step-quantized minute values: 0, step, 2·step, …
// strictly below 60. A step that does not divide 60 simply drops the
// partial trailing interval; there is no rounding. A non-positive step
// falls back to the default.
func Minutes(step int) []int {
	if step <= 0 {
		step = DefaultMinuteStep
	}
	out := make([]int, 0, 60/step+1)
	for m := 0; m < 60; m += step {
		out = append(out, m)
	}
	return out
}

// DefaultMinuteStep matches the picker's default configuration.
const DefaultMinuteStep = 30
