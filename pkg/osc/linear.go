package osc

// Linear rises (or falls) linearly from a start value by a fixed step per
// sample, clamped to [minValue, maxValue]. It is a modulation source only
// and is never exposed as an audio waveform.
type Linear struct {
	value     float64
	increment float64
	minValue  float64
	maxValue  float64
}

// NewLinear returns a linear ramp starting at start, moving by increment
// each sample within [minValue, maxValue].
func NewLinear(start, increment, minValue, maxValue float64) *Linear {
	return &Linear{
		value:     start,
		increment: increment,
		minValue:  minValue,
		maxValue:  maxValue,
	}
}

// Next returns the current level and steps toward the clamp bounds.
func (o *Linear) Next() float64 {
	v := o.value
	o.value += o.increment
	if o.value < o.minValue {
		o.value = o.minValue
	} else if o.value > o.maxValue {
		o.value = o.maxValue
	}
	return v
}
