package slider

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults applied when a bound is not configured.
const (
	DefaultMin  = 0
	DefaultMax  = 100
	DefaultStep = 1
)

// epsilon absorbs float error when a step should divide the range exactly,
// as with min=0 max=0.3 step=0.1. It is relative to the step.
const epsilon = 1e-9

// Range is the set of values a slider accepts.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultRange returns the 0..100 range with a step of 1.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
}

// Validate reports whether the range can be computed with.
func (r Range) Validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) || r.Max <= r.Min {
		return fmt.Errorf("range [%v, %v]: %w", r.Min, r.Max, ErrInvalidRange)
	}
	if !isFinite(r.Step) || r.Step <= 0 {
		return fmt.Errorf("step %v: %w", r.Step, ErrInvalidStep)
	}
	return nil
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Normalize clamps v, rounds it to the nearest reachable step and clamps the
// result again. Ties round up. When the step does not divide the range, values
// past the last step land on that step rather than on Max, so the result is
// always Min + k*Step for some k >= 0.
//
// The range must be valid.
func (r Range) Normalize(v float64) float64 {
	return r.quantize(r.Clamp(v))
}

func (r Range) quantize(v float64) float64 {
	k := math.Floor((v-r.Min)/r.Step + 0.5 + epsilon)
	q := r.snap(r.Min + k*r.Step)
	if q > r.Max {
		if q-r.Max <= epsilon*r.Step {
			return r.Max
		}
		return r.lastTick()
	}
	return math.Max(q, r.Min)
}

// steps returns the number of whole steps that fit in the range.
func (r Range) steps() float64 {
	return math.Floor((r.Max-r.Min)/r.Step + epsilon)
}

func (r Range) lastTick() float64 {
	return math.Min(r.snap(r.Min+r.steps()*r.Step), r.Max)
}

// snap rounds v to the decimal precision of Min and Step, dropping the float
// noise of Min + k*Step (0.30000000000000004 becomes 0.3). Bounds finer than
// maxDecimals, or magnitudes past float64's integer precision, are left alone.
func (r Range) snap(v float64) float64 {
	d := max(decimals(r.Step), decimals(r.Min))
	if d > maxDecimals {
		return v
	}
	p := math.Pow10(d)
	if math.Abs(v*p) >= 1<<52 {
		return v
	}
	return math.Round(v*p) / p
}

// decimals counts the digits after the point in the shortest decimal form of x.
func decimals(x float64) int {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// Fraction maps v to its position along the range, 0 at Min and 1 at Max.
func (r Range) Fraction(v float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return (v - r.Min) / (r.Max - r.Min), nil
}

// ValueAt maps a position fraction back to a raw, unnormalized value.
// Fractions outside [0, 1] yield values outside the range.
func (r Range) ValueAt(fraction float64) float64 {
	return r.Min + fraction*(r.Max-r.Min)
}

// MaxTicks bounds the tick set; a range with more steps has no ticks.
const MaxTicks = 4096

// Ticks enumerates every reachable value from Min up to Max. The last tick
// falls short of Max when the step does not divide the range. It returns nil
// for an invalid range or one holding more than MaxTicks steps.
func (r Range) Ticks() []float64 {
	if r.Validate() != nil || r.steps() > MaxTicks {
		return nil
	}
	n := int(r.steps())
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, math.Min(r.snap(r.Min+float64(i)*r.Step), r.Max))
	}
	return ticks
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
