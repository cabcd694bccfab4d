/*
File    : mql-go/mathlib/builtins.go
*/
package mathlib

import (
	"math"
	mrand "math/rand"
)

const degToRad = math.Pi / 180.0
const radToDeg = 180.0 / math.Pi

// builtins is the fixed set of functions math.<name>/m.<name> resolves
// to (spec §4.6). Trigonometric functions take degrees in and (for the
// inverse functions) degrees out, matching MoLang's convention.
var builtins = []*fn{
	{"abs", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Abs(a[0]), nil }},
	{"sign", 1, func(_ *mrand.Rand, a []float64) (float64, error) {
		switch {
		case a[0] > 0:
			return 1, nil
		case a[0] < 0:
			return -1, nil
		default:
			return 0, nil
		}
	}},
	{"floor", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Floor(a[0]), nil }},
	{"ceil", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Ceil(a[0]), nil }},
	{"round", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Round(a[0]), nil }},
	{"trunc", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Trunc(a[0]), nil }},
	{"sqrt", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Sqrt(a[0]), nil }},
	{"exp", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Exp(a[0]), nil }},
	{"ln", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Log(a[0]), nil }},
	{"pow", 2, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Pow(a[0], a[1]), nil }},
	{"sin", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Sin(a[0] * degToRad), nil }},
	{"cos", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Cos(a[0] * degToRad), nil }},
	{"tan", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Tan(a[0] * degToRad), nil }},
	{"asin", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Asin(a[0]) * radToDeg, nil }},
	{"acos", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Acos(a[0]) * radToDeg, nil }},
	{"atan", 1, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Atan(a[0]) * radToDeg, nil }},
	{"atan2", 2, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Atan2(a[0], a[1]) * radToDeg, nil }},
	{"min", 2, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Min(a[0], a[1]), nil }},
	{"max", 2, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Max(a[0], a[1]), nil }},
	{"mod", 2, func(_ *mrand.Rand, a []float64) (float64, error) { return math.Mod(a[0], a[1]), nil }},
	{"clamp", 3, func(_ *mrand.Rand, a []float64) (float64, error) {
		x, lo, hi := a[0], a[1], a[2]
		if x < lo {
			return lo, nil
		}
		if x > hi {
			return hi, nil
		}
		return x, nil
	}},
	{"lerp", 3, func(_ *mrand.Rand, a []float64) (float64, error) {
		return a[0] + (a[1]-a[0])*a[2], nil
	}},
	{"lerp_rotate", 3, func(_ *mrand.Rand, a []float64) (float64, error) {
		from, to, t := a[0], a[1], a[2]
		delta := math.Mod(to-from+180, 360)
		if delta < 0 {
			delta += 360
		}
		delta -= 180
		return from + delta*t, nil
	}},
	{"hermite_blend", 1, func(_ *mrand.Rand, a []float64) (float64, error) {
		t := a[0]
		return 3*t*t - 2*t*t*t, nil
	}},
	{"random", 0, func(rnd *mrand.Rand, _ []float64) (float64, error) { return rnd.Float64(), nil }},
	{"random_int", 2, func(rnd *mrand.Rand, a []float64) (float64, error) {
		lo, hi := int64(a[0]), int64(a[1])
		if hi < lo {
			lo, hi = hi, lo
		}
		span := hi - lo + 1
		return float64(lo + rnd.Int63n(span)), nil
	}},
	{"pi", 0, func(_ *mrand.Rand, _ []float64) (float64, error) { return math.Pi, nil }},
}
