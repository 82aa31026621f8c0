package transform

import "math"

// Func identifies one transform from the closed built-in set. The zero value
// None is not a transform; it marks an unbound stage.
type Func uint8

const (
	None Func = iota
	Pow10
	TruncPow10
	Ln
	Log10
	Exp
	Ln0
	Exp0
)

const (
	// lnShift keeps LN0/EXP0 away from log(0).
	lnShift = 0.000001
	// truncPow10Floor is the lower bound applied by TRUNC_POW10.
	truncPow10Floor = 0.001
)

func (f Func) String() string {
	switch f {
	case None:
		return "NONE"
	case Pow10:
		return "POW10"
	case TruncPow10:
		return "TRUNC_POW10"
	case Ln:
		return "LN"
	case Log10:
		return "LOG10"
	case Exp:
		return "EXP"
	case Ln0:
		return "LN0"
	case Exp0:
		return "EXP0"
	default:
		return "UNKNOWN"
	}
}

// Apply computes f(x). None is the identity.
func (f Func) Apply(x float64) float64 {
	switch f {
	case Pow10:
		return math.Pow(10, x)
	case TruncPow10:
		return math.Max(math.Pow(10, x), truncPow10Floor)
	case Ln:
		return math.Log(x)
	case Log10:
		return math.Log10(x)
	case Exp:
		return math.Exp(x)
	case Ln0:
		return math.Log(x + lnShift)
	case Exp0:
		return math.Exp(x) - lnShift
	default:
		return x
	}
}

// ApplySlice applies f to every element of values in place.
func (f Func) ApplySlice(values []float64) {
	if f == None {
		return
	}
	for i, v := range values {
		values[i] = f.Apply(v)
	}
}
