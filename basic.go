package goprior

import (
	"fmt"
	"math"
	"reflect"
)

// ConstDist always yields the same value.
type ConstDist struct {
	header
	value any
}

func (ConstDist) Kind() Kind { return KindConst }

// Value returns the constant.
func (c ConstDist) Value() any { return c.value }

func (c ConstDist) String() string { return render(c) }
func (c ConstDist) body() string   { return fmt.Sprintf("%s(%v)", KindConst, c.value) }

// Const builds a constant distribution. Any value is accepted.
func Const(v any) ConstDist { return ConstDist{header: header{built: true}, value: v} }

// UniformDist is uniform over [low, high].
type UniformDist struct {
	header
	low, high float64
}

func (UniformDist) Kind() Kind { return KindUniform }

// Low returns the smallest value.
func (u UniformDist) Low() float64 { return u.low }

// High returns the largest value.
func (u UniformDist) High() float64 { return u.high }

func (u UniformDist) String() string { return render(u) }
func (u UniformDist) body() string {
	return string(KindUniform) + "(" + formatNum(u.low) + ", " + formatNum(u.high) + ")"
}

// Uniform builds a uniform distribution. low must not exceed high.
func Uniform(low, high float64) (UniformDist, error) {
	if err := finite("low", low); err != nil {
		return UniformDist{}, err
	}
	if err := finite("high", high); err != nil {
		return UniformDist{}, err
	}
	if low > high {
		return UniformDist{}, Issues{Root().Field("high").Issue(CodeRangeOrder, "param", "low/high", "low", low, "high", high)}
	}
	return UniformDist{header: header{built: true}, low: low, high: high}, nil
}

// BinomialDist counts successes in n independent trials.
type BinomialDist struct {
	header
	n int
	p float64
}

func (BinomialDist) Kind() Kind { return KindBinomial }

// N returns the number of trials.
func (b BinomialDist) N() int { return b.n }

// P returns the per-trial success probability.
func (b BinomialDist) P() float64 { return b.p }

func (b BinomialDist) String() string { return render(b) }
func (b BinomialDist) body() string {
	return fmt.Sprintf("%s(n=%d, p=%s)", KindBinomial, b.n, formatNum(b.p))
}

// Binomial builds a binomial distribution with n >= 0 trials and success
// probability p in [0, 1].
func Binomial(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, fail("n", CodeDomainRange, "got", n, "want", "a non-negative integer")
	}
	if err := probability("p", p); err != nil {
		return BinomialDist{}, err
	}
	return BinomialDist{header: header{built: true}, n: n, p: p}, nil
}

// BetaDist is a beta distribution with shapes a and b.
type BetaDist struct {
	header
	a, b float64
}

func (BetaDist) Kind() Kind { return KindBeta }

// A returns the alpha shape.
func (d BetaDist) A() float64 { return d.a }

// B returns the beta shape.
func (d BetaDist) B() float64 { return d.b }

func (d BetaDist) String() string { return render(d) }
func (d BetaDist) body() string {
	return string(KindBeta) + "(a=" + formatNum(d.a) + ", b=" + formatNum(d.b) + ")"
}

// Beta builds a beta distribution. Both shapes must be positive.
func Beta(a, b float64) (BetaDist, error) {
	if err := positive("a", a); err != nil {
		return BetaDist{}, err
	}
	if err := positive("b", b); err != nil {
		return BetaDist{}, err
	}
	return BetaDist{header: header{built: true}, a: a, b: b}, nil
}

// BernoulliDist is a single binary event.
type BernoulliDist struct {
	header
	p float64
}

func (BernoulliDist) Kind() Kind { return KindBernoulli }

// P returns the event probability.
func (b BernoulliDist) P() float64 { return b.p }

func (b BernoulliDist) String() string { return render(b) }
func (b BernoulliDist) body() string   { return string(KindBernoulli) + "(p=" + formatNum(b.p) + ")" }

// Bernoulli builds a Bernoulli distribution. p must be an integer or
// floating-point value in [0, 1]; other types (bool, string, ...) are
// rejected as invalid_type.
func Bernoulli(p any) (BernoulliDist, error) {
	f, ok := asNumber(p)
	if !ok {
		return BernoulliDist{}, fail("p", CodeInvalidType, "got", fmt.Sprintf("%T", p), "want", "int or float")
	}
	if err := probability("p", f); err != nil {
		return BernoulliDist{}, err
	}
	return BernoulliDist{header: header{built: true}, p: f}, nil
}

// asNumber accepts Go integer and floating-point kinds, including named types.
func asNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fail(name, CodeDomainRange, "got", v, "want", "a finite number")
	}
	return nil
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fail(name, CodeDomainRange, "got", v, "want", "greater than 0")
	}
	return nil
}

func probability(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fail(name, CodeDomainRange, "got", v, "want", "between 0 and 1")
	}
	return nil
}
