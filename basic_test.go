package goprior_test

import (
	"errors"
	"math"
	"testing"

	goprior "github.com/reoring/goprior"
)

func TestConstAndUniform(t *testing.T) {
	c := goprior.Const("hello")
	if c.Value() != "hello" || c.Kind() != goprior.KindConst {
		t.Fatalf("unexpected const: %v", c)
	}
	if got := goprior.Const(1).String(); got != "<Distribution> const(1)" {
		t.Fatalf("String() = %q", got)
	}

	u, err := goprior.Uniform(0, 1)
	if err != nil {
		t.Fatalf("uniform(0,1): %v", err)
	}
	if u.Low() != 0 || u.High() != 1 || u.String() != "<Distribution> uniform(0, 1)" {
		t.Fatalf("unexpected uniform: %v", u)
	}
	if _, err := goprior.Uniform(2, 2); err != nil {
		t.Fatalf("degenerate uniform must be accepted: %v", err)
	}
	if _, err := goprior.Uniform(2, 1); !errors.Is(err, goprior.ErrRangeOrder) {
		t.Fatalf("expected range order error, got %v", err)
	}
}

func TestBernoulli(t *testing.T) {
	b, err := goprior.Bernoulli(0.5)
	if err != nil || b.P() != 0.5 {
		t.Fatalf("bernoulli(0.5): %v %v", b, err)
	}
	if got := b.String(); got != "<Distribution> bernoulli(p=0.5)" {
		t.Fatalf("String() = %q", got)
	}
	// integers are numeric
	for _, p := range []any{0, 1, int8(1), uint(0), float32(0.25)} {
		if _, err := goprior.Bernoulli(p); err != nil {
			t.Fatalf("bernoulli(%T %v): %v", p, p, err)
		}
	}

	if _, err := goprior.Bernoulli(1.5); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("bernoulli(1.5): expected domain error, got %v", err)
	}
	if _, err := goprior.Bernoulli(-0.1); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("bernoulli(-0.1): expected domain error, got %v", err)
	}
	if _, err := goprior.Bernoulli(math.NaN()); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("bernoulli(NaN): expected domain error, got %v", err)
	}
	for _, p := range []any{"0.5", true, nil, []float64{0.5}} {
		_, err := goprior.Bernoulli(p)
		if !errors.Is(err, goprior.ErrValidation) {
			t.Fatalf("bernoulli(%#v): expected validation error, got %v", p, err)
		}
		iss, _ := goprior.AsIssues(err)
		if iss[0].Code != goprior.CodeInvalidType || iss[0].Path != "/p" {
			t.Fatalf("unexpected issue: %+v", iss[0])
		}
	}
}

func TestBinomialAndBeta(t *testing.T) {
	b, err := goprior.Binomial(10, 0.3)
	if err != nil || b.N() != 10 || b.P() != 0.3 {
		t.Fatalf("binomial: %v %v", b, err)
	}
	if got := b.String(); got != "<Distribution> binomial(n=10, p=0.3)" {
		t.Fatalf("String() = %q", got)
	}
	if _, err := goprior.Binomial(0, 1); err != nil {
		t.Fatalf("binomial(0,1): %v", err)
	}
	if _, err := goprior.Binomial(-1, 0.5); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("negative n: %v", err)
	}
	if _, err := goprior.Binomial(3, 1.01); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("p > 1: %v", err)
	}

	be, err := goprior.Beta(1, 2)
	if err != nil || be.A() != 1 || be.B() != 2 {
		t.Fatalf("beta: %v %v", be, err)
	}
	if got := be.String(); got != "<Distribution> beta(a=1, b=2)" {
		t.Fatalf("String() = %q", got)
	}
	if _, err := goprior.Beta(0, 2); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("beta(0,2): %v", err)
	}
	if _, err := goprior.Beta(1, -2); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("beta(1,-2): %v", err)
	}
}

func TestTDist(t *testing.T) {
	d, err := goprior.TDist()
	if err != nil {
		t.Fatalf("tdist(): %v", err)
	}
	if d.DF() != 1 {
		t.Fatalf("default df = %v", d.DF())
	}
	if _, ok := d.Interval(); ok {
		t.Fatalf("no interval expected")
	}
	if got := d.String(); got != "<Distribution> tdist(t=1)" {
		t.Fatalf("String() = %q", got)
	}

	d, err = goprior.TDist(goprior.Interval(0, 1), goprior.DF(2))
	if err != nil {
		t.Fatalf("tdist(0,1,2): %v", err)
	}
	ci, ok := d.Interval()
	if !ok || ci.Low != 0 || ci.High != 1 || ci.Credibility != 90 {
		t.Fatalf("interval = %+v %v", ci, ok)
	}
	if got := d.String(); got != "<Distribution> tdist(low=0, high=1, t=2)" {
		t.Fatalf("String() = %q", got)
	}

	d, _ = goprior.TDist(goprior.Interval(0, 1), goprior.Credibility(80), goprior.RClip(3))
	if got := d.String(); got != "<Distribution> tdist(low=0, high=1, t=1, credibility=80, rclip=3)" {
		t.Fatalf("String() = %q", got)
	}

	// credibility without an interval is dropped
	d, err = goprior.TDist(goprior.Credibility(80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.Interval(); ok {
		t.Fatalf("credibility must be absent without an interval")
	}

	if _, err := goprior.TDist(goprior.Low(1)); !errors.Is(err, goprior.ErrParameterConflict) {
		t.Fatalf("one endpoint: %v", err)
	}
	if _, err := goprior.TDist(goprior.Interval(2, 1)); !errors.Is(err, goprior.ErrRangeOrder) {
		t.Fatalf("reversed: %v", err)
	}
	for _, iv := range [][2]float64{{math.NaN(), 1}, {0, math.NaN()}, {math.Inf(-1), 1}, {0, math.Inf(1)}} {
		_, err := goprior.TDist(goprior.Interval(iv[0], iv[1]))
		if !errors.Is(err, goprior.ErrDomain) {
			t.Fatalf("non-finite interval %v: %v", iv, err)
		}
		if _, err := goprior.LogTDist(goprior.Interval(iv[0], iv[1])); !errors.Is(err, goprior.ErrDomain) {
			t.Fatalf("log_tdist non-finite interval %v: %v", iv, err)
		}
	}
	if _, err := goprior.TDist(goprior.DF(0)); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("df=0: %v", err)
	}
	if _, err := goprior.TDist(goprior.SD(1)); !errors.Is(err, goprior.ErrValidation) {
		t.Fatalf("sd is not a tdist option: %v", err)
	}
}

func TestLogTDist(t *testing.T) {
	d, err := goprior.LogTDist(goprior.Interval(0, 1), goprior.DF(2))
	if err != nil {
		t.Fatalf("log_tdist(0,1,2): %v", err)
	}
	if d.Kind() != goprior.KindLogTDist {
		t.Fatalf("kind = %v", d.Kind())
	}
	if got := d.String(); got != "<Distribution> log_tdist(low=0, high=1, t=2)" {
		t.Fatalf("String() = %q", got)
	}
	if _, err := goprior.LogTDist(goprior.High(3)); !errors.Is(err, goprior.ErrParameterConflict) {
		t.Fatalf("one endpoint: %v", err)
	}
}

func TestContinuousVariants(t *testing.T) {
	tri, err := goprior.Triangular(1, 2, 3)
	if err != nil || tri.String() != "<Distribution> triangular(1, 2, 3)" {
		t.Fatalf("triangular: %v %v", tri, err)
	}
	// ordering is not checked here
	if _, err := goprior.Triangular(3, 2, 1); err != nil {
		t.Fatalf("triangular ordering must not be enforced: %v", err)
	}

	p, err := goprior.Poisson(1, goprior.RClip(10))
	if err != nil || p.Lambda() != 1 || p.String() != "<Distribution> poisson(1, rclip=10)" {
		t.Fatalf("poisson: %v %v", p, err)
	}
	if _, err := goprior.Poisson(0); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("poisson(0): %v", err)
	}

	e, err := goprior.Exponential(1)
	if err != nil || e.Scale() != 1 || e.String() != "<Distribution> exponential(1)" {
		t.Fatalf("exponential: %v %v", e, err)
	}
	if _, err := goprior.Exponential(-1); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("exponential(-1): %v", err)
	}

	g, err := goprior.Gamma(10)
	if err != nil || g.Shape() != 10 || g.Scale() != 1 {
		t.Fatalf("gamma: %v %v", g, err)
	}
	if got := g.String(); got != "<Distribution> gamma(shape=10, scale=1)" {
		t.Fatalf("String() = %q", got)
	}
	g, _ = goprior.Gamma(2, goprior.Scale(0.5), goprior.LClip(1))
	if got := g.String(); got != "<Distribution> gamma(shape=2, scale=0.5, lclip=1)" {
		t.Fatalf("String() = %q", got)
	}
	if _, err := goprior.Gamma(2, goprior.Scale(0)); !errors.Is(err, goprior.ErrDomain) {
		t.Fatalf("gamma scale 0: %v", err)
	}
	if _, err := goprior.Gamma(2, goprior.Mean(1)); !errors.Is(err, goprior.ErrValidation) {
		t.Fatalf("gamma must reject mean: %v", err)
	}
}
