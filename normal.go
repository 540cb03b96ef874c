package goprior

import (
	"math"
)

// CredibleInterval is the interval a descriptor was specified from.
type CredibleInterval struct {
	Low, High   float64
	Credibility float64 // percent
}

// NormalDist describes a normal distribution.
type NormalDist struct {
	header
	mean, sd float64
	source   *CredibleInterval
}

func (NormalDist) Kind() Kind { return KindNorm }

// Mean returns the (possibly inferred) mean.
func (n NormalDist) Mean() float64 { return n.mean }

// SD returns the (possibly inferred) standard deviation.
func (n NormalDist) SD() float64 { return n.sd }

// Interval returns the credible interval the parameters were inferred from,
// if the descriptor was built from one.
func (n NormalDist) Interval() (CredibleInterval, bool) { return sourceOf(n.source) }

func (n NormalDist) String() string { return render(n) }

func (n NormalDist) body() string {
	return string(KindNorm) + "(mean=" + formatDerived(n.mean) + ", sd=" + formatDerived(n.sd) + n.clip.suffix() + ")"
}

// LognormalDist describes a lognormal distribution. Mean and SD are the
// parameters of the underlying normal in log-space.
type LognormalDist struct {
	header
	mean, sd float64
	source   *CredibleInterval
}

func (LognormalDist) Kind() Kind { return KindLognorm }

// Mean returns the log-space mean.
func (n LognormalDist) Mean() float64 { return n.mean }

// SD returns the log-space standard deviation.
func (n LognormalDist) SD() float64 { return n.sd }

// Interval returns the linear-space credible interval the parameters were
// inferred from, if any.
func (n LognormalDist) Interval() (CredibleInterval, bool) { return sourceOf(n.source) }

func (n LognormalDist) String() string { return render(n) }

func (n LognormalDist) body() string {
	return string(KindLognorm) + "(mean=" + formatDerived(n.mean) + ", sd=" + formatDerived(n.sd) + n.clip.suffix() + ")"
}

func sourceOf(ci *CredibleInterval) (CredibleInterval, bool) {
	if ci == nil {
		return CredibleInterval{}, false
	}
	return *ci, true
}

const normalParams = intervalParams | pMean | pSD | clipParams

// Norm builds a normal distribution from either a credible interval
// (Interval/Low/High, optional Credibility defaulting to 90) or Mean/SD
// (Mean defaults to 0). Accepts LClip and RClip.
//
//	Norm(Interval(0, 1))       // <Distribution> norm(mean=0.5, sd=0.3)
//	Norm(Mean(1), SD(2))       // <Distribution> norm(mean=1, sd=2)
func Norm(opts ...Option) (NormalDist, error) {
	p, err := collect(KindNorm, normalParams, opts)
	if err != nil {
		return NormalDist{}, err
	}
	mean, sd, src, err := inferMeanSD(p, linearSpace)
	if err != nil {
		return NormalDist{}, err
	}
	return NormalDist{header: header{clip: p.clip(), built: true}, mean: mean, sd: sd, source: src}, nil
}

// Lognorm builds a lognormal distribution. A credible interval must be
// strictly positive and is inverted in log-space; Mean/SD are taken as the
// log-space parameters. Accepts the same options as Norm.
//
//	Lognorm(Interval(1, 10))   // <Distribution> lognorm(mean=1.15, sd=0.7)
func Lognorm(opts ...Option) (LognormalDist, error) {
	p, err := collect(KindLognorm, normalParams, opts)
	if err != nil {
		return LognormalDist{}, err
	}
	mean, sd, src, err := inferMeanSD(p, logSpace)
	if err != nil {
		return LognormalDist{}, err
	}
	return LognormalDist{header: header{clip: p.clip(), built: true}, mean: mean, sd: sd, source: src}, nil
}

// To picks the parameterization from the interval's low end: lognormal when
// low > 0, normal otherwise. Accepts Credibility, LClip and RClip.
func To(low, high float64, opts ...Option) (Dist, error) {
	if _, err := collect("to", pCredibility|clipParams, opts); err != nil {
		return nil, err
	}
	opts = append([]Option{Interval(low, high)}, opts...)
	var (
		d   Dist
		err error
	)
	if low > 0 {
		d, err = Lognorm(opts...)
	} else {
		d, err = Norm(opts...)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// space maps interval endpoints into the space where the normal lives.
type space struct {
	// positive requires strictly positive endpoints.
	positive  bool
	transform func(float64) float64
}

var (
	linearSpace = space{transform: func(x float64) float64 { return x }}
	logSpace    = space{positive: true, transform: math.Log}
)

// inferMeanSD resolves the mutually exclusive {interval} / {mean, sd}
// parameterizations shared by Norm and Lognorm.
func inferMeanSD(p params, sp space) (mean, sd float64, src *CredibleInterval, err error) {
	hasLow, hasHigh := p.has(pLow), p.has(pHigh)
	for _, f := range []struct {
		name string
		set  bool
		v    float64
	}{{"low", hasLow, p.low}, {"high", hasHigh, p.high}, {"mean", p.has(pMean), p.mean}, {"sd", p.has(pSD), p.sd}} {
		if f.set && (math.IsNaN(f.v) || math.IsInf(f.v, 0)) {
			return 0, 0, nil, fail(f.name, CodeDomainRange, "got", f.v, "want", "a finite number")
		}
	}

	if hasLow && hasHigh && p.low > p.high {
		return 0, 0, nil, Issues{Root().Field("high").Issue(CodeRangeOrder, "param", "low/high", "low", p.low, "high", p.high)}
	}
	if sp.positive && hasLow && p.low <= 0 {
		return 0, 0, nil, fail("low", CodeDomainRange, "got", p.low, "want", "greater than 0")
	}

	direct := p.set & (pMean | pSD)
	switch {
	case (hasLow || hasHigh) && direct != 0:
		return 0, 0, nil, conflict(p.set&(pLow|pHigh|direct), "define either low/high or mean/sd, not both")
	case !(hasLow && hasHigh) && !p.has(pSD):
		return 0, 0, nil, conflict(p.set&(pLow|pHigh|pMean), "must define either low/high or mean/sd")
	}

	if p.has(pSD) {
		if p.sd < 0 {
			return 0, 0, nil, fail("sd", CodeDomainRange, "got", p.sd, "want", "non-negative")
		}
		if p.has(pMean) {
			mean = p.mean
		}
		return mean, p.sd, nil, nil
	}

	z, err := twoSidedZ(p.credibility)
	if err != nil {
		return 0, 0, nil, err
	}
	lo, hi := sp.transform(p.low), sp.transform(p.high)
	mean = (lo + hi) / 2
	sd = (hi - mean) / z
	return mean, sd, &CredibleInterval{Low: p.low, High: p.high, Credibility: p.credibility}, nil
}
