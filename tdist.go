package goprior

import "math"

// StudentTDist describes a Student-t distribution, optionally located by an
// approximate credible interval. The interval is not inverted here; the
// sampler decides how to honor it.
type StudentTDist struct {
	header
	df       float64
	interval *CredibleInterval
}

func (StudentTDist) Kind() Kind { return KindTDist }

// DF returns the degrees of freedom.
func (t StudentTDist) DF() float64 { return t.df }

// Interval returns the approximate credible interval, if one was given.
// Without an interval there is no credibility either.
func (t StudentTDist) Interval() (CredibleInterval, bool) { return sourceOf(t.interval) }

func (t StudentTDist) String() string { return render(t) }

func (t StudentTDist) body() string { return tBody(KindTDist, t.df, t.interval, t.clip) }

// LogStudentTDist is a StudentTDist whose values are interpreted in log-space.
type LogStudentTDist struct {
	header
	df       float64
	interval *CredibleInterval
}

func (LogStudentTDist) Kind() Kind { return KindLogTDist }

// DF returns the degrees of freedom.
func (t LogStudentTDist) DF() float64 { return t.df }

// Interval returns the approximate credible interval, if one was given.
func (t LogStudentTDist) Interval() (CredibleInterval, bool) { return sourceOf(t.interval) }

func (t LogStudentTDist) String() string { return render(t) }

func (t LogStudentTDist) body() string { return tBody(KindLogTDist, t.df, t.interval, t.clip) }

func tBody(k Kind, df float64, ci *CredibleInterval, c Clip) string {
	out := string(k) + "("
	if ci != nil {
		out += "low=" + formatNum(ci.Low) + ", high=" + formatNum(ci.High) + ", "
	}
	out += "t=" + formatNum(df)
	if ci != nil && ci.Credibility != DefaultCredibility {
		out += ", credibility=" + formatNum(ci.Credibility)
	}
	return out + c.suffix() + ")"
}

const tParams = intervalParams | pDF | clipParams

// TDist builds a t-distribution. Options: DF (default 1), Low/High or
// Interval with Credibility, LClip, RClip.
//
//	TDist(Interval(0, 1), DF(2))   // <Distribution> tdist(low=0, high=1, t=2)
//	TDist()                        // <Distribution> tdist(t=1)
func TDist(opts ...Option) (StudentTDist, error) {
	p, err := collect(KindTDist, tParams, opts)
	if err != nil {
		return StudentTDist{}, err
	}
	df, ci, err := approxInterval(p)
	if err != nil {
		return StudentTDist{}, err
	}
	return StudentTDist{header: header{clip: p.clip(), built: true}, df: df, interval: ci}, nil
}

// LogTDist builds a t-distribution in log-space. Accepts the same options
// as TDist.
func LogTDist(opts ...Option) (LogStudentTDist, error) {
	p, err := collect(KindLogTDist, tParams, opts)
	if err != nil {
		return LogStudentTDist{}, err
	}
	df, ci, err := approxInterval(p)
	if err != nil {
		return LogStudentTDist{}, err
	}
	return LogStudentTDist{header: header{clip: p.clip(), built: true}, df: df, interval: ci}, nil
}

func approxInterval(p params) (float64, *CredibleInterval, error) {
	df := 1.0
	if p.has(pDF) {
		df = p.df
	}
	if math.IsNaN(df) || df <= 0 {
		return 0, nil, fail("t", CodeDomainRange, "got", df, "want", "greater than 0")
	}
	hasLow, hasHigh := p.has(pLow), p.has(pHigh)
	if hasLow != hasHigh {
		return 0, nil, conflict(p.set&(pLow|pHigh), "define both low and high or neither")
	}
	if !hasLow {
		// credibility has no meaning without an interval
		return df, nil, nil
	}
	if err := finite("low", p.low); err != nil {
		return 0, nil, err
	}
	if err := finite("high", p.high); err != nil {
		return 0, nil, err
	}
	if p.low > p.high {
		return 0, nil, Issues{Root().Field("high").Issue(CodeRangeOrder, "param", "low/high", "low", p.low, "high", p.high)}
	}
	if c := p.credibility; math.IsNaN(c) || c <= 0 || c >= 100 {
		return 0, nil, fail("credibility", CodeDomainRange, "got", c, "want", "strictly between 0 and 100")
	}
	return df, &CredibleInterval{Low: p.low, High: p.high, Credibility: p.credibility}, nil
}
