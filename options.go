package goprior

import "strings"

// param is a bit identifying one optional factory parameter.
type param uint16

const (
	pLow param = 1 << iota
	pHigh
	pCredibility
	pMean
	pSD
	pLClip
	pRClip
	pDF
	pScale
	pWeights
)

// Ordered for deterministic issue reporting.
var paramNames = []struct {
	p    param
	name string
}{
	{pLow, "low"},
	{pHigh, "high"},
	{pCredibility, "credibility"},
	{pMean, "mean"},
	{pSD, "sd"},
	{pLClip, "lclip"},
	{pRClip, "rclip"},
	{pDF, "t"},
	{pScale, "scale"},
	{pWeights, "weights"},
}

const (
	clipParams     = pLClip | pRClip
	intervalParams = pLow | pHigh | pCredibility
)

type params struct {
	set param

	low, high   float64
	credibility float64
	mean, sd    float64
	lclip       float64
	rclip       float64
	df          float64
	scale       float64
	weights     []float64
}

// Option supplies an optional factory parameter. Each factory documents the
// options it accepts; any other option is rejected with an unknown_key issue.
type Option func(*params)

// Low sets the low end of a credible interval.
func Low(v float64) Option { return func(p *params) { p.low = v; p.set |= pLow } }

// High sets the high end of a credible interval.
func High(v float64) Option { return func(p *params) { p.high = v; p.set |= pHigh } }

// Interval sets both ends of a credible interval.
func Interval(low, high float64) Option {
	return func(p *params) {
		Low(low)(p)
		High(high)(p)
	}
}

// Credibility sets the interval's credibility in percent (default 90).
func Credibility(c float64) Option {
	return func(p *params) { p.credibility = c; p.set |= pCredibility }
}

// Mean sets the mean directly.
func Mean(v float64) Option { return func(p *params) { p.mean = v; p.set |= pMean } }

// SD sets the standard deviation directly.
func SD(v float64) Option { return func(p *params) { p.sd = v; p.set |= pSD } }

// LClip sets the advisory lower clamp for sampled values.
func LClip(v float64) Option { return func(p *params) { p.lclip = v; p.set |= pLClip } }

// RClip sets the advisory upper clamp for sampled values.
func RClip(v float64) Option { return func(p *params) { p.rclip = v; p.set |= pRClip } }

// DF sets the degrees of freedom of a t-distribution (default 1).
func DF(t float64) Option { return func(p *params) { p.df = t; p.set |= pDF } }

// Scale sets the gamma scale (default 1).
func Scale(s float64) Option { return func(p *params) { p.scale = s; p.set |= pScale } }

// Weights sets explicit mixture weights, matched by position to the components.
func Weights(w ...float64) Option {
	return func(p *params) {
		p.weights = append([]float64(nil), w...)
		p.set |= pWeights
	}
}

func (p params) has(x param) bool { return p.set&x == x }

func (p params) clip() Clip {
	var c Clip
	if p.has(pLClip) {
		c.lclip = ptr(p.lclip)
	}
	if p.has(pRClip) {
		c.rclip = ptr(p.rclip)
	}
	return c
}

// collect applies opts and rejects any option outside allowed.
func collect(kind Kind, allowed param, opts []Option) (params, error) {
	p := params{credibility: DefaultCredibility}
	for _, o := range opts {
		if o != nil {
			o(&p)
		}
	}
	extra := p.set &^ allowed
	if extra == 0 {
		return p, nil
	}
	var iss Issues
	for _, pn := range paramNames {
		if extra&pn.p != 0 {
			iss = AppendIssues(iss, IssueAt(pn.name, CodeUnknownKey, "want", string(kind)))
		}
	}
	return p, iss
}

// names lists the parameter names in set, for conflict messages.
func names(set param) string {
	var out []string
	for _, pn := range paramNames {
		if set&pn.p != 0 {
			out = append(out, pn.name)
		}
	}
	return strings.Join(out, ", ")
}

// conflict reports mutually exclusive parameters at the root.
func conflict(set param, want string) error {
	return Issues{Root().Issue(CodeConflict, "param", names(set), "want", want)}
}
