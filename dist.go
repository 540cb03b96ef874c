package goprior

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags a descriptor variant.
type Kind string

const (
	KindConst       Kind = "const"
	KindUniform     Kind = "uniform"
	KindNorm        Kind = "norm"
	KindLognorm     Kind = "lognorm"
	KindBinomial    Kind = "binomial"
	KindBeta        Kind = "beta"
	KindBernoulli   Kind = "bernoulli"
	KindDiscrete    Kind = "discrete"
	KindTDist       Kind = "tdist"
	KindLogTDist    Kind = "log_tdist"
	KindTriangular  Kind = "triangular"
	KindPoisson     Kind = "poisson"
	KindExponential Kind = "exponential"
	KindGamma       Kind = "gamma"
	KindMixture     Kind = "mixture"
)

// DefaultCredibility is the credible-interval percentage used when none is given.
const DefaultCredibility = 90.0

// Dist is an immutable distribution descriptor. The set of implementations is
// closed: every descriptor comes from one of the factories in this package.
type Dist interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Clip returns the advisory clamping bounds for the sampler.
	Clip() Clip
	// String renders the descriptor for logs and REPLs. Not a wire format.
	String() string

	body() string
	valid() bool
}

// Clip holds optional lclip/rclip bounds. They are metadata only; nothing here
// checks them against each other or against the distribution's support.
type Clip struct {
	lclip, rclip *float64
}

// LClip returns the lower clip bound, if set.
func (c Clip) LClip() (float64, bool) {
	if c.lclip == nil {
		return 0, false
	}
	return *c.lclip, true
}

// RClip returns the upper clip bound, if set.
func (c Clip) RClip() (float64, bool) {
	if c.rclip == nil {
		return 0, false
	}
	return *c.rclip, true
}

func (c Clip) suffix() string {
	var b strings.Builder
	if c.lclip != nil {
		b.WriteString(", lclip=")
		b.WriteString(formatNum(*c.lclip))
	}
	if c.rclip != nil {
		b.WriteString(", rclip=")
		b.WriteString(formatNum(*c.rclip))
	}
	return b.String()
}

// header is the per-descriptor state shared by all variants.
type header struct {
	clip  Clip
	built bool
}

func (h header) Clip() Clip  { return h.clip }
func (h header) valid() bool { return h.built }

func render(d Dist) string { return "<Distribution> " + d.body() }

// formatNum renders a parameter as given.
func formatNum(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// formatDerived renders an inferred parameter rounded for display.
func formatDerived(f float64) string {
	r := math.Round(f*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func ptr(f float64) *float64 { return &f }
