package goprior

// TriangularDist is a triangular distribution over [left, right] peaking at
// mode. The ordering left <= mode <= right is left to the sampler.
type TriangularDist struct {
	header
	left, mode, right float64
}

func (TriangularDist) Kind() Kind { return KindTriangular }

// Left returns the smallest value.
func (t TriangularDist) Left() float64 { return t.left }

// Mode returns the most likely value.
func (t TriangularDist) Mode() float64 { return t.mode }

// Right returns the largest value.
func (t TriangularDist) Right() float64 { return t.right }

func (t TriangularDist) String() string { return render(t) }
func (t TriangularDist) body() string {
	return string(KindTriangular) + "(" + formatNum(t.left) + ", " + formatNum(t.mode) + ", " + formatNum(t.right) + t.clip.suffix() + ")"
}

// Triangular builds a triangular distribution. Accepts LClip and RClip.
func Triangular(left, mode, right float64, opts ...Option) (TriangularDist, error) {
	p, err := collect(KindTriangular, clipParams, opts)
	if err != nil {
		return TriangularDist{}, err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"left", left}, {"mode", mode}, {"right", right}} {
		if err := finite(f.name, f.v); err != nil {
			return TriangularDist{}, err
		}
	}
	return TriangularDist{header: header{clip: p.clip(), built: true}, left: left, mode: mode, right: right}, nil
}

// PoissonDist is a Poisson distribution with rate lam.
type PoissonDist struct {
	header
	lam float64
}

func (PoissonDist) Kind() Kind { return KindPoisson }

// Lambda returns the rate.
func (d PoissonDist) Lambda() float64 { return d.lam }

func (d PoissonDist) String() string { return render(d) }
func (d PoissonDist) body() string {
	return string(KindPoisson) + "(" + formatNum(d.lam) + d.clip.suffix() + ")"
}

// Poisson builds a Poisson distribution with lam > 0. Accepts LClip and RClip.
func Poisson(lam float64, opts ...Option) (PoissonDist, error) {
	p, err := collect(KindPoisson, clipParams, opts)
	if err != nil {
		return PoissonDist{}, err
	}
	if err := positive("lam", lam); err != nil {
		return PoissonDist{}, err
	}
	return PoissonDist{header: header{clip: p.clip(), built: true}, lam: lam}, nil
}

// ExponentialDist is an exponential distribution with the given scale.
type ExponentialDist struct {
	header
	scale float64
}

func (ExponentialDist) Kind() Kind { return KindExponential }

// Scale returns the scale (the mean).
func (d ExponentialDist) Scale() float64 { return d.scale }

func (d ExponentialDist) String() string { return render(d) }
func (d ExponentialDist) body() string {
	return string(KindExponential) + "(" + formatNum(d.scale) + d.clip.suffix() + ")"
}

// Exponential builds an exponential distribution with scale > 0. Accepts LClip
// and RClip.
func Exponential(scale float64, opts ...Option) (ExponentialDist, error) {
	p, err := collect(KindExponential, clipParams, opts)
	if err != nil {
		return ExponentialDist{}, err
	}
	if err := positive("scale", scale); err != nil {
		return ExponentialDist{}, err
	}
	return ExponentialDist{header: header{clip: p.clip(), built: true}, scale: scale}, nil
}

// GammaDist is a gamma distribution in shape/scale form.
type GammaDist struct {
	header
	shape, scale float64
}

func (GammaDist) Kind() Kind { return KindGamma }

// Shape returns the shape.
func (d GammaDist) Shape() float64 { return d.shape }

// Scale returns the scale.
func (d GammaDist) Scale() float64 { return d.scale }

func (d GammaDist) String() string { return render(d) }
func (d GammaDist) body() string {
	return string(KindGamma) + "(shape=" + formatNum(d.shape) + ", scale=" + formatNum(d.scale) + d.clip.suffix() + ")"
}

// Gamma builds a gamma distribution. Options: Scale (default 1), LClip, RClip.
func Gamma(shape float64, opts ...Option) (GammaDist, error) {
	p, err := collect(KindGamma, pScale|clipParams, opts)
	if err != nil {
		return GammaDist{}, err
	}
	scale := 1.0
	if p.has(pScale) {
		scale = p.scale
	}
	if err := positive("shape", shape); err != nil {
		return GammaDist{}, err
	}
	if err := positive("scale", scale); err != nil {
		return GammaDist{}, err
	}
	return GammaDist{header: header{clip: p.clip(), built: true}, shape: shape, scale: scale}, nil
}
