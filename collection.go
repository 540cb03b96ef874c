package goprior

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/goprior/internal/weights"
)

// Outcome is one weighted entry of a discrete distribution.
type Outcome struct {
	Value  any
	Weight float64
}

// DiscreteDist is a categorical distribution over arbitrary values.
type DiscreteDist struct {
	header
	outcomes []Outcome
}

func (DiscreteDist) Kind() Kind { return KindDiscrete }

// Outcomes returns a copy of the canonical outcomes in order. Weights sum to 1.
func (d DiscreteDist) Outcomes() []Outcome { return append([]Outcome(nil), d.outcomes...) }

func (d DiscreteDist) String() string { return render(d) }

func (d DiscreteDist) body() string {
	parts := make([]string, len(d.outcomes))
	for i, o := range d.outcomes {
		parts[i] = fmt.Sprintf("%v: %s", o.Value, formatDerived(o.Weight))
	}
	return string(KindDiscrete) + "(" + strings.Join(parts, ", ") + ")"
}

// Discrete builds a categorical distribution. items may be a map from outcome
// to weight, a slice of [weight, outcome] pairs, or a bare slice of outcomes
// (equally likely). Map outcomes are ordered by key.
//
//	Discrete(map[string]float64{"a": 0.1, "b": 0.9})
//	Discrete([][]any{{0.1, "a"}, {0.9, "b"}})
//	Discrete([]string{"a", "b"})
func Discrete(items any) (DiscreteDist, error) {
	ws, vs, err := weights.Normalize(nil, items)
	if err != nil {
		return DiscreteDist{}, weightIssues(err, "items")
	}
	out := make([]Outcome, len(vs))
	for i := range vs {
		out[i] = Outcome{Value: vs[i], Weight: ws[i]}
	}
	return DiscreteDist{header: header{built: true}, outcomes: out}, nil
}

// MixtureDist draws from one of its components chosen by weight.
type MixtureDist struct {
	header
	dists   []Dist
	weights []float64
}

func (MixtureDist) Kind() Kind { return KindMixture }

// Components returns a copy of the component descriptors.
func (m MixtureDist) Components() []Dist { return append([]Dist(nil), m.dists...) }

// Weights returns a copy of the normalized component weights.
func (m MixtureDist) Weights() []float64 { return append([]float64(nil), m.weights...) }

func (m MixtureDist) String() string { return render(m) }

func (m MixtureDist) body() string {
	parts := make([]string, len(m.dists))
	for i, d := range m.dists {
		parts[i] = formatDerived(m.weights[i]) + ": " + d.body()
	}
	return string(KindMixture) + "(" + strings.Join(parts, ", ") + m.clip.suffix() + ")"
}

// Mixture combines distributions. dists may be a slice of Dist (weighted
// uniformly unless Weights is given) or a slice of [weight, Dist] pairs.
// Components must be descriptor values; pointers are rejected.
// Options: Weights, LClip, RClip.
//
//	Mixture([]Dist{a, b}, Weights(0.1, 0.9))
//	Mixture([][]any{{0.1, a}, {0.9, b}})
func Mixture(dists any, opts ...Option) (MixtureDist, error) {
	p, err := collect(KindMixture, pWeights|clipParams, opts)
	if err != nil {
		return MixtureDist{}, err
	}
	var explicit []float64
	if p.has(pWeights) {
		explicit = p.weights
		if explicit == nil {
			explicit = []float64{}
		}
	}
	ws, vs, err := weights.Normalize(explicit, dists)
	if err != nil {
		return MixtureDist{}, weightIssues(err, "dists")
	}
	components := make([]Dist, len(vs))
	for i, v := range vs {
		// pointers would let the caller change a component after construction
		d, ok := v.(Dist)
		if !ok || reflect.ValueOf(v).Kind() == reflect.Pointer || !d.valid() {
			return MixtureDist{}, Issues{Root().Field("dists").Index(i).Issue(CodeInvalidType, "param", fmt.Sprintf("dists[%d]", i), "got", fmt.Sprintf("%T", v), "want", "a distribution built by this package")}
		}
		components[i] = d
	}
	return MixtureDist{header: header{clip: p.clip(), built: true}, dists: components, weights: ws}, nil
}

// weightIssues converts a normalizer error into Issues rooted at the
// collection parameter.
func weightIssues(err error, values string) error {
	var we *weights.Error
	if !errors.As(err, &we) {
		return Issues{IssueAt(values, CodeInvalidType, "want", "a mapping or a sequence")}
	}
	name := we.Param
	if name == "values" {
		name = values
	}
	ref := Root().Field(name)
	label := name
	if we.Index >= 0 {
		ref = ref.Index(we.Index)
		label = fmt.Sprintf("%s[%d]", name, we.Index)
	}
	it := ref.Issue(we.Code, "param", label, "got", we.Got, "want", we.Want)
	it.Cause = err
	return Issues{it}
}
