package model

import (
	"fmt"
	"math"
	"slices"
	"strings"

	goprior "github.com/reoring/goprior"
)

// optionByKey maps document keys to the factory options they set.
var optionByKey = map[string]func(float64) goprior.Option{
	"low":         goprior.Low,
	"high":        goprior.High,
	"credibility": goprior.Credibility,
	"mean":        goprior.Mean,
	"sd":          goprior.SD,
	"lclip":       goprior.LClip,
	"rclip":       goprior.RClip,
	"t":           goprior.DF,
	"scale":       goprior.Scale,
}

type entry struct {
	keys  []string
	build func(r *reader) (goprior.Dist, error)
}

var (
	clipKeys     = []string{"lclip", "rclip"}
	intervalKeys = []string{"low", "high", "credibility"}
)

func keys(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// kinds lists, per descriptor type, the accepted keys and how to build it.
var kinds map[goprior.Kind]entry

func init() {
	kinds = map[goprior.Kind]entry{
		goprior.KindConst: {[]string{"value"}, func(r *reader) (goprior.Dist, error) {
			v, ok := r.raw("value")
			if !ok {
				return nil, r.iss
			}
			return goprior.Const(v), nil
		}},
		goprior.KindUniform: {[]string{"low", "high"}, func(r *reader) (goprior.Dist, error) {
			low, high := r.need("low"), r.need("high")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Uniform(low, high)
		}},
		goprior.KindNorm: {keys(intervalKeys, []string{"mean", "sd"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			opts := r.opts("low", "high", "credibility", "mean", "sd", "lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Norm(opts...)
		}},
		goprior.KindLognorm: {keys(intervalKeys, []string{"mean", "sd"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			opts := r.opts("low", "high", "credibility", "mean", "sd", "lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Lognorm(opts...)
		}},
		kindTo: {keys(intervalKeys, clipKeys), func(r *reader) (goprior.Dist, error) {
			low, high := r.need("low"), r.need("high")
			opts := r.opts("credibility", "lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.To(low, high, opts...)
		}},
		goprior.KindBinomial: {[]string{"n", "p"}, func(r *reader) (goprior.Dist, error) {
			n, p := r.integer("n"), r.need("p")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Binomial(n, p)
		}},
		goprior.KindBeta: {[]string{"a", "b"}, func(r *reader) (goprior.Dist, error) {
			a, b := r.need("a"), r.need("b")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Beta(a, b)
		}},
		goprior.KindBernoulli: {[]string{"p"}, func(r *reader) (goprior.Dist, error) {
			// the factory owns type checking for p
			p, ok := r.raw("p")
			if !ok {
				return nil, r.iss
			}
			return goprior.Bernoulli(p)
		}},
		goprior.KindDiscrete: {[]string{"items"}, func(r *reader) (goprior.Dist, error) {
			items := r.items()
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Discrete(items)
		}},
		goprior.KindTDist: {keys(intervalKeys, []string{"t"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			opts := r.opts("low", "high", "credibility", "t", "lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.TDist(opts...)
		}},
		goprior.KindLogTDist: {keys(intervalKeys, []string{"t"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			opts := r.opts("low", "high", "credibility", "t", "lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.LogTDist(opts...)
		}},
		goprior.KindTriangular: {keys([]string{"left", "mode", "right"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			left, mode, right := r.need("left"), r.need("mode"), r.need("right")
			opts := r.opts("lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Triangular(left, mode, right, opts...)
		}},
		goprior.KindPoisson: {keys([]string{"lam"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			lam := r.need("lam")
			opts := r.opts("lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Poisson(lam, opts...)
		}},
		goprior.KindExponential: {keys([]string{"scale"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			scale := r.need("scale")
			opts := r.opts("lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Exponential(scale, opts...)
		}},
		goprior.KindGamma: {keys([]string{"shape", "scale"}, clipKeys), func(r *reader) (goprior.Dist, error) {
			shape := r.need("shape")
			opts := r.opts("scale", "lclip", "rclip")
			if r.failed() {
				return nil, r.iss
			}
			return goprior.Gamma(shape, opts...)
		}},
		goprior.KindMixture: {keys([]string{"dists", "weights"}, clipKeys), buildMixture},
	}
}

// kindTo is the document name of the interval dispatcher.
const kindTo goprior.Kind = "to"

func typeNames() string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, string(k))
	}
	slices.Sort(out)
	return strings.Join(out, ", ")
}

// build turns one descriptor node into a Dist. Issue paths are relative to
// the node.
func build(node any) (goprior.Dist, error) {
	obj, ok := node.(*object)
	if !ok {
		return nil, goprior.Issues{goprior.Root().Issue(goprior.CodeInvalidType, "param", "descriptor", "want", "mapping", "got", typeName(node))}
	}
	tv, ok := obj.get("type")
	if !ok {
		return nil, goprior.Issues{goprior.IssueAt("type", goprior.CodeRequired)}
	}
	name, ok := tv.(string)
	if !ok {
		return nil, goprior.Issues{goprior.IssueAt("type", goprior.CodeInvalidType, "want", "string", "got", typeName(tv))}
	}
	e, ok := kinds[goprior.Kind(name)]
	if !ok {
		return nil, goprior.Issues{goprior.IssueAt("type", goprior.CodeInvalidEnum, "want", typeNames(), "got", name)}
	}
	r := &reader{obj: obj}
	for _, k := range obj.keys {
		if k != "type" && !slices.Contains(e.keys, k) {
			r.add(goprior.IssueAt(k, goprior.CodeUnknownKey, "want", name))
		}
	}
	if r.failed() {
		return nil, r.iss
	}
	return e.build(r)
}

func buildMixture(r *reader) (goprior.Dist, error) {
	v, ok := r.raw("dists")
	if !ok {
		return nil, r.iss
	}
	list, ok := v.([]any)
	if !ok {
		return nil, goprior.Issues{goprior.IssueAt("dists", goprior.CodeInvalidType, "want", "sequence", "got", typeName(v))}
	}
	members := make([]any, len(list))
	for i, m := range list {
		at := goprior.Root().Field("dists").Index(i)
		// [weight, descriptor] pairs keep their weight and build the descriptor
		if pair, ok := m.([]any); ok && len(pair) == 2 {
			if w, ok := toFloat(pair[0]); ok {
				d, err := build(pair[1])
				if err != nil {
					r.merge(err, at.Index(1).Pointer())
					continue
				}
				members[i] = []any{w, d}
				continue
			}
		}
		d, err := build(m)
		if err != nil {
			r.merge(err, at.Pointer())
			continue
		}
		members[i] = d
	}
	var opts []goprior.Option
	if wv, ok := r.obj.get("weights"); ok {
		ws, ok := wv.([]any)
		if !ok {
			r.add(goprior.IssueAt("weights", goprior.CodeInvalidType, "want", "sequence of numbers", "got", typeName(wv)))
		} else {
			nums := make([]float64, len(ws))
			for i, w := range ws {
				f, ok := toFloat(w)
				if !ok {
					r.add(goprior.Root().Field("weights").Index(i).Issue(goprior.CodeInvalidType, "param", "weights", "want", "number", "got", typeName(w)))
					continue
				}
				nums[i] = f
			}
			opts = append(opts, goprior.Weights(nums...))
		}
	}
	opts = append(opts, r.opts("lclip", "rclip")...)
	if r.failed() {
		return nil, r.iss
	}
	return goprior.Mixture(members, opts...)
}

// reader pulls typed parameters out of a descriptor node and accumulates
// issues instead of stopping at the first one.
type reader struct {
	obj *object
	iss goprior.Issues
}

func (r *reader) add(it goprior.Issue) { r.iss = goprior.AppendIssues(r.iss, it) }

func (r *reader) failed() bool { return len(r.iss) > 0 }

// merge re-roots the issues of a nested build under prefix.
func (r *reader) merge(err error, prefix string) {
	if iss, ok := goprior.AsIssues(err); ok {
		r.iss = goprior.AppendIssues(r.iss, iss.WithPrefix(prefix)...)
		return
	}
	r.add(goprior.Issue{Path: prefix, Code: goprior.CodeInvalidType, Message: err.Error(), Cause: err})
}

func (r *reader) raw(key string) (any, bool) {
	v, ok := r.obj.get(key)
	if !ok {
		r.add(goprior.IssueAt(key, goprior.CodeRequired))
	}
	return v, ok
}

func (r *reader) need(key string) float64 {
	v, ok := r.raw(key)
	if !ok {
		return 0
	}
	f, ok := toFloat(v)
	if !ok {
		r.add(goprior.IssueAt(key, goprior.CodeInvalidType, "want", "number", "got", typeName(v)))
	}
	return f
}

func (r *reader) integer(key string) int {
	before := len(r.iss)
	f := r.need(key)
	if len(r.iss) > before {
		return 0
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		r.add(goprior.IssueAt(key, goprior.CodeInvalidType, "want", "integer", "got", f))
		return 0
	}
	return int(f)
}

// opts turns the present keys into factory options, in the order given.
func (r *reader) opts(keys ...string) []goprior.Option {
	var out []goprior.Option
	for _, k := range keys {
		v, ok := r.obj.get(k)
		if !ok {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			r.add(goprior.IssueAt(k, goprior.CodeInvalidType, "want", "number", "got", typeName(v)))
			continue
		}
		out = append(out, optionByKey[k](f))
	}
	return out
}

// items returns discrete outcomes. A mapping becomes [weight, value] pairs in
// document order; sequences pass through unchanged.
func (r *reader) items() any {
	v, ok := r.raw("items")
	if !ok {
		return nil
	}
	obj, ok := v.(*object)
	if !ok {
		return v
	}
	if len(obj.keys) == 0 {
		r.add(goprior.IssueAt("items", goprior.CodeRequired))
		return nil
	}
	pairs := make([][]any, 0, len(obj.keys))
	for _, k := range obj.keys {
		w, ok := toFloat(obj.vals[k])
		if !ok {
			r.add(goprior.Root().Field("items").Field(k).Issue(goprior.CodeInvalidWeight, "param", k, "want", "a number", "got", typeName(obj.vals[k])))
			continue
		}
		pairs = append(pairs, []any{w, k})
	}
	return pairs
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *object:
		return "mapping"
	case []any:
		return "sequence"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int64, int:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
