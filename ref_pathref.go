package goprior

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/goprior/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code string, kv ...any) Issue
}

// Root returns the empty path ("/").
func Root() PathRef { return &pathRef{parts: nil} }

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue creates an Issue at the path. kv pairs become Params and fill the
// message template; "param" defaults to the last path segment.
func (p *pathRef) Issue(code string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	if _, ok := m["param"]; !ok && len(p.parts) > 0 {
		m["param"] = p.parts[len(p.parts)-1]
	}
	data := make(map[string]string, len(m))
	for k, v := range m {
		data[k] = fmt.Sprint(v)
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(code, data), Params: m}
}

// IssueAt creates an Issue for a named parameter at the root.
func IssueAt(param, code string, kv ...any) Issue {
	return Root().Field(param).Issue(code, kv...)
}

// fail wraps a single issue as an error.
func fail(param, code string, kv ...any) error {
	return Issues{IssueAt(param, code, kv...)}
}
