// Package model loads named distribution descriptors from YAML or JSON
// documents.
//
// A document has a single top-level key, dists, mapping a name to a
// descriptor:
//
//	dists:
//	  revenue: {type: lognorm, low: 1, high: 10}
//	  churn:   {type: beta, a: 2, b: 30}
//	  mix:
//	    type: mixture
//	    dists:
//	      - [0.3, {type: norm, mean: 0, sd: 1}]
//	      - [0.7, {type: to, low: 1, high: 5}]
//
// Names keep document order. Every descriptor is validated by the goprior
// factory of its type; issues are reported under /dists/<name>.
package model

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goprior "github.com/reoring/goprior"
)

// Format selects the document decoder.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts auto, yaml, yml and json (case-insensitive). The empty
// string means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("model: unknown format %q (want auto, yaml or json)", s)
}

// Model is an ordered set of named descriptors.
type Model struct {
	names []string
	dists map[string]goprior.Dist
}

// Names returns descriptor names in document order.
func (m *Model) Names() []string { return append([]string(nil), m.names...) }

// Get returns the descriptor registered under name.
func (m *Model) Get(name string) (goprior.Dist, bool) {
	d, ok := m.dists[name]
	return d, ok
}

// Len reports the number of descriptors.
func (m *Model) Len() int { return len(m.names) }

// LoadFile reads and loads path. With FormatAuto a .json extension selects
// JSON and anything else YAML.
func LoadFile(path string, f Format) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if f == FormatAuto || f == "" {
		f = FormatYAML
		if strings.EqualFold(filepath.Ext(path), ".json") {
			f = FormatJSON
		}
	}
	return Load(data, f)
}

// Load decodes data and builds every descriptor in it. All descriptor
// problems are collected into a single goprior.Issues.
func Load(data []byte, f Format) (*Model, error) {
	doc, err := decode(data, f)
	if err != nil {
		return nil, err
	}
	root, ok := doc.(*object)
	if !ok {
		return nil, goprior.Issues{goprior.Root().Issue(goprior.CodeInvalidType, "param", "document", "want", "mapping", "got", typeName(doc))}
	}
	var iss goprior.Issues
	for _, k := range root.keys {
		if k != "dists" {
			iss = goprior.AppendIssues(iss, goprior.IssueAt(k, goprior.CodeUnknownKey, "want", "model"))
		}
	}
	dv, ok := root.get("dists")
	if !ok {
		return nil, goprior.AppendIssues(iss, goprior.IssueAt("dists", goprior.CodeRequired))
	}
	dists, ok := dv.(*object)
	if !ok {
		return nil, goprior.AppendIssues(iss, goprior.IssueAt("dists", goprior.CodeInvalidType, "want", "mapping", "got", typeName(dv)))
	}
	m := &Model{dists: make(map[string]goprior.Dist, len(dists.keys))}
	for _, name := range dists.keys {
		at := goprior.Root().Field("dists").Field(name).Pointer()
		d, err := build(dists.vals[name])
		if err != nil {
			var bi goprior.Issues
			if !errors.As(err, &bi) {
				return nil, err
			}
			iss = goprior.AppendIssues(iss, bi.WithPrefix(at)...)
			continue
		}
		m.names = append(m.names, name)
		m.dists[name] = d
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return m, nil
}

func decode(data []byte, f Format) (any, error) {
	if f == FormatAuto || f == "" {
		f = FormatYAML
		if t := bytes.TrimSpace(data); len(t) > 0 && (t[0] == '{' || t[0] == '[') {
			f = FormatJSON
		}
	}
	var (
		doc any
		err error
	)
	switch f {
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatJSON:
		doc, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("model: unknown format %q", string(f))
	}
	if err == nil {
		return doc, nil
	}
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		it := goprior.Root().Issue(goprior.CodeDuplicateKey, "param", dup.Key)
		it.Cause = err
		it.Hint = dup.Error()
		return nil, goprior.Issues{it}
	}
	it := goprior.Root().Issue(goprior.CodeParseError, "param", "document", "want", err.Error())
	it.Cause = err
	return nil, goprior.Issues{it}
}
