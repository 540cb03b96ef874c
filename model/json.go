package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// decodeJSON decodes a JSON document through the go-json token stream so
// object key order is kept and duplicate keys are detected.
func decodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("json: unexpected data after top-level value")
	}
	return v, nil
}

func readValue(dec *j.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %q", rune(v))
	case j.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("json: number %q: %w", string(v), err)
		}
		return f, nil
	case string, bool, float64, nil:
		return v, nil
	}
	return nil, fmt.Errorf("json: unexpected token %v", tok)
}

func readObject(dec *j.Decoder) (any, error) {
	m := newObject(4)
	first := map[string]int64{}
	for dec.More() {
		at := dec.InputOffset()
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: expected object key, got %v", tok)
		}
		if pos, dup := first[key]; dup {
			return nil, &DuplicateKeyError{Key: key, FirstLine: int(pos), Line: int(at)}
		}
		first[key] = at
		val, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		m.set(key, val)
	}
	if _, err := dec.Token(); err != nil { // '}'
		return nil, err
	}
	return m, nil
}

func readArray(dec *j.Decoder) (any, error) {
	arr := []any{}
	for dec.More() {
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // ']'
		return nil, err
	}
	return arr, nil
}
