package dataio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// LoadObjectsJSON decodes a JSON array of objects keyed by attribute name
// (spec.md §6's object-ingestion contract) into the [][]value.Value
// table.New expects, in attrs' column order. A missing key or a JSON null
// both decode to a missing value carrying the attribute's declared
// MissingValueFlavor.
func LoadObjectsJSON(r io.Reader, attrs []table.Attribute) ([][]value.Value, error) {
	var raw []map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("dataio: decoding object rows: %w", err)
	}

	rows := make([][]value.Value, len(raw))
	for i, obj := range raw {
		row := make([]value.Value, len(attrs))
		for j, attr := range attrs {
			field, present := obj[attr.Name]
			if !present {
				row[j] = value.NewMissing(attr.MissingValueFlavor)
				continue
			}
			v, err := decodeJSONField(field, attr)
			if err != nil {
				return nil, fmt.Errorf("row %d attribute %q: %w", i, attr.Name, err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}

func decodeJSONField(raw json.RawMessage, attr table.Attribute) (value.Value, error) {
	if string(raw) == "null" {
		return value.NewMissing(attr.MissingValueFlavor), nil
	}

	switch attr.ValueKind {
	case value.KindInteger:
		var i int64
		if err := json.Unmarshal(raw, &i); err != nil {
			return value.Value{}, fmt.Errorf("%w: %s", ErrUnparsableField, raw)
		}
		return value.NewInteger(i), nil
	case value.KindReal:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return value.Value{}, fmt.Errorf("%w: %s", ErrUnparsableField, raw)
		}
		return value.NewReal(f), nil
	case value.KindEnumeration:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return value.Value{}, fmt.Errorf("%w: %s", ErrUnparsableField, raw)
		}
		idx := indexOf(attr.Domain, s)
		if idx < 0 {
			return value.Value{}, fmt.Errorf("%w: %q not in domain of %q", ErrUnparsableField, s, attr.Name)
		}
		return value.NewEnumeration(idx, attr.Domain)
	case value.KindPair:
		var pair [2]json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return value.Value{}, fmt.Errorf("%w: %s", ErrUnparsableField, raw)
		}
		inner := attr
		inner.ValueKind = value.KindInteger
		first, err := decodeJSONField(pair[0], inner)
		if err != nil {
			return value.Value{}, err
		}
		second, err := decodeJSONField(pair[1], inner)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewPair(first, second)
	default:
		return value.Value{}, fmt.Errorf("%w: %s", ErrUnknownValueKind, attr.ValueKind)
	}
}

func indexOf(domain []string, s string) int {
	for i, d := range domain {
		if d == s {
			return i
		}
	}
	return -1
}
