package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// DefaultMissingValueString is the CSV field decoded as a missing
// evaluation when LoadObjectsCSV is called without an explicit override.
const DefaultMissingValueString = "?"

// LoadObjectsCSV decodes delimited rows, one per object, field j aligned
// positionally with attrs[j] (spec.md §6's CSV ingestion contract), into
// the [][]value.Value table.New expects. A field equal to missingValue
// decodes to a missing value carrying attrs[j]'s declared
// MissingValueFlavor. Pair-valued attributes are not supported over CSV
// (no delimiter-safe pair encoding is defined); use LoadObjectsJSON for
// tables with Pair columns.
func LoadObjectsCSV(r io.Reader, attrs []table.Attribute, missingValue string) ([][]value.Value, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataio: reading CSV rows: %w", err)
	}

	rows := make([][]value.Value, len(records))
	for i, rec := range records {
		if len(rec) != len(attrs) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrFieldCountMismatch, i, len(rec), len(attrs))
		}
		row := make([]value.Value, len(attrs))
		for j, field := range rec {
			v, err := decodeCSVField(field, attrs[j], missingValue)
			if err != nil {
				return nil, fmt.Errorf("row %d attribute %q: %w", i, attrs[j].Name, err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}

func decodeCSVField(field string, attr table.Attribute, missingValue string) (value.Value, error) {
	if field == missingValue {
		return value.NewMissing(attr.MissingValueFlavor), nil
	}

	switch attr.ValueKind {
	case value.KindInteger:
		i, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %q", ErrUnparsableField, field)
		}
		return value.NewInteger(i), nil
	case value.KindReal:
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("%w: %q", ErrUnparsableField, field)
		}
		return value.NewReal(f), nil
	case value.KindEnumeration:
		idx := indexOf(attr.Domain, field)
		if idx < 0 {
			return value.Value{}, fmt.Errorf("%w: %q not in domain of %q", ErrUnparsableField, field, attr.Name)
		}
		return value.NewEnumeration(idx, attr.Domain)
	default:
		return value.Value{}, fmt.Errorf("%w: CSV ingestion does not support %s", ErrUnknownValueKind, attr.ValueKind)
	}
}
