package dataio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roughset/drsa/table"
	"github.com/roughset/drsa/value"
)

// attributeSchema is the JSON-serializable shape of one table.Attribute,
// field-for-field the wire contract spec.md §6 pins: `type` names the
// attribute's role (CONDITION/DECISION/DESCRIPTION, or the lowercase
// literal "identification"), `valueType` is either a bare string or, for
// Pair attributes, a two-element ["Pair", <inner>] array, and
// `missingValueType` uses the short M15/M2 spelling.
type attributeSchema struct {
	Name             string          `json:"name"`
	Active           bool            `json:"active"`
	Type             string          `json:"type"`
	PreferenceType   string          `json:"preferenceType"`
	ValueType        json.RawMessage `json:"valueType"`
	Domain           []string        `json:"domain,omitempty"`
	MissingValueType string          `json:"missingValueType,omitempty"`
}

// LoadAttributes decodes a JSON array of attribute-schema entries into the
// []table.Attribute table.New expects, in column order.
func LoadAttributes(r io.Reader) ([]table.Attribute, error) {
	var schemas []attributeSchema
	if err := json.NewDecoder(r).Decode(&schemas); err != nil {
		return nil, fmt.Errorf("dataio: decoding attribute schema: %w", err)
	}

	attrs := make([]table.Attribute, len(schemas))
	for i, s := range schemas {
		kind, err := parseAttributeKind(s.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %s", err, s.Name, s.Type)
		}
		pref, err := parsePreference(s.PreferenceType)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %s", err, s.Name, s.PreferenceType)
		}
		vk, err := parseValueType(s.ValueType)
		if err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %s", err, s.Name, s.ValueType)
		}
		if vk == value.KindEnumeration && len(s.Domain) == 0 {
			return nil, fmt.Errorf("%w: attribute %q", ErrMissingEnumerationDomain, s.Name)
		}

		flavor := value.MV15
		if s.MissingValueType == "M2" {
			flavor = value.MV2
		}

		attrs[i] = table.Attribute{
			Name:                s.Name,
			Active:              s.Active,
			Kind:                kind,
			Preference:          pref,
			ValueKind:           vk,
			Domain:              s.Domain,
			MissingValueFlavor:  flavor,
		}
	}
	return attrs, nil
}

// parseAttributeKind maps spec.md §6's `type` vocabulary onto
// table.AttributeKind. "identification" is deliberately lowercase,
// matching the wire contract exactly rather than normalizing case.
func parseAttributeKind(s string) (table.AttributeKind, error) {
	switch s {
	case "CONDITION":
		return table.KindCondition, nil
	case "DECISION":
		return table.KindDecision, nil
	case "DESCRIPTION":
		return table.KindDescription, nil
	case "identification":
		return table.KindIdentification, nil
	default:
		return 0, ErrUnknownKind
	}
}

func parsePreference(s string) (table.PreferenceType, error) {
	switch s {
	case "GAIN":
		return table.Gain, nil
	case "COST":
		return table.Cost, nil
	case "NONE", "":
		return table.None, nil
	default:
		return 0, ErrUnknownPreference
	}
}

// parseValueType decodes spec.md §6's valueType field: either a bare JSON
// string ("Integer", "Real", "Enumeration") or a two-element array
// ["Pair", <inner>] for pair-valued attributes. The inner component is
// accepted but not separately recorded, since table.Attribute carries a
// single ValueKind per column and this module's Pair usage is always over
// Integer components.
func parseValueType(raw json.RawMessage) (value.Kind, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return simpleValueKind(asString)
	}

	var asPair [2]string
	if err := json.Unmarshal(raw, &asPair); err == nil && asPair[0] == "Pair" {
		return value.KindPair, nil
	}
	return 0, ErrUnknownValueKind
}

func simpleValueKind(s string) (value.Kind, error) {
	switch s {
	case "Integer":
		return value.KindInteger, nil
	case "Real":
		return value.KindReal, nil
	case "Enumeration":
		return value.KindEnumeration, nil
	default:
		return 0, ErrUnknownValueKind
	}
}
