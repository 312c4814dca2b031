package table

import "github.com/roughset/drsa/value"

// Decision is the tuple of active decision values for one object. The
// common case is a single active decision attribute (a "simple decision");
// NewDecision/NewSimpleDecision both produce the same representation, a
// composite decision of size 1 being indistinguishable from a simple one.
type Decision struct {
	attrs  []Attribute
	values []value.Value
}

// NewSimpleDecision builds a one-component Decision, the overwhelmingly
// common case of a single active decision attribute.
func NewSimpleDecision(attr Attribute, v value.Value) Decision {
	return Decision{attrs: []Attribute{attr}, values: []value.Value{v}}
}

// NewDecision builds a (possibly composite) Decision from parallel
// attribute/value slices. len(attrs) must equal len(values); callers
// within this module only ever construct one-component decisions today,
// but the representation does not assume that.
func NewDecision(attrs []Attribute, values []value.Value) Decision {
	return Decision{attrs: attrs, values: values}
}

// Len reports the number of components in d.
func (d Decision) Len() int { return len(d.values) }

// Value returns the i-th component's value.
func (d Decision) Value(i int) value.Value { return d.values[i] }

// Attribute returns the i-th component's attribute metadata.
func (d Decision) Attribute(i int) Attribute { return d.attrs[i] }

// AtLeastAsGood reports whether d is preference-wise at least as good as
// other, componentwise, conjoined across components (UNCOMPARABLE
// propagates, FALSE is absorbing — matching value.Value's three-valued
// conjunction used throughout this module).
func (d Decision) AtLeastAsGood(other Decision) value.TriLogic {
	if d.Len() != other.Len() {
		return value.UNCOMPARABLE
	}
	result := value.TRUE
	for i := 0; i < d.Len(); i++ {
		c := d.attrs[i].AtLeastAsGood(d.values[i], other.values[i])
		switch c {
		case value.FALSE:
			return value.FALSE
		case value.UNCOMPARABLE:
			result = value.UNCOMPARABLE
		}
	}
	return result
}

// Equal reports whether d and other denote the same decision, componentwise.
func (d Decision) Equal(other Decision) value.TriLogic {
	if d.Len() != other.Len() {
		return value.UNCOMPARABLE
	}
	result := value.TRUE
	for i := 0; i < d.Len(); i++ {
		c := d.values[i].Equal(other.values[i])
		switch c {
		case value.FALSE:
			return value.FALSE
		case value.UNCOMPARABLE:
			result = value.UNCOMPARABLE
		}
	}
	return result
}

// String renders d for logs and test diagnostics.
func (d Decision) String() string {
	if d.Len() == 1 {
		return d.values[0].String()
	}
	s := "("
	for i, v := range d.values {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + ")"
}
