package dataio

import "errors"

// ErrUnknownValueKind is returned when an attribute schema names a value
// kind dataio does not recognize ("Integer", "Real", "Enumeration",
// "Pair").
var ErrUnknownValueKind = errors.New("dataio: unknown value kind")

// ErrUnknownPreference is returned when an attribute schema names a
// preference direction dataio does not recognize ("GAIN", "COST", "NONE",
// or empty for none).
var ErrUnknownPreference = errors.New("dataio: unknown preference direction")

// ErrUnknownKind is returned when an attribute schema names an attribute
// kind dataio does not recognize ("CONDITION", "DECISION", "DESCRIPTION",
// "identification").
var ErrUnknownKind = errors.New("dataio: unknown attribute kind")

// ErrMissingEnumerationDomain is returned when an Enumeration-valued
// attribute's schema entry carries no Domain.
var ErrMissingEnumerationDomain = errors.New("dataio: enumeration attribute has no domain")

// ErrFieldCountMismatch is returned by LoadObjectsCSV when a row has a
// different number of fields than the attribute schema. LoadObjectsJSON
// keys fields by attribute name and does not return it.
var ErrFieldCountMismatch = errors.New("dataio: row field count does not match attribute schema")

// ErrUnparsableField is returned when a raw field cannot be parsed as its
// attribute's declared value kind.
var ErrUnparsableField = errors.New("dataio: field does not parse as its attribute's value kind")
