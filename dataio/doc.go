// Package dataio ingests information tables from delimited text and JSON,
// the tabular-data-ingestion collaborator spec.md §1 names as deliberately
// out of the algorithmic core's scope: an attribute schema (names, kinds,
// preference directions, value kinds, enumeration domains, missing-value
// flavors) loaded from JSON, and object rows loaded from either JSON or
// CSV against that schema.
//
// Neither format influences table.New's semantics — dataio only builds the
// []table.Attribute and [][]value.Value arguments table.New already
// accepts; every invariant the table enforces (row width, value-kind
// match, at most one active decision/identification attribute) is
// enforced by table.New itself, not duplicated here.
package dataio
