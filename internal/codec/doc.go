// Package codec converts per-domain record collections to and from the flat
// comma-delimited text blocks used for storage and interchange.
//
// A Codec is an ordered list of columns. Encode writes a header line naming
// the columns followed by one row per record. Decode is tolerant: a row with
// a bad field keeps its good fields, the bad ones fall back to the column
// default, and the problem is recorded in a Report instead of failing the
// whole block.
//
// Every codec also satisfies Table, the type-erased view the exchange service
// uses to normalise blocks without knowing their record type.
package codec
