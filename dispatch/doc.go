// Package dispatch drives record streams through the entity codecs.
//
// DecodeDocInfo and DecodeSection walk a decompressed stream record by record and
// assemble the model tree; EncodeDocInfo and EncodeSection walk the tree and emit the
// records back. Decoding is tolerant: the first record that cannot be framed stops the
// scan, and what was decoded before it is returned together with the error. Optional
// paragraph parts that fail to decode are left empty.
//
// The section-boundary tag has an ordinal meaning. Its first occurrence in a section
// carries the page and section definitions; every later occurrence only closes the
// current paragraph and opens a new one. The decoder keeps this as explicit state.
package dispatch
