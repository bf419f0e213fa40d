// Package entity implements one Decode/Encode pair per record body.
//
// Fixed-size bodies (CharShape, PageDef, SectionDef, LineSeg, ...) are checked for length
// once and then sliced directly. Variable bodies are read through a cursor that latches
// the first error. Every Encode is the byte-exact inverse of its Decode for the fields
// the model owns; unknown trailing bytes are carried in Extra fields and written back
// verbatim.
//
// Decoders never panic on malformed input. A body that is too short fails with an error
// wrapping errs.ErrParse, or errs.ErrInvalidFormat for heuristic layouts such as
// Hyperlink.
package entity
