// Package model holds the in-memory document tree.
//
// A Document is a FileHeader, a DocInfo resource table and an ordered list of Sections.
// Paragraph formatting and controls refer to DocInfo resources by index; the resource
// tables are Arenas, so indices are stable and out-of-range lookups report absence.
//
// The types here carry no codec logic. Package entity encodes and decodes individual
// records, package dispatch assembles records into this tree and walks it back out.
package model
