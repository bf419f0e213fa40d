package model

import (
	"strings"

	"github.com/arloliu/hwp5/header"
)

// Document is a decoded document tree.
type Document struct {
	Header   header.FileHeader
	DocInfo  *DocInfo
	Sections []Section
}

// Text returns the plain text of every section.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.Sections))
	for i := range d.Sections {
		parts = append(parts, d.Sections[i].Text())
	}

	return strings.Join(parts, "\n")
}

// ParagraphCount counts top-level paragraphs.
func (d *Document) ParagraphCount() int {
	n := 0
	for i := range d.Sections {
		n += len(d.Sections[i].Paragraphs)
	}

	return n
}
