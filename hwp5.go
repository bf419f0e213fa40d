// Package hwp5 reads and writes HWP 5.x word-processor documents.
//
// An HWP document is a compound file holding named streams: a fixed FileHeader, a
// DocInfo stream of resource records (fonts, character and paragraph shapes, styles,
// borders, binary data descriptors) and one BodyText/Section{N} record stream per
// section. Streams may be deflate-compressed, and distribution documents additionally
// encrypt their section streams with a key hidden in the stream itself.
//
// # Reading
//
//	doc, err := hwp5.Open("report.hwp")
//	if doc == nil {
//	    log.Fatal(err)
//	}
//	if err != nil {
//	    log.Printf("document partially decoded: %v", err)
//	}
//	fmt.Println(doc.Text())
//
// A malformed record stops the scan of its stream only. Decode then returns the
// document with everything read so far together with the scan errors; it returns a nil
// document only when the container or FileHeader is unusable.
//
// # Writing
//
//	s := hwp5.NewSession()
//	bold := entity.DefaultCharShape()
//	bold.SetBold(true)
//	boldID, _ := s.AddCharShape(bold)
//	_, _ = s.AddSection(model.A4())
//	_, _ = s.AppendParagraph(model.Paragraph{
//	    Text: "Hello",
//	    Runs: []model.CharShapeRun{{Pos: 0, CharShapeID: uint32(boldID)}},
//	})
//	storage, _ := s.Encode()
//	_ = container.Pack(out, storage)
//
// # Package Structure
//
// This package wires the codec packages together. Use record, entity and dispatch
// directly to work with individual streams.
package hwp5

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/model"
)

// Stream paths.
const (
	StreamFileHeader = "FileHeader"
	StreamDocInfo    = "DocInfo"
	StorageBodyText  = "BodyText"
	StorageViewText  = "ViewText"
	StorageBinData   = "BinData"
)

// SectionPath returns the path of section n under storage, e.g. "BodyText/Section0".
func SectionPath(storage string, n int) string {
	return fmt.Sprintf("%s/Section%d", storage, n)
}

// Open reads a document from a compound file or a pack bundle on disk.
func Open(path string, opts ...ReaderOption) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return OpenReader(f, opts...)
}

// OpenReader reads a document from a compound file or a pack bundle. The format is
// detected from the leading magic bytes.
func OpenReader(r io.ReaderAt, opts ...ReaderOption) (*model.Document, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	c, err := load(r, cfg)
	if err != nil {
		return nil, err
	}

	return decode(c, cfg)
}

// Load reads the container of a compound file or a pack bundle without decoding it.
func Load(r io.ReaderAt, opts ...ReaderOption) (*container.Storage, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	return load(r, cfg)
}

func load(r io.ReaderAt, cfg *ReaderConfig) (*container.Storage, error) {
	magic := make([]byte, len(container.PackMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read magic: %w", err)
	}

	if n == len(magic) && bytes.Equal(magic, []byte(container.PackMagic)) {
		br := bufio.NewReader(io.NewSectionReader(r, 0, 1<<62))
		return container.Unpack(br, container.WithMaxEntrySize(cfg.limits.MaxStreamSize))
	}

	return container.LoadCFB(r, container.WithMaxStreamSize(cfg.limits.MaxStreamSize))
}

// Decode decodes the document held by c.
//
// The returned document is nil only when the FileHeader or DocInfo stream is missing,
// the FileHeader is malformed, or the document is password encrypted. Scan failures
// inside DocInfo, section or BinData streams are joined into the returned error next to
// a document holding everything decoded before each failure.
func Decode(c container.Container, opts ...ReaderOption) (*model.Document, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	return decode(c, cfg)
}

// ReadStream returns the record bytes of one stream of c after distribution decryption
// and inflation, as the decoder sees them.
func ReadStream(c container.Container, path string, opts ...ReaderOption) ([]byte, error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	d, err := newDecoder(c, cfg)
	if err != nil {
		return nil, err
	}

	return d.stream(container.CleanPath(path))
}
