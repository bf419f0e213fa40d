package hwp5

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/arloliu/hwp5/compress"
	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/dispatch"
	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/header"
	"github.com/arloliu/hwp5/internal/options"
	"github.com/arloliu/hwp5/model"
	"github.com/klauspost/compress/zlib"
	"github.com/zeebo/blake3"
)

// defaultTabStop is the section tab width written when none is given, 40 pt.
const defaultTabStop = 8000

// Session builds one document and encodes it once.
//
// Resource methods return the index other entities use to refer to the resource.
// Paragraphs go to the innermost list opened with PushList, or to the current section
// when no list is open. A Session is owned by one goroutine; after Encode every
// mutating method fails with errs.ErrSessionSealed.
type Session struct {
	cfg *SessionConfig
	log *slog.Logger

	docInfo  *model.DocInfo
	sections []*model.Section
	lists    []*[]model.Paragraph
	binData  map[[32]byte]uint16

	nextInstanceID uint32
	sealed         bool
}

// NewSession creates an empty authoring session.
func NewSession(opts ...SessionOption) (*Session, error) {
	cfg := &SessionConfig{
		logger:     slog.New(slog.DiscardHandler),
		compressed: true,
		level:      zlib.DefaultCompression,
		version:    header.DefaultVersion,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Session{
		cfg:            cfg,
		log:            cfg.logger,
		docInfo:        model.NewDocInfo(),
		binData:        make(map[[32]byte]uint16),
		nextInstanceID: 1,
	}, nil
}

func (s *Session) check() error {
	if s.sealed {
		return errs.ErrSessionSealed
	}

	return nil
}

// DocInfo returns the resource table being built. Callers may read it; resources must be
// added through the Add methods so indices stay consistent.
func (s *Session) DocInfo() *model.DocInfo {
	return s.docInfo
}

// AddFaceName appends a font. Fonts are written once per language group.
func (s *Session) AddFaceName(f model.FaceName) (int, error) {
	return addResource(s, &s.docInfo.FaceNames, f)
}

// AddBorderFill appends a border fill. References to it are 1-based: use the returned
// index plus one.
func (s *Session) AddBorderFill(bf model.BorderFill) (int, error) {
	return addResource(s, &s.docInfo.BorderFills, bf)
}

// AddCharShape appends a character shape.
func (s *Session) AddCharShape(cs model.CharShape) (int, error) {
	return addResource(s, &s.docInfo.CharShapes, cs)
}

// AddTabDef appends a tab definition.
func (s *Session) AddTabDef(td model.TabDef) (int, error) {
	return addResource(s, &s.docInfo.TabDefs, td)
}

// AddNumbering appends a numbering definition.
func (s *Session) AddNumbering(n model.Numbering) (int, error) {
	return addResource(s, &s.docInfo.Numberings, n)
}

// AddBullet appends a bullet definition.
func (s *Session) AddBullet(b model.Bullet) (int, error) {
	return addResource(s, &s.docInfo.Bullets, b)
}

// AddParaShape appends a paragraph shape.
func (s *Session) AddParaShape(ps model.ParaShape) (int, error) {
	return addResource(s, &s.docInfo.ParaShapes, ps)
}

// AddStyle appends a style.
func (s *Session) AddStyle(st model.Style) (int, error) {
	return addResource(s, &s.docInfo.Styles, st)
}

func addResource[T any](s *Session, arena *model.Arena[T], v T) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	return arena.Add(v), nil
}

// AddBinData stores an embedded binary and returns its storage id, the value pictures
// refer to. Identical payloads are stored once and share an id.
func (s *Session) AddBinData(ext string, data []byte) (uint16, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: bin data needs an extension", errs.ErrInvalidArgument)
	}

	sum := blake3.Sum256(data)
	if id, ok := s.binData[sum]; ok {
		return id, nil
	}
	if s.docInfo.BinData.Len() >= 0xFFFF {
		return 0, fmt.Errorf("%w: bin data table full", errs.ErrInvalidArgument)
	}

	id := uint16(s.docInfo.BinData.Len() + 1) //nolint:gosec
	s.docInfo.BinData.Add(model.BinData{
		Props: uint16(model.BinDataEmbedding),
		ID:    id,
		Ext:   ext,
		Data:  data,
	})
	s.binData[sum] = id

	return id, nil
}

// AddSection starts a new section with the given page and makes it current. The first
// section also carries the section definition. Open lists are closed.
func (s *Session) AddSection(page model.PageDef) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	s.sections = append(s.sections, newSection(page, len(s.sections) == 0))
	s.lists = nil

	return len(s.sections) - 1, nil
}

// newSection builds an empty section; the first section of a document also carries the
// section definition.
func newSection(page model.PageDef, first bool) *model.Section {
	sec := &model.Section{Page: &page}
	if first {
		sec.Def = &model.SectionDef{DefaultTabStop: defaultTabStop, PageStart: 1}
	}

	return sec
}

// NextInstanceID reserves a fresh paragraph instance id. It fails with
// errs.ErrSessionSealed after Encode.
func (s *Session) NextInstanceID() (uint32, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	id := s.nextInstanceID
	s.nextInstanceID++

	return id, nil
}

// AppendParagraph appends p to the innermost open list and returns its index in that
// list. A zero instance id is replaced by NextInstanceID. Without any section an A4
// section is started first.
func (s *Session) AppendParagraph(p model.Paragraph) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	if len(s.sections) == 0 {
		if _, err := s.AddSection(model.A4()); err != nil {
			return 0, err
		}
	}
	if p.Header.InstanceID == 0 {
		p.Header.InstanceID, _ = s.NextInstanceID()
	}

	list := &s.sections[len(s.sections)-1].Paragraphs
	if n := len(s.lists); n > 0 {
		list = s.lists[n-1]
	}
	*list = append(*list, p)

	return len(*list) - 1, nil
}

// PushList makes list the target of AppendParagraph until the matching PopList. list is
// typically the Paragraphs field of a table cell, text box or header/footer that the
// caller holds by pointer.
func (s *Session) PushList(list *[]model.Paragraph) error {
	if err := s.check(); err != nil {
		return err
	}
	if list == nil {
		return fmt.Errorf("%w: nil paragraph list", errs.ErrInvalidArgument)
	}
	s.lists = append(s.lists, list)

	return nil
}

// PopList closes the innermost list opened by PushList.
func (s *Session) PopList() error {
	if err := s.check(); err != nil {
		return err
	}
	if len(s.lists) == 0 {
		return fmt.Errorf("%w: no open paragraph list", errs.ErrInvalidArgument)
	}
	s.lists = s.lists[:len(s.lists)-1]

	return nil
}

// ListDepth returns the number of open lists.
func (s *Session) ListDepth() int {
	return len(s.lists)
}

// Encode writes the document to a new Storage and seals the session.
//
// The storage holds FileHeader, DocInfo, BodyText/Section{N} and one BinData stream per
// embedded binary. Streams other than FileHeader are deflated unless compression is off.
// A session without sections is written with one empty A4 section. Encode reads the
// session state without changing it; sealing is its only effect on the session, and a
// sealed session rejects every further mutation with errs.ErrSessionSealed.
//
// Example:
//
//	s, _ := hwp5.NewSession()
//	_, _ = s.AppendParagraph(model.Paragraph{Text: "Hello"})
//	storage, err := s.Encode()
//	if err != nil {
//		return err
//	}
//	err = container.Pack(w, storage)
func (s *Session) Encode() (*container.Storage, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	s.sealed = true

	sections := s.sections
	if len(sections) == 0 {
		sections = []*model.Section{newSection(model.A4(), true)}
	}

	codec := compress.NewDeflateCodec(compress.WithLevel(s.cfg.level))
	pack := func(data []byte) ([]byte, error) {
		if !s.cfg.compressed {
			return data, nil
		}

		return codec.Compress(data)
	}

	out := container.NewStorage()
	fh := header.New(s.cfg.version, s.cfg.compressed)
	if err := out.Create(StreamFileHeader, fh.Bytes()); err != nil {
		return nil, err
	}

	di := s.finalDocInfo(len(sections))
	data, err := dispatch.EncodeDocInfo(di)
	if err != nil {
		return nil, fmt.Errorf("encode docinfo: %w", err)
	}
	if err := s.store(out, StreamDocInfo, data, pack); err != nil {
		return nil, err
	}

	for n, sec := range sections {
		data, err := dispatch.EncodeSection(sec)
		if err != nil {
			return nil, fmt.Errorf("encode section %d: %w", n, err)
		}
		if err := s.store(out, SectionPath(StorageBodyText, n), data, pack); err != nil {
			return nil, err
		}
	}

	for _, bd := range di.BinData.All() {
		if err := s.store(out, entity.BinDataPath(bd.ID, bd.Ext), bd.Data, pack); err != nil {
			return nil, err
		}
	}

	s.log.Debug("document encoded",
		"sections", len(sections), "streams", out.Len(), "bytes", out.Size(), "compressed", s.cfg.compressed)

	return out, nil
}

func (s *Session) store(out *container.Storage, path string, data []byte, pack func([]byte) ([]byte, error)) error {
	packed, err := pack(data)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	return out.Create(path, packed)
}

// finalDocInfo completes the resource table for writing: the section count, face names
// repeated for every language group, and fresh id mappings.
func (s *Session) finalDocInfo(sectionCount int) *model.DocInfo {
	src := s.docInfo
	di := &model.DocInfo{
		Properties:  src.Properties,
		BinData:     src.BinData,
		BorderFills: src.BorderFills,
		CharShapes:  src.CharShapes,
		TabDefs:     src.TabDefs,
		Numberings:  src.Numberings,
		Bullets:     src.Bullets,
		ParaShapes:  src.ParaShapes,
		Styles:      src.Styles,
		Raw:         src.Raw,
	}
	di.Properties.SectionCount = uint16(sectionCount) //nolint:gosec
	if di.Properties.PageStart == 0 {
		di.Properties.PageStart = 1
	}

	faces := src.FaceNames.Values()
	for range format.LangCount {
		for _, f := range faces {
			di.FaceNames.Add(f)
		}
	}
	di.IDMappings = di.ComputeIDMappings()

	return di
}
