package dispatch

import (
	"fmt"

	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
)

// DecodeDocInfo decodes a DocInfo stream.
//
// The returned DocInfo is never nil. When a record cannot be framed or a resource body
// cannot be decoded, scanning stops and the resources read so far are returned with a
// *record.Error describing where.
func DecodeDocInfo(data []byte, opts Options) (*model.DocInfo, error) {
	log := opts.logger()
	di := model.NewDocInfo()

	r := record.NewReader(data)
	for r.Next() {
		rec := r.Record()
		if err := decodeResource(di, rec); err != nil {
			err = &record.Error{Tag: rec.Tag, Offset: rec.Offset, Err: err}
			log.Warn("docinfo scan stopped", "offset", rec.Offset, "tag", rec.Tag.String(), "error", err)

			return di, err
		}
	}
	if err := r.Err(); err != nil {
		log.Warn("docinfo scan stopped", "offset", r.Offset(), "error", err)
		return di, err
	}

	return di, nil
}

func decodeResource(di *model.DocInfo, rec record.Record) error {
	switch rec.Tag {
	case format.TagDocumentProperties:
		p, err := entity.DecodeDocumentProperties(rec.Body)
		di.Properties = p

		return err
	case format.TagIDMappings:
		m, err := entity.DecodeIDMappings(rec.Body)
		di.IDMappings = m

		return err
	case format.TagBinData:
		return addDecoded(&di.BinData, rec.Body, entity.DecodeBinData)
	case format.TagFaceName:
		return addDecoded(&di.FaceNames, rec.Body, entity.DecodeFaceName)
	case format.TagBorderFill:
		return addDecoded(&di.BorderFills, rec.Body, entity.DecodeBorderFill)
	case format.TagCharShape:
		return addDecoded(&di.CharShapes, rec.Body, entity.DecodeCharShape)
	case format.TagTabDef:
		return addDecoded(&di.TabDefs, rec.Body, entity.DecodeTabDef)
	case format.TagNumbering:
		return addDecoded(&di.Numberings, rec.Body, entity.DecodeNumbering)
	case format.TagBullet:
		return addDecoded(&di.Bullets, rec.Body, entity.DecodeBullet)
	case format.TagParaShape:
		return addDecoded(&di.ParaShapes, rec.Body, entity.DecodeParaShape)
	case format.TagStyle:
		return addDecoded(&di.Styles, rec.Body, entity.DecodeStyle)
	default:
		di.Raw = append(di.Raw, model.RawRecord{
			Tag:   rec.Tag,
			Level: rec.Level,
			Body:  append([]byte(nil), rec.Body...),
		})

		return nil
	}
}

func addDecoded[T any](arena *model.Arena[T], body []byte, decode func([]byte) (T, error)) error {
	v, err := decode(body)
	if err != nil {
		return err
	}
	arena.Add(v)

	return nil
}

// EncodeDocInfo encodes a DocInfo stream: properties and id mappings at level 0, the
// resource tables below the mappings at level 1 in table order, then raw records.
// IDMappings are recomputed from the arenas when di carries none.
func EncodeDocInfo(di *model.DocInfo) ([]byte, error) {
	w := record.NewWriter()

	mappings := di.IDMappings
	if len(mappings.Counts) == 0 {
		mappings = di.ComputeIDMappings()
	}
	if err := w.Write(format.TagDocumentProperties, 0, entity.EncodeDocumentProperties(di.Properties)); err != nil {
		return nil, err
	}
	if err := w.Write(format.TagIDMappings, 0, entity.EncodeIDMappings(mappings)); err != nil {
		return nil, err
	}

	steps := []func() error{
		func() error { return writeArena(w, format.TagBinData, &di.BinData, entity.EncodeBinData) },
		func() error { return writeArena(w, format.TagFaceName, &di.FaceNames, entity.EncodeFaceName) },
		func() error { return writeArena(w, format.TagBorderFill, &di.BorderFills, infallible(entity.EncodeBorderFill)) },
		func() error { return writeArena(w, format.TagCharShape, &di.CharShapes, infallible(entity.EncodeCharShape)) },
		func() error { return writeArena(w, format.TagTabDef, &di.TabDefs, entity.EncodeTabDef) },
		func() error { return writeArena(w, format.TagNumbering, &di.Numberings, entity.EncodeNumbering) },
		func() error { return writeArena(w, format.TagBullet, &di.Bullets, infallible(entity.EncodeBullet)) },
		func() error { return writeArena(w, format.TagParaShape, &di.ParaShapes, infallible(entity.EncodeParaShape)) },
		func() error { return writeArena(w, format.TagStyle, &di.Styles, entity.EncodeStyle) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}

	for _, raw := range di.Raw {
		if err := w.Write(raw.Tag, raw.Level, raw.Body); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

func writeArena[T any](w *record.Writer, tag format.Tag, arena *model.Arena[T], encode func(T) ([]byte, error)) error {
	for i, v := range arena.All() {
		body, err := encode(v)
		if err != nil {
			return fmt.Errorf("%s %d: %w", tag, i, err)
		}
		if err := w.Write(tag, 1, body); err != nil {
			return err
		}
	}

	return nil
}

func infallible[T any](encode func(T) []byte) func(T) ([]byte, error) {
	return func(v T) ([]byte, error) {
		return encode(v), nil
	}
}
