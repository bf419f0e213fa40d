package hwp5

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arloliu/hwp5/compress"
	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/dispatch"
	"github.com/arloliu/hwp5/distribution"
	"github.com/arloliu/hwp5/entity"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/header"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
	"github.com/arloliu/hwp5/stream"
)

// decoder carries the state of one Decode call.
type decoder struct {
	c      container.Container
	cfg    *ReaderConfig
	log    *slog.Logger
	header header.FileHeader
	codec  compress.DeflateCodec

	scanErrs []error
}

func newDecoder(c container.Container, cfg *ReaderConfig) (*decoder, error) {
	d := &decoder{
		c:     c,
		cfg:   cfg,
		log:   cfg.logger,
		codec: compress.NewDeflateCodec(compress.WithMaxOutput(cfg.limits.MaxDecompressedSize)),
	}

	raw, err := c.Open(StreamFileHeader)
	if err != nil {
		return nil, err
	}
	if d.header, err = header.Parse(raw); err != nil {
		return nil, err
	}
	if err := d.header.CheckSupported(); err != nil {
		return nil, err
	}
	d.log.Debug("file header", "version", d.header.Version.String(), "flags", d.header.Flags.String())

	return d, nil
}

func decode(c container.Container, cfg *ReaderConfig) (*model.Document, error) {
	d, err := newDecoder(c, cfg)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{Header: d.header}

	data, err := d.stream(StreamDocInfo)
	if err != nil {
		return nil, err
	}
	doc.DocInfo, err = dispatch.DecodeDocInfo(data, d.dispatchOptions(StreamDocInfo))
	d.collect(StreamDocInfo, err)

	doc.Sections = d.sections()
	d.loadBinData(doc.DocInfo)

	return doc, errors.Join(d.scanErrs...)
}

func (d *decoder) collect(path string, err error) {
	if err != nil {
		d.scanErrs = append(d.scanErrs, fmt.Errorf("%s: %w", path, err))
	}
}

func (d *decoder) dispatchOptions(path string) dispatch.Options {
	return dispatch.Options{Logger: d.log, StrictText: d.cfg.strictText, Stream: path}
}

// stream reads, decrypts and inflates one record stream.
func (d *decoder) stream(path string) ([]byte, error) {
	data, err := d.c.Open(path)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > d.cfg.limits.MaxStreamSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", errs.ErrLimitExceeded, path, len(data))
	}

	if d.header.Flags.Distribution() && hasDistributionRecord(data) {
		if data, err = distribution.DecryptStream(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if d.header.Flags.Compressed() {
		inflated, ok := d.codec.Inflate(data)
		if !ok {
			d.log.Debug("stream kept as stored", "stream", path, "bytes", len(data))
		}
		data = inflated
	}

	return data, nil
}

// hasDistributionRecord reports whether data opens with the distribution control record.
func hasDistributionRecord(data []byte) bool {
	h, err := record.ReadHeader(stream.NewCursor(data))
	return err == nil && h.Tag == format.TagDistributeDocData
}

// sections reads Section0, Section1, ... until a path is missing. Distribution documents
// keep their readable sections under ViewText.
func (d *decoder) sections() []model.Section {
	storage := StorageBodyText
	if d.header.Flags.Distribution() && d.c.Exists(SectionPath(StorageViewText, 0)) {
		storage = StorageViewText
	}

	var out []model.Section
	for n := 0; ; n++ {
		path := SectionPath(storage, n)
		if !d.c.Exists(path) {
			break
		}
		if n >= d.cfg.limits.MaxSections {
			d.collect(path, fmt.Errorf("%w: more than %d sections", errs.ErrLimitExceeded, d.cfg.limits.MaxSections))
			break
		}

		data, err := d.stream(path)
		if err != nil {
			d.collect(path, err)
			out = append(out, model.Section{})

			continue
		}
		s, err := dispatch.DecodeSection(data, d.dispatchOptions(path))
		d.collect(path, err)
		out = append(out, *s)
	}

	return out
}

// loadBinData fills Data for embedded binaries from the BinData storage.
func (d *decoder) loadBinData(di *model.DocInfo) {
	for i, bd := range di.BinData.All() {
		if bd.Type() != model.BinDataEmbedding {
			continue
		}

		path := entity.BinDataPath(bd.ID, bd.Ext)
		data, err := d.c.Open(path)
		if err != nil {
			d.log.Warn("bin data stream missing", "stream", path, "error", err)
			continue
		}

		data, err = d.binData(path, bd, data)
		if err != nil {
			d.collect(path, err)
			continue
		}
		di.BinData.Update(i, func(b *model.BinData) { b.Data = data })
	}
}

func (d *decoder) binData(path string, bd model.BinData, data []byte) ([]byte, error) {
	compressed := d.header.Flags.Compressed()
	switch bd.Compression() {
	case model.BinDataCompressAlways:
		compressed = true
	case model.BinDataCompressNever:
		compressed = false
	}

	if compressed {
		codec := compress.NewDeflateCodec(compress.WithMaxOutput(d.cfg.limits.MaxBinDataSize))
		inflated, ok := codec.Inflate(data)
		if !ok {
			d.log.Debug("bin data kept as stored", "stream", path)
		}
		data = inflated
	}
	if int64(len(data)) > d.cfg.limits.MaxBinDataSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrLimitExceeded, len(data))
	}

	return data, nil
}
