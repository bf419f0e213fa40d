package container

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arloliu/hwp5/compress"
	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/internal/options"
	"github.com/cespare/xxhash/v2"
)

// Pack bundle layout.
const (
	PackMagic      = "HWPPACK\x1a"
	PackVersion    = 1
	PackHeaderSize = 24

	// per entry: path length, raw length, stored length, checksum
	packEntryFixedSize = 2 + 4 + 4 + 8
)

// PackHeader is the fixed bundle header.
//
//	0-7   magic
//	8-9   version
//	10    compression
//	11    reserved
//	12-15 entry count
//	16-23 reserved
type PackHeader struct {
	Version     uint16
	Compression format.CompressionType
	EntryCount  uint32
}

// Parse parses the header from exactly PackHeaderSize bytes.
func (h *PackHeader) Parse(data []byte) error {
	if len(data) != PackHeaderSize {
		return fmt.Errorf("%w: header is %d bytes", errs.ErrInvalidPack, len(data))
	}
	if string(data[:len(PackMagic)]) != PackMagic {
		return fmt.Errorf("%w: bad magic", errs.ErrInvalidPack)
	}

	h.Version = binary.LittleEndian.Uint16(data[8:10])
	h.Compression = format.CompressionType(data[10])
	h.EntryCount = binary.LittleEndian.Uint32(data[12:16])

	if h.Version != PackVersion {
		return fmt.Errorf("%w: pack version %d", errs.ErrUnsupportedVersion, h.Version)
	}

	return nil
}

// Bytes serializes the header.
func (h *PackHeader) Bytes() []byte {
	b := make([]byte, PackHeaderSize)
	copy(b, PackMagic)
	binary.LittleEndian.PutUint16(b[8:10], h.Version)
	b[10] = byte(h.Compression)
	binary.LittleEndian.PutUint32(b[12:16], h.EntryCount)

	return b
}

// PackConfig configures Pack and Unpack.
type PackConfig struct {
	compression   format.CompressionType
	maxEntrySize  int64
	skipChecksums bool
}

// PackOption configures Pack and Unpack.
type PackOption = options.Option[*PackConfig]

func newPackConfig(opts []PackOption) (*PackConfig, error) {
	cfg := &PackConfig{
		compression:  format.CompressionZstd,
		maxEntrySize: DefaultMaxStreamSize,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithPackCompression selects the codec Pack stores entries with. The default is Zstd.
// Unpack reads the codec from the bundle header and ignores this option.
func WithPackCompression(ct format.CompressionType) PackOption {
	return options.Named("pack compression", func(c *PackConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithMaxEntrySize bounds the raw and stored size of one entry. Unpack rejects larger
// entries before allocating for them.
func WithMaxEntrySize(n int64) PackOption {
	return options.Named("max entry size", func(c *PackConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidArgument, n)
		}
		c.maxEntrySize = n

		return nil
	})
}

// WithoutChecksums makes Unpack skip checksum verification.
func WithoutChecksums() PackOption {
	return options.NoError(func(c *PackConfig) {
		c.skipChecksums = true
	})
}

// Pack writes every stream of c to w as a bundle.
func Pack(w io.Writer, c Container, opts ...PackOption) error {
	cfg, err := newPackConfig(opts)
	if err != nil {
		return err
	}
	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	paths := c.List()
	header := PackHeader{Version: PackVersion, Compression: cfg.compression, EntryCount: uint32(len(paths))} //nolint:gosec
	if _, err := w.Write(header.Bytes()); err != nil {
		return fmt.Errorf("write pack header: %w", err)
	}

	fixed := make([]byte, packEntryFixedSize)
	for _, path := range paths {
		raw, err := c.Open(path)
		if err != nil {
			return err
		}
		if len(path) > 0xFFFF {
			return fmt.Errorf("%w: path of %d bytes", errs.ErrInvalidArgument, len(path))
		}
		if int64(len(raw)) > cfg.maxEntrySize {
			return fmt.Errorf("%w: %s is %d bytes", errs.ErrLimitExceeded, path, len(raw))
		}
		stored, err := codec.Compress(raw)
		if err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}

		binary.LittleEndian.PutUint16(fixed[0:2], uint16(len(path)))
		binary.LittleEndian.PutUint32(fixed[2:6], uint32(len(raw)))     //nolint:gosec
		binary.LittleEndian.PutUint32(fixed[6:10], uint32(len(stored))) //nolint:gosec
		binary.LittleEndian.PutUint64(fixed[10:18], xxhash.Sum64(raw))

		if _, err := w.Write(fixed[:2]); err != nil {
			return fmt.Errorf("write entry %s: %w", path, err)
		}
		if _, err := io.WriteString(w, path); err != nil {
			return fmt.Errorf("write entry %s: %w", path, err)
		}
		if _, err := w.Write(fixed[2:]); err != nil {
			return fmt.Errorf("write entry %s: %w", path, err)
		}
		if _, err := w.Write(stored); err != nil {
			return fmt.Errorf("write entry %s: %w", path, err)
		}
	}

	return nil
}

// Unpack reads a bundle written by Pack into a writable Storage.
func Unpack(r io.Reader, opts ...PackOption) (*Storage, error) {
	cfg, err := newPackConfig(opts)
	if err != nil {
		return nil, err
	}

	hb := make([]byte, PackHeaderSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, fmt.Errorf("%w: read header: %w", errs.ErrInvalidPack, err)
	}
	var header PackHeader
	if err := header.Parse(hb); err != nil {
		return nil, err
	}
	codec, err := compress.CreateCodec(header.Compression, "pack", compress.WithMaxOutput(cfg.maxEntrySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPack, err)
	}

	s := NewStorage()
	fixed := make([]byte, packEntryFixedSize)
	for i := range header.EntryCount {
		if _, err := io.ReadFull(r, fixed[:2]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", errs.ErrInvalidPack, i, err)
		}
		path := make([]byte, binary.LittleEndian.Uint16(fixed[0:2]))
		if _, err := io.ReadFull(r, path); err != nil {
			return nil, fmt.Errorf("%w: entry %d path: %w", errs.ErrInvalidPack, i, err)
		}
		if _, err := io.ReadFull(r, fixed[2:]); err != nil {
			return nil, fmt.Errorf("%w: entry %s: %w", errs.ErrInvalidPack, path, err)
		}

		rawLen := int64(binary.LittleEndian.Uint32(fixed[2:6]))
		storedLen := int64(binary.LittleEndian.Uint32(fixed[6:10]))
		sum := binary.LittleEndian.Uint64(fixed[10:18])
		if rawLen > cfg.maxEntrySize || storedLen > cfg.maxEntrySize {
			return nil, fmt.Errorf("%w: entry %s declares %d/%d bytes", errs.ErrLimitExceeded, path, rawLen, storedLen)
		}

		stored := make([]byte, storedLen)
		if _, err := io.ReadFull(r, stored); err != nil {
			return nil, fmt.Errorf("%w: entry %s body: %w", errs.ErrInvalidPack, path, err)
		}
		raw, err := codec.Decompress(stored)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %w", errs.ErrInvalidPack, path, err)
		}
		if int64(len(raw)) != rawLen {
			return nil, fmt.Errorf("%w: entry %s decoded to %d bytes, want %d", errs.ErrInvalidPack, path, len(raw), rawLen)
		}
		if !cfg.skipChecksums && xxhash.Sum64(raw) != sum {
			return nil, fmt.Errorf("%w: entry %s", errs.ErrChecksumMismatch, path)
		}
		if raw == nil {
			raw = []byte{}
		}
		if err := s.Create(string(path), raw); err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPack, err)
		}
	}

	return s, nil
}
