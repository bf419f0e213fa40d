// Command hwpdump inspects HWP 5.x documents and converts them to pack bundles.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/arloliu/hwp5"
	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/arloliu/hwp5/record"
)

// CLI defines the command-line interface.
var CLI struct {
	Verbose bool `short:"v" help:"Log decoder diagnostics to stderr."`

	Info    InfoCmd    `cmd:"" help:"Show header flags, streams and resource counts."`
	Text    TextCmd    `cmd:"" help:"Print the plain text of every section."`
	Records RecordsCmd `cmd:"" help:"List the records of one stream."`
	Pack    PackCmd    `cmd:"" help:"Convert a document into a pack bundle."`
}

// InfoCmd prints a document summary.
type InfoCmd struct {
	Path   string `arg:"" help:"Document or pack bundle." type:"existingfile"`
	Strict bool   `help:"Replace unpaired UTF-16 surrogates in text."`
}

func (c *InfoCmd) Run(logger *slog.Logger) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	storage, err := hwp5.Load(f, hwp5.WithLogger(logger))
	if err != nil {
		return err
	}

	doc, err := hwp5.Decode(storage, readerOptions(logger, c.Strict)...)
	if doc == nil {
		return err
	}
	if err != nil {
		logger.Warn("document decoded partially", "error", err)
	}

	out := os.Stdout
	fmt.Fprintf(out, "Version:    %s\n", doc.Header.Version)
	fmt.Fprintf(out, "Flags:      %s\n", doc.Header.Flags)
	fmt.Fprintf(out, "Streams:    %d (%d bytes)\n", storage.Len(), storage.Size())
	for _, path := range storage.List() {
		data, _ := storage.Open(path)
		fmt.Fprintf(out, "  %-24s %8d\n", path, len(data))
	}
	printResources(out, doc.DocInfo)
	fmt.Fprintf(out, "Sections:   %d\n", len(doc.Sections))
	fmt.Fprintf(out, "Paragraphs: %d\n", doc.ParagraphCount())

	return nil
}

func printResources(w io.Writer, di *model.DocInfo) {
	if di == nil {
		return
	}
	fmt.Fprintf(w, "Resources:\n")
	fmt.Fprintf(w, "  bin data     %d\n", di.BinData.Len())
	fmt.Fprintf(w, "  face names   %d\n", di.FaceNames.Len())
	fmt.Fprintf(w, "  border fills %d\n", di.BorderFills.Len())
	fmt.Fprintf(w, "  char shapes  %d\n", di.CharShapes.Len())
	fmt.Fprintf(w, "  para shapes  %d\n", di.ParaShapes.Len())
	fmt.Fprintf(w, "  styles       %d\n", di.Styles.Len())
}

// TextCmd prints document text.
type TextCmd struct {
	Path   string `arg:"" help:"Document or pack bundle." type:"existingfile"`
	Strict bool   `help:"Replace unpaired UTF-16 surrogates in text."`
}

func (c *TextCmd) Run(logger *slog.Logger) error {
	doc, err := hwp5.Open(c.Path, readerOptions(logger, c.Strict)...)
	if doc == nil {
		return err
	}
	if err != nil {
		logger.Warn("document decoded partially", "error", err)
	}

	_, err = fmt.Fprintln(os.Stdout, doc.Text())

	return err
}

// RecordsCmd lists the records of a stream.
type RecordsCmd struct {
	Path   string `arg:"" help:"Document or pack bundle." type:"existingfile"`
	Stream string `arg:"" help:"Stream path, e.g. DocInfo or BodyText/Section0." default:"DocInfo" optional:""`
}

func (c *RecordsCmd) Run(logger *slog.Logger) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	storage, err := hwp5.Load(f, hwp5.WithLogger(logger))
	if err != nil {
		return err
	}
	data, err := hwp5.ReadStream(storage, c.Stream, hwp5.WithLogger(logger))
	if err != nil {
		return err
	}

	r := record.NewReader(data)
	for r.Next() {
		rec := r.Record()
		fmt.Fprintf(os.Stdout, "%08x %*s%-22s size=%d\n", rec.Offset, int(rec.Level)*2, "", rec.Tag, rec.Size)
	}

	return r.Err()
}

// PackCmd writes a pack bundle.
type PackCmd struct {
	Path        string `arg:"" help:"Source document." type:"existingfile"`
	Out         string `arg:"" help:"Output pack bundle."`
	Compression string `help:"Entry codec." default:"zstd" enum:"none,zstd,s2,lz4,brotli,deflate"`
	NoChecksums bool   `help:"Skip entry checksums."`
}

func (c *PackCmd) Run(logger *slog.Logger) error {
	ct, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return err
	}

	in, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	storage, err := hwp5.Load(in, hwp5.WithLogger(logger))
	if err != nil {
		return err
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return err
	}

	opts := []container.PackOption{container.WithPackCompression(ct)}
	if c.NoChecksums {
		opts = append(opts, container.WithoutChecksums())
	}
	if err := container.Pack(out, storage, opts...); err != nil {
		_ = out.Close()
		return err
	}
	logger.Info("pack written", "path", c.Out, "streams", storage.Len(), "compression", ct.String())

	return out.Close()
}

func readerOptions(logger *slog.Logger, strict bool) []hwp5.ReaderOption {
	opts := []hwp5.ReaderOption{hwp5.WithLogger(logger)}
	if strict {
		opts = append(opts, hwp5.WithStrictText())
	}

	return opts
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hwpdump"),
		kong.Description("Inspect HWP 5.x documents"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(newLogger(CLI.Verbose))
	ctx.FatalIfErrorf(err)
}
