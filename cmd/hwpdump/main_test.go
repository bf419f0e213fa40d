package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/hwp5"
	"github.com/arloliu/hwp5/container"
	"github.com/arloliu/hwp5/model"
)

func writeSamplePack(t *testing.T) string {
	t.Helper()

	s, err := hwp5.NewSession()
	require.NoError(t, err)
	_, err = s.AppendParagraph(model.Paragraph{Text: "dump me"})
	require.NoError(t, err)
	storage, err := s.Encode()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sample.hwpack")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, container.Pack(f, storage))
	require.NoError(t, f.Close())

	return path
}

func TestCommands(t *testing.T) {
	src := writeSamplePack(t)
	logger := slog.New(slog.DiscardHandler)

	require.NoError(t, (&InfoCmd{Path: src}).Run(logger))
	require.NoError(t, (&TextCmd{Path: src, Strict: true}).Run(logger))
	require.NoError(t, (&RecordsCmd{Path: src, Stream: "BodyText/Section0"}).Run(logger))
	require.Error(t, (&RecordsCmd{Path: src, Stream: "BodyText/Section7"}).Run(logger))

	out := filepath.Join(t.TempDir(), "copy.hwpack")
	require.NoError(t, (&PackCmd{Path: src, Out: out, Compression: "lz4"}).Run(logger))

	doc, err := hwp5.Open(out)
	require.NoError(t, err)
	require.Equal(t, "dump me", doc.Text())

	require.Error(t, (&PackCmd{Path: src, Out: out, Compression: "xz"}).Run(logger))
}

func TestParse(t *testing.T) {
	parser, err := kong.New(&CLI, kong.Name("hwpdump"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"records", "main.go"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ctx.Command(), "records"))
	require.Equal(t, "DocInfo", CLI.Records.Stream)

	_, err = parser.Parse([]string{"pack", "main.go", "out", "--compression=rar"})
	require.Error(t, err)
}
