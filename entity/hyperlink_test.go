package entity

import (
	"testing"

	"github.com/arloliu/hwp5/errs"
	"github.com/arloliu/hwp5/format"
	"github.com/arloliu/hwp5/model"
	"github.com/stretchr/testify/require"
)

func TestHyperlink_RoundTrip(t *testing.T) {
	link := model.Hyperlink{
		Display:   "Test Link",
		URL:       "https://test.com",
		Tooltip:   "Click",
		Color:     format.ColorRef(0x0000FF),
		Underline: true,
	}

	b, err := EncodeHyperlink(link)
	require.NoError(t, err)

	id, err := DecodeCtrlID(b)
	require.NoError(t, err)
	require.Equal(t, format.CtrlHyperlink, id)

	got, err := DecodeHyperlink(b)
	require.NoError(t, err)
	require.Equal(t, link.Display, got.Display)
	require.Equal(t, link.URL, got.URL)
	require.Equal(t, link.Tooltip, got.Tooltip)
	require.Equal(t, link.Color, got.Color)
	require.True(t, got.Underline)
	require.Equal(t, model.LinkURL, got.Type)
}

func TestHyperlink_PaddedToMinimum(t *testing.T) {
	b, err := EncodeHyperlink(model.Hyperlink{URL: "#top"})
	require.NoError(t, err)
	require.Len(t, b, HyperlinkMinSize)

	got, err := DecodeHyperlink(b)
	require.NoError(t, err)
	require.Equal(t, "#top", got.URL)
	require.Empty(t, got.Tooltip)
	require.Equal(t, model.LinkBookmark, got.Type)
	require.False(t, got.Underline)
}

func TestHyperlink_Malformed(t *testing.T) {
	_, err := DecodeHyperlink(make([]byte, HyperlinkMinSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidFormat)

	b, err := EncodeHyperlink(model.Hyperlink{Display: "x", URL: "https://a.b"})
	require.NoError(t, err)
	le.PutUint16(b[HyperlinkPrefixSize:], 0x7FFF)
	_, err = DecodeHyperlink(b)
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestHyperlink_EmbeddedZero(t *testing.T) {
	b := make([]byte, HyperlinkPrefixSize)
	b = append(b, unitsBody(4, 'a', 'b', 0, 'c')...)
	b = append(b, unitsBody(7, 'm', 'a', 'i', 'l', 't', 'o', ':')...)
	require.GreaterOrEqual(t, len(b), HyperlinkMinSize)

	got, err := DecodeHyperlink(b)
	require.NoError(t, err)
	require.Equal(t, "ab", got.Display, "text stops at the zero")
	require.Equal(t, "mailto:", got.URL, "the full declared length is consumed")
	require.Equal(t, model.LinkEmail, got.Type)
}

func TestInferLinkType(t *testing.T) {
	testCases := map[string]model.HyperlinkType{
		"mailto:a@b.c":          model.LinkEmail,
		"MAILTO:a@b.c":          model.LinkEmail,
		"http://example.com":    model.LinkURL,
		"HTTPS://example.com/x": model.LinkURL,
		"#bookmark":             model.LinkBookmark,
		`C:\docs\a.hwp`:         model.LinkFile,
		"d:report.hwp":          model.LinkFile,
		"../a/b.hwp":            model.LinkFile,
		"www.example.com":       model.LinkURL,
		"":                      model.LinkURL,
	}

	for target, want := range testCases {
		require.Equal(t, want, InferLinkType(target), target)
	}
}
