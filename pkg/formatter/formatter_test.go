package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	cases := []struct {
		input    string
		expected int
	}{
		{"1,234 likes", 1234},
		{"12 comments", 12},
		{"1.234 Kommentare", 1234},
		{"3 405 réactions", 3405},
		{"likes", 0},
		{"", 0},
		{"no digits here", 0},
		{"0 reposts", 0},
		{"1,234,567", 1234567},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, ParseCount(test.input), "input %q", test.input)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, FormatNumber(test.input))
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	require.Equal(t, `a\.b\!c`, EscapeMarkdownV2("a.b!c"))
	require.Equal(t, "plain text", EscapeMarkdownV2("plain text"))
}
