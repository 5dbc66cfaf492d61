package highlight

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{in: "", want: ModeAuto, ok: true},
		{in: "auto", want: ModeAuto, ok: true},
		{in: "ALWAYS", want: ModeAlways, ok: true},
		{in: "never", want: ModeNever, ok: true},
		{in: "sometimes", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseMode(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, Enabled(ModeAlways, &buf))
	assert.False(t, Enabled(ModeNever, &buf))
	assert.False(t, Enabled(ModeAuto, &buf), "a buffer is never a terminal")
}

func TestWrite_AddsEscapeSequences(t *testing.T) {
	var buf bytes.Buffer
	text := "{\n  \"rooms\": []\n}\n"

	require.NoError(t, Write(&buf, text, "json", ""))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "rooms")
}
