package colorphrase_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/colorphrase/pkg/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    colorphrase.Color
		wantErr bool
	}{
		{name: "argb hex literal", input: "0xFFE6454A", want: 0xFFE6454A},
		{name: "lowercase prefix", input: "0xff666666", want: 0xFF666666},
		{name: "css hex is opaque", input: "#E6454A", want: 0xFFE6454A},
		{name: "short css hex", input: "#abc", want: 0xFFAABBCC},
		{name: "hex with alpha", input: "#80E6454A", want: 0x80E6454A},
		{name: "decimal", input: "4294967295", want: 0xFFFFFFFF},
		{name: "surrounding space", input: "  #000000 ", want: 0xFF000000},
		{name: "empty", input: "", wantErr: true},
		{name: "bad hex digits", input: "#GGHHII", wantErr: true},
		{name: "wrong hex length", input: "#12345", wantErr: true},
		{name: "overflow", input: "0x1FFFFFFFF", wantErr: true},
		{name: "bare prefix", input: "0x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colorphrase.ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorChannels(t *testing.T) {
	c := colorphrase.Color(0x80E6454A)

	assert.Equal(t, uint8(0x80), c.A())
	assert.Equal(t, uint8(0xE6), c.R())
	assert.Equal(t, uint8(0x45), c.G())
	assert.Equal(t, uint8(0x4A), c.B())
	assert.Equal(t, c, colorphrase.ARGB(0x80, 0xE6, 0x45, 0x4A))
	assert.Equal(t, "#e6454a", c.Hex())
	assert.Equal(t, "0x80E6454A", c.String())
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(colorphrase.DefaultInnerColor)
	require.NoError(t, err)
	assert.Equal(t, `"0xFFE6454A"`, string(data))

	var c colorphrase.Color
	require.NoError(t, json.Unmarshal([]byte(`"#666666"`), &c))
	assert.Equal(t, colorphrase.DefaultOuterColor, c)

	assert.Error(t, json.Unmarshal([]byte(`"not a color"`), &c))
}
