package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/bytekind/wire"
)

func TestJSONEncoder(t *testing.T) {
	enc := wire.NewJSONEncoder()
	require.NoError(t, enc.EncodeUint8Seq([]byte{0, 1, 255}))
	require.Equal(t, `[0,1,255]`, string(enc.Bytes()))

	enc = wire.NewJSONEncoder()
	require.NoError(t, enc.EncodeUint8Seq(nil))
	require.Equal(t, `[]`, string(enc.Bytes()))

	enc = wire.NewJSONEncoder()
	require.NoError(t, enc.EncodeString(`a"b`))
	require.Equal(t, `"a\"b"`, string(enc.Bytes()))
}

func TestJSONDecoder_Kind(t *testing.T) {
	tests := []struct {
		input string
		kind  wire.Kind
	}{
		{input: `"abc"`, kind: wire.KindString},
		{input: "  \n[1]", kind: wire.KindSeq},
		{input: `null`, kind: wire.KindNil},
		{input: `42`, kind: wire.KindUnknown},
		{input: `{"a":1}`, kind: wire.KindUnknown},
		{input: `true`, kind: wire.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := wire.NewJSONDecoder([]byte(tt.input)).Kind()
			require.NoError(t, err)
			require.Equal(t, tt.kind, kind)
		})
	}

	_, err := wire.NewJSONDecoder([]byte(" ")).Kind()
	require.Error(t, err)
}

func TestJSONDecoder_Seq(t *testing.T) {
	seq, err := wire.NewJSONDecoder([]byte(`[7, 0 ,255]`)).DecodeSeq()
	require.NoError(t, err)

	var decoded []byte
	for {
		b, ok, err := seq.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		decoded = append(decoded, b)
	}
	require.Equal(t, []byte{7, 0, 255}, decoded)

	// exhausted sequences stay exhausted
	_, ok, err := seq.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestJSONDecoder_InvalidElements(t *testing.T) {
	for _, input := range []string{`[256]`, `[-1]`, `[1.5]`, `["1"]`, `[null]`, `[[1]]`} {
		t.Run(input, func(t *testing.T) {
			seq, err := wire.NewJSONDecoder([]byte(input)).DecodeSeq()
			require.NoError(t, err)

			_, _, err = seq.Next()
			require.ErrorIs(t, err, wire.ErrInvalidElement)
		})
	}
}

func TestJSONDecoder_ShapeErrors(t *testing.T) {
	_, err := wire.NewJSONDecoder([]byte(`"abc"`)).DecodeSeq()
	require.ErrorIs(t, err, wire.ErrUnexpectedKind)

	_, err = wire.NewJSONDecoder([]byte(`"abc"`)).DecodeBytes()
	require.ErrorIs(t, err, wire.ErrUnsupported)

	_, err = wire.ReadString(wire.NewJSONDecoder([]byte(`[1]`)))
	require.ErrorIs(t, err, wire.ErrUnexpectedKind)
	require.Contains(t, err.Error(), "expected string, got sequence")

	s, err := wire.ReadString(wire.NewJSONDecoder([]byte(`"0x01"`)))
	require.NoError(t, err)
	require.Equal(t, "0x01", s)
}

func TestIsJSONNull(t *testing.T) {
	require.True(t, wire.IsJSONNull([]byte(`null`)))
	require.True(t, wire.IsJSONNull([]byte(" null\n")))
	require.False(t, wire.IsJSONNull([]byte(`"null"`)))
	require.False(t, wire.IsJSONNull([]byte(`[]`)))
}

func TestJSONDecoder_TrailingInput(t *testing.T) {
	for _, input := range []string{`[1,2,3,4] garbage`, `[1,2,3,4]]`, `[1,2,3,4] [5]`, `[1,2,3,4`} {
		t.Run(input, func(t *testing.T) {
			_, err := wire.NewJSONDecoder([]byte(input)).DecodeSeq()
			require.ErrorIs(t, err, wire.ErrMalformed)
		})
	}

	_, err := wire.NewJSONDecoder([]byte(" [1,2,3,4]\n")).DecodeSeq()
	require.NoError(t, err)
}
