package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/iotaledger/bytekind/wire"
)

func msgpackDecoder(t *testing.T, v any) *wire.MsgpackDecoder {
	t.Helper()

	encoded, err := msgpack.Marshal(v)
	require.NoError(t, err)

	return wire.NewMsgpackDecoder(msgpack.NewDecoder(bytes.NewReader(encoded)))
}

func TestMsgpackDecoder_Kind(t *testing.T) {
	tests := []struct {
		name  string
		value any
		kind  wire.Kind
	}{
		{name: "nil", value: nil, kind: wire.KindNil},
		{name: "string", value: "abc", kind: wire.KindString},
		{name: "long string", value: string(make([]byte, 300)), kind: wire.KindString},
		{name: "bin", value: []byte{1, 2}, kind: wire.KindBytes},
		{name: "array", value: []int{1, 2}, kind: wire.KindSeq},
		{name: "long array", value: make([]int, 20), kind: wire.KindSeq},
		{name: "number", value: 42, kind: wire.KindUnknown},
		{name: "map", value: map[string]int{"a": 1}, kind: wire.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := msgpackDecoder(t, tt.value).Kind()
			require.NoError(t, err)
			require.Equal(t, tt.kind, kind)
		})
	}
}

func TestMsgpackEncoder_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := wire.NewMsgpackEncoder(msgpack.NewEncoder(&buf))
	require.NoError(t, enc.EncodeUint8Seq([]byte{0, 127, 128, 255}))
	require.NoError(t, enc.EncodeString("01ff"))

	dec := wire.NewMsgpackDecoder(msgpack.NewDecoder(&buf))
	seq, err := dec.DecodeSeq()
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
	require.Equal(t, []byte{0, 127, 128, 255}, decoded)

	s, err := wire.ReadString(dec)
	require.NoError(t, err)
	require.Equal(t, "01ff", s)
}

func TestMsgpackDecoder_Bytes(t *testing.T) {
	b, err := msgpackDecoder(t, []byte{}).DecodeBytes()
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Empty(t, b)

	b, err = msgpackDecoder(t, []byte{9, 8}).DecodeBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{9, 8}, b)
}

func TestMsgpackDecoder_InvalidElements(t *testing.T) {
	for name, value := range map[string]any{
		"too large": []int{256},
		"negative":  []int{-1},
		"float":     []float64{1},
		"string":    []string{"1"},
	} {
		t.Run(name, func(t *testing.T) {
			seq, err := msgpackDecoder(t, value).DecodeSeq()
			require.NoError(t, err)

			_, _, err = seq.Next()
			require.ErrorIs(t, err, wire.ErrInvalidElement)
		})
	}
}
