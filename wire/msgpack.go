package wire

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/iotaledger/hive.go/ierrors"
)

// MsgpackEncoder writes values through a msgpack.Encoder.
type MsgpackEncoder struct {
	enc *msgpack.Encoder
}

// NewMsgpackEncoder creates a new MsgpackEncoder.
func NewMsgpackEncoder(enc *msgpack.Encoder) *MsgpackEncoder {
	return &MsgpackEncoder{enc: enc}
}

func (e *MsgpackEncoder) EncodeString(v string) error {
	return e.enc.EncodeString(v)
}

func (e *MsgpackEncoder) EncodeUint8Seq(v []byte) error {
	if err := e.enc.EncodeArrayLen(len(v)); err != nil {
		return ierrors.Wrap(err, "failed to encode msgpack array length")
	}
	for i, b := range v {
		if err := e.enc.EncodeUint(uint64(b)); err != nil {
			return ierrors.Wrapf(err, "failed to encode msgpack array element %d", i)
		}
	}

	return nil
}

// MsgpackDecoder reads values through a msgpack.Decoder.
type MsgpackDecoder struct {
	dec *msgpack.Decoder
}

// NewMsgpackDecoder creates a new MsgpackDecoder.
func NewMsgpackDecoder(dec *msgpack.Decoder) *MsgpackDecoder {
	return &MsgpackDecoder{dec: dec}
}

func (d *MsgpackDecoder) Kind() (Kind, error) {
	c, err := d.dec.PeekCode()
	if err != nil {
		return KindUnknown, ierrors.Wrap(err, "failed to peek msgpack code")
	}

	switch {
	case c == msgpcode.Nil:
		return KindNil, nil
	case msgpcode.IsFixedString(c), c == msgpcode.Str8, c == msgpcode.Str16, c == msgpcode.Str32:
		return KindString, nil
	case c == msgpcode.Bin8, c == msgpcode.Bin16, c == msgpcode.Bin32:
		return KindBytes, nil
	case msgpcode.IsFixedArray(c), c == msgpcode.Array16, c == msgpcode.Array32:
		return KindSeq, nil
	default:
		return KindUnknown, nil
	}
}

func (d *MsgpackDecoder) DecodeString() (string, error) {
	s, err := d.dec.DecodeString()
	if err != nil {
		return "", ierrors.Wrap(err, "failed to decode msgpack string")
	}

	return s, nil
}

func (d *MsgpackDecoder) DecodeBytes() ([]byte, error) {
	b, err := d.dec.DecodeBytes()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to decode msgpack bin")
	}
	if b == nil {
		b = []byte{}
	}

	return b, nil
}

func (d *MsgpackDecoder) DecodeSeq() (SeqDecoder, error) {
	n, err := d.dec.DecodeArrayLen()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to decode msgpack array length")
	}
	if n < 0 {
		return nil, UnexpectedKind(KindNil, KindSeq.String())
	}

	return &msgpackSeq{dec: d.dec, remaining: n}, nil
}

type msgpackSeq struct {
	dec       *msgpack.Decoder
	remaining int
}

func (s *msgpackSeq) Next() (byte, bool, error) {
	if s.remaining == 0 {
		return 0, false, nil
	}
	s.remaining--

	c, err := s.dec.PeekCode()
	if err != nil {
		return 0, false, ierrors.Wrap(err, "failed to peek msgpack array element")
	}
	if !msgpcode.IsFixedNum(c) && !isMsgpackInt(c) {
		return 0, false, ierrors.Wrapf(ErrInvalidElement, "msgpack code %#x", c)
	}

	v, err := s.dec.DecodeInt64()
	if err != nil {
		return 0, false, ierrors.Wrap(err, "failed to decode msgpack array element")
	}
	if v < 0 || v > 255 {
		return 0, false, ierrors.Wrapf(ErrInvalidElement, "%d", v)
	}

	return byte(v), true, nil
}

func isMsgpackInt(c byte) bool {
	switch c {
	case msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32, msgpcode.Uint64,
		msgpcode.Int8, msgpcode.Int16, msgpcode.Int32, msgpcode.Int64:
		return true
	default:
		return false
	}
}
