package wire

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
)

// JSONEncoder renders a single value as JSON.
type JSONEncoder struct {
	buf []byte
}

// NewJSONEncoder creates a new JSONEncoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

func (e *JSONEncoder) EncodeString(v string) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return ierrors.Wrap(err, "failed to encode JSON string")
	}
	e.buf = append(e.buf, encoded...)

	return nil
}

func (e *JSONEncoder) EncodeUint8Seq(v []byte) error {
	// each element takes at most 3 digits plus a separator
	e.buf = slices.Grow(e.buf, len(v)*4+2)
	e.buf = append(e.buf, '[')
	for i, b := range v {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.buf = strconv.AppendUint(e.buf, uint64(b), 10)
	}
	e.buf = append(e.buf, ']')

	return nil
}

// Bytes returns the JSON written so far.
func (e *JSONEncoder) Bytes() []byte {
	return e.buf
}

// JSONDecoder reads a single JSON value.
type JSONDecoder struct {
	data []byte
}

// NewJSONDecoder creates a new JSONDecoder for the given raw JSON value.
func NewJSONDecoder(data []byte) *JSONDecoder {
	return &JSONDecoder{data: data}
}

// IsJSONNull tells whether the raw JSON value is the null literal.
func IsJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func (d *JSONDecoder) Kind() (Kind, error) {
	trimmed := bytes.TrimLeft(d.data, " \t\r\n")
	if len(trimmed) == 0 {
		return KindUnknown, ierrors.New("empty JSON input")
	}

	switch trimmed[0] {
	case '"':
		return KindString, nil
	case '[':
		return KindSeq, nil
	case 'n':
		return KindNil, nil
	default:
		return KindUnknown, nil
	}
}

func (d *JSONDecoder) DecodeString() (string, error) {
	var s string
	if err := json.Unmarshal(d.data, &s); err != nil {
		return "", ierrors.Wrap(err, "failed to decode JSON string")
	}

	return s, nil
}

func (d *JSONDecoder) DecodeBytes() ([]byte, error) {
	return nil, ierrors.Wrap(ErrUnsupported, "JSON has no native byte-string")
}

func (d *JSONDecoder) DecodeSeq() (SeqDecoder, error) {
	// the sequence is read token by token, which would stop at the closing bracket and ignore what follows
	if !json.Valid(d.data) {
		return nil, ierrors.Wrap(ErrMalformed, "not a single JSON value")
	}

	dec := json.NewDecoder(bytes.NewReader(d.data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read JSON array start")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ierrors.Wrapf(ErrUnexpectedKind, "expected JSON array, got %v", tok)
	}

	return &jsonSeq{dec: dec}, nil
}

type jsonSeq struct {
	dec  *json.Decoder
	done bool
}

func (s *jsonSeq) Next() (byte, bool, error) {
	if s.done {
		return 0, false, nil
	}

	if !s.dec.More() {
		s.done = true
		if _, err := s.dec.Token(); err != nil {
			return 0, false, ierrors.Wrap(err, "failed to read JSON array end")
		}

		return 0, false, nil
	}

	tok, err := s.dec.Token()
	if err != nil {
		return 0, false, ierrors.Wrap(err, "failed to read JSON array element")
	}

	num, ok := tok.(json.Number)
	if !ok {
		return 0, false, ierrors.Wrapf(ErrInvalidElement, "got %T", tok)
	}

	return parseUint8(num.String())
}

func parseUint8(s string) (byte, bool, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false, ierrors.Wrapf(ErrInvalidElement, "%s", s)
	}

	return byte(v), true, nil
}
