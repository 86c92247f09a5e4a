// Package convert re-encodes a single byte value from one format and codec into another.
package convert

import (
	"io"

	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/bytekind"
	"github.com/iotaledger/bytekind/formats"
	"github.com/iotaledger/bytekind/wire"
)

// ErrInvalidOptions gets returned when the Options can't describe a conversion.
var ErrInvalidOptions = ierrors.New("invalid options")

// Options describe a conversion.
type Options struct {
	// From is the name of the input format, see formats.Names.
	From string
	// To is the name of the output format.
	To string
	// Codec is the name of the input codec, see CodecNames.
	Codec string
	// OutCodec is the name of the output codec. Codec is used if empty.
	OutCodec string
	// Length is the exact number of bytes the input must hold. Any length is accepted if zero.
	Length int
}

// Converter converts values as described by its Options.
type Converter struct {
	from     bytekind.Format
	to       bytekind.Format
	codec    Codec
	outCodec Codec
	length   int
	log      *zap.SugaredLogger
}

// New creates a Converter, resolving the format and codec names of opts.
func New(opts Options, log *zap.SugaredLogger) (*Converter, error) {
	if opts.Length < 0 {
		return nil, ierrors.Wrapf(ErrInvalidOptions, "negative length %d", opts.Length)
	}
	if opts.OutCodec == "" {
		opts.OutCodec = opts.Codec
	}

	c := &Converter{length: opts.Length, log: log}

	var err error
	if c.from, err = formats.ByName(opts.From); err != nil {
		return nil, ierrors.Wrap(err, "invalid input format")
	}
	if c.to, err = formats.ByName(opts.To); err != nil {
		return nil, ierrors.Wrap(err, "invalid output format")
	}
	if c.codec, err = CodecByName(opts.Codec); err != nil {
		return nil, ierrors.Wrap(err, "invalid input codec")
	}
	if c.outCodec, err = CodecByName(opts.OutCodec); err != nil {
		return nil, ierrors.Wrap(err, "invalid output codec")
	}

	return c, nil
}

// Convert decodes the document in data and returns the re-encoded document.
func (c *Converter) Convert(data []byte) ([]byte, error) {
	dec, err := c.codec.Decoder(data)
	if err != nil {
		return nil, err
	}

	value, err := c.decode(dec)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to decode %s value from %s", c.from.Name(), c.codec.Name())
	}
	c.log.Debugw("decoded value", "format", c.from.Name(), "codec", c.codec.Name(), "length", len(value))

	encoded, err := c.outCodec.Encode(func(enc wire.Encoder) error {
		return c.to.Encode(enc, value)
	})
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to encode %s value to %s", c.to.Name(), c.outCodec.Name())
	}
	c.log.Debugw("encoded value", "format", c.to.Name(), "codec", c.outCodec.Name(), "size", len(encoded))

	return encoded, nil
}

func (c *Converter) decode(dec wire.Decoder) ([]byte, error) {
	if c.length == 0 {
		return c.from.Decode(dec)
	}

	value := make([]byte, c.length)
	if err := c.from.DecodeFixed(dec, value); err != nil {
		return nil, err
	}

	return value, nil
}

// Run reads a document from in, converts it and writes the result to out.
func Run(opts Options, in io.Reader, out io.Writer, log *zap.SugaredLogger) error {
	converter, err := New(opts, log)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return ierrors.Wrap(err, "failed to read input")
	}

	encoded, err := converter.Convert(data)
	if err != nil {
		return err
	}

	if _, err := out.Write(encoded); err != nil {
		return ierrors.Wrap(err, "failed to write output")
	}

	return nil
}
