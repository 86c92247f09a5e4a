package convert

import (
	"bytes"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/bytekind/wire"
)

// ErrUnknownCodec gets returned when a codec name is not registered.
var ErrUnknownCodec = ierrors.New("unknown codec")

// tomlKey is the key holding the value in TOML documents, TOML has no top-level scalars or arrays.
const tomlKey = "value"

// Codec reads a single value from a document and writes a single value into a document.
type Codec interface {
	// Name returns the name the codec is registered under.
	Name() string
	// Decoder returns a decoder for the value held by data.
	Decoder(data []byte) (wire.Decoder, error)
	// Encode runs write against an encoder and returns the resulting document.
	Encode(write func(wire.Encoder) error) ([]byte, error)
}

var codecs = map[string]Codec{}

func register(codec Codec) {
	codecs[codec.Name()] = codec
}

func init() {
	register(jsonCodec{})
	register(yamlCodec{})
	register(tomlCodec{})
	register(msgpackCodec{})
}

// CodecByName returns the codec registered under the given name.
func CodecByName(name string) (Codec, error) {
	codec, exists := codecs[name]
	if !exists {
		return nil, ierrors.Wrapf(ErrUnknownCodec, "%q, known codecs are %v", name, CodecNames())
	}

	return codec, nil
}

// CodecNames returns the sorted names of all registered codecs.
func CodecNames() []string {
	names := lo.Keys(codecs)
	sort.Strings(names)

	return names
}

type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Decoder(data []byte) (wire.Decoder, error) {
	return wire.NewJSONDecoder(data), nil
}

func (jsonCodec) Encode(write func(wire.Encoder) error) ([]byte, error) {
	enc := wire.NewJSONEncoder()
	if err := write(enc); err != nil {
		return nil, err
	}

	return append(enc.Bytes(), '\n'), nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string {
	return "yaml"
}

func (yamlCodec) Decoder(data []byte) (wire.Decoder, error) {
	var document yamlDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse YAML document")
	}

	return wire.NewValueDecoder(document.value), nil
}

func (yamlCodec) Encode(write func(wire.Encoder) error) ([]byte, error) {
	enc := wire.NewValueEncoder()
	if err := write(enc); err != nil {
		return nil, err
	}

	encoded, err := yaml.Marshal(enc.Value())
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to encode YAML document")
	}

	return encoded, nil
}

// yamlDocument captures a top-level YAML node, keeping scalars as their verbatim text.
type yamlDocument struct {
	value any
}

func (d *yamlDocument) UnmarshalYAML(unmarshal func(any) error) (err error) {
	d.value, err = wire.YAMLValue(unmarshal)

	return err
}

type tomlCodec struct{}

func (tomlCodec) Name() string {
	return "toml"
}

func (tomlCodec) Decoder(data []byte) (wire.Decoder, error) {
	var document map[string]any
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse TOML document")
	}

	value, exists := document[tomlKey]
	if !exists {
		return nil, ierrors.Errorf("TOML document has no %q key", tomlKey)
	}

	return wire.NewValueDecoder(value), nil
}

func (tomlCodec) Encode(write func(wire.Encoder) error) ([]byte, error) {
	enc := wire.NewValueEncoder()
	if err := write(enc); err != nil {
		return nil, err
	}

	encoded, err := toml.Marshal(map[string]any{tomlKey: enc.Value()})
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to encode TOML document")
	}

	return encoded, nil
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string {
	return "msgpack"
}

func (msgpackCodec) Decoder(data []byte) (wire.Decoder, error) {
	reader := bytes.NewReader(data)
	if err := msgpack.NewDecoder(reader).Skip(); err != nil {
		return nil, ierrors.Wrap(wire.ErrMalformed, err.Error())
	}
	if reader.Len() != 0 {
		return nil, ierrors.Wrapf(wire.ErrMalformed, "%d trailing bytes after msgpack value", reader.Len())
	}

	return wire.NewMsgpackDecoder(msgpack.NewDecoder(bytes.NewReader(data))), nil
}

func (msgpackCodec) Encode(write func(wire.Encoder) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := write(wire.NewMsgpackEncoder(msgpack.NewEncoder(&buf))); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
