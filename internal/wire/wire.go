// Package wire serializes value sequences for programs that do not speak the
// pipe-delimited display form. Each format is a Codec over plain Go values;
// sequences travel as arrays of strings and kind-keyed documents as
// one-key maps.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Format names.
const (
	JSON    = "json"
	Msgpack = "msgpack"
	CBOR    = "cbor"
)

// ErrUnknownFormat is returned by Lookup for a name no codec serves.
var ErrUnknownFormat = errors.New("wire: unknown format")

// Codec marshals values to bytes and back.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec serializes with encoding/json.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// MsgpackCodec serializes with vmihailenco/msgpack. The zero value is ready to use.
type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (MsgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// CBORCodec serializes with fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// NewCBOR builds a CBOR codec using RFC 8949 core deterministic encoding,
// so equal sequences always produce identical bytes.
func NewCBOR() (*CBORCodec, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("wire: cbor encoder: %w", err)
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return nil, fmt.Errorf("wire: cbor decoder: %w", err)
	}
	return &CBORCodec{enc: em, dec: dm}, nil
}

func (c *CBORCodec) Marshal(v any) ([]byte, error)      { return c.enc.Marshal(v) }
func (c *CBORCodec) Unmarshal(data []byte, v any) error { return c.dec.Unmarshal(data, v) }

var (
	_ Codec = JSONCodec{}
	_ Codec = MsgpackCodec{}
	_ Codec = (*CBORCodec)(nil)
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{JSON, Msgpack, CBOR}
}

// IsFormat reports whether name is one of Formats.
func IsFormat(name string) bool {
	return slices.Contains(Formats(), name)
}

// Lookup returns the codec for a format name.
func Lookup(name string) (Codec, error) {
	switch name {
	case JSON:
		return JSONCodec{}, nil
	case Msgpack:
		return MsgpackCodec{}, nil
	case CBOR:
		return NewCBOR()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// UnmarshalSequence decodes an array of strings.
// Empty input and a null payload both yield an empty list.
func UnmarshalSequence(c Codec, data []byte) ([]string, error) {
	values := []string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := c.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
