package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// MessagePackSettings configures the MessagePack codec. The zero value uses
// the format defaults.
type MessagePackSettings struct {
	// SortMapKeys writes map entries in sorted key order, making output
	// deterministic at a small encoding cost.
	SortMapKeys bool `yaml:"sort_map_keys" mapstructure:"sort_map_keys"`
	// UseCompactInts encodes integers using the smallest wire size.
	UseCompactInts bool `yaml:"use_compact_ints" mapstructure:"use_compact_ints"`
	// UseCompactFloats encodes float64 values as float32 when lossless.
	UseCompactFloats bool `yaml:"use_compact_floats" mapstructure:"use_compact_floats"`
	// UseArrayEncodedStructs encodes structs as arrays instead of maps.
	UseArrayEncodedStructs bool `yaml:"use_array_encoded_structs" mapstructure:"use_array_encoded_structs"`
}

// marshalMessagePack encodes v as MessagePack binary honoring the settings.
func marshalMessagePack(v any, s MessagePackSettings) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(s.SortMapKeys)
	enc.UseCompactInts(s.UseCompactInts)
	enc.UseCompactFloats(s.UseCompactFloats)
	enc.UseArrayEncodedStructs(s.UseArrayEncodedStructs)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshalMessagePack decodes MessagePack binary into v.
func unmarshalMessagePack(data []byte, v any, _ MessagePackSettings) error {
	return msgpack.NewDecoder(bytes.NewReader(data)).Decode(v)
}
