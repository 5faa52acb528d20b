// Package codec provides the serialization formats used by the request
// pipeline: JSON text encoding and MessagePack binary encoding.
//
// A Format is a tagged variant — exactly one format with its settings is
// active at any time. Constructing a JSON format discards any MessagePack
// settings and vice versa, so an invalid combination (both sets populated,
// or a flag disagreeing with the populated settings) cannot be represented.
//
// # Basic Usage
//
//	f := codec.JSON(codec.JSONSettings{Naming: codec.NamingSnakeCase})
//	data, err := f.Marshal(payload)
//
//	f = codec.MessagePack(codec.MessagePackSettings{SortMapKeys: true})
//	data, err = f.Marshal(payload)
package codec
