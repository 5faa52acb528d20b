package codec

// Kind identifies the active serialization format.
type Kind int

const (
	// KindJSON encodes payloads as JSON text.
	KindJSON Kind = iota
	// KindMessagePack encodes payloads as MessagePack binary.
	KindMessagePack
)

// String returns the format name.
func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindMessagePack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// Media types written to Accept and Content-Type headers.
const (
	MediaTypeJSON        = "application/json"
	MediaTypeMessagePack = "application/x-msgpack"
)

// Format is a tagged variant holding exactly one active serialization
// format and its settings. The zero value is JSON with default settings.
type Format struct {
	kind    Kind
	json    JSONSettings
	msgpack MessagePackSettings
}

// JSON returns a Format that encodes as JSON text with the given settings.
func JSON(s JSONSettings) Format {
	return Format{kind: KindJSON, json: s}
}

// MessagePack returns a Format that encodes as MessagePack binary with the
// given settings. The zero MessagePackSettings value means format defaults.
func MessagePack(s MessagePackSettings) Format {
	return Format{kind: KindMessagePack, msgpack: s}
}

// Default returns the default format: JSON with default settings.
func Default() Format {
	return JSON(DefaultJSONSettings())
}

// Kind returns the active format kind.
func (f Format) Kind() Kind {
	return f.kind
}

// MediaType returns the MIME media type of the active format.
func (f Format) MediaType() string {
	if f.kind == KindMessagePack {
		return MediaTypeMessagePack
	}
	return MediaTypeJSON
}

// JSONSettings returns the JSON settings and whether JSON is active.
func (f Format) JSONSettings() (JSONSettings, bool) {
	if f.kind != KindJSON {
		return JSONSettings{}, false
	}
	return f.json, true
}

// MessagePackSettings returns the MessagePack settings and whether
// MessagePack is active.
func (f Format) MessagePackSettings() (MessagePackSettings, bool) {
	if f.kind != KindMessagePack {
		return MessagePackSettings{}, false
	}
	return f.msgpack, true
}

// Marshal encodes v using the active format. JSON output is UTF-8 text;
// apply an Encoding afterwards for other text framings.
func (f Format) Marshal(v any) ([]byte, error) {
	if f.kind == KindMessagePack {
		return marshalMessagePack(v, f.msgpack)
	}
	return marshalJSON(v, f.json)
}

// Unmarshal decodes data into v using the active format. JSON input must
// already be UTF-8 text; apply Encoding.Decode first for other framings.
func (f Format) Unmarshal(data []byte, v any) error {
	if f.kind == KindMessagePack {
		return unmarshalMessagePack(data, v, f.msgpack)
	}
	return unmarshalJSON(data, v, f.json)
}
