package codec

import (
	"bytes"
	"encoding/json"
)

// NamingPolicy controls how JSON object keys are written on encode.
type NamingPolicy int

const (
	// NamingCamelCase lowercases the first segment of each key ("UserName"
	// becomes "userName"). This is the default policy.
	NamingCamelCase NamingPolicy = iota
	// NamingSnakeCase writes keys as lower snake case ("UserName" becomes
	// "user_name").
	NamingSnakeCase
	// NamingPascalCase uppercases the first segment of each key
	// ("userName" becomes "UserName").
	NamingPascalCase
	// NamingAsIs leaves keys exactly as the marshaler produced them.
	NamingAsIs
)

// String returns the policy name.
func (p NamingPolicy) String() string {
	switch p {
	case NamingCamelCase:
		return "camel_case"
	case NamingSnakeCase:
		return "snake_case"
	case NamingPascalCase:
		return "pascal_case"
	case NamingAsIs:
		return "as_is"
	default:
		return "unknown"
	}
}

// JSONSettings configures the JSON codec.
type JSONSettings struct {
	// Naming is the key naming policy applied on encode. Decoding relies
	// on encoding/json's case-insensitive field matching, so values written
	// under any policy decode back into tagged or untagged structs.
	Naming NamingPolicy `yaml:"naming" mapstructure:"naming"`
	// Indent pretty-prints output with two-space indentation.
	Indent bool `yaml:"indent" mapstructure:"indent"`
	// EscapeHTML escapes <, > and & in string values.
	EscapeHTML bool `yaml:"escape_html" mapstructure:"escape_html"`
}

// DefaultJSONSettings returns the default JSON settings: camelCase keys,
// compact output, no HTML escaping.
func DefaultJSONSettings() JSONSettings {
	return JSONSettings{Naming: NamingCamelCase}
}

// marshalJSON encodes v as UTF-8 JSON text honoring the settings.
func marshalJSON(v any, s JSONSettings) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(s.EscapeHTML)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	if s.Naming == NamingAsIs {
		return data, nil
	}
	return rewriteKeys(data, s)
}

// rewriteKeys re-encodes data with every object key transformed by the
// naming policy. Arrays and nested objects are walked recursively.
func rewriteKeys(data []byte, s JSONSettings) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(s.EscapeHTML)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(applyNaming(v, s.Naming)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// applyNaming returns v with all map keys transformed by the policy.
func applyNaming(v any, p NamingPolicy) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[transformKey(k, p)] = applyNaming(inner, p)
		}
		return out
	case []any:
		for i, inner := range val {
			val[i] = applyNaming(inner, p)
		}
		return val
	default:
		return v
	}
}

// unmarshalJSON decodes UTF-8 JSON text into v. Key matching is
// case-insensitive, so camelCase and PascalCase payloads decode
// identically; no settings besides the target type affect decoding.
func unmarshalJSON(data []byte, v any, _ JSONSettings) error {
	return json.Unmarshal(data, v)
}
