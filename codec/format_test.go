package codec

import (
	"testing"
)

func TestFormat_MediaType(t *testing.T) {
	if got := JSON(DefaultJSONSettings()).MediaType(); got != MediaTypeJSON {
		t.Errorf("expected %s, got %s", MediaTypeJSON, got)
	}
	if got := MessagePack(MessagePackSettings{}).MediaType(); got != MediaTypeMessagePack {
		t.Errorf("expected %s, got %s", MediaTypeMessagePack, got)
	}
}

func TestFormat_ZeroValueIsJSON(t *testing.T) {
	var f Format
	if f.Kind() != KindJSON {
		t.Errorf("zero Format should be JSON, got %s", f.Kind())
	}
	s, ok := f.JSONSettings()
	if !ok {
		t.Fatal("expected JSON settings to be active")
	}
	if s.Naming != NamingCamelCase {
		t.Errorf("expected camelCase default, got %s", s.Naming)
	}
}

func TestFormat_SwitchDiscardsOtherSettings(t *testing.T) {
	f := MessagePack(MessagePackSettings{SortMapKeys: true})
	if _, ok := f.MessagePackSettings(); !ok {
		t.Fatal("expected MessagePack settings to be active")
	}
	if _, ok := f.JSONSettings(); ok {
		t.Error("JSON settings should not be available while MessagePack is active")
	}

	f = JSON(JSONSettings{Naming: NamingSnakeCase})
	if f.Kind() != KindJSON {
		t.Fatalf("expected JSON after switch, got %s", f.Kind())
	}
	if _, ok := f.MessagePackSettings(); ok {
		t.Error("MessagePack settings should be cleared after switching to JSON")
	}
	s, _ := f.JSONSettings()
	if s.Naming != NamingSnakeCase {
		t.Errorf("expected snake_case, got %s", s.Naming)
	}
}

type sample struct {
	UserName string `json:"userName" msgpack:"userName"`
	Count    int    `json:"count" msgpack:"count"`
	Active   bool   `json:"active" msgpack:"active"`
}

func TestFormat_RoundTrip_JSON(t *testing.T) {
	in := sample{UserName: "alice", Count: 3, Active: true}
	f := JSON(DefaultJSONSettings())

	data, err := f.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out sample
	if err := f.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestFormat_RoundTrip_MessagePack(t *testing.T) {
	in := sample{UserName: "bob", Count: -1, Active: false}
	f := MessagePack(MessagePackSettings{SortMapKeys: true, UseCompactInts: true})

	data, err := f.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out sample
	if err := f.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestFormat_Unmarshal_Malformed(t *testing.T) {
	var out sample
	if err := JSON(DefaultJSONSettings()).Unmarshal([]byte("{"), &out); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if err := MessagePack(MessagePackSettings{}).Unmarshal([]byte{0xc1}, &out); err == nil {
		t.Error("expected error for malformed MessagePack")
	}
}
