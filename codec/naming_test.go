package codec

import "testing"

func TestToCamelCase(t *testing.T) {
	cases := map[string]string{
		"Name":       "name",
		"UserName":   "userName",
		"HTTPServer": "httpServer",
		"ID":         "id",
		"userName":   "userName",
		"user_name":  "userName",
		"":           "",
	}
	for in, want := range cases {
		if got := toCamelCase(in); got != want {
			t.Errorf("toCamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"UserName":   "user_name",
		"userName":   "user_name",
		"HTTPServer": "http_server",
		"ID":         "id",
		"user_name":  "user_name",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	cases := map[string]string{
		"userName":  "UserName",
		"user_name": "UserName",
		"UserName":  "UserName",
		"id":        "Id",
	}
	for in, want := range cases {
		if got := toPascalCase(in); got != want {
			t.Errorf("toPascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}
