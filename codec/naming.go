package codec

import (
	"strings"
	"unicode"
)

// transformKey rewrites a single JSON object key per the naming policy.
func transformKey(key string, p NamingPolicy) string {
	switch p {
	case NamingCamelCase:
		return toCamelCase(key)
	case NamingSnakeCase:
		return toSnakeCase(key)
	case NamingPascalCase:
		return toPascalCase(key)
	default:
		return key
	}
}

// toCamelCase lowercases the leading run of upper-case letters, leaving the
// last one intact when it starts a new word ("HTTPServer" -> "httpServer",
// "ID" -> "id"). Snake-case input is joined first ("user_name" -> "userName").
func toCamelCase(s string) string {
	if s == "" {
		return s
	}
	if strings.ContainsRune(s, '_') {
		s = joinSnake(s)
	}
	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	if upper == 0 {
		return s
	}
	// Keep the last upper intact when it begins the next word.
	if upper < len(runes) && upper > 1 {
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// toSnakeCase converts camelCase or PascalCase to lower snake case.
func toSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) && runes[i-1] != '_' {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// toPascalCase uppercases the first letter; snake-case input is joined
// word by word ("user_name" -> "UserName").
func toPascalCase(s string) string {
	if s == "" {
		return s
	}
	if strings.ContainsRune(s, '_') {
		s = joinSnake(s)
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// joinSnake removes underscores, uppercasing each following letter.
func joinSnake(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			b.WriteString(part)
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
