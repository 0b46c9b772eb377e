package mod

import (
	"strings"
)

// Descriptor holds the fields extracted from a mod.cpp descriptor.
//
// mod.cpp is not a strictly parseable format: servers ship descriptors with
// comments, stray semicolons and unbalanced nesting. The extraction here is
// a small explicit scanner (bracket-depth counter plus quoted-string
// collection), not a grammar. Malformed input degrades to empty fields.
type Descriptor struct {
	// Name is the value of the top-level name field, if present.
	Name string
	// Dependencies is the quoted-string contents of the dependencies[]
	// array, in declaration order.
	Dependencies []string
}

// ScanDescriptor tolerantly extracts the dependency array and display name
// from descriptor source text.
func ScanDescriptor(data []byte) Descriptor {
	src := string(data)
	return Descriptor{
		Name:         scanNameField(src),
		Dependencies: scanDependencyArray(src),
	}
}

// scanDependencyArray locates the dependencies[] keyword and collects the
// quoted strings up to the matching closing brace. Nesting beyond brace
// balance is ignored; comments and whitespace inside the array are
// tolerated. Returns nil when the array is absent or its braces never
// close.
func scanDependencyArray(src string) []string {
	i := indexOfIdent(src, "dependencies")
	if i < 0 {
		return nil
	}
	i += len("dependencies")

	// Expect []= { after the keyword, with arbitrary gaps.
	i = skipGaps(src, i)
	if i >= len(src) || src[i] != '[' {
		return nil
	}
	i = skipGaps(src, i+1)
	if i >= len(src) || src[i] != ']' {
		return nil
	}
	i = skipGaps(src, i+1)
	if i >= len(src) || src[i] != '=' {
		return nil
	}
	i = skipGaps(src, i+1)
	if i >= len(src) || src[i] != '{' {
		return nil
	}
	i++

	var deps []string
	depth := 1
	for i < len(src) {
		switch src[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			if depth == 0 {
				return deps
			}
			i++
		case '"':
			value, next, ok := scanQuoted(src, i)
			if !ok {
				return deps
			}
			if depth == 1 && value != "" {
				deps = append(deps, value)
			}
			i = next
		case '/':
			i = skipComment(src, i)
		default:
			i++
		}
	}
	// Braces never closed: degrade to nothing rather than guessing.
	return nil
}

// scanNameField extracts the value of the first top-level name field.
func scanNameField(src string) string {
	from := 0
	for {
		i := indexOfIdentFrom(src, "name", from)
		if i < 0 {
			return ""
		}
		from = i + len("name")

		j := skipGaps(src, i+len("name"))
		if j >= len(src) || src[j] != '=' {
			continue
		}
		j = skipGaps(src, j+1)
		if j >= len(src) || src[j] != '"' {
			continue
		}
		value, _, ok := scanQuoted(src, j)
		if !ok {
			return ""
		}
		return value
	}
}

// scanQuoted reads a double-quoted string starting at the opening quote.
// Doubled quotes escape a literal quote. Returns the decoded value, the
// index just past the closing quote, and whether the string was closed.
func scanQuoted(src string, start int) (string, int, bool) {
	var sb strings.Builder
	i := start + 1
	for i < len(src) {
		c := src[i]
		if c == '"' {
			if i+1 < len(src) && src[i+1] == '"' {
				sb.WriteByte('"')
				i += 2
				continue
			}
			return sb.String(), i + 1, true
		}
		sb.WriteByte(c)
		i++
	}
	return "", len(src), false
}

// skipGaps advances past whitespace and comments.
func skipGaps(src string, i int) int {
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/':
			next := skipComment(src, i)
			if next == i {
				return i
			}
			i = next
		default:
			return i
		}
	}
	return i
}

// skipComment advances past a // or /* */ comment starting at i. When i
// does not start a comment the index is advanced by one so callers inside
// scanning loops always make progress.
func skipComment(src string, i int) int {
	if i+1 < len(src) && src[i+1] == '/' {
		for i < len(src) && src[i] != '\n' {
			i++
		}
		return i
	}
	if i+1 < len(src) && src[i+1] == '*' {
		end := strings.Index(src[i+2:], "*/")
		if end < 0 {
			return len(src)
		}
		return i + 2 + end + 2
	}
	return i + 1
}

// indexOfIdent finds keyword as a standalone identifier (not part of a
// longer word such as actionName).
func indexOfIdent(src, keyword string) int {
	return indexOfIdentFrom(src, keyword, 0)
}

func indexOfIdentFrom(src, keyword string, from int) int {
	for {
		i := strings.Index(src[from:], keyword)
		if i < 0 {
			return -1
		}
		i += from
		before := i == 0 || !isIdentChar(src[i-1])
		afterIdx := i + len(keyword)
		after := afterIdx >= len(src) || !isIdentChar(src[afterIdx])
		if before && after {
			return i
		}
		from = i + len(keyword)
	}
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
