// Package naming turns free-form design text (frame names, text layer
// contents) into short lowerCamelCase identifiers suitable for localization
// keys and style names.
package naming

import "strings"

// Normalize converts text to a lowerCamelCase identifier whose length never
// exceeds maxLength.
//
// Every character that is not an ASCII letter, digit or space is removed
// before the text is split into words on single spaces. When the full
// camel-cased form is too long, whole words are kept from the left until the
// next one would overflow, so a word is never cut in half:
//
//	Normalize("Login Screen Some Long Text Under Limit", 20) // "loginScreenSomeLong"
//
// The result is empty when even the first word does not fit.
func Normalize(text string, maxLength int) string {
	words := splitWords(text)

	var key strings.Builder
	for i, word := range words {
		key.WriteString(camelWord(word, i == 0))
	}
	if key.Len() <= maxLength {
		return key.String()
	}

	trimmed := ""
	for _, word := range words {
		potential := trimmed + camelWord(word, trimmed == "")
		if len(potential) > maxLength {
			break
		}
		trimmed = potential
	}

	return trimmed
}

// Capitalize upper-cases the first character of s and leaves the rest as is.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// splitWords strips unsupported characters and returns the non-empty words.
func splitWords(text string) []string {
	var cleaned strings.Builder
	cleaned.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; isASCIIAlnum(c) || c == ' ' {
			cleaned.WriteByte(c)
		}
	}

	parts := strings.Split(cleaned.String(), " ")
	words := parts[:0]
	for _, part := range parts {
		if part != "" {
			words = append(words, part)
		}
	}
	return words
}

func camelWord(word string, first bool) string {
	if first {
		return strings.ToLower(word)
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

func isASCIIAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
