package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var lowercasePrepositions = map[string]bool{
	"da": true, "de": true, "do": true, "dos": true, "das": true,
}

// TitleExceptPrepositions capitalizes each word of s, keeping the Portuguese
// prepositions da/de/do/dos/das lower-case unless they open the string.
// Whitespace runs collapse to a single space.
func TitleExceptPrepositions(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && lowercasePrepositions[lower] {
			words[i] = lower
			continue
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
