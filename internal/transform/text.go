package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}

	return nil
}

func Lowercase(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	return cases.Lower(language.Und).String(text), nil
}

func Uppercase(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	return cases.Upper(language.Und).String(text), nil
}

// NoSpaces removes the ASCII space character only. Tabs and newlines are kept.
func NoSpaces(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	return strings.ReplaceAll(text, " ", ""), nil
}

// Reverse reverses the code points of text.
func Reverse(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	chars := []rune(text)
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

// Alternating upper-cases the code points at even positions and lower-cases the others.
func Alternating(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	var builder strings.Builder

	for i, char := range []rune(text) {
		if i%2 == 0 {
			builder.WriteString(upper.String(string(char)))
		} else {
			builder.WriteString(lower.String(string(char)))
		}
	}

	return builder.String(), nil
}

// letters without a canonical decomposition to ASCII.
var transliterations = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// Slugify lower-cases text, strips diacritics and joins the remaining ASCII letters and
// digits with single hyphens. Characters that cannot be transliterated act as separators.
func Slugify(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

	// Compatibility decompositions may yield upper-case letters, so lower-casing comes last.
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		return "", err
	}

	ascii := cases.Lower(language.Und).String(stripped)

	var builder strings.Builder

	pendingHyphen := false
	write := func(s string) {
		if pendingHyphen && builder.Len() > 0 {
			builder.WriteByte('-')
		}

		pendingHyphen = false

		builder.WriteString(s)
	}

	for _, char := range ascii {
		switch {
		case char < unicode.MaxASCII && (unicode.IsLetter(char) || unicode.IsDigit(char)):
			write(string(char))
		case transliterations[char] != "":
			write(transliterations[char])
		default:
			pendingHyphen = true
		}
	}

	return builder.String(), nil
}
