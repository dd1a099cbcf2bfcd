package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToTitle capitalizes the first letter of every word using Unicode casing rules.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// NormalizeUnicode returns the NFC form of s, so visually identical strings
// compare equal after freezing.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// CollapseSpace trims s and replaces every run of whitespace with one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripControl removes control characters other than tab and newline.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			return -1
		}
		return r
	}, s)
}

// SingleLine replaces line breaks with spaces and collapses whitespace.
func SingleLine(s string) string {
	return CollapseSpace(strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s))
}

// Truncate returns a transform that keeps at most n runes.
func Truncate(n int) func(string) string {
	return func(s string) string {
		if n < 0 {
			return s
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	}
}

// NormalizeEmail trims and lowercases an address and collapses repeated dots
// in the local part. Values without exactly one @ are only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	for strings.Contains(local, "..") {
		local = strings.ReplaceAll(local, "..", ".")
	}
	return strings.Trim(local, ".") + "@" + domain
}
