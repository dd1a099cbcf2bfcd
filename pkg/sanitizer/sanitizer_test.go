package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/immutable/pkg/sanitizer"
)

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"trim", sanitizer.Trim, "  hello \n", "hello"},
		{"lower", sanitizer.ToLower, "HeLLo", "hello"},
		{"upper", sanitizer.ToUpper, "HeLLo", "HELLO"},
		{"title", sanitizer.ToTitle, "hello wORLD", "Hello World"},
		{"nfc", sanitizer.NormalizeUnicode, "e\u0301", "\u00e9"},
		{"collapse space", sanitizer.CollapseSpace, "  a \t b\n\nc ", "a b c"},
		{"strip control", sanitizer.StripControl, "a\x00b\tc\nd\x7f", "ab\tc\nd"},
		{"single line", sanitizer.SingleLine, "line one\r\nline two\nthree", "line one line two three"},
		{"truncate", sanitizer.Truncate(3), "héllo", "hél"},
		{"truncate short", sanitizer.Truncate(10), "hi", "hi"},
		{"truncate negative", sanitizer.Truncate(-1), "hi", "hi"},
		{"email", sanitizer.NormalizeEmail, "  John..Doe.@Example.COM ", "john.doe@example.com"},
		{"email without at", sanitizer.NormalizeEmail, " John ", "john"},
		{"email with two ats", sanitizer.NormalizeEmail, "a@b@c", "a@b@c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "john doe", sanitizer.Apply("  John   DOE ", sanitizer.CollapseSpace, sanitizer.ToLower))
	assert.Equal(t, "x", sanitizer.Apply("x"))

	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.Truncate(4))
	assert.Equal(t, "John", clean("  Johnathan "))

	double := sanitizer.Compose(func(n int) int { return n * 2 }, func(n int) int { return n + 1 })
	assert.Equal(t, 7, double(3))
}
