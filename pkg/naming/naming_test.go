package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{
			name:      "two words",
			text:      "Login Screen",
			maxLength: 20,
			want:      "loginScreen",
		},
		{
			name:      "punctuation is stripped",
			text:      "Hello, World!",
			maxLength: 50,
			want:      "helloWorld",
		},
		{
			name:      "trimmed on word boundary",
			text:      "Login Screen Some Long Text Under Limit",
			maxLength: 20,
			want:      "loginScreenSomeLong",
		},
		{
			name:      "mixed case words are re-cased",
			text:      "fORGOT PassWord?",
			maxLength: 20,
			want:      "forgotPassword",
		},
		{
			name:      "repeated spaces",
			text:      "  Sign   in  ",
			maxLength: 20,
			want:      "signIn",
		},
		{
			name:      "digits are kept",
			text:      "Step 2 of 3",
			maxLength: 20,
			want:      "step2Of3",
		},
		{
			name:      "first word longer than the limit",
			text:      "Supercalifragilistic expialidocious",
			maxLength: 10,
			want:      "",
		},
		{
			name:      "exact fit",
			text:      "ab cd",
			maxLength: 4,
			want:      "abCd",
		},
		{
			name:      "non ascii letters are dropped",
			text:      "Café Olé",
			maxLength: 20,
			want:      "cafOl",
		},
		{
			name:      "newlines glue words together",
			text:      "Hello\nWorld",
			maxLength: 20,
			want:      "helloworld",
		},
		{
			name:      "empty",
			text:      "",
			maxLength: 20,
			want:      "",
		},
		{
			name:      "only symbols",
			text:      "!!! ???",
			maxLength: 20,
			want:      "",
		},
		{
			name:      "negative limit",
			text:      "Login",
			maxLength: -1,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text, tt.maxLength))
		})
	}
}

func TestNormalizeNeverExceedsLimitOrSplitsWords(t *testing.T) {
	text := "Login Screen Some Long Text Under Limit"
	full := Normalize(text, len(text))

	for limit := 0; limit <= len(full); limit++ {
		got := Normalize(text, limit)
		assert.LessOrEqual(t, len(got), limit)
		assert.True(t, strings.HasPrefix(full, got), "limit %d: %q is not a prefix of %q", limit, got, full)

		// The next character of the full key must start a new word.
		if got != "" && len(got) < len(full) {
			next := full[len(got)]
			assert.True(t, next >= 'A' && next <= 'Z', "limit %d: %q ends mid-word", limit, got)
		}
	}
}

func TestNormalizeStable(t *testing.T) {
	// A single word key is a fixed point.
	assert.Equal(t, "login", Normalize(Normalize("Login", 20), 20))

	// A camel-cased key is one word for the tokenizer, so re-applying folds
	// it to lower case once and is stable from then on.
	inputs := []string{"Login Screen", "Hello, World!", "Forgot password?", "a B c D"}
	for _, in := range inputs {
		once := Normalize(in, 50)
		twice := Normalize(once, 50)
		assert.Equal(t, strings.ToLower(once), twice, "input %q", in)
		assert.Equal(t, twice, Normalize(twice, 50), "input %q", in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "ForgotPassword", Capitalize("forgotPassword"))
	assert.Equal(t, "1abc", Capitalize("1abc"))
}
