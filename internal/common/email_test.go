package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase unchanged", input: "a@x.com", want: "a@x.com"},
		{name: "uppercase folded", input: "A@X.COM", want: "a@x.com"},
		{name: "whitespace trimmed", input: "  a@x.com \n", want: "a@x.com"},
		{name: "mixed", input: " Ana.Perez@Mail.com", want: "ana.perez@mail.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}

func TestSameEmail(t *testing.T) {
	assert.True(t, SameEmail("A@X.com", "a@x.com "))
	assert.False(t, SameEmail("a@x.com", "b@x.com"))
}
