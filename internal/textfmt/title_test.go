package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleExceptPrepositions(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"maria da silva", "Maria da Silva"},
		{"JOÃO DOS SANTOS", "João dos Santos"},
		{"de souza", "De Souza"},
		{"  ana   de   oliveira ", "Ana de Oliveira"},
		{"élcio das neves", "Élcio das Neves"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleExceptPrepositions(tt.in))
		})
	}
}
