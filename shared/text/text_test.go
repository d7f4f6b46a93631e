package text_test

import (
	"testing"

	"github.com/ah01567/Bookini/shared/text"

	"github.com/stretchr/testify/assert"
)

func TestKeyify(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "lowercases and dashes", value: "Alger Centre", want: "alger-centre"},
		{name: "strips diacritics", value: "Béjaïa", want: "bejaia"},
		{name: "trims and collapses spaces", value: "  Oran   Est ", want: "oran-est"},
		{name: "empty", value: "", want: ""},
		{name: "accents equal plain", value: "Algér centre", want: "alger-centre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Keyify(tt.value))
		})
	}
}
