package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"theMacroExpander", "TheMacroExpander"},
		{"sun", "Sun"},
		{"XInterface", "XInterface"},
		{"", ""},
		{"ärger", "Ärger"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.input))
		})
	}
}

func TestUncapitalize(t *testing.T) {
	assert.Equal(t, "widget", Uncapitalize("Widget"))
	assert.Equal(t, "getCount", Uncapitalize("getCount"))
	assert.Equal(t, "", Uncapitalize(""))
}
