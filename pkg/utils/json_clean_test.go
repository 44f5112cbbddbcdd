package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONResponse(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json untouched", `{"a": 1}`, `{"a": 1}`},
		{"lowercase fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"uppercase fence", "```JSON\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n {\"a\": 1} \n ", `{"a": 1}`},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanJSONResponse(tc.input))
		})
	}
}
