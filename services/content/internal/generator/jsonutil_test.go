package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", `{"rating": 4}`, `{"rating": 4}`},
		{"fenced", "Here you go:\n```json\n{\"rating\": 4}\n```\nEnjoy", `{"rating": 4}`},
		{"fence without language", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around", `Sure! {"title": "X"} Hope this helps.`, `{"title": "X"}`},
		{"trailing comma", "{\"a\": 1, \"b\": [1, 2,],}", `{"a": 1, "b": [1, 2]}`},
		{"none", "no json here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.input))
		})
	}
}

func TestExtractJSON_HTMLContent(t *testing.T) {
	input := "```json\n{\"title\": \"Best Mixers\", \"excerpt\": \"Short\", \"content\": \"<h2>Intro</h2><p>Text {with braces}</p>\"}\n```"

	var out articlePayload
	err := json.Unmarshal([]byte(ExtractJSON(input)), &out)

	assert.NoError(t, err)
	assert.Equal(t, "Best Mixers", out.Title)
	assert.Contains(t, out.Content, "<h2>Intro</h2>")
}
