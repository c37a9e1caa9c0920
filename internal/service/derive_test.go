package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", "1 min read"},
		{"one word", "hello", "1 min read"},
		{"exactly 200 words", strings.Repeat("word ", 200), "1 min read"},
		{"201 words", strings.Repeat("word ", 201), "2 min read"},
		{"250 words", strings.Repeat("word ", 250), "2 min read"},
		{"1000 words", strings.Repeat("word ", 1000), "5 min read"},
		{"whitespace only", "   \n\t  ", "1 min read"},
		{"mixed whitespace", "one\ntwo\tthree  four", "1 min read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.content))
		})
	}
}
