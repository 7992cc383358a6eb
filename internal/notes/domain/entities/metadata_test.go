package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "blank", content: "   \t  ", want: 0},
		{name: "single word", content: "bonjour", want: 1},
		{name: "multiple spaces between words", content: "un   deux\t trois", want: 3},
		{name: "words across lines", content: "Ligne 1\n\nLigne 3", want: 4},
		{name: "leading and trailing whitespace", content: "  mot  ", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entities.CountWords(tt.content))
		})
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "single line", content: "hello", want: 1},
		{name: "lf separated", content: "Ligne 1\n\nLigne 3", want: 3},
		{name: "crlf separated", content: "a\r\nb\r\nc", want: 3},
		{name: "cr separated", content: "a\rb", want: 2},
		{name: "trailing newline not counted", content: "hello\n", want: 1},
		{name: "only newlines", content: "\n\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entities.CountLines(tt.content))
		})
	}
}

func TestCountCharactersAndSize(t *testing.T) {
	assert.Equal(t, 0, entities.CountCharacters(""))
	assert.Equal(t, int64(0), entities.SizeInBytes(""))

	// Многобайтовые символы: количество символов и размер расходятся.
	assert.Equal(t, 4, entities.CountCharacters("héhé"))
	assert.Equal(t, int64(6), entities.SizeInBytes("héhé"))

	assert.Equal(t, 5, entities.CountCharacters("hello"))
	assert.Equal(t, int64(5), entities.SizeInBytes("hello"))
}

func TestCalculateMetadata(t *testing.T) {
	t.Run("empty content yields zero metadata", func(t *testing.T) {
		assert.Equal(t, entities.Metadata{}, entities.CalculateMetadata(""))
	})

	t.Run("stable across repeated computation", func(t *testing.T) {
		content := "Ligne 1\n\nLigne 3"
		first := entities.CalculateMetadata(content)
		second := entities.CalculateMetadata(content)
		assert.Equal(t, first, second)
		assert.Equal(t, 4, first.WordCount)
		assert.Equal(t, 3, first.LineCount)
	})
}

func TestNewNoteAppliesMetadata(t *testing.T) {
	note := entities.NewNote("owner-1", "folder-1", "Titre", "un deux\ntrois")

	assert.Equal(t, 3, note.WordCount)
	assert.Equal(t, 2, note.LineCount)
	assert.Equal(t, 13, note.CharacterCount)
	assert.Equal(t, int64(13), note.SizeInBytes)
	assert.False(t, note.Deleted)
	assert.Nil(t, note.DeletedAt)
}
