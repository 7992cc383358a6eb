package entities

import (
	"strings"
	"unicode/utf8"
)

// Metadata - производная статистика содержимого заметки.
type Metadata struct {
	WordCount      int   `json:"word_count"`
	LineCount      int   `json:"line_count"`
	CharacterCount int   `json:"character_count"`
	SizeInBytes    int64 `json:"size_in_bytes"`
}

// CalculateMetadata вычисляет все метаданные для содержимого.
// Функция чистая и детерминированная, ошибок не возвращает.
func CalculateMetadata(content string) Metadata {
	return Metadata{
		WordCount:      CountWords(content),
		LineCount:      CountLines(content),
		CharacterCount: CountCharacters(content),
		SizeInBytes:    SizeInBytes(content),
	}
}

// CountWords считает слова: разделители - любые последовательности пробельных символов.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// CountLines считает строки, разделенные \n, \r\n или \r.
// Завершающие пустые строки не учитываются.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = strings.TrimRight(normalized, "\n")
	if normalized == "" {
		return 0
	}
	return strings.Count(normalized, "\n") + 1
}

// CountCharacters считает символы Unicode.
func CountCharacters(content string) int {
	return utf8.RuneCountInString(content)
}

// SizeInBytes возвращает размер содержимого в байтах UTF-8.
func SizeInBytes(content string) int64 {
	return int64(len(content))
}
