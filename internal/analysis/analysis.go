package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Bundle holds the derived properties of a single string value.
// It is a pure function of the value: computed once at insert time and
// immutable afterwards.
type Bundle struct {
	// Length is the character count (runes, not bytes)
	Length int `json:"length"`

	// IsPalindrome reports whether the value equals its exact reverse.
	// The comparison is case-sensitive and whitespace-sensitive; callers
	// wanting a looser definition must pre-normalize the value.
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueChars is the number of distinct characters in the value
	UniqueChars int `json:"unique_characters"`

	// WordCount is the number of whitespace-delimited non-empty tokens
	WordCount int `json:"word_count"`

	// Frequency maps each distinct character to its occurrence count.
	// Keys are single-rune strings; values sum to Length.
	Frequency map[string]int `json:"character_frequency_map"`

	// Hash is the SHA-256 hex digest of the UTF-8 bytes of the value.
	// It doubles as the dedup key and the record identifier.
	Hash string `json:"sha256_hash"`
}

// Analyze computes the full property bundle for a value.
// Total and deterministic; the empty string is valid (length 0, trivially
// a palindrome, 0 words, empty frequency map).
func Analyze(value string) Bundle {
	runes := []rune(value)

	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return Bundle{
		Length:       len(runes),
		IsPalindrome: isPalindrome(runes),
		UniqueChars:  len(freq),
		WordCount:    len(strings.Fields(value)),
		Frequency:    freq,
		Hash:         ContentHash(value),
	}
}

// ContentHash returns the SHA-256 hex digest of the UTF-8 encoding of value.
// Recomputed on demand wherever a record is addressed, never stored apart
// from the value it was derived from.
func ContentHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// CountChars returns the character count as runes (not bytes).
func CountChars(value string) int {
	return utf8.RuneCountInString(value)
}

// isPalindrome reports whether the rune sequence reads the same in both
// directions. No case folding, no whitespace stripping.
func isPalindrome(runes []rune) bool {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
