package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a single term produced by an Extractor, together with its
// position in the source text.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Extractor turns free text into a stream of candidate terms for indexing.
// This is an ambient convenience for callers that don't already have a
// newline-delimited term file (§6.3) and instead want to build a dictionary
// out of running text; it is not part of the fuzzy-search core itself.
type Extractor interface {
	// Extract tokenizes text and returns the terms found in it.
	Extract(text string) []Token
}

// StandardExtractor splits text into runs of letters, digits and underscores
// and lowercases terms.
// MinTermLength drops terms shorter than that many code points; singleton
// characters add little signal to a fuzzy-search dictionary (SymSpell's
// length-1 shortcut, §4.7, already treats them as near-universal matches),
// so the default of 2 filters them out at the source.
type StandardExtractor struct {
	MinTermLength int
}

// NewStandardExtractor creates a StandardExtractor with the default
// minimum term length of 2 code points.
func NewStandardExtractor() *StandardExtractor {
	return &StandardExtractor{MinTermLength: 2}
}

func (e *StandardExtractor) Extract(text string) []Token {
	minLen := e.MinTermLength
	if minLen < 1 {
		minLen = 1
	}

	var tokens []Token
	var builder strings.Builder
	pos := 0
	start := -1

	flush := func(endByte int) {
		if builder.Len() == 0 {
			return
		}
		term := strings.ToLower(builder.String())
		if utf8.RuneCountInString(term) >= minLen {
			tokens = append(tokens, Token{
				Term:      term,
				Position:  pos,
				StartByte: start,
				EndByte:   endByte,
			})
			pos++
		}
		builder.Reset()
		start = -1
	}

	for i, r := range text {
		if isWordRune(r) {
			if start == -1 {
				start = i
			}
			builder.WriteRune(r)
			continue
		}
		flush(i)
	}
	flush(len(text))

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WhitespaceExtractor splits on whitespace without normalization, preserving
// case. Useful for dictionaries where case is significant to the query.
type WhitespaceExtractor struct{}

// NewWhitespaceExtractor creates a WhitespaceExtractor.
func NewWhitespaceExtractor() *WhitespaceExtractor {
	return &WhitespaceExtractor{}
}

func (e *WhitespaceExtractor) Extract(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))

	pos := 0
	searchFrom := 0
	for _, f := range fields {
		idx := strings.Index(text[searchFrom:], f)
		startByte := searchFrom + idx
		endByte := startByte + len(f)

		tokens = append(tokens, Token{
			Term:      f,
			Position:  pos,
			StartByte: startByte,
			EndByte:   endByte,
		})
		pos++
		searchFrom = endByte
	}

	return tokens
}

// KeywordExtractor treats the entire input as a single term, with no
// tokenization. Useful when the caller already knows each line is a term
// (§6.3) but wants the same Extractor interface as the other modes.
type KeywordExtractor struct{}

// NewKeywordExtractor creates a KeywordExtractor.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

func (e *KeywordExtractor) Extract(text string) []Token {
	if text == "" {
		return nil
	}
	return []Token{{Term: text, Position: 0, StartByte: 0, EndByte: len(text)}}
}
