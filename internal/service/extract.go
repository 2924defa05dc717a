package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cue words that typically precede a place mention, matched case-insensitively.
var mentionCues = []string{"to ", "in ", "at ", "visit "}

// Separators that end a mention once a cue matched, checked in this order.
var mentionSeparators = []string{",", "?", "!", " and ", " what", " then"}

const mentionTrimSet = " .,!?:;-"

// Filler tokens that may trail a cue before the actual place name
// ("I want to go to Rome", "visit the Taj Mahal").
var mentionStopwords = map[string]bool{
	"go": true, "going": true, "to": true, "in": true,
	"at": true, "visit": true, "the": true, "a": true, "an": true,
}

// ExtractMention pulls the substring of a query believed to name a place.
// It takes the text after the last preposition cue, falling back to the
// longest run of capitalized tokens when no cue is present. The second
// return value is false when neither yields a candidate.
func ExtractMention(text string) (string, bool) {
	if m := afterLastCue(text); m != "" {
		return m, true
	}
	if m := longestCapitalizedRun(text); m != "" {
		return m, true
	}
	return "", false
}

// loweredQuery pairs a lowercased copy of a query with a byte-offset map
// back into the original text. Lowering can change rune widths (İ shrinks,
// Ⱥ grows), so indexes found in the copy cannot slice the original directly.
type loweredQuery struct {
	lower  string
	offset []int // offset[i] is the original byte offset for lower byte i
}

func lowerQuery(text string) loweredQuery {
	var b strings.Builder
	b.Grow(len(text))
	offset := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offset = append(offset, i)
		}
		b.WriteRune(lr)
	}
	offset = append(offset, len(text))
	return loweredQuery{lower: b.String(), offset: offset}
}

func afterLastCue(text string) string {
	q := lowerQuery(text)
	start := -1
	for _, cue := range mentionCues {
		idx := lastWordIndex(q.lower, cue)
		if idx < 0 {
			continue
		}
		if end := idx + len(cue); end > start {
			start = end
		}
	}
	if start < 0 || start >= len(q.lower) {
		return ""
	}
	rest := text[q.offset[start]:]
	for _, sep := range mentionSeparators {
		if idx := strings.Index(q.lower[start:], sep); idx >= 0 {
			rest = text[q.offset[start]:q.offset[start+idx]]
			break
		}
	}
	tokens := strings.Fields(strings.Trim(rest, mentionTrimSet))
	for len(tokens) > 0 && mentionStopwords[strings.ToLower(tokens[0])] {
		tokens = tokens[1:]
	}
	return strings.Join(tokens, " ")
}

// lastWordIndex finds the last occurrence of cue starting at a word boundary.
func lastWordIndex(s, cue string) int {
	for end := len(s); end > 0; {
		idx := strings.LastIndex(s[:end], cue)
		if idx < 0 {
			return -1
		}
		if idx == 0 {
			return idx
		}
		if r, _ := utf8.DecodeLastRuneInString(s[:idx]); !unicode.IsLetter(r) {
			return idx
		}
		end = idx
	}
	return -1
}

// longestCapitalizedRun joins the longest consecutive sequence of
// capitalized tokens. The pronoun "I" and its contractions are not
// place candidates. Ties keep the earliest run.
func longestCapitalizedRun(text string) string {
	var best, run []string
	flush := func() {
		if len(run) > len(best) {
			best = run
		}
		run = nil
	}
	for _, tok := range strings.Fields(text) {
		clean := strings.Trim(tok, mentionTrimSet)
		if !isPlaceToken(clean) {
			flush()
			continue
		}
		run = append(run, clean)
	}
	flush()
	return strings.Join(best, " ")
}

func isPlaceToken(tok string) bool {
	if tok == "" || tok == "I" || strings.HasPrefix(tok, "I'") {
		return false
	}
	return unicode.IsUpper([]rune(tok)[0])
}
