package engine

import "strings"

// Common abbreviations that end in a period without ending a sentence.
var abbreviations = map[string]struct{}{
	"dr": {}, "mr": {}, "mrs": {}, "ms": {}, "prof": {}, "st": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "no": {}, "dept": {},
}

// splitSentences segments text into ordered sentences on '.', '!' and '?'
// terminators followed by whitespace, skipping terminators glued to the next
// character (decimals, a.m./p.m.) and a short list of common abbreviations.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 < len(text) && !isSpaceByte(text[i+1]) {
			continue
		}
		if c == '.' && endsWithAbbreviation(text[start:i]) {
			continue
		}
		if s := strings.TrimSpace(text[start : i+1]); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func endsWithAbbreviation(segment string) bool {
	segment = strings.TrimRight(segment, " \t\r\n")
	cut := strings.LastIndexAny(segment, " \t\r\n(")
	word := strings.ToLower(segment[cut+1:])
	_, ok := abbreviations[word]
	return ok
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
