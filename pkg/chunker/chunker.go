package chunker

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Paragraph boundaries: a blank-line run, or a newline right before a
// capitalized "Label:" heading, a bullet glyph, or a numbered-list marker.
// Go's regexp has no lookahead, so heading/bullet/number breaks are matched
// including their first token and only the leading newline is removed.
var (
	blankRunRe     = regexp.MustCompile(`\n\s*\n`)
	markerBreakRe  = regexp.MustCompile(`\n(?:[A-Z][a-z]+:|•|\d+\.)`)
	minParagraphLn = 20
)

type cut struct {
	start int // first byte removed
	end   int // first byte kept
}

// Chunk splits text into bounded semantic units of at most maxChunkSize
// characters each, greedily packing whole paragraphs. A single paragraph
// longer than maxChunkSize is emitted whole and unsplit: this single-pass
// packing never re-splits an oversized paragraph and never looks ahead.
func Chunk(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	// Sizes are rune counts, so multibyte text is measured in characters.
	var paragraphs []string
	for _, p := range splitParagraphs(text) {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > minParagraphLn {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []string
	current := ""

	for _, paragraph := range paragraphs {
		joined := utf8.RuneCountInString(current) + utf8.RuneCountInString(paragraph)
		if current != "" {
			joined += len("\n\n")
		}
		if joined > maxChunkSize {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			current = paragraph
		} else {
			if current != "" {
				current += "\n\n" + paragraph
			} else {
				current = paragraph
			}
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

func splitParagraphs(text string) []string {
	var cuts []cut
	for _, m := range blankRunRe.FindAllStringIndex(text, -1) {
		cuts = append(cuts, cut{start: m[0], end: m[1]})
	}
	for _, m := range markerBreakRe.FindAllStringIndex(text, -1) {
		// Keep the matched marker, drop only the newline.
		cuts = append(cuts, cut{start: m[0], end: m[0] + 1})
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].start < cuts[j].start })

	var parts []string
	pos := 0
	for _, c := range cuts {
		if c.start < pos {
			continue // overlaps a cut already applied
		}
		parts = append(parts, text[pos:c.start])
		pos = c.end
	}
	parts = append(parts, text[pos:])

	return parts
}
