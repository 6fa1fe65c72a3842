package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunk_EmptyInput(t *testing.T) {
	if got := Chunk("", 500); len(got) != 0 {
		t.Fatalf("expected 0 chunks for empty input, got %d", len(got))
	}
	if got := Chunk("   \n\n  ", 500); len(got) != 0 {
		t.Fatalf("expected 0 chunks for whitespace input, got %d", len(got))
	}
}

func TestChunk_SingleParagraphNoBreaks(t *testing.T) {
	text := strings.Repeat("coverage terms and conditions apply here ", 30)
	chunks := Chunk(text, 100)

	// No heuristic breaks: the whole text degrades to one oversized chunk.
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if len(chunks[0]) <= 100 {
		t.Fatalf("expected oversized chunk to be emitted whole, got len %d", len(chunks[0]))
	}
}

func TestChunk_GreedyPacking(t *testing.T) {
	p1 := "The policy covers hospitalization expenses for the insured."
	p2 := "A waiting period of thirty days applies to all new policies."
	p3 := "Maternity benefits become available after twenty four months."
	text := p1 + "\n\n" + p2 + "\n\n" + p3

	chunks := Chunk(text, 130)

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if chunks[0] != p1+"\n\n"+p2 {
		t.Errorf("first chunk should pack two paragraphs, got %q", chunks[0])
	}
	if chunks[1] != p3 {
		t.Errorf("second chunk = %q, want %q", chunks[1], p3)
	}
}

func TestChunk_MergedChunksRespectLimit(t *testing.T) {
	paragraphs := []string{
		"Cashless claims require network hospital admission approval.",
		"Reimbursement claims must be filed within thirty days time.",
		"Pre existing diseases carry a waiting period of four years.",
		"Day care procedures are covered from the first policy year.",
	}
	text := strings.Join(paragraphs, "\n\n")

	for _, max := range []int{80, 150, 300, 1000} {
		for _, c := range Chunk(text, max) {
			if strings.Contains(c, "\n\n") && len(c) > max {
				t.Errorf("maxChunkSize=%d: merged chunk exceeds limit (len %d): %q", max, len(c), c)
			}
		}
	}
}

func TestChunk_DiscardsNoise(t *testing.T) {
	text := "Page 3\n\nThe insurer shall settle all admissible claims within thirty days.\n\n  \n\nHdr"
	chunks := Chunk(text, 500)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d: %q", len(chunks), chunks)
	}
	if strings.Contains(chunks[0], "Page 3") || strings.Contains(chunks[0], "Hdr") {
		t.Errorf("short noise paragraphs should be discarded, got %q", chunks[0])
	}
}

func TestChunk_HeuristicBreaks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "label heading",
			text: "General exclusions apply to cosmetic procedures always.\nExclusions: war, nuclear perils and self inflicted injury.",
			want: 2,
		},
		{
			name: "numbered list",
			text: "Claim submission requires the following documentation set.\n1. Original discharge summary from the treating hospital.",
			want: 2,
		},
		{
			name: "bullet glyph",
			text: "The following benefits are included in the base plan cover.\n• Ambulance charges up to two thousand rupees per event.",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Small max size forces one chunk per paragraph.
			chunks := Chunk(tt.text, 60)
			if len(chunks) != tt.want {
				t.Errorf("got %d chunks, want %d: %q", len(chunks), tt.want, chunks)
			}
		})
	}
}

func TestChunk_MultibyteCountsRunes(t *testing.T) {
	// 20 runes but 60 bytes: must be dropped by the rune-based filter.
	short := strings.Repeat("•", 20)
	// 30 runes but 90 bytes each: merging both fits a 64-rune limit.
	kept := strings.Repeat("₹", 30)
	text := short + "\n\n" + kept + "\n\n" + kept

	chunks := Chunk(text, 64)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 merged chunk, got %d: %q", len(chunks), chunks)
	}
	if strings.Contains(chunks[0], "•") {
		t.Errorf("20-rune paragraph survived the length filter: %q", chunks[0])
	}
	if got := utf8.RuneCountInString(chunks[0]); got != 62 {
		t.Errorf("merged chunk is %d runes, want 62", got)
	}
}

func TestChunk_Rechunking(t *testing.T) {
	text := "The sum insured is restored once per policy year automatically.\n\n" +
		"Room rent is capped at one percent of the sum insured per day.\n\n" +
		"Organ donor expenses are covered for the harvesting procedure."

	first := Chunk(text, 200)
	second := Chunk(strings.Join(first, "\n\n"), 200)

	joinedFirst := strings.Join(first, "\n\n")
	joinedSecond := strings.Join(second, "\n\n")
	if joinedFirst != joinedSecond {
		t.Errorf("re-chunking lost information:\nfirst:  %q\nsecond: %q", joinedFirst, joinedSecond)
	}
}

func TestChunk_NoEmptyChunks(t *testing.T) {
	text := "•\n\n\n\nValid paragraph describing the claim escalation process.\n\n   "
	for _, c := range Chunk(text, 50) {
		if strings.TrimSpace(c) == "" {
			t.Fatal("produced an empty chunk")
		}
	}
}
