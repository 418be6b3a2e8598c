package lrc

import (
	"reflect"
	"testing"
)

func TestParseOriginalOnlyDurations(t *testing.T) {
	lines := Parse("[0]one\n[1200]two\n[3000]three", "", "", "")

	want := []Line{
		{Time: 0, Duration: 1200, OriginalText: "one"},
		{Time: 1200, Duration: 1800, OriginalText: "two"},
		{Time: 3000, Duration: 0, OriginalText: "three"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Parse = %v, want %v", lines, want)
	}
}

func TestParseOutputSortedAndUnique(t *testing.T) {
	lines := Parse("[3000]c\n[1000]a\n[2000]b\n[1000]a again", "", "", "")

	seen := make(map[int64]bool)
	for i, line := range lines {
		if i > 0 && lines[i-1].Time >= line.Time {
			t.Fatalf("lines not strictly ascending at %d: %v", i, lines)
		}
		if seen[line.Time] {
			t.Fatalf("duplicate time %d", line.Time)
		}
		seen[line.Time] = true
	}
	if lines[0].OriginalText != "a" {
		t.Errorf("duplicate timestamp should keep the first text, got %q", lines[0].OriginalText)
	}
}

func TestParseTranslationAttach(t *testing.T) {
	lines := Parse("[1000]Hi", "[1000]你好", "", "")

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].OriginalText != "Hi" || lines[0].TranslatedText != "你好" {
		t.Errorf("unexpected line: %+v", lines[0])
	}
}

func TestParseTranslationWithoutExactMatchDropped(t *testing.T) {
	lines := Parse("[1000]Hi", "[1200]你好", "", "")

	if lines[0].TranslatedText != "" {
		t.Errorf("near-miss translation must be dropped, got %q", lines[0].TranslatedText)
	}
	if len(lines) != 1 {
		t.Errorf("dropped translation must not become a new line: %v", lines)
	}
}

func TestParseRomanizationAttach(t *testing.T) {
	lines := Parse("[1000]桜", "", "[1000]sakura", "")

	if lines[0].RomanizedText != "sakura" {
		t.Errorf("romanized = %q, want sakura", lines[0].RomanizedText)
	}
}

func TestParseLeadingGapSpacer(t *testing.T) {
	lines := Parse("[6000]Hello\n[6500]World", "", "", "")

	want := []Line{
		{Time: 500, Duration: 5500, OriginalText: ""},
		{Time: 6000, Duration: 500, OriginalText: "Hello"},
		{Time: 6500, Duration: 0, OriginalText: "World"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Parse = %v, want %v", lines, want)
	}
}

func TestParseStripsCreditsLines(t *testing.T) {
	lines := Parse("[0]作词 : A\n[500]作曲 : B\n[1000]Real lyric", "", "", "")

	want := []Line{{Time: 1000, Duration: 0, OriginalText: "Real lyric"}}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Parse = %v, want %v", lines, want)
	}
}

func TestParseDynamicTrack(t *testing.T) {
	lines := Parse("[1000]Hello", "", "", "[1000,500](0,100,0)He(100,150,0)llo")

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line.Duration != 500 || line.DynamicTime != 1000 {
		t.Errorf("unexpected timing: %+v", line)
	}
	wantWords := []Word{
		{Time: 0, Duration: 100, Flag: 0, Word: "He"},
		{Time: 100, Duration: 150, Flag: 0, Word: "llo"},
	}
	if !reflect.DeepEqual(line.DynamicWords, wantWords) {
		t.Errorf("words = %v, want %v", line.DynamicWords, wantWords)
	}
}

func TestParseEmptyOriginal(t *testing.T) {
	if lines := Parse("", "[1000]orphan", "", "[1000,500](0,100,0)He"); len(lines) != 0 {
		t.Errorf("empty original must give an empty sequence, got %v", lines)
	}
}

func TestProcessCollapsesBlankRuns(t *testing.T) {
	lines := Process([]Line{
		{Time: 0, OriginalText: "A"},
		{Time: 1000, OriginalText: " "},
		{Time: 2000, OriginalText: ""},
		{Time: 10000, OriginalText: "B"},
	})

	want := []Line{
		{Time: 0, OriginalText: "A"},
		{Time: 2000, OriginalText: ""},
		{Time: 10000, OriginalText: "B"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Process = %v, want %v", lines, want)
	}
}

func TestProcessKeepsSingleSpacerPerRun(t *testing.T) {
	lines := Process([]Line{
		{Time: 0, OriginalText: "A"},
		{Time: 1000, OriginalText: ""},
		{Time: 7000, OriginalText: ""},
		{Time: 13000, OriginalText: "B"},
	})

	want := []Line{
		{Time: 0, OriginalText: "A"},
		{Time: 1000, OriginalText: ""},
		{Time: 13000, OriginalText: "B"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Process = %v, want %v", lines, want)
	}
}

func TestProcessStripsTrailingCredits(t *testing.T) {
	lines := Process([]Line{
		{Time: 0, OriginalText: "real"},
		{Time: 1000, OriginalText: "produced - someone"},
		{Time: 2000, OriginalText: "mixing : someone else"},
	})

	want := []Line{{Time: 0, OriginalText: "real"}}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Process = %v, want %v", lines, want)
	}
}

func TestProcessIdempotent(t *testing.T) {
	input := []Line{
		{Time: 0, OriginalText: "作词 : A"},
		{Time: 6000, OriginalText: "Hello"},
		{Time: 7000, OriginalText: ""},
		{Time: 14000, OriginalText: "World"},
	}

	once := Process(append([]Line(nil), input...))
	twice := Process(append([]Line(nil), once...))
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Process not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}
