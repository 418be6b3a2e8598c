// Package lrc parses timestamped lyric text and merges up to four
// independently timed tracks (original, translated, romanized and word-level
// karaoke) into one time-ordered sequence of composite lines ready for
// synchronized display.
//
// Parsing is best-effort throughout: any line, tag or segment that does not
// match its expected shape is left out of the result, never reported. The
// package is pure, holds no state between calls, and callers own the
// returned slice outright.
package lrc

import (
	"sort"
	"strings"
)

// Parse merges the four raw lyric tracks into composite lines. The original
// track seeds the lines; translated and romanized entries attach to the line
// with the exact same timestamp and are dropped when none exists; the dynamic
// track, when non-blank, attaches word-level timing via nearest start time
// and otherwise each line's duration is derived from its successor. Any of
// the last three tracks may be empty. An original track yielding no timed
// lines gives an empty result, not an error.
func Parse(original, translated, romanized, dynamic string) []Line {
	var lines []Line
	byTime := make(map[int64]int)
	for _, entry := range parseTimedLines(original) {
		if _, ok := byTime[entry.time]; ok {
			// Duplicate timestamps in the original track collapse onto
			// the first occurrence.
			continue
		}
		byTime[entry.time] = len(lines)
		lines = append(lines, Line{Time: entry.time, OriginalText: entry.text})
	}

	for _, entry := range parseTimedLines(translated) {
		if i, ok := byTime[entry.time]; ok {
			lines[i].TranslatedText = entry.text
		}
	}
	for _, entry := range parseTimedLines(romanized) {
		if i, ok := byTime[entry.time]; ok {
			lines[i].RomanizedText = entry.text
		}
	}

	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Time < lines[j].Time })
	lines = Process(lines)

	if strings.TrimSpace(dynamic) != "" {
		attachDynamic(dynamic, lines)
	} else {
		for i := 0; i+1 < len(lines); i++ {
			lines[i].Duration = lines[i+1].Time - lines[i].Time
		}
	}
	return lines
}
