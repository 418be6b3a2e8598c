package lrc

import (
	"regexp"
	"strings"
)

var (
	dynamicLineRegex = regexp.MustCompile(`^\[(\d+),(\d+)\]`)
	dynamicWordRegex = regexp.MustCompile(`^\((\d+),(\d+),(\d+)\)([^(]*)`)
)

// attachDynamic parses a word-level karaoke track and hangs each of its lines
// off the composite line whose start time is nearest, overwriting that line's
// duration with the karaoke line's own. Track lines not matching the
// [start,duration] shape are skipped. A word list stops at the first segment
// that does not match the (time,duration,flag)word shape; anything after it
// on the line is discarded. A karaoke line with zero words still attaches.
// With no composite lines to attach to, the track is dropped entirely.
func attachDynamic(src string, lines []Line) {
	for _, raw := range strings.Split(src, "\n") {
		match := dynamicLineRegex.FindStringSubmatch(raw)
		if match == nil {
			continue
		}
		lineTime := parseIntOrZero(match[1])
		lineDuration := parseIntOrZero(match[2])
		rest := raw[len(match[0]):]

		var words []Word
		for rest != "" {
			wordMatch := dynamicWordRegex.FindStringSubmatch(rest)
			if wordMatch == nil {
				break
			}
			words = append(words, Word{
				Time:     parseIntOrZero(wordMatch[1]),
				Duration: parseIntOrZero(wordMatch[2]),
				Flag:     parseIntOrZero(wordMatch[3]),
				Word:     wordMatch[4],
			})
			rest = rest[len(wordMatch[0]):]
		}

		// Nearest start time wins; on an exact tie the earlier line keeps
		// the words since only a strictly smaller distance replaces it.
		best := -1
		for i := range lines {
			if best == -1 || absInt64(lines[i].Time-lineTime) < absInt64(lines[best].Time-lineTime) {
				best = i
			}
		}
		if best == -1 {
			continue
		}
		lines[best].Duration = lineDuration
		lines[best].DynamicWords = words
		lines[best].DynamicTime = lineTime
	}
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
