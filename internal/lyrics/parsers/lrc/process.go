package lrc

import "strings"

// metaMarkers flag credits lines like "作词 : X" or "作曲: Y" that some
// sources prepend or append to the lyric body. Matching is by substring on
// purpose, hyphen over-trigger included: existing lyric sources rely on this
// exact heuristic.
var metaMarkers = []string{" : ", "：", "-"}

func hasMetaMarker(text string) bool {
	for _, marker := range metaMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Process denoises a time-ordered composite sequence in place and returns it.
// It strips leading and trailing credits lines, collapses runs of blank lines
// down to at most one spacer kept only ahead of a gap longer than five
// seconds, drops whatever blanks remain at the head, and finally prepends a
// synthetic spacer at 500ms when the lyric proper starts later than five
// seconds in, so long intros show a waiting placeholder. Applying it twice
// gives the same result as applying it once.
func Process(lines []Line) []Line {
	for len(lines) > 0 && hasMetaMarker(lines[0].OriginalText) {
		lines = lines[1:]
	}
	for len(lines) > 0 && hasMetaMarker(lines[len(lines)-1].OriginalText) {
		lines = lines[:len(lines)-1]
	}

	kept := lines[:0]
	lastWasSpacer := false
	for i := range lines {
		if !isBlank(lines[i].OriginalText) {
			kept = append(kept, lines[i])
			lastWasSpacer = false
			continue
		}
		if i+1 < len(lines) && lines[i+1].Time-lines[i].Time > 5000 && !lastWasSpacer {
			kept = append(kept, lines[i])
			lastWasSpacer = true
		}
	}
	lines = kept

	for len(lines) > 0 && isBlank(lines[0].OriginalText) {
		lines = lines[1:]
	}

	if len(lines) > 0 && lines[0].Time > 5000 {
		spacer := Line{Time: 500, Duration: lines[0].Time - 500}
		lines = append([]Line{spacer}, lines...)
	}
	return lines
}
