package lrc

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// timedText is one timestamp tag plus the text that followed it on the line.
// Only used transiently while merging tracks.
type timedText struct {
	time int64
	text string
}

var timeTagRegex = regexp.MustCompile(`^\[([0-9:.]+)\]`)

// parseTimedLines converts one raw lyric track into (time, text) records.
// A line may carry several leading timestamp tags sharing one text, common in
// formats that reuse a chorus line. Lines without any tag are dropped. A line
// that is nothing but tags still produces records with empty text: those are
// pause markers, not junk. The result is stable-sorted by time so equal
// timestamps keep input order.
func parseTimedLines(src string) []timedText {
	var out []timedText
	for _, line := range strings.Split(src, "\n") {
		var times []int64
		for {
			match := timeTagRegex.FindStringSubmatch(line)
			if match == nil {
				break
			}
			times = append(times, parseTimeTag(match[1]))
			line = line[len(match[0]):]
		}
		if len(times) == 0 {
			continue
		}
		text := strings.TrimSpace(line)
		for _, t := range times {
			out = append(out, timedText{time: t, text: text})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].time < out[j].time })
	return out
}

// parseTimeTag converts the inside of a [..] tag to whole milliseconds,
// flooring any fractional part. A tag with a colon reads as
// "minutes:seconds", where the seconds may carry a fraction after "." or a
// second ":" (some sources separate the fraction that way). A bare number is
// already milliseconds, the unit word-level tracks and historical sources
// write absolute times in. Malformed numbers count as zero instead of
// failing the line.
func parseTimeTag(tag string) int64 {
	parts := strings.Split(tag, ":")
	if len(parts) == 1 {
		return int64(math.Floor(parseFloatOrZero(parts[0])))
	}
	minutes := parseFloatOrZero(parts[0])
	seconds := parseFloatOrZero(parts[1])
	if len(parts) > 2 {
		seconds = parseFloatOrZero(parts[1] + "." + parts[2])
	}
	return int64(math.Floor((minutes*60 + seconds) * 1000))
}

func parseFloatOrZero(s string) float64 {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseIntOrZero(s string) int64 {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
