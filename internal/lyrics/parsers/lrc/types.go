package lrc

// Word is one syllable of a word-level (karaoke style) lyric line. Time is
// the offset inside the line and Duration the highlight length, both in
// milliseconds. Flag carries the source format's marker verbatim.
type Word struct {
	Time     int64  `json:"time"`
	Duration int64  `json:"duration"`
	Flag     int64  `json:"flag"`
	Word     string `json:"word"`
}

// Line is one merged, time-keyed lyric entry combining up to four tracks.
// OriginalText always comes from the original track; the other track fields
// stay at their zero value when that track had nothing for this timestamp,
// and callers must treat the zero value as "not available". A Line whose
// OriginalText is blank is an intentional instrumental spacer, not junk.
type Line struct {
	Time           int64  `json:"time"`
	Duration       int64  `json:"duration"`
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text,omitempty"`
	RomanizedText  string `json:"romanized_text,omitempty"`
	DynamicWords   []Word `json:"dynamic_words,omitempty"`
	DynamicTime    int64  `json:"dynamic_time,omitempty"`
}
