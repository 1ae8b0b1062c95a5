package subtitle

import (
	"fmt"
	"math"
	"strconv"
)

// represents single subtitle cue; times are seconds from file start
type Section struct {
	start    float64
	duration float64
	content  string
}

// no validation: negative or nonsensical values are kept as given
func NewSection(start, duration float64, content string) *Section {
	return &Section{
		start:    start,
		duration: duration,
		content:  content,
	}
}

func (s *Section) Start() float64 {
	return s.start
}

func (s *Section) Duration() float64 {
	return s.duration
}

func (s *Section) End() float64 {
	return s.start + s.duration
}

func (s *Section) Content() string {
	return s.content
}

func (s *Section) SetStart(start float64) {
	s.start = start
}

func (s *Section) SetDuration(duration float64) {
	s.duration = duration
}

func (s *Section) SetContent(content string) {
	s.content = content
}

// moves the section by offset seconds, keeping its duration
func (s *Section) Shift(offset float64) {
	s.start += offset
}

// Export renders the cue body: timecode line, newline, raw content.
func (s *Section) Export() string {
	return s.Timecode() + "\n" + s.content
}

// Timecode renders "H:M:S,mmm --> H:M:S,mmm" without zero padding.
func (s *Section) Timecode() string {
	return formatTimecode(s.start) + timecodeSeparator + formatTimecode(s.End())
}

func (s *Section) String() string {
	return fmt.Sprintf(
		"(%s, %s), %s",
		formatSeconds(s.start),
		formatSeconds(s.duration),
		strconv.Quote(s.content),
	)
}

const timecodeSeparator = " --> "

// milliseconds are rounded and may come out as 1000 just below a whole second
func formatTimecode(t float64) string {
	hours := math.Floor(t / 3600)
	rem := floorMod(t, 3600)
	minutes := math.Floor(rem / 60)
	rem = floorMod(rem, 60)
	seconds := math.Floor(rem)
	millis := math.Round((rem - seconds) * 1000)

	return fmt.Sprintf(
		"%d:%d:%d,%d",
		int64(hours),
		int64(minutes),
		int64(seconds),
		int64(millis),
	)
}

// result has the sign of m, so negative instants borrow from the hour
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
