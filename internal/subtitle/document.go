package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const blockSeparator = "\n\n"

var componentSplit = regexp.MustCompile(`[:,]`)

// represents complete SubRip track in display order
type Document struct {
	sections []*Section
}

func New(sections ...*Section) *Document {
	return &Document{sections: append([]*Section(nil), sections...)}
}

// Parse splits text on blank lines and reads one Section per non-empty
// block. The first malformed block aborts the whole parse.
func Parse(text string) (*Document, error) {
	doc := &Document{}

	block := 0
	for _, raw := range strings.Split(text, blockSeparator) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		block++

		section, err := parseBlock(raw)
		if err != nil {
			return nil, &FormatError{Block: block, Content: raw, Err: err}
		}
		doc.sections = append(doc.sections, section)
	}

	return doc, nil
}

// line 0 is the original number and is dropped unchecked
func parseBlock(raw string) (*Section, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return nil, ErrMissingTimecode
	}

	start, duration, err := parseTimecodeLine(lines[1])
	if err != nil {
		return nil, err
	}

	return NewSection(start, duration, strings.Join(lines[2:], "\n")), nil
}

func parseTimecodeLine(line string) (float64, float64, error) {
	parts := strings.Split(line, timecodeSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingSeparator, line)
	}

	start, err := parseTimecode(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("start time: %w", err)
	}
	end, err := parseTimecode(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("end time: %w", err)
	}

	// only the duration loses sub-second precision
	return start, math.RoundToEven(end - start), nil
}

func parseTimecode(token string) (float64, error) {
	fields := componentSplit.Split(token, -1)
	if len(fields) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrBadComponent, token)
	}

	// float64 so large hour counts cannot wrap
	var c [4]float64
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadComponent, token)
		}
		c[i] = float64(n)
	}

	return 3600*c[0] + 60*c[1] + c[2] + c[3]/1000, nil
}

// Export renumbers from 1 by position and joins cues with a blank line.
func (d *Document) Export() string {
	blocks := make([]string, len(d.sections))
	for i, section := range d.sections {
		blocks[i] = strconv.Itoa(i+1) + "\n" + section.Export()
	}
	return strings.Join(blocks, blockSeparator)
}

func (d *Document) Len() int {
	return len(d.sections)
}

// returns nil when i is out of range
func (d *Document) Section(i int) *Section {
	if i < 0 || i >= len(d.sections) {
		return nil
	}
	return d.sections[i]
}

// Sections returns a copy of the sequence; the *Section values are shared.
func (d *Document) Sections() []*Section {
	return append([]*Section(nil), d.sections...)
}

func (d *Document) Append(sections ...*Section) {
	d.sections = append(d.sections, sections...)
}

// Insert places s at position i; i == Len() appends.
func (d *Document) Insert(i int, s *Section) error {
	if i < 0 || i > len(d.sections) {
		return fmt.Errorf(
			"%w: %d (0-%d)",
			ErrIndexOutOfRange,
			i,
			len(d.sections),
		)
	}
	d.sections = append(d.sections, nil)
	copy(d.sections[i+1:], d.sections[i:])
	d.sections[i] = s
	return nil
}

func (d *Document) Remove(i int) error {
	if i < 0 || i >= len(d.sections) {
		return fmt.Errorf(
			"%w: %d (0-%d)",
			ErrIndexOutOfRange,
			i,
			len(d.sections)-1,
		)
	}
	d.sections = append(d.sections[:i], d.sections[i+1:]...)
	return nil
}

// moves every section by offset seconds
func (d *Document) Shift(offset float64) {
	for _, section := range d.sections {
		section.Shift(offset)
	}
}

// Merge appends other's sections after d's, in order, without re-sorting.
func (d *Document) Merge(other *Document) {
	d.sections = append(d.sections, other.sections...)
}
