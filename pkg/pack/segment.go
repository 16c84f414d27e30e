// File: pkg/pack/segment.go
package pack

import (
	"fmt"
	"strings"
)

// Delimiters written around each segment of the aggregate.
const (
	RulesHeader = "=== 🛑 PROJECT CONTEXT & RULES (READ THIS FIRST) ==="
	RulesFooter = "=== END OF RULES ==="
	FileHeader  = "--- FILE: %s ---"
	FileFooter  = "--- END OF FILE ---"
)

// SegmentKind distinguishes the rules block from file blocks.
type SegmentKind int

const (
	RulesSegment SegmentKind = iota
	FileSegment
)

// Segment is one delimited unit of the aggregate. When Err is set the body
// is an inline error marker instead of the file content.
type Segment struct {
	Kind    SegmentKind
	Path    string // Path relative to the root, empty for the rules segment.
	Content string
	Err     error
}

// Failed reports whether the segment carries an error marker.
func (s Segment) Failed() bool {
	return s.Err != nil
}

// body returns the content or the inline error marker.
func (s Segment) body() string {
	if s.Err == nil {
		return s.Content
	}
	if s.Kind == RulesSegment {
		return fmt.Sprintf("[rules read error: %v]", s.Err)
	}
	return fmt.Sprintf("[read error: %v]", s.Err)
}

// render writes the delimited segment into b.
func (s Segment) render(b *strings.Builder) {
	switch s.Kind {
	case RulesSegment:
		b.WriteString(RulesHeader)
		b.WriteString("\n")
		b.WriteString(s.body())
		b.WriteString("\n")
		b.WriteString(RulesFooter)
		b.WriteString("\n\n")
	default:
		b.WriteString("\n")
		fmt.Fprintf(b, FileHeader, s.Path)
		b.WriteString("\n")
		b.WriteString(s.body())
		b.WriteString("\n")
		b.WriteString(FileFooter)
		b.WriteString("\n")
	}
}

// Aggregate is the ordered list of segments produced by one run. The rules
// segment, when present, is always first.
type Aggregate struct {
	Rules *Segment
	Files []Segment
}

// Segments returns all segments in output order.
func (a Aggregate) Segments() []Segment {
	out := make([]Segment, 0, len(a.Files)+1)
	if a.Rules != nil {
		out = append(out, *a.Rules)
	}
	return append(out, a.Files...)
}

// Packed counts the file segments read successfully.
func (a Aggregate) Packed() int {
	n := 0
	for _, f := range a.Files {
		if !f.Failed() {
			n++
		}
	}
	return n
}

// Text renders the aggregate exactly as it is persisted.
func (a Aggregate) Text() string {
	var b strings.Builder
	for _, s := range a.Segments() {
		s.render(&b)
	}
	return b.String()
}
