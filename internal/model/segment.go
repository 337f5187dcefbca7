package model

import "strings"

type Segment string

const (
	SegmentNew     Segment = "New"
	SegmentRegular Segment = "Regular"
	SegmentVIP     Segment = "VIP"
)

func (s Segment) String() string { return string(s) }

// ParseSegment normalizes input.
// Returns (value, true) if valid; otherwise (new, false).
func ParseSegment(s string) (Segment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new":
		return SegmentNew, true
	case "regular":
		return SegmentRegular, true
	case "vip":
		return SegmentVIP, true
	default:
		return SegmentNew, false
	}
}

func (s Segment) Valid() bool {
	return s == SegmentNew || s == SegmentRegular || s == SegmentVIP
}
