package graph

import (
	"strconv"
	"strings"
)

// SectionNumber extracts the leading numeric component of the final path
// segment of a citation path. Trailing letter suffixes are ignored, so
// "us/statute/26/280A" yields 280. The second return value is false when
// the segment has no leading digits.
func SectionNumber(path string) (int, bool) {
	seg := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		seg = path[i+1:]
	}
	end := 0
	for end < len(seg) && seg[end] >= '0' && seg[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(seg[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Section returns the final segment of a citation path, the conventional
// section shorthand ("us/statute/26/32" → "32").
func Section(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
