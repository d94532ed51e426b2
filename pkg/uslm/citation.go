package uslm

import (
	"fmt"
	"regexp"
)

// uscRef matches USLM identifiers and hrefs like /us/usc/t26/s151 or
// /us/usc/t26/s280A/a/1. The section may carry a single trailing letter
// suffix and an arbitrary subsection path.
var uscRef = regexp.MustCompile(`^/us/usc/t(\d+)/s(\d+[A-Za-z]?)(?:/(.+))?$`)

// Citation identifies a statute section inside a title.
type Citation struct {
	Jurisdiction string // "us"
	Title        string // title number, e.g. "26"
	Section      string // section plus optional subpath, e.g. "151" or "151/a"
}

// ParseRef parses a USLM identifier or href into a Citation. The second
// return value is false for anything that is not a US Code section
// reference; such references are malformed for our purposes and must never
// become edges.
func ParseRef(href string) (Citation, bool) {
	m := uscRef.FindStringSubmatch(href)
	if m == nil {
		return Citation{}, false
	}
	c := Citation{Jurisdiction: "us", Title: m[1], Section: m[2]}
	if m[3] != "" {
		c.Section = c.Section + "/" + m[3]
	}
	return c, true
}

// Path renders the citation in the canonical flat namespace used as graph
// node identifiers: jurisdiction/statute/title/section.
func (c Citation) Path() string {
	return fmt.Sprintf("%s/statute/%s/%s", c.Jurisdiction, c.Title, c.Section)
}
