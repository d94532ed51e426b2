package uslm

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		href   string
		want   Citation
		wantOK bool
	}{
		{
			href:   "/us/usc/t26/s151",
			want:   Citation{Jurisdiction: "us", Title: "26", Section: "151"},
			wantOK: true,
		},
		{
			href:   "/us/usc/t26/s280A",
			want:   Citation{Jurisdiction: "us", Title: "26", Section: "280A"},
			wantOK: true,
		},
		{
			// Subsection paths stay part of the section identity.
			href:   "/us/usc/t26/s280A/a/1",
			want:   Citation{Jurisdiction: "us", Title: "26", Section: "280A/a/1"},
			wantOK: true,
		},
		{
			href:   "/us/usc/t42/s1395",
			want:   Citation{Jurisdiction: "us", Title: "42", Section: "1395"},
			wantOK: true,
		},
		{href: "", wantOK: false},
		{href: "/us/usc/t26", wantOK: false},           // no section
		{href: "/us/usc/t26/sA", wantOK: false},        // non-numeric section
		{href: "/us/cfr/t26/s151", wantOK: false},      // not USC
		{href: "/us/usc/t26/s151A-B", wantOK: false},   // malformed suffix
		{href: "us/usc/t26/s151", wantOK: false},       // missing leading slash
		{href: "/us/usc/s151", wantOK: false},          // no title
	}

	for _, tt := range tests {
		got, ok := ParseRef(tt.href)
		if ok != tt.wantOK {
			t.Errorf("ParseRef(%q) ok = %v, want %v", tt.href, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseRef(%q) = %+v, want %+v", tt.href, got, tt.want)
		}
	}
}

func TestCitationPath(t *testing.T) {
	c := Citation{Jurisdiction: "us", Title: "26", Section: "32"}
	if got := c.Path(); got != "us/statute/26/32" {
		t.Errorf("Path = %q, want us/statute/26/32", got)
	}

	c = Citation{Jurisdiction: "us", Title: "26", Section: "280A/a"}
	if got := c.Path(); got != "us/statute/26/280A/a" {
		t.Errorf("Path = %q, want us/statute/26/280A/a", got)
	}
}
