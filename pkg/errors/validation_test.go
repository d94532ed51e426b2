package errors

import (
	"strings"
	"testing"
)

func TestValidateCitationPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid section", "us/statute/26/280A", false},
		{"valid with subsection", "us/statute/26/280A/a/1", false},
		{"valid lettered section", "us/statute/42/1395w-4", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"null byte", "us/statute\x0026/1", true},
		{"control char", "us/statute/26/\x011", true},
		{"newline", "us/statute/26\n/1", true},
		{"backslash", "us\\statute\\26\\1", true},
		{"leading slash", "/us/statute/26/1", true},
		{"trailing slash", "us/statute/26/1/", true},
		{"doubled slash", "us//statute/26/1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCitationPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCitationPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidPath {
				t.Errorf("ValidateCitationPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateSectionRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  bool
	}{
		{"valid", 1, 100, false},
		{"single section", 280, 280, false},
		{"zero min", 0, 10, false},

		{"negative min", -1, 10, true},
		{"negative max", 1, -10, true},
		{"inverted", 100, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSectionRange(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSectionRange(%d, %d) error = %v, wantErr %v", tt.min, tt.max, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidRange {
				t.Errorf("ValidateSectionRange(%d, %d) code = %v, want %v", tt.min, tt.max, GetCode(err), ErrCodeInvalidRange)
			}
		})
	}
}
