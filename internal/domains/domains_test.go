package domains

import "testing"

func TestValidHost(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"example.com", true},
		{"www.example.com", true},
		{"sub.example.co.uk", true},
		{"https://example.com/path", true},
		{"example.com:8080", true},
		{"Example.COM", true},
		{"", false},
		{"word", false},
		{"so.Dr", false},
		{"end.Of", false},
		{"1.5", false},
		{"com", false},
		{"two words.com", false},
		{"trailing.", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidHost(tt.input); got != tt.expected {
				t.Errorf("ValidHost(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
