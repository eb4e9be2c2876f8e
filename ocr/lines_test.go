package ocr

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"unix newlines", "one\ntwo\nthree", []string{"one", "two", "three"}},
		{"windows newlines", "one\r\ntwo\r\n", []string{"one", "two"}},
		{"blank lines dropped", "one\n\n  \ntwo", []string{"one", "two"}},
		{"trailing newline", "only\n", []string{"only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
