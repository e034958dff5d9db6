package textutil

import (
	"reflect"
	"testing"
)

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{".", true},
		{"!", true},
		{"()*", true},
		{"", true},
		{"!!", false},
		{"hello", false},
		{"n't", false},
		{"ok.", false},
	}

	for _, tt := range tests {
		if got := IsPunctuation(tt.tok); got != tt.want {
			t.Errorf("IsPunctuation(%q) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("I feel  Great , thanks !")
	want := []string{"i", "feel", "great", "thanks"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}

	if got := Words(" . , "); len(got) != 0 {
		t.Errorf("Words(punctuation only) = %v, want empty", got)
	}
}
