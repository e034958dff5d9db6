package embedding

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	table, err := New(map[string][]float64{
		"i":    {1, 0},
		"feel": {0, 1},
		"sick": {2, 2},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return table
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I feel Sick !", "i feel sick"},
		{"  Hello,   World . ", "hello, world"},
		{"...", "..."},
		{"!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Preprocess(tt.input); got != tt.want {
			t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTable_Embed(t *testing.T) {
	table := testTable(t)

	got, err := table.Embed("I feel sick")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	want := []float64{1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Embed() = %v, want %v", got, want)
	}

	// Unknown tokens count toward the average as zero vectors.
	got, err = table.Embed("I am")
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	want = []float64{0.5, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Embed(with unknown) = %v, want %v", got, want)
	}
}

func TestTable_Embed_NoTokens(t *testing.T) {
	table := testTable(t)

	for _, input := range []string{"", "   ", "! ?"} {
		if _, err := table.Embed(input); !errors.Is(err, ErrNoTokens) {
			t.Errorf("Embed(%q) error = %v, want ErrNoTokens", input, err)
		}
	}
}

func TestTable_Vector(t *testing.T) {
	table := testTable(t)
	if got := table.Vector("missing"); !reflect.DeepEqual(got, []float64{0, 0}) {
		t.Errorf("Vector(missing) = %v, want zero vector", got)
	}
	if got := table.Vector("sick"); !reflect.DeepEqual(got, []float64{2, 2}) {
		t.Errorf("Vector(sick) = %v, want [2 2]", got)
	}
}

func TestNew_DimensionMismatch(t *testing.T) {
	_, err := New(map[string][]float64{"a": {1}, "b": {1, 2}})
	if err == nil {
		t.Error("New() error = nil, want dimension error")
	}
}

func TestRead(t *testing.T) {
	input := "2 3\nhello 0.1 0.2 0.3\nworld 1 2 3\n"
	table, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if table.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", table.Dim())
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
	if got := table.Vector("world"); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("Vector(world) = %v", got)
	}
}

func TestRead_NoHeader(t *testing.T) {
	table, err := Read(strings.NewReader("a 1 2\nb 3 4\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if table.Dim() != 2 || table.Len() != 2 {
		t.Errorf("Dim() = %d, Len() = %d, want 2, 2", table.Dim(), table.Len())
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ragged rows", "a 1 2\nb 3\n"},
		{"not a number", "a 1 x\n"},
		{"header mismatch", "1 3\na 1 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Read(%q) error = nil, want error", tt.input)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w2v.txt")
	if err := os.WriteFile(path, []byte("good 1 0\nbad 0 1\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
