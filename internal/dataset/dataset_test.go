package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := "Lexicon,Label\n\"I feel great, thanks\",0\nI have a fever,1\n"

	lexicon, labels, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	wantLexicon := []string{"I feel great, thanks", "I have a fever"}
	if !reflect.DeepEqual(lexicon, wantLexicon) {
		t.Errorf("lexicon = %v, want %v", lexicon, wantLexicon)
	}
	if !reflect.DeepEqual(labels, []int{0, 1}) {
		t.Errorf("labels = %v, want [0 1]", labels)
	}
}

func TestRead_ReorderedColumns(t *testing.T) {
	input := "id,Label,Lexicon\n1,1,sore throat\n2,0,fine\n"

	lexicon, labels, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(lexicon, []string{"sore throat", "fine"}) {
		t.Errorf("lexicon = %v", lexicon)
	}
	if !reflect.DeepEqual(labels, []int{1, 0}) {
		t.Errorf("labels = %v", labels)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "missing header"},
		{"missing column", "Text,Label\nhi,0\n", "header must contain"},
		{"bad label", "Lexicon,Label\nhi,yes\n", "row 2: invalid label"},
		{"short row", "Lexicon,Label\nhi\n", "row 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Read() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Read() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte("Lexicon,Label\nok,0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	lexicon, labels, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(lexicon) != 1 || len(labels) != 1 {
		t.Errorf("Load() = %d docs, %d labels, want 1, 1", len(lexicon), len(labels))
	}
}
