// Package dataset reads the labelled lexicon used to train the health
// classifier.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column names expected in the header row.
const (
	LexiconColumn = "Lexicon"
	LabelColumn   = "Label"
)

// Load reads documents and their integer labels from a CSV file.
func Load(path string) (lexicon []string, labels []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	lexicon, labels, err = Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return lexicon, labels, nil
}

// Read parses CSV with a header row containing Lexicon and Label columns.
// Column order does not matter and other columns are ignored.
func Read(r io.Reader) (lexicon []string, labels []int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("missing header row")
		}
		return nil, nil, err
	}

	textIdx, labelIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case LexiconColumn:
			textIdx = i
		case LabelColumn:
			labelIdx = i
		}
	}
	if textIdx < 0 || labelIdx < 0 {
		return nil, nil, fmt.Errorf("header must contain %q and %q columns", LexiconColumn, LabelColumn)
	}

	row := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", row, err)
		}
		if textIdx >= len(record) || labelIdx >= len(record) {
			return nil, nil, fmt.Errorf("row %d: expected at least %d fields, got %d", row, max(textIdx, labelIdx)+1, len(record))
		}

		label, err := strconv.Atoi(strings.TrimSpace(record[labelIdx]))
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: invalid label %q", row, record[labelIdx])
		}

		lexicon = append(lexicon, record[textIdx])
		labels = append(labels, label)
	}

	return lexicon, labels, nil
}
