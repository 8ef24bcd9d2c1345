package refdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sympcheck/sympcheck/pkg/models"
)

// Expected file names inside the data directory.
const (
	severityFile    = "Symptom_severity.csv"
	descriptionFile = "symptom_Description.csv"
	precautionFile  = "symptom_precaution.csv"
	trainingFile    = "Training.csv"
)

// prognosisColumn is the label column of the training table; it must be last.
const prognosisColumn = "prognosis"

// Load reads all four reference tables from dir and returns an immutable
// Store. Any missing or malformed file is an error; callers treat that as
// fatal to startup.
func Load(dir string) (*Store, error) {
	severity, symptoms, err := loadSeverity(filepath.Join(dir, severityFile))
	if err != nil {
		return nil, err
	}

	descriptions, err := loadDescriptions(filepath.Join(dir, descriptionFile))
	if err != nil {
		return nil, err
	}

	precautions, err := loadPrecautions(filepath.Join(dir, precautionFile))
	if err != nil {
		return nil, err
	}

	columns, records, err := loadTraining(filepath.Join(dir, trainingFile))
	if err != nil {
		return nil, err
	}

	return &Store{
		severity:     severity,
		descriptions: descriptions,
		precautions:  precautions,
		symptoms:     symptoms,
		columns:      columns,
		records:      records,
	}, nil
}

// loadSeverity reads symptom→weight rows, preserving the key column order
// for the valid-symptom listing.
func loadSeverity(path string) (map[string]int, []string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, nil, err
	}

	severity := make(map[string]int, len(rows))
	symptoms := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("refdata: %s row %d: expected 2 fields, got %d", severityFile, i+2, len(row))
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		w, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, nil, fmt.Errorf("refdata: %s row %d: bad weight %q", severityFile, i+2, row[1])
		}
		if _, seen := severity[name]; !seen {
			symptoms = append(symptoms, name)
		}
		severity[name] = w
	}
	if len(severity) == 0 {
		return nil, nil, fmt.Errorf("refdata: %s contains no symptoms", severityFile)
	}
	return severity, symptoms, nil
}

func loadDescriptions(path string) (map[string]string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	descriptions := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		disease := strings.TrimSpace(row[0])
		if disease == "" {
			continue
		}
		descriptions[disease] = strings.TrimSpace(row[1])
	}
	return descriptions, nil
}

// loadPrecautions reads disease rows with up to 4 precaution cells, dropping
// blank and literal "nan" entries at load time so no downstream code ever
// sees placeholder values.
func loadPrecautions(path string) (map[string][]string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	precautions := make(map[string][]string, len(rows))
	for _, row := range rows {
		if len(row) < 1 {
			continue
		}
		disease := strings.TrimSpace(row[0])
		if disease == "" {
			continue
		}
		cleaned := make([]string, 0, len(row)-1)
		for _, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" || strings.EqualFold(cell, "nan") {
				continue
			}
			cleaned = append(cleaned, cell)
		}
		precautions[disease] = cleaned
	}
	return precautions, nil
}

// loadTraining reads the association table. The header names the symptom
// columns with the prognosis label last; every data row must carry one
// integer per symptom column plus the disease label.
func loadTraining(path string) ([]string, []models.TrainingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("refdata: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("refdata: %s: read header: %w", trainingFile, err)
	}
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("refdata: %s: header too short", trainingFile)
	}
	last := strings.TrimSpace(header[len(header)-1])
	if last != prognosisColumn {
		return nil, nil, fmt.Errorf("refdata: %s: last column must be %q, got %q", trainingFile, prognosisColumn, last)
	}

	columns := make([]string, len(header)-1)
	for i, h := range header[:len(header)-1] {
		columns[i] = strings.TrimSpace(h)
	}

	var records []models.TrainingRecord
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("refdata: %s: %w", trainingFile, err)
		}
		line++
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("refdata: %s row %d: expected %d fields, got %d", trainingFile, line, len(header), len(row))
		}
		present := make([]int, len(columns))
		for i, cell := range row[:len(columns)] {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, nil, fmt.Errorf("refdata: %s row %d col %q: bad value %q", trainingFile, line, columns[i], cell)
			}
			present[i] = v
		}
		records = append(records, models.TrainingRecord{
			Disease: strings.TrimSpace(row[len(row)-1]),
			Present: present,
		})
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("refdata: %s contains no records", trainingFile)
	}
	return columns, records, nil
}

// readCSV reads all data rows of a headered CSV file. Rows may have varying
// widths (the precaution table does).
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("refdata: %s: %w", filepath.Base(path), err)
	}
	if len(all) < 1 {
		return nil, fmt.Errorf("refdata: %s is empty", filepath.Base(path))
	}
	return all[1:], nil // skip header
}
