package fixture

// #region imports
import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/percolab/shangdiag/internal/proxy"
)

// #endregion

// #region fixture-types

// Library is the top-level JSON structure for a case-study fixture file:
// recorded input vectors paired with expected diagnostic results.
type Library struct {
	Description string `json:"description"`
	Cases       []Case `json:"cases"`
}

// Case is one recorded case: a 15-proxy vector and its expected outcome.
type Case struct {
	Name    string      `json:"name"`
	Proxies []float64   `json:"proxies"`
	Expect  Expectation `json:"expect"`
}

// Expectation captures the expected indicators for a case. Numeric fields are
// optional; absent ones are not checked. Tolerance defaults to 0.001.
type Expectation struct {
	Diagnosis string   `json:"diagnosis"`
	PhiPlus   *float64 `json:"phi_plus,omitempty"`
	PhiMinus  *float64 `json:"phi_minus,omitempty"`
	TP        *float64 `json:"tp,omitempty"`
	Tolerance float64  `json:"tolerance,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// Load reads and parses a JSON case library.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &lib, nil
}

// #endregion fixture-loader

// #region csv-loader

// ReadVectorsCSV reads input vectors from a CSV file, one 15-value row per
// vector. A single leading header row is skipped when its first field does
// not parse as a number.
func ReadVectorsCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s: no rows", path)
	}

	start := 0
	if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
		start = 1
	}

	vectors := make([][]float64, 0, len(records)-start)
	for i, rec := range records[start:] {
		if len(rec) != proxy.Count {
			return nil, fmt.Errorf("csv %s row %d: want %d fields, got %d", path, start+i+1, proxy.Count, len(rec))
		}
		vec := make([]float64, proxy.Count)
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("csv %s row %d field %d: %w", path, start+i+1, j+1, err)
			}
			vec[j] = v
		}
		vectors = append(vectors, vec)
	}
	return vectors, nil
}

// #endregion csv-loader
