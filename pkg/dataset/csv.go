package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadCSV loads observations from a CSV file whose first row names the
// columns. Each following row becomes one Observation keyed by the header
// names. Rows with the wrong field count or unparseable numbers are skipped
// rather than failing the whole load.
func ReadCSV(path string) ([]Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if len(header) == 0 {
		return nil, errors.New("csv header is empty")
	}

	var obs []Observation
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed records
		}
		o := make(Observation, len(header))
		valid := true
		for i, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				valid = false
				break
			}
			o[header[i]] = v
		}
		if valid {
			obs = append(obs, o)
		}
	}
	return obs, nil
}
