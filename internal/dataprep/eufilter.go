// Package dataprep cleans the raw tabular inputs a caller uses to derive
// forecast parameters: EU-country filtering of country-level CSVs and a
// growth-rate helper.
package dataprep

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// EUCountries holds the official English names of the 27 member states, plus
// the "Czech Republic" spelling still present in older datasets.
var EUCountries = map[string]struct{}{
	"Austria": {}, "Belgium": {}, "Bulgaria": {}, "Croatia": {}, "Cyprus": {},
	"Czechia": {}, "Czech Republic": {}, "Denmark": {}, "Estonia": {},
	"Finland": {}, "France": {}, "Germany": {}, "Greece": {}, "Hungary": {},
	"Ireland": {}, "Italy": {}, "Latvia": {}, "Lithuania": {}, "Luxembourg": {},
	"Malta": {}, "Netherlands": {}, "Poland": {}, "Portugal": {}, "Romania": {},
	"Slovakia": {}, "Slovenia": {}, "Spain": {}, "Sweden": {},
}

// DefaultEntityColumn is the conventional country column name in the raw CSVs.
const DefaultEntityColumn = "Entity"

// FilterEU copies the header and the rows whose entity column names an EU
// member from r to w. Country names are trimmed before matching. Returns the
// number of rows kept.
func FilterEU(r io.Reader, w io.Writer, entityColumn string) (int, error) {
	if entityColumn == "" {
		entityColumn = DefaultEntityColumn
	}
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	col := -1
	for i, name := range header {
		if strings.TrimSpace(name) == entityColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, fmt.Errorf("column %q not found in header", entityColumn)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return 0, err
	}
	kept := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return kept, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if col >= len(record) {
			continue
		}
		if _, ok := EUCountries[strings.TrimSpace(record[col])]; ok {
			if err := writer.Write(record); err != nil {
				return kept, err
			}
			kept++
		}
	}
	writer.Flush()
	return kept, writer.Error()
}
