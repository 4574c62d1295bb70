// Package dataset loads and cleans the avocado sales CSV for training.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/constants"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

// Column names as they appear in the raw CSV. The numeric PLU codes are
// renamed to Quality1/2/3 on load; Total Volume and Total Bags are linear
// combinations of kept columns and are dropped.
const (
	colDate         = "Date"
	colAveragePrice = "AveragePrice"
	colTotalVolume  = "Total Volume"
	colPLU4046      = "4046"
	colPLU4225      = "4225"
	colPLU4770      = "4770"
	colTotalBags    = "Total Bags"
	colSmallBags    = "Small Bags"
	colLargeBags    = "Large Bags"
	colXLargeBags   = "XLarge Bags"
	colType         = "type"
	colYear         = "year"
	colRegion       = "region"
)

var requiredColumns = []string{
	colDate, colAveragePrice, colTotalVolume,
	colPLU4046, colPLU4225, colPLU4770,
	colTotalBags, colSmallBags, colLargeBags, colXLargeBags,
	colType, colYear, colRegion,
}

// Dataset is the cleaned training data: one FeatureRecord and target price
// per observation, plus cleaning bookkeeping for the training report.
type Dataset struct {
	Records []models.FeatureRecord
	Prices  []float64
	Dates   []time.Time

	// Duplicates is how many duplicate rows were dropped during cleaning.
	Duplicates int
}

func (d *Dataset) Len() int { return len(d.Records) }

// PeriodCovered returns the earliest and latest observation dates.
func (d *Dataset) PeriodCovered() (time.Time, time.Time) {
	if len(d.Dates) == 0 {
		return time.Time{}, time.Time{}
	}
	min, max := d.Dates[0], d.Dates[0]
	for _, t := range d.Dates[1:] {
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	return min, max
}

// Load reads and cleans the CSV at path. Any missing file, absent column,
// unparseable cell or empty value is an error; duplicate rows are dropped
// and counted, not fatal.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	colIdx := map[string]int{}
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset schema mismatch, missing columns: %v", missing)
	}

	ds := &Dataset{}
	seen := map[string]struct{}{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("row %d: malformed CSV: %w", line, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", line, len(header), len(row))
		}

		get := func(name string) string { return strings.TrimSpace(row[colIdx[name]]) }
		for _, name := range requiredColumns {
			if v := get(name); v == "" || v == "NA" || v == "NaN" {
				return nil, fmt.Errorf("row %d: missing value in column %q", line, name)
			}
		}

		date, err := time.Parse("2006-01-02", get(colDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad date %q: %w", line, get(colDate), err)
		}

		rec := models.FeatureRecord{Type: get(colType), Region: get(colRegion)}
		numeric := []struct {
			col  string
			dest *float64
		}{
			{colPLU4046, &rec.Quality1},
			{colPLU4225, &rec.Quality2},
			{colPLU4770, &rec.Quality3},
			{colSmallBags, &rec.SmallBags},
			{colLargeBags, &rec.LargeBags},
			{colXLargeBags, &rec.XLargeBags},
		}
		for _, n := range numeric {
			v, err := strconv.ParseFloat(get(n.col), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad value in column %q: %w", line, n.col, err)
			}
			*n.dest = v
		}
		year, err := strconv.Atoi(get(colYear))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad year %q: %w", line, get(colYear), err)
		}
		rec.Year = year

		price, err := strconv.ParseFloat(get(colAveragePrice), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price %q: %w", line, get(colAveragePrice), err)
		}

		// duplicate detection over the cleaned row
		key := fmt.Sprintf("%s|%v|%g", get(colDate), rec, price)
		if _, ok := seen[key]; ok {
			ds.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		ds.Records = append(ds.Records, rec)
		ds.Prices = append(ds.Prices, price)
		ds.Dates = append(ds.Dates, date)
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("dataset %s contains no rows", path)
	}
	return ds, nil
}

// TypesAndRegions reports the distinct categorical values seen, for the
// training summary. Order follows first appearance.
func (d *Dataset) TypesAndRegions() (types, regions []string) {
	seenT, seenR := map[string]struct{}{}, map[string]struct{}{}
	for _, rec := range d.Records {
		if _, ok := seenT[rec.Type]; !ok {
			seenT[rec.Type] = struct{}{}
			types = append(types, rec.Type)
		}
		if _, ok := seenR[rec.Region]; !ok {
			seenR[rec.Region] = struct{}{}
			regions = append(regions, rec.Region)
		}
	}
	return types, regions
}

// ExpectedRegions exposes the shared closed region set, kept here so the
// trainer and serving layer agree on a single owned vocabulary.
func ExpectedRegions() []string { return constants.Regions }
