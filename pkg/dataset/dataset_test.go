package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const csvHeader = "Unnamed: 0,Date,AveragePrice,Total Volume,4046,4225,4770,Total Bags,Small Bags,Large Bags,XLarge Bags,type,year,region"

func writeCSV(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avocado.csv")
	content := csvHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCleansAndRenames(t *testing.T) {
	path := writeCSV(t,
		"0,2015-12-27,1.33,64236.62,1036.74,54454.85,48.16,8696.87,8603.62,93.25,0.0,conventional,2015,Albany",
		"1,2015-12-20,1.35,54876.98,674.28,44638.81,58.33,9505.56,9408.07,97.49,0.0,organic,2015,Boston",
	)
	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ds.Len())
	}
	rec := ds.Records[0]
	if rec.Quality1 != 1036.74 || rec.Quality2 != 54454.85 || rec.Quality3 != 48.16 {
		t.Errorf("PLU columns not renamed to qualities: %+v", rec)
	}
	if rec.SmallBags != 8603.62 || rec.Year != 2015 || rec.Type != "conventional" || rec.Region != "Albany" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if ds.Prices[1] != 1.35 {
		t.Errorf("price = %v, want 1.35", ds.Prices[1])
	}
	first, last := ds.PeriodCovered()
	if first.Format("2006-01-02") != "2015-12-20" || last.Format("2006-01-02") != "2015-12-27" {
		t.Errorf("period = %s..%s", first, last)
	}
}

func TestLoadDropsDuplicates(t *testing.T) {
	row := "0,2015-12-27,1.33,64236.62,1036.74,54454.85,48.16,8696.87,8603.62,93.25,0.0,conventional,2015,Albany"
	path := writeCSV(t, row, row, row)
	ds, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 1 {
		t.Errorf("Len = %d, want 1 after dedup", ds.Len())
	}
	if ds.Duplicates != 2 {
		t.Errorf("Duplicates = %d, want 2", ds.Duplicates)
	}
}

func TestLoadSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Date,AveragePrice\n2015-12-27,1.33\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected schema error")
	}
	if !strings.Contains(err.Error(), "4046") {
		t.Errorf("error %q should name missing columns", err)
	}
}

func TestLoadMalformedRowIsFatal(t *testing.T) {
	// a bare quote mid-file must abort the load, not truncate the dataset
	path := writeCSV(t,
		"0,2015-12-27,1.33,64236.62,1036.74,54454.85,48.16,8696.87,8603.62,93.25,0.0,conventional,2015,Albany",
		`1,2015-12-20,1.35,54876.98,674.28,44638.81,58.33,9505.56,9408.07,97.49,0.0,organic,2015,"Bos"ton`,
		"2,2015-12-13,1.41,54876.98,674.28,44638.81,58.33,9505.56,9408.07,97.49,0.0,organic,2015,Chicago",
	)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed CSV row")
	}
	if !strings.Contains(err.Error(), "malformed CSV") {
		t.Errorf("error %q should report the malformed row", err)
	}
}

func TestLoadRejectsExtraFields(t *testing.T) {
	path := writeCSV(t,
		"0,2015-12-27,1.33,64236.62,1036.74,54454.85,48.16,8696.87,8603.62,93.25,0.0,conventional,2015,Albany,stray",
	)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for row with extra fields")
	}
}

func TestLoadMissingValueIsFatal(t *testing.T) {
	path := writeCSV(t,
		"0,2015-12-27,1.33,64236.62,,54454.85,48.16,8696.87,8603.62,93.25,0.0,conventional,2015,Albany",
	)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing value")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTrainTestSplitReproducible(t *testing.T) {
	rows := make([]string, 0, 10)
	regions := []string{"Albany", "Boston", "Chicago", "Denver", "Detroit", "Houston", "Orlando", "Plains", "Seattle", "Tampa"}
	for i, region := range regions {
		rows = append(rows, strings.ReplaceAll(
			"IDX,2015-12-27,1.33,64236.62,1036.74,54454.85,48.16,8696.87,8603.62,93.25,0.0,conventional,2015,REGION",
			"REGION", region))
		rows[i] = strings.ReplaceAll(rows[i], "IDX", string(rune('0'+i)))
	}
	ds, err := Load(writeCSV(t, rows...))
	if err != nil {
		t.Fatal(err)
	}

	a := TrainTestSplit(ds, 0.2, 42)
	b := TrainTestSplit(ds, 0.2, 42)
	if len(a.TestRecords) != 2 || len(a.TrainRecords) != 8 {
		t.Fatalf("split sizes = %d/%d, want 8/2", len(a.TrainRecords), len(a.TestRecords))
	}
	for i := range a.TestRecords {
		if a.TestRecords[i] != b.TestRecords[i] {
			t.Fatal("same seed produced different test sets")
		}
	}

	c := TrainTestSplit(ds, 0.2, 7)
	same := true
	for i := range a.TestRecords {
		if a.TestRecords[i] != c.TestRecords[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical test sets")
	}
}
