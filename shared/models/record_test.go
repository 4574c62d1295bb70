package models

import (
	"strings"
	"testing"
)

func validPayload() map[string]any {
	return map[string]any{
		"Quality1":    5000.0,
		"Quality2":    10000.0,
		"Quality3":    2000.0,
		"Small Bags":  3000.0,
		"Large Bags":  500.0,
		"XLarge Bags": 100.0,
		"year":        2023.0,
		"type":        "organic",
		"region":      "LosAngeles",
	}
}

func TestParseRecordValid(t *testing.T) {
	rec, verr := ParseRecord(validPayload())
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if rec.Quality1 != 5000 || rec.SmallBags != 3000 {
		t.Errorf("numeric fields not coerced: %+v", rec)
	}
	if rec.Year != 2023 {
		t.Errorf("year = %d, want 2023", rec.Year)
	}
	if rec.Type != "organic" || rec.Region != "LosAngeles" {
		t.Errorf("categorical fields wrong: %+v", rec)
	}
}

func TestParseRecordNumericStrings(t *testing.T) {
	payload := validPayload()
	payload["Quality1"] = "1234.5"
	payload["year"] = "2024"

	rec, verr := ParseRecord(payload)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if rec.Quality1 != 1234.5 {
		t.Errorf("Quality1 = %v, want 1234.5", rec.Quality1)
	}
	if rec.Year != 2024 {
		t.Errorf("Year = %d, want 2024", rec.Year)
	}
}

func TestParseRecordMissingFields(t *testing.T) {
	for _, missing := range []string{"Quality1", "Small Bags", "year", "region"} {
		payload := validPayload()
		delete(payload, missing)

		rec, verr := ParseRecord(payload)
		if rec != nil || verr == nil {
			t.Fatalf("expected validation error when %q is missing", missing)
		}
		if len(verr.MissingFields) != 1 || verr.MissingFields[0] != missing {
			t.Errorf("MissingFields = %v, want [%s]", verr.MissingFields, missing)
		}
		if !strings.Contains(verr.Error(), missing) {
			t.Errorf("error message %q does not name %q", verr.Error(), missing)
		}
	}
}

func TestParseRecordAllFieldsMissing(t *testing.T) {
	_, verr := ParseRecord(map[string]any{})
	if verr == nil {
		t.Fatal("expected validation error for empty payload")
	}
	if len(verr.MissingFields) != 9 {
		t.Errorf("MissingFields has %d entries, want 9: %v", len(verr.MissingFields), verr.MissingFields)
	}
}

func TestParseRecordTypeErrors(t *testing.T) {
	payload := validPayload()
	payload["Quality2"] = "not-a-number"
	payload["year"] = true

	rec, verr := ParseRecord(payload)
	if rec != nil || verr == nil {
		t.Fatal("expected validation error for bad types")
	}
	if len(verr.MissingFields) != 0 {
		t.Errorf("MissingFields should be empty, got %v", verr.MissingFields)
	}
	if len(verr.FieldErrors) != 2 {
		t.Fatalf("FieldErrors = %v, want 2 entries", verr.FieldErrors)
	}
	msg := verr.Error()
	if !strings.Contains(msg, "Quality2") || !strings.Contains(msg, "year") {
		t.Errorf("error message %q does not name offending fields", msg)
	}
}

func TestExampleRecordIsValid(t *testing.T) {
	ex := ExampleRecord()
	if ex.Type != "organic" || ex.Region != "LosAngeles" || ex.Year != 2023 {
		t.Errorf("unexpected example record: %+v", ex)
	}
}
