package constants

// Feature keys as they appear in API payloads and in the training dataset.
const (
	FieldQuality1   = "Quality1"
	FieldQuality2   = "Quality2"
	FieldQuality3   = "Quality3"
	FieldSmallBags  = "Small Bags"
	FieldLargeBags  = "Large Bags"
	FieldXLargeBags = "XLarge Bags"
	FieldYear       = "year"
	FieldType       = "type"
	FieldRegion     = "region"
)

// RequiredFields lists the nine keys every prediction payload must carry,
// in the order they are reported when missing.
var RequiredFields = []string{
	FieldQuality1,
	FieldQuality2,
	FieldQuality3,
	FieldSmallBags,
	FieldLargeBags,
	FieldXLargeBags,
	FieldYear,
	FieldType,
	FieldRegion,
}

// NumericFields are the standardized columns, FieldYear included.
var NumericFields = []string{
	FieldQuality1,
	FieldQuality2,
	FieldQuality3,
	FieldSmallBags,
	FieldLargeBags,
	FieldXLargeBags,
	FieldYear,
}

// CategoricalFields are the one-hot encoded columns.
var CategoricalFields = []string{FieldType, FieldRegion}

// FeatureDescriptions backs the /features endpoint.
var FeatureDescriptions = map[string]string{
	FieldQuality1:   "Volume of size 4046 avocados sold (float)",
	FieldQuality2:   "Volume of size 4225 avocados sold (float)",
	FieldQuality3:   "Volume of size 4770 avocados sold (float)",
	FieldSmallBags:  "Number of small bags sold (float)",
	FieldLargeBags:  "Number of large bags sold (float)",
	FieldXLargeBags: "Number of extra large bags sold (float)",
	FieldYear:       "Observation year (int)",
	FieldType:       `Avocado type: "conventional" or "organic"`,
	FieldRegion:     `US region (e.g. "LosAngeles", "NewYork", "Albany")`,
}
