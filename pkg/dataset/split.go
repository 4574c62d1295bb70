package dataset

import (
	"math/rand"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

// Split holds a train/test partition of a dataset.
type Split struct {
	TrainRecords []models.FeatureRecord
	TrainPrices  []float64
	TestRecords  []models.FeatureRecord
	TestPrices   []float64
}

// TrainTestSplit shuffles with the given seed and carves off testSize of
// the rows as the test set. Same dataset and seed always produce the same
// partition.
func TrainTestSplit(d *Dataset, testSize float64, seed int64) *Split {
	n := d.Len()
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testSize)

	s := &Split{}
	for i, idx := range perm {
		if i < nTest {
			s.TestRecords = append(s.TestRecords, d.Records[idx])
			s.TestPrices = append(s.TestPrices, d.Prices[idx])
		} else {
			s.TrainRecords = append(s.TrainRecords, d.Records[idx])
			s.TrainPrices = append(s.TrainPrices, d.Prices[idx])
		}
	}
	return s
}
