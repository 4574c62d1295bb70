// Command trainer fits the avocado price pipeline on the sales CSV and
// persists the artifact the prediction service loads at startup.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/dataset"
	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/model"
	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/pipeline"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/logging"
)

type trainOptions struct {
	datasetPath  string
	outPath      string
	seed         int64
	testSize     float64
	estimators   int
	maxDepth     int
	learningRate float64
}

func main() {
	opts := trainOptions{}

	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Train the avocado price prediction model",
		Long: `Loads the avocado sales dataset, cleans it, fits the
scale+one-hot+gradient-boosting pipeline on an 80/20 split and writes the
fitted artifact to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.datasetPath, "dataset", "data/avocado.csv", "path to the training CSV")
	cmd.Flags().StringVar(&opts.outPath, "out", "model/avocado_price_model.gob", "path for the model artifact")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "random seed for the train/test split")
	cmd.Flags().Float64Var(&opts.testSize, "test-size", 0.2, "fraction of rows held out for evaluation")
	cmd.Flags().IntVar(&opts.estimators, "estimators", 100, "number of boosting stages")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 6, "maximum tree depth")
	cmd.Flags().Float64Var(&opts.learningRate, "learning-rate", 0.1, "boosting shrinkage")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts trainOptions) error {
	logger := logging.NewDefault()
	defer logger.Sync()
	log := logger.Sugar()

	if opts.testSize <= 0 || opts.testSize >= 1 {
		return fmt.Errorf("test-size must be in (0, 1), got %g", opts.testSize)
	}

	log.Infow("loading dataset", "path", opts.datasetPath)
	ds, err := dataset.Load(opts.datasetPath)
	if err != nil {
		return err
	}
	first, last := ds.PeriodCovered()
	types, regions := ds.TypesAndRegions()
	log.Infow("dataset loaded",
		"rows", ds.Len(),
		"duplicates_dropped", ds.Duplicates,
		"period_from", first.Format("2006-01-02"),
		"period_to", last.Format("2006-01-02"),
		"types", types,
		"regions", len(regions),
	)
	if unknown := regionsOutsideVocabulary(regions); len(unknown) > 0 {
		log.Warnw("dataset contains regions outside the shared vocabulary", "regions", unknown)
	}
	logPriceSummary(log, ds.Prices)

	split := dataset.TrainTestSplit(ds, opts.testSize, opts.seed)
	log.Infow("split dataset",
		"train", len(split.TrainRecords),
		"test", len(split.TestRecords),
		"test_size", opts.testSize,
		"seed", opts.seed,
	)

	pred := pipeline.NewPredictor(pipeline.Config{
		Estimators:   opts.estimators,
		MaxDepth:     opts.maxDepth,
		LearningRate: opts.learningRate,
	})
	log.Infow("fitting pipeline",
		"estimators", opts.estimators, "max_depth", opts.maxDepth, "learning_rate", opts.learningRate)
	start := time.Now()
	if err := pred.Fit(split.TrainRecords, split.TrainPrices); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	log.Infow("pipeline fitted", "duration", time.Since(start).Round(time.Millisecond), "features", pred.Transformer.Width())

	trainPred, err := pred.PredictAll(split.TrainRecords)
	if err != nil {
		return err
	}
	testPred, err := pred.PredictAll(split.TestRecords)
	if err != nil {
		return err
	}
	trainR2 := model.R2(split.TrainPrices, trainPred)
	testR2 := model.R2(split.TestPrices, testPred)
	log.Infow("train metrics", "rmse", model.RMSE(split.TrainPrices, trainPred), "r2", trainR2)
	log.Infow("test metrics", "rmse", model.RMSE(split.TestPrices, testPred), "r2", testR2)
	if trainR2-testR2 > 0.1 {
		log.Warnw("possible overfitting detected", "train_r2", trainR2, "test_r2", testR2)
	}

	for i := 0; i < 10 && i < len(split.TestPrices); i++ {
		log.Infow("sample prediction",
			"actual", round2(split.TestPrices[i]),
			"predicted", round2(testPred[i]),
			"error", round3(split.TestPrices[i]-testPred[i]),
		)
	}

	if err := pipeline.Save(pred, opts.outPath); err != nil {
		return fmt.Errorf("persist artifact: %w", err)
	}
	if info, err := os.Stat(opts.outPath); err == nil {
		log.Infow("artifact saved", "path", opts.outPath, "size_bytes", info.Size())
	}

	if err := verifyReload(opts.outPath, split, testPred); err != nil {
		return err
	}
	log.Infow("artifact reload verified, model is ready", "path", opts.outPath)
	return nil
}

// verifyReload reloads the saved artifact and requires bit-for-bit equal
// predictions on a held-out subset. A mismatch means the serialization is
// corrupt and the artifact must not be served.
func verifyReload(path string, split *dataset.Split, testPred []float64) error {
	reloaded, err := pipeline.Load(path)
	if err != nil {
		return fmt.Errorf("reload artifact: %w", err)
	}
	n := 5
	if len(split.TestRecords) < n {
		n = len(split.TestRecords)
	}
	for i := 0; i < n; i++ {
		got, err := reloaded.Predict(split.TestRecords[i])
		if err != nil {
			return fmt.Errorf("reloaded predictor failed: %w", err)
		}
		if got != testPred[i] {
			return fmt.Errorf("reloaded artifact disagrees with fitted model on row %d: %v != %v", i, got, testPred[i])
		}
	}
	return nil
}

func regionsOutsideVocabulary(regions []string) []string {
	known := map[string]struct{}{}
	for _, r := range dataset.ExpectedRegions() {
		known[r] = struct{}{}
	}
	var unknown []string
	for _, r := range regions {
		if _, ok := known[r]; !ok {
			unknown = append(unknown, r)
		}
	}
	return unknown
}

func logPriceSummary(log *zap.SugaredLogger, prices []float64) {
	min, max, sum := prices[0], prices[0], 0.0
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
		sum += p
	}
	log.Infow("target summary", "min", min, "max", max, "mean", round3(sum/float64(len(prices))))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
