package pipeline

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// ArtifactVersion is bumped whenever the serialized layout changes; a
// loader refuses artifacts written by an incompatible producer.
const ArtifactVersion = 1

type artifactEnvelope struct {
	Version   int
	Predictor *Predictor
}

// Save writes the fitted predictor to path as a versioned gob artifact,
// creating parent directories as needed.
func Save(p *Predictor, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(artifactEnvelope{Version: ArtifactVersion, Predictor: p}); err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}
	return nil
}

// Load reads a predictor artifact from path.
func Load(path string) (*Predictor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	var env artifactEnvelope
	if err := gob.NewDecoder(f).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if env.Version != ArtifactVersion {
		return nil, fmt.Errorf("artifact version %d is not supported (want %d)", env.Version, ArtifactVersion)
	}
	if env.Predictor == nil || env.Predictor.Regressor == nil || !env.Predictor.Regressor.Fitted() {
		return nil, fmt.Errorf("artifact %s does not contain a fitted predictor", path)
	}
	return env.Predictor, nil
}
