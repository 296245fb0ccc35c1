package artifacts

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/encoder"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/regressor"
)

// ErrNotLoaded is returned by operations that need a model when startup loading failed.
var ErrNotLoaded = errors.New("model not loaded")

// Status is the outcome of loading the model artifacts. It is decided once at
// startup and never changes afterwards.
type Status struct {
	Loaded bool
	Error  string
}

// Bundle holds the trained model and fitted encoder. After Load returns it is
// read-only and shared by every request.
type Bundle struct {
	Model       *regressor.Model
	Encoder     *encoder.Encoder
	ModelPath   string
	EncoderPath string
	Status      Status
}

// Load reads the model and then the encoder. It never fails: problems are recorded
// in the returned bundle's Status so callers can still serve health endpoints.
func Load(modelPath, encoderPath string) *Bundle {
	b := &Bundle{ModelPath: modelPath, EncoderPath: encoderPath}

	model, enc, err := load(modelPath, encoderPath)
	if err != nil {
		b.Status = Status{Loaded: false, Error: describe(err)}
		log.Printf("Warning: model artifacts not loaded: %s", b.Status.Error)
		return b
	}

	b.Model = model
	b.Encoder = enc
	b.Status = Status{Loaded: true}
	log.Printf("Loaded %s model from %s (%d features) and encoder from %s",
		model.Type, modelPath, model.NumFeatures(), encoderPath)
	return b
}

// notFoundError records which artifact file is missing.
type notFoundError struct {
	path string
	err  error
}

func (e *notFoundError) Error() string { return e.err.Error() }
func (e *notFoundError) Unwrap() error { return e.err }

func load(modelPath, encoderPath string) (*regressor.Model, *encoder.Encoder, error) {
	for _, path := range []string{modelPath, encoderPath} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, nil, &notFoundError{path: path, err: err}
			}
			return nil, nil, err
		}
	}

	model, err := regressor.Load(modelPath)
	if err != nil {
		return nil, nil, err
	}
	enc, err := encoder.Load(encoderPath)
	if err != nil {
		return nil, nil, err
	}
	if err := model.CheckFeatures(enc.FeatureNames()); err != nil {
		return nil, nil, fmt.Errorf("model does not match encoder: %w", err)
	}
	return model, enc, nil
}

func describe(err error) string {
	var nf *notFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("Model file not found: %s", nf.path)
	}
	return fmt.Sprintf("Error loading model: %v", err)
}

// Loaded reports whether both artifacts are available.
func (b *Bundle) Loaded() bool {
	return b != nil && b.Status.Loaded
}

// Err returns nil when loaded and an error wrapping ErrNotLoaded otherwise.
func (b *Bundle) Err() error {
	if b.Loaded() {
		return nil
	}
	if b == nil || b.Status.Error == "" {
		return ErrNotLoaded
	}
	return fmt.Errorf("%w: %s", ErrNotLoaded, b.Status.Error)
}

// StatusError is the load failure reported by the health endpoint, empty when loaded.
func (b *Bundle) StatusError() string {
	if b == nil {
		return ErrNotLoaded.Error()
	}
	return b.Status.Error
}

// ModelFile is the model artifact file name reported by the metrics endpoint.
func (b *Bundle) ModelFile() string {
	if b == nil {
		return ""
	}
	return filepath.Base(b.ModelPath)
}

// EncoderFile is the encoder artifact file name reported by the metrics endpoint.
func (b *Bundle) EncoderFile() string {
	if b == nil {
		return ""
	}
	return filepath.Base(b.EncoderPath)
}
