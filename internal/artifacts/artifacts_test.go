package artifacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/geo"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

const (
	testEncoder = `{"categories": [["Bắc", "Nam"], ["Nhà ngõ, hẻm"], ["Phường 01"], ["Quận 3"]]}`
	testModel   = `{"type": "linear", "intercept": 10, "coefficients": [1, 1, 1, 1, 0, 0, 0, 0, 0]}`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model_estimate_price_house_v5.json", testModel)
	encPath := writeFile(t, dir, "encoder_v5.json", testEncoder)

	b := Load(modelPath, encPath)
	require.True(t, b.Loaded())
	assert.Empty(t, b.Status.Error)
	assert.NoError(t, b.Err())
	assert.NotNil(t, b.Model)
	assert.NotNil(t, b.Encoder)
	assert.Equal(t, "model_estimate_price_house_v5.json", b.ModelFile())
	assert.Equal(t, "encoder_v5.json", b.EncoderFile())
}

func TestLoad_ModelFileMissing(t *testing.T) {
	dir := t.TempDir()
	encPath := writeFile(t, dir, "encoder_v5.json", testEncoder)
	missing := filepath.Join(dir, "model_estimate_price_house_v5.json")

	b := Load(missing, encPath)
	assert.False(t, b.Loaded())
	assert.Nil(t, b.Model)
	assert.Equal(t, "Model file not found: "+missing, b.Status.Error)
	assert.Equal(t, b.Status.Error, b.StatusError())
	assert.ErrorIs(t, b.Err(), ErrNotLoaded)
}

func TestLoad_EncoderFileMissing(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "model.json", testModel)
	missing := filepath.Join(dir, "encoder_v5.json")

	b := Load(modelPath, missing)
	assert.False(t, b.Loaded())
	assert.Contains(t, b.Status.Error, "Model file not found")
	assert.Contains(t, b.Status.Error, missing)
}

func TestLoad_CorruptArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		encoder string
		cause   string
	}{
		{"Corrupt Model", `not json`, testEncoder, "failed to decode model file"},
		{"Corrupt Encoder", testModel, `{"categories": 1}`, "failed to decode encoder file"},
		{"Width Mismatch", `{"type": "linear", "coefficients": [1, 2]}`, testEncoder, "model does not match encoder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			b := Load(writeFile(t, dir, "model.json", tt.model), writeFile(t, dir, "encoder.json", tt.encoder))

			assert.False(t, b.Loaded())
			assert.Contains(t, b.Status.Error, "Error loading model")
			assert.Contains(t, b.Status.Error, tt.cause)
			assert.ErrorContains(t, b.Err(), tt.cause)
		})
	}
}

func TestBundle_NilSafe(t *testing.T) {
	var b *Bundle
	assert.False(t, b.Loaded())
	assert.ErrorIs(t, b.Err(), ErrNotLoaded)
	assert.Equal(t, ErrNotLoaded.Error(), b.StatusError())
	assert.Empty(t, b.ModelFile())
	assert.Empty(t, b.EncoderFile())
}

func TestLoad_SampleArtifacts(t *testing.T) {
	b := Load(
		filepath.Join("..", "..", "testdata", "model_estimate_price_house_v5.json"),
		filepath.Join("..", "..", "testdata", "encoder_v5.json"),
	)
	require.True(t, b.Loaded(), b.Status.Error)

	table := geo.Builtin()
	for _, d := range table.All() {
		assert.True(t, b.Encoder.Contains(models.ColumnDistrict, d.Name), d.Name)
		for _, w := range d.Wards {
			assert.True(t, b.Encoder.Contains(models.ColumnWard, w), w)
		}
	}

	row, err := b.Encoder.Encode(models.PropertyRecord{
		Area:      100,
		Floors:    2,
		Bedrooms:  3,
		Bathrooms: 2,
		Direction: b.Encoder.Categories(models.ColumnDirection)[0],
		HouseType: b.Encoder.Categories(models.ColumnHouseType)[0],
		Ward:      "Phường Tân Định",
		District:  "Quận 1",
	})
	require.NoError(t, err)
	prices, err := b.Model.Predict([][]float64{row})
	require.NoError(t, err)
	assert.Greater(t, prices[0], 0.0)
}
