package encoder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

var testCategories = [][]string{
	{"Bắc", "Nam", "Đông", "Tây"},
	{"Nhà mặt phố, mặt tiền", "Nhà ngõ, hẻm", "Nhà phố liền kề"},
	{"Phường Tân Định", "Phường Đa Kao", "Phường 01"},
	{"Quận 1", "Quận 3"},
}

func newTestEncoder(t *testing.T) *Encoder {
	t.Helper()
	enc, err := New(models.CategoricalColumns, testCategories)
	require.NoError(t, err)
	return enc
}

func validRecord() models.PropertyRecord {
	return models.PropertyRecord{
		Area:      100,
		Floors:    2,
		Bedrooms:  3,
		Bathrooms: 2,
		Direction: "Bắc",
		HouseType: "Nhà mặt phố, mặt tiền",
		Ward:      "Phường Tân Định",
		District:  "Quận 1",
	}
}

func TestNew_Validation(t *testing.T) {
	t.Run("Wrong Column Count", func(t *testing.T) {
		_, err := New([]string{models.ColumnDistrict}, [][]string{{"Quận 1"}})
		assert.Error(t, err)
	})

	t.Run("Wrong Column Order", func(t *testing.T) {
		cols := []string{models.ColumnHouseType, models.ColumnDirection, models.ColumnWard, models.ColumnDistrict}
		_, err := New(cols, testCategories)
		assert.Error(t, err)
	})

	t.Run("Empty Category List", func(t *testing.T) {
		cats := [][]string{{"Bắc"}, {}, {"Phường 01"}, {"Quận 1"}}
		_, err := New(models.CategoricalColumns, cats)
		assert.ErrorContains(t, err, "has no categories")
	})

	t.Run("Duplicate Category", func(t *testing.T) {
		cats := [][]string{{"Bắc", "Bắc"}, {"Nhà ngõ, hẻm"}, {"Phường 01"}, {"Quận 1"}}
		_, err := New(models.CategoricalColumns, cats)
		assert.ErrorContains(t, err, "twice")
	})
}

func TestEncode_ValidRecord(t *testing.T) {
	enc := newTestEncoder(t)

	row, err := enc.Encode(validRecord())
	require.NoError(t, err)

	expectedWidth := len(models.NumericColumns) + 4 + 3 + 3 + 2
	assert.Len(t, row, expectedWidth)
	assert.Equal(t, expectedWidth, enc.Width())
	assert.Equal(t, []float64{100, 2, 3, 2}, row[:4])
	assert.Equal(t, []float64{
		1, 0, 0, 0, // direction
		1, 0, 0, // house type
		1, 0, 0, // ward
		1, 0, // district
	}, row[4:])
}

func TestEncode_IndicatorFollowsFittedOrder(t *testing.T) {
	enc := newTestEncoder(t)
	rec := validRecord()
	rec.Direction = "Tây"
	rec.Ward = "Phường 01"
	rec.District = "Quận 3"

	row, err := enc.Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1}, row[4:8])
	assert.Equal(t, []float64{0, 0, 1}, row[11:14])
	assert.Equal(t, []float64{0, 1}, row[14:16])
}

func TestEncode_IsDeterministic(t *testing.T) {
	enc := newTestEncoder(t)

	first, err := enc.Encode(validRecord())
	require.NoError(t, err)
	second, err := enc.Encode(validRecord())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncode_InvalidCategory(t *testing.T) {
	cases := map[string]func(*models.PropertyRecord){
		"Direction": func(r *models.PropertyRecord) { r.Direction = "Invalid Direction" },
		"HouseType": func(r *models.PropertyRecord) { r.HouseType = "Invalid Type" },
		"Ward":      func(r *models.PropertyRecord) { r.Ward = "Invalid Ward" },
		"District":  func(r *models.PropertyRecord) { r.District = "Invalid District" },
		"Empty":     func(r *models.PropertyRecord) { r.Ward = "" },
	}
	enc := newTestEncoder(t)

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := validRecord()
			mutate(&rec)

			row, err := enc.Encode(rec)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, row)
		})
	}
}

func TestPreprocess_RejectsWholeBatch(t *testing.T) {
	enc := newTestEncoder(t)
	bad := validRecord()
	bad.District = "Quận 99"

	matrix, err := enc.Preprocess([]models.PropertyRecord{validRecord(), bad, validRecord()})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, models.ColumnDistrict)
	assert.Nil(t, matrix)
}

func TestPreprocess_Batch(t *testing.T) {
	enc := newTestEncoder(t)
	other := validRecord()
	other.Area = 55.5
	other.District = "Quận 3"

	matrix, err := enc.Preprocess([]models.PropertyRecord{validRecord(), other})
	require.NoError(t, err)
	require.Len(t, matrix.Rows, 2)
	assert.Equal(t, enc.FeatureNames(), matrix.Columns)
	for _, row := range matrix.Rows {
		assert.Len(t, row, len(matrix.Columns))
	}
	assert.Equal(t, 55.5, matrix.Rows[1][0])
}

func TestSanitize_MarksUnknownValues(t *testing.T) {
	enc := newTestEncoder(t)
	rec := validRecord()
	rec.HouseType = "Căn hộ"

	rows := enc.Sanitize([]models.PropertyRecord{rec})
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0][0])
	assert.Equal(t, "Bắc", *rows[0][0])
	assert.Nil(t, rows[0][1])
	assert.NotNil(t, rows[0][2])
	assert.NotNil(t, rows[0][3])
}

func TestFeatureNames(t *testing.T) {
	enc := newTestEncoder(t)
	names := enc.FeatureNames()

	assert.Equal(t, models.NumericColumns, names[:4])
	assert.Equal(t, "Hướng cửa chính_Bắc", names[4])
	assert.Equal(t, "Quận_Quận 3", names[len(names)-1])
}

func TestCategoriesAndContains(t *testing.T) {
	enc := newTestEncoder(t)

	assert.Equal(t, []string{"Quận 1", "Quận 3"}, enc.Categories(models.ColumnDistrict))
	assert.Nil(t, enc.Categories("unknown column"))
	assert.True(t, enc.Contains(models.ColumnWard, "Phường Đa Kao"))
	assert.False(t, enc.Contains(models.ColumnWard, "Phường Bến Nghé"))

	// Returned slices are copies.
	cats := enc.Categories(models.ColumnDistrict)
	cats[0] = "mutated"
	assert.Equal(t, "Quận 1", enc.Categories(models.ColumnDistrict)[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("Valid File", func(t *testing.T) {
		path := filepath.Join(dir, "encoder.json")
		content := `{"columns": ["Hướng cửa chính", "Loại hình nhà ở", "Tên phường", "Quận"],
			"categories": [["Bắc"], ["Nhà ngõ, hẻm"], ["Phường 01"], ["Quận 3"]]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		enc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 8, enc.Width())
	})

	t.Run("Columns Omitted", func(t *testing.T) {
		path := filepath.Join(dir, "encoder_nocols.json")
		content := `{"categories": [["Bắc"], ["Nhà ngõ, hẻm"], ["Phường 01"], ["Quận 3"]]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		enc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, models.CategoricalColumns, enc.columns)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"categories": [`), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "failed to decode encoder file")
	})
}
