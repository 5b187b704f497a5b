package tabular

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/LouYuanbo1/gamecrawler/internal/domain/entity"
	"github.com/LouYuanbo1/gamecrawler/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *record.RecordTable {
	rt := record.NewRecordTable()
	rt.Accumulate(&record.ExtractionPass{
		Names:         []record.Cell{record.Present("Celeste"), record.Present("Hollow, Knight")},
		Providers:     []record.Cell{record.Present("Maddy")},
		ProviderLinks: []record.Cell{record.Present("https://maddy.itch.io")},
		Platforms:     [][]string{{"Windows", "Linux"}},
	})
	return rt
}

func TestEncodeRow(t *testing.T) {
	name := "Celeste"
	fields, err := EncodeRow(entity.GameRow{Name: &name, Platforms: []string{"Windows"}, HasPlatforms: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Celeste", "", "", "", "", "", `["Windows"]`}, fields)

	fields, err = EncodeRow(entity.GameRow{HasPlatforms: true})
	require.NoError(t, err)
	assert.Equal(t, "[]", fields[6])

	fields, err = EncodeRow(entity.GameRow{})
	require.NoError(t, err)
	assert.Equal(t, []string{"", "", "", "", "", "", ""}, fields)
}

func TestCsvWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	w := InitCsvWriter(path)
	require.NoError(t, w.Write(context.Background(), sampleTable()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Celeste", "Maddy", "", "", "https://maddy.itch.io", "", `["Windows","Linux"]`}, rows[1])
	assert.Equal(t, []string{"Hollow, Knight", "", "", "", "", "", ""}, rows[2])
	assert.Equal(t, "csv:"+path, w.Name())
}

func TestCsvWriterEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, InitCsvWriter(path).Write(context.Background(), record.NewRecordTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nombre,provedor,descripcion,genero,enlace_provedor,url_imagen,plataforma\n", string(data))
}

func TestCsvWriterBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "games.csv")
	assert.Error(t, InitCsvWriter(path).Write(context.Background(), sampleTable()))
}

func TestXlsxWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.xlsx")
	require.NoError(t, InitXlsxWriter(path, "games").Write(context.Background(), sampleTable()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("games")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Celeste", "Maddy", "", "", "https://maddy.itch.io", "", `["Windows","Linux"]`}, rows[1])
	assert.Equal(t, "Hollow, Knight", rows[2][0])
}
