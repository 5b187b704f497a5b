package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(vs ...string) []Cell {
	out := make([]Cell, 0, len(vs))
	for _, v := range vs {
		out = append(out, Present(v))
	}
	return out
}

func assertAligned(t *testing.T, rt *RecordTable) {
	t.Helper()
	for col := ColumnName; col <= ColumnPlatform; col++ {
		assert.Equal(t, rt.Size(), rt.Len(col), "column %d", col)
	}
}

func TestAccumulatePadsShortColumns(t *testing.T) {
	rt := NewRecordTable()
	rt.Accumulate(&ExtractionPass{
		Names:     cells("A", "B", "C"),
		Providers: cells("P1"),
		Platforms: [][]string{{"Win"}, {}, {}},
	})

	require.Equal(t, 3, rt.Size())
	assertAligned(t, rt)
	assert.Equal(t, cells("A", "B", "C"), rt.Cells(ColumnName))
	assert.Equal(t, []Cell{Present("P1"), Missing, Missing}, rt.Cells(ColumnProvider))
	assert.Equal(t, []Cell{Missing, Missing, Missing}, rt.Cells(ColumnGenre))
	assert.Equal(t, []TagCell{
		{Tags: []string{"Win"}, Valid: true},
		{Tags: []string{}, Valid: true},
		{Tags: []string{}, Valid: true},
	}, rt.Platforms())
}

func TestAccumulateNeverTruncates(t *testing.T) {
	rt := NewRecordTable()
	rt.Accumulate(&ExtractionPass{
		Names:     cells("A"),
		ImageURLs: cells("i1", "i2", "i3", "i4"),
	})

	require.Equal(t, 4, rt.Size())
	assertAligned(t, rt)
	assert.Equal(t, []Cell{Present("A"), Missing, Missing, Missing}, rt.Cells(ColumnName))
	assert.Equal(t, cells("i1", "i2", "i3", "i4"), rt.Cells(ColumnImageURL))
	for _, tc := range rt.Platforms() {
		assert.False(t, tc.Valid)
	}
}

func TestAccumulateEqualColumnsUnchanged(t *testing.T) {
	pass := &ExtractionPass{
		Names:         cells("A", "B"),
		Providers:     cells("P1", "P2"),
		Descriptions:  cells("d1", "d2"),
		Genres:        cells("g1", "g2"),
		ProviderLinks: cells("l1", "l2"),
		ImageURLs:     cells("u1", "u2"),
		Platforms:     [][]string{{"Windows"}, {"Linux", "macOS"}},
	}
	rt := NewRecordTable()
	rt.Accumulate(pass)

	assert.Equal(t, pass.Names, rt.Cells(ColumnName))
	assert.Equal(t, pass.Providers, rt.Cells(ColumnProvider))
	assert.Equal(t, pass.Descriptions, rt.Cells(ColumnDescription))
	assert.Equal(t, pass.Genres, rt.Cells(ColumnGenre))
	assert.Equal(t, pass.ProviderLinks, rt.Cells(ColumnProviderLink))
	assert.Equal(t, pass.ImageURLs, rt.Cells(ColumnImageURL))
	for i, tc := range rt.Platforms() {
		assert.True(t, tc.Valid)
		assert.Equal(t, pass.Platforms[i], tc.Tags)
	}
}

func TestAccumulateKeepsDuplicatesAcrossPasses(t *testing.T) {
	rt := NewRecordTable()
	rt.Accumulate(&ExtractionPass{Names: cells("A", "B", "C")})
	assert.Equal(t, 3, rt.Size())

	rt.Accumulate(&ExtractionPass{Names: cells("A", "B", "C", "D")})
	assert.Equal(t, 7, rt.Size())
	assertAligned(t, rt)
	assert.Equal(t, cells("A", "B", "C", "A", "B", "C", "D"), rt.Cells(ColumnName))
}

func TestAccumulateEmptyPass(t *testing.T) {
	rt := NewRecordTable()
	rt.Accumulate(&ExtractionPass{})
	rt.Accumulate(nil)
	assert.Equal(t, 0, rt.Size())
	assert.Empty(t, rt.Rows())
}

func TestAccumulateCopiesTags(t *testing.T) {
	tags := []string{"Windows"}
	rt := NewRecordTable()
	rt.Accumulate(&ExtractionPass{Names: cells("A"), Platforms: [][]string{tags}})
	tags[0] = "changed"
	assert.Equal(t, []string{"Windows"}, rt.Platforms()[0].Tags)
}

func TestRows(t *testing.T) {
	rt := NewRecordTable()
	rt.Accumulate(&ExtractionPass{
		Names:         cells("A", "B"),
		ProviderLinks: []Cell{Missing, Present("https://b.itch.io")},
		Platforms:     [][]string{{"Web"}},
	})

	rows := rt.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Slot)
	require.NotNil(t, rows[0].Name)
	assert.Equal(t, "A", *rows[0].Name)
	assert.Nil(t, rows[0].ProviderLink)
	assert.True(t, rows[0].HasPlatforms)
	assert.Equal(t, []string{"Web"}, rows[0].Platforms)

	assert.Equal(t, 1, rows[1].Slot)
	require.NotNil(t, rows[1].ProviderLink)
	assert.Equal(t, "https://b.itch.io", *rows[1].ProviderLink)
	assert.False(t, rows[1].HasPlatforms)
	assert.Nil(t, rows[1].Platforms)

	doc := rows[1].ToDocument()
	assert.Equal(t, "000001", doc.GetID())
	assert.Equal(t, "B", doc.Name)
	assert.Equal(t, "", doc.Genre)
	assert.Equal(t, []string{}, doc.Platforms)
}
