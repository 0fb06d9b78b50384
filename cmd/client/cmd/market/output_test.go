package market

import (
	"bytes"
	"testing"

	"marketstore/internal/domain/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = market.Record{ID: 1, Name: "Ferry Plaza", City: market.Some("San Francisco"), Lat: market.Some(37.5)}

func TestPrintRecord(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{
			format: formatText,
			want:   "Id:      1\nName:    Ferry Plaza\nCity:    San Francisco\nLat:     37.5\n",
		},
		{
			format: formatJSON,
			want:   "{\n  \"id\": 1,\n  \"name\": \"Ferry Plaza\",\n  \"city\": \"San Francisco\",\n  \"lat\": 37.5\n}\n",
		},
		{
			format: formatYAML,
			want:   "id: 1\nname: Ferry Plaza\ncity: San Francisco\nlat: 37.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printRecord(&buf, tt.format, sample))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRecords(&buf, formatText, nil))
	assert.Equal(t, "Рынки не найдены\n", buf.String())

	buf.Reset()
	require.NoError(t, printRecords(&buf, formatText, []market.Record{sample, {ID: 2, Name: "B"}}))
	assert.Contains(t, buf.String(), "Найдено рынков: 2")
	assert.Contains(t, buf.String(), "Name:    B")

	buf.Reset()
	require.NoError(t, printRecords(&buf, formatJSON, []market.Record{}))
	assert.Equal(t, "[]\n", buf.String())
}
