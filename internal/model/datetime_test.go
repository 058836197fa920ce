package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	d := DateTime{Time: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	// naive form: no timezone suffix
	assert.Equal(t, `"2024-05-01T09:30:00"`, string(b))
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T09:30:00"`), &d))
	assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), d.Time)

	require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestDateTimeScan(t *testing.T) {
	want := time.Date(2023, 12, 24, 18, 0, 5, 0, time.UTC)

	var d DateTime
	require.NoError(t, d.Scan(want))
	assert.Equal(t, want, d.Time)

	// raw DATETIME text, as returned without parseTime
	require.NoError(t, d.Scan([]byte("2023-12-24 18:00:05")))
	assert.Equal(t, want, d.Time)

	require.NoError(t, d.Scan("2023-12-24T18:00:05"))
	assert.Equal(t, want, d.Time)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.Time.IsZero())

	require.Error(t, d.Scan(42))
	require.Error(t, d.Scan("yesterday"))
}

func TestBookJSONFieldNames(t *testing.T) {
	b := Book{
		ID:        7,
		Title:     "The Go Programming Language",
		Author:    "Donovan & Kernighan",
		Publisher: "Addison-Wesley",
		ISBN:      "978-0134190440",
		Comment:   "reference copy",
		CreatedAt: DateTime{Time: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)},
		UpdatedAt: DateTime{Time: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
	}
	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"id", "title", "author", "publisher", "isbn", "comment", "created_at", "updated_at"} {
		assert.Contains(t, m, key)
	}
	assert.Len(t, m, 8)
	assert.Equal(t, "2024-05-01T09:30:00", m["created_at"])
}
