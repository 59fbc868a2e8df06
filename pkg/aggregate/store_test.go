package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAccumulatesSumAndCount(t *testing.T) {
	s := NewStore()
	values := []float64{410.5, 395.0, 402.25, 399.75, 408.5}

	var sum float64
	for _, v := range values {
		s.Add(1, v)
		sum += v
	}

	rec, ok := s.Record(1)
	require.True(t, ok)
	assert.Equal(t, uint64(len(values)), rec.Count)
	assert.InDelta(t, sum, rec.Total, 1e-9)
	assert.InDelta(t, sum/float64(len(values)), rec.Average(), 1e-9)
}

func TestRecordsLazyCreationAndOrdering(t *testing.T) {
	s := NewStore()
	s.Add(7, 500)
	s.Add(2, 400)
	s.Add(7, 520)

	recs := s.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, uint32(2), recs[0].SensorID)
	assert.Equal(t, uint32(7), recs[1].SensorID)

	_, ok := s.Record(3)
	assert.False(t, ok, "record must not exist before first Add")
}

func TestAveragesExcludeEmptyRecords(t *testing.T) {
	s := NewStore()
	s.Add(1, 400)

	// Empty record created by hand should never appear in Averages.
	s.records[9] = &Record{SensorID: 9}

	avgs := s.Averages()
	require.Len(t, avgs, 1)
	assert.Equal(t, uint32(1), avgs[0].SensorID)
}

func TestEmptyRecordAverageIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Record{}.Average())
}

func TestMergeSumsAcrossStores(t *testing.T) {
	a := NewStore()
	a.Add(1, 400)
	a.Add(1, 410)
	a.Add(2, 600)

	b := NewStore()
	b.Add(1, 390)
	b.Add(3, 800)

	merged := Merge(a, b)
	require.Len(t, merged, 3)

	assert.Equal(t, uint64(3), merged[0].Count)
	assert.InDelta(t, 1200.0, merged[0].Total, 1e-9)
	assert.Equal(t, uint64(1), merged[1].Count)
	assert.Equal(t, uint64(1), merged[2].Count)

	// Inputs untouched.
	rec, _ := a.Record(1)
	assert.Equal(t, uint64(2), rec.Count)
}
