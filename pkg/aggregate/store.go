// Package aggregate accumulates per-sensor statistics at a collector.
package aggregate

import "sort"

// Record is the running total for one sensor. Average is defined only when
// Count > 0; callers filter on Count (see Store.Averages) so the division is
// never reached for an empty record.
type Record struct {
	SensorID uint32
	Total    float64
	Count    uint64
}

// Average returns Total/Count, or 0 for an empty record.
func (r Record) Average() float64 {
	if r.Count == 0 {
		return 0
	}
	return r.Total / float64(r.Count)
}

// Store owns the records of exactly one collector. It is mutated only from
// that collector's drain routine; the simulation is single-threaded, so
// there is no lock.
type Store struct {
	records map[uint32]*Record
}

func NewStore() *Store {
	return &Store{records: make(map[uint32]*Record)}
}

// Add folds one decoded reading into the sensor's record, creating it on
// first sight.
func (s *Store) Add(sensorID uint32, value float64) {
	rec, ok := s.records[sensorID]
	if !ok {
		rec = &Record{SensorID: sensorID}
		s.records[sensorID] = rec
	}
	rec.Total += value
	rec.Count++
}

// Record returns a copy of one sensor's record.
func (s *Store) Record(sensorID uint32) (Record, bool) {
	rec, ok := s.records[sensorID]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Records returns copies of all records sorted by sensor id.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SensorID < out[j].SensorID })
	return out
}

// Averages returns the records with at least one reading, sorted by sensor
// id. Sensors that never delivered are excluded rather than averaged over
// zero.
func (s *Store) Averages() []Record {
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.Count == 0 {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SensorID < out[j].SensorID })
	return out
}

// Merge builds a read-only global view over several stores, summing totals
// and counts per sensor. It never mutates the inputs.
func Merge(stores ...*Store) []Record {
	merged := make(map[uint32]Record)
	for _, store := range stores {
		for _, rec := range store.records {
			m := merged[rec.SensorID]
			m.SensorID = rec.SensorID
			m.Total += rec.Total
			m.Count += rec.Count
			merged[rec.SensorID] = m
		}
	}
	out := make([]Record, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SensorID < out[j].SensorID })
	return out
}
