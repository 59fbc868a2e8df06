package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame grammar: comma-separated KEY:value tokens in a fixed order, ASCII,
// no escaping. The two deployment tiers use different grammars on purpose:
//
//	single-tier: SENSOR:<id>,COMPANY:<owner>,CO2:<value>,TIME:<micros>
//	two-tier:    SENSOR:<id>,ZONE:<owner>,CO2:<value>
//
// A codec for one variant rejects frames in the other variant's shape.

const (
	keySensor  = "SENSOR"
	keyCompany = "COMPANY"
	keyZone    = "ZONE"
	keyCO2     = "CO2"
	keyTime    = "TIME"
)

// ErrorKind classifies decode failures.
type ErrorKind int

const (
	MissingField ErrorKind = iota
	MalformedNumber
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case MalformedNumber:
		return "malformed number"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError reports why a frame could not be decoded. Decoding never
// panics; every malformed frame yields a *ParseError naming the field.
type ParseError struct {
	Field string
	Kind  ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

// Codec encodes a Reading to a frame and back. Encode always succeeds for a
// valid Reading; Decode returns the Reading or a *ParseError.
type Codec interface {
	Encode(r Reading) []byte
	Decode(frame []byte) (Reading, error)
}

// SingleTier is the sensor→collector grammar with COMPANY and TIME fields.
type SingleTier struct{}

func (SingleTier) Encode(r Reading) []byte {
	return []byte(fmt.Sprintf("%s:%d,%s:%d,%s:%s,%s:%d",
		keySensor, r.SensorID,
		keyCompany, r.OwnerID,
		keyCO2, formatCO2(r.CO2PPM),
		keyTime, r.Timestamp))
}

func (SingleTier) Decode(frame []byte) (Reading, error) {
	vals, perr := tokenize(frame, []string{keySensor, keyCompany, keyCO2, keyTime})
	if perr != nil {
		return Reading{}, perr
	}

	var r Reading
	var err error
	if r.SensorID, err = parseID(vals[0]); err != nil {
		return Reading{}, &ParseError{Field: keySensor, Kind: MalformedNumber}
	}
	if r.OwnerID, err = parseID(vals[1]); err != nil {
		return Reading{}, &ParseError{Field: keyCompany, Kind: MalformedNumber}
	}
	if r.CO2PPM, err = strconv.ParseFloat(vals[2], 64); err != nil {
		return Reading{}, &ParseError{Field: keyCO2, Kind: MalformedNumber}
	}
	ts, err := strconv.ParseUint(vals[3], 10, 63)
	if err != nil {
		return Reading{}, &ParseError{Field: keyTime, Kind: MalformedNumber}
	}
	r.Timestamp = int64(ts)
	return r, nil
}

// TwoTier is the sensor→relay→collector grammar with a ZONE field and no
// timestamp.
type TwoTier struct{}

func (TwoTier) Encode(r Reading) []byte {
	return []byte(fmt.Sprintf("%s:%d,%s:%d,%s:%s",
		keySensor, r.SensorID,
		keyZone, r.OwnerID,
		keyCO2, formatCO2(r.CO2PPM)))
}

func (TwoTier) Decode(frame []byte) (Reading, error) {
	vals, perr := tokenize(frame, []string{keySensor, keyZone, keyCO2})
	if perr != nil {
		return Reading{}, perr
	}

	var r Reading
	var err error
	if r.SensorID, err = parseID(vals[0]); err != nil {
		return Reading{}, &ParseError{Field: keySensor, Kind: MalformedNumber}
	}
	if r.OwnerID, err = parseID(vals[1]); err != nil {
		return Reading{}, &ParseError{Field: keyZone, Kind: MalformedNumber}
	}
	if r.CO2PPM, err = strconv.ParseFloat(vals[2], 64); err != nil {
		return Reading{}, &ParseError{Field: keyCO2, Kind: MalformedNumber}
	}
	return r, nil
}

// tokenize splits a frame on the field delimiter and checks that every
// expected key is present, in order, with no extras. It returns the raw
// value strings in key order.
func tokenize(frame []byte, keys []string) ([]string, *ParseError) {
	tokens := strings.Split(string(frame), ",")
	vals := make([]string, len(keys))
	for i, key := range keys {
		if i >= len(tokens) {
			return nil, &ParseError{Field: key, Kind: MissingField}
		}
		k, v, ok := strings.Cut(tokens[i], ":")
		if !ok || k != key {
			return nil, &ParseError{Field: key, Kind: MissingField}
		}
		vals[i] = v
	}
	if len(tokens) > len(keys) {
		// Trailing fields mean the frame belongs to a different grammar.
		k, _, _ := strings.Cut(tokens[len(keys)], ":")
		return nil, &ParseError{Field: k, Kind: MissingField}
	}
	return vals, nil
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint32(id), err
}

// formatCO2 renders the value losslessly so Decode(Encode(r)) round-trips
// exactly.
func formatCO2(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
