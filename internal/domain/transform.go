package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidDescriptor reports a message that is not a usable field descriptor.
var ErrInvalidDescriptor = errors.New("invalid field descriptor")

// ParseRawEvent deserializes a RawEvent's value into a FieldDescriptor.
// The four identification fields are required and must be non-negative.
func ParseRawEvent(raw RawEvent) (FieldDescriptor, error) {
	var d FieldDescriptor
	if err := json.Unmarshal(raw.Value, &d); err != nil {
		return FieldDescriptor{}, fmt.Errorf("parse raw event: %w", err)
	}

	for _, f := range []struct {
		name string
		v    *int
	}{
		{"center", d.Center},
		{"subcenter", d.Subcenter},
		{"table_version", d.TableVersion},
		{"parameter", d.Parameter},
	} {
		if f.v == nil {
			return FieldDescriptor{}, fmt.Errorf("%w: missing %s", ErrInvalidDescriptor, f.name)
		}
		if *f.v < 0 {
			return FieldDescriptor{}, fmt.Errorf("%w: negative %s %d", ErrInvalidDescriptor, f.name, *f.v)
		}
	}

	if d.ReferenceTime.IsZero() && !raw.Timestamp.IsZero() {
		d.ReferenceTime = raw.Timestamp.UTC()
	}
	return d, nil
}

// ResolveField looks the descriptor's parameter up in reg. A miss is returned
// as an error wrapping ErrTableNotFound or ErrCodeNotFound.
func ResolveField(reg *Registry, d FieldDescriptor, raw []byte) (ResolvedField, error) {
	key := d.Key()
	entry, err := reg.Resolve(key, *d.Parameter)
	if err != nil {
		return ResolvedField{}, err
	}

	return ResolvedField{
		ID:            generateID(key, entry, d),
		Table:         key,
		Parameter:     entry,
		LevelType:     d.LevelType,
		Level:         d.Level,
		ReferenceTime: d.ReferenceTime,
		ForecastHour:  d.ForecastHour,
		Source:        d.Source,
		Record:        d.Record,
		RawPayload:    raw,
		ResolvedAt:    clock.Now().UTC(),
	}, nil
}

// SerializeResolvedField marshals a ResolvedField for the sink topic.
func SerializeResolvedField(f ResolvedField) (OutputEvent, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize resolved field: %w", err)
	}
	return OutputEvent{
		Key:   []byte(f.ID),
		Value: data,
		Headers: map[string]string{
			"abbreviation": f.Parameter.Abbreviation,
			"table":        f.Table.String(),
			"resolved_at":  f.ResolvedAt.Format(time.RFC3339),
		},
	}, nil
}

// generateID produces a deterministic ID from the field's identity, so that
// replaying the same descriptor yields the same key downstream.
func generateID(key TableKey, entry ParameterEntry, d FieldDescriptor) string {
	input := fmt.Sprintf("%s|%d|%d|%d|%s|%d|%s|%d",
		key, entry.Code, d.LevelType, d.Level,
		d.ReferenceTime.UTC().Format(time.RFC3339), d.ForecastHour, d.Source, d.Record)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if entry.Abbreviation == "" {
		return "p" + strconv.Itoa(entry.Code) + "-" + short
	}
	return entry.Abbreviation + "-" + short
}
