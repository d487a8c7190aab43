package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// FieldDescriptor is the flat JSON published by the GRIB scanner for every
// field it reads: the identification octets from the product definition
// section plus where the field was found.
type FieldDescriptor struct {
	Center        *int      `json:"center"`
	Subcenter     *int      `json:"subcenter"`
	TableVersion  *int      `json:"table_version"`
	Parameter     *int      `json:"parameter"`
	LevelType     int       `json:"level_type,omitempty"`
	Level         int       `json:"level,omitempty"`
	ReferenceTime time.Time `json:"reference_time,omitzero"`
	ForecastHour  int       `json:"forecast_hour,omitempty"`
	Source        string    `json:"source,omitempty"` // file or object the field was read from
	Record        int       `json:"record,omitempty"` // 1-based message number within Source
}

// Key returns the parameter table key the descriptor refers to.
// It must only be called on a descriptor that passed ParseRawEvent.
func (d FieldDescriptor) Key() TableKey {
	return TableKey{Center: *d.Center, Subcenter: *d.Subcenter, Version: *d.TableVersion}
}

// ResolvedField is a field descriptor annotated with its parameter metadata.
type ResolvedField struct {
	ID            string         `json:"id"`
	Table         TableKey       `json:"table"`
	Parameter     ParameterEntry `json:"parameter"`
	LevelType     int            `json:"level_type,omitempty"`
	Level         int            `json:"level,omitempty"`
	ReferenceTime time.Time      `json:"reference_time,omitzero"`
	ForecastHour  int            `json:"forecast_hour,omitempty"`
	Source        string         `json:"source,omitempty"`
	Record        int            `json:"record,omitempty"`

	RawPayload []byte    `json:"-"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
