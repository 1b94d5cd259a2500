// Package schema implements the JSON query and result envelopes used by the
// pipeline's app-data endpoint.
//
// Clients send a schema query and receive a schema data result describing
// the queryable dimensions: time buckets, key dimensions with their value
// domains, and aggregate value fields with their types. These envelopes are
// plain data-to-JSON mappings; the tuple codecs in this module never touch
// them.
package schema

import (
	"encoding/json"
	"fmt"
)

// Envelope type discriminators.
const (
	QueryType  = "schemaQuery"
	ResultType = "schemaData"
)

// Query is a request for the schema description.
type Query struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// ParseQuery decodes and validates a schema query envelope.
func ParseQuery(data []byte) (Query, error) {
	var q Query
	if err := json.Unmarshal(data, &q); err != nil {
		return Query{}, fmt.Errorf("decoding schema query: %w", err)
	}
	if q.Type != QueryType {
		return Query{}, fmt.Errorf("unexpected query type %q", q.Type)
	}
	if q.ID == "" {
		return Query{}, fmt.Errorf("schema query without id")
	}

	return q, nil
}

// TimeBuckets describes the queryable time range and its bucket
// granularities.
type TimeBuckets struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Buckets []string `json:"buckets"`
}

// Key is one key dimension together with its enumerable values.
type Key struct {
	Name      string   `json:"name"`
	KeyValues []string `json:"keyValues"`
}

// Value is one aggregate field and its data type.
type Value struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Description is the schema payload carried inside a result envelope.
type Description struct {
	SchemaType    string      `json:"schemaType"`
	SchemaVersion string      `json:"schemaVersion"`
	TimeBuckets   TimeBuckets `json:"timeBuckets"`
	Keys          []Key       `json:"keys"`
	Values        []Value     `json:"values"`
}

// Result is the response envelope for a schema query. Its ID mirrors the
// query's ID so clients can correlate responses.
type Result struct {
	ID   string      `json:"id"`
	Type string      `json:"type"`
	Data Description `json:"data"`
}

// NewResult builds the result envelope for a query.
func NewResult(query Query, data Description) Result {
	return Result{ID: query.ID, Type: ResultType, Data: data}
}

// Marshal serializes the result envelope to JSON.
func (r Result) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
