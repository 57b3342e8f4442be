// Package schema defines the structured-record shapes produced by the
// extraction service and the tagged variant used to inspect them.
package schema

import "encoding/json"

// Kind identifies which output shape a decoded record carries. The shape is
// chosen by the generation service, so a record's kind is only known after
// the call returns and the response is inspected.
type Kind string

const (
	KindArticle  Kind = "article"  // per-provision record (条文型)
	KindDocument Kind = "document" // whole-document notice/interpretation (文件型)
	KindCase     Kind = "case"     // adjudicated case (案例型)
	KindError    Kind = "error"    // extraction failure placeholder
)

// Record is one structured result. The service's JSON object is trusted and
// stored as-is; accessors and Kind detection operate on the raw fields.
type Record map[string]any

// NewErrorRecord builds the failure placeholder emitted when a unit's
// extraction did not produce parseable JSON. rawResponse may be empty when
// the call failed before any payload was received.
func NewErrorRecord(message, rawResponse string) Record {
	r := Record{"error": message}
	if rawResponse != "" {
		r["raw_response"] = rawResponse
	}
	return r
}

// Kind classifies the record by inspecting its fields.
func (r Record) Kind() Kind {
	if _, ok := r["error"]; ok {
		return KindError
	}
	if _, ok := r["case_name"]; ok {
		return KindCase
	}
	if _, ok := r["court"]; ok {
		return KindCase
	}
	if s, ok := r["article_number"].(string); ok && s != "" {
		return KindArticle
	}
	return KindDocument
}

// IsError reports whether the record is an extraction-failure placeholder.
func (r Record) IsError() bool {
	_, ok := r["error"]
	return ok
}

// ErrorMessage returns the failure reason for an error record, or "".
func (r Record) ErrorMessage() string {
	return r.StringField("error")
}

// RawResponse returns the unparsed service payload retained on a JSON parse
// failure, or "" when none was received.
func (r Record) RawResponse() string {
	return r.StringField("raw_response")
}

// StringField returns the named field as a string, or "" when absent, null,
// or not a string.
func (r Record) StringField(name string) string {
	s, _ := r[name].(string)
	return s
}

// StringsField returns the named field as a string slice, tolerating the
// []any shape produced by generic JSON decoding.
func (r Record) StringsField(name string) []string {
	switch v := r[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// HasField reports whether the named field is present and non-empty. Arrays
// count as non-empty when they hold at least one element.
func (r Record) HasField(name string) bool {
	switch v := r[name].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	default:
		return true
	}
}

// decodeAs round-trips the raw fields into a typed shape.
func decodeAs[T any](r Record) (T, error) {
	var out T
	raw, err := json.Marshal(r)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// AsArticle decodes the record into the per-provision shape.
func (r Record) AsArticle() (ArticleRecord, error) { return decodeAs[ArticleRecord](r) }

// AsDocument decodes the record into the whole-document shape.
func (r Record) AsDocument() (DocumentRecord, error) { return decodeAs[DocumentRecord](r) }

// AsCase decodes the record into the adjudicated-case shape.
func (r Record) AsCase() (CaseRecord, error) { return decodeAs[CaseRecord](r) }
