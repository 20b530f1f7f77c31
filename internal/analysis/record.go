package analysis

import "time"

// Record is a stored string together with its derived properties.
// Identity is the content hash; the value and properties never change
// after creation.
type Record struct {
	// Hash is the SHA-256 hex digest of the value (primary key)
	Hash string `json:"id"`

	// Value is the original string as submitted
	Value string `json:"value"`

	// Properties is the bundle computed at insert time
	Properties Bundle `json:"properties"`

	// CreatedAt is the UTC insertion timestamp
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord analyzes value and builds a record stamped with the given
// creation time (normalized to UTC).
func NewRecord(value string, createdAt time.Time) *Record {
	bundle := Analyze(value)
	return &Record{
		Hash:       bundle.Hash,
		Value:      value,
		Properties: bundle,
		CreatedAt:  createdAt.UTC(),
	}
}
