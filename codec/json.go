package codec

import "encoding/json"

// JSON is the standard-library JSON codec.
//
// It is the most portable option: every serialized field is human-readable
// and any runtime can decode it. Use Msgpack when payload size matters
// (amplification circuits grow with iteration count).
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
