package fetchkit

import "encoding/json"

// Encoder serializes request body values to wire bytes.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder deserializes wire bytes into a target value.
type Decoder interface {
	Decode(data []byte, v any) error
}

// JSONCodec is the default Encoder and Decoder, backed by encoding/json.
type JSONCodec struct{}

// Encode serializes v as JSON.
func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Decode deserializes JSON data into v.
func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// compile-time assertions
var _ Encoder = JSONCodec{}
var _ Decoder = JSONCodec{}
