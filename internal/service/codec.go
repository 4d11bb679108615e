package service

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec replaces Connect's protojson codec so procedures can carry plain
// Go structs. It registers under the same "json" name, so clients keep
// sending application/json (Connect protocol) or application/grpc+json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// WithJSON returns the option that installs the codec on a client or handler.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
