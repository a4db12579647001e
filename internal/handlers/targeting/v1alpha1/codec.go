package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content subtype the targeting service speaks.
// Clients select it with grpc.CallContentSubtype(CodecName).
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec marshals targeting messages as JSON on the gRPC wire
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the registered content subtype
func (Codec) Name() string {
	return CodecName
}
