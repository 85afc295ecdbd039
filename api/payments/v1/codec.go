package paymentsv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

// Codec carries the service messages as JSON over gRPC.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return CodecName
}
