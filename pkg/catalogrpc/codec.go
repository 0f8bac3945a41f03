package catalogrpc

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype the catalog service is served with.
const CodecName = "fsrecovery"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Name() string { return CodecName }

func (codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("catalogrpc: cannot marshal %T", v)
	}
	return m.AppendWire(nil), nil
}

func (codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("catalogrpc: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}
