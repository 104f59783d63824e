// Package proto defines the client/server wire contract of the Aroha
// backend: message types, the gRPC service descriptor and the codec that
// encodes them in the protobuf wire format described by aroha.proto.
package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	gproto "google.golang.org/protobuf/proto"
)

// CodecName replaces grpc's default codec, so calls use application/grpc+proto.
const CodecName = "proto"

// Codec marshals Aroha messages with protowire and hands generated
// protobuf messages to the protobuf runtime.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case gproto.Message:
		return gproto.Marshal(m)
	}
	return nil, fmt.Errorf("proto: cannot marshal %T", v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		return m.readWire(data)
	case gproto.Message:
		return gproto.Unmarshal(data, m)
	}
	return fmt.Errorf("proto: cannot unmarshal into %T", v)
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
