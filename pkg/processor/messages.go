// Package processor is a hand-maintained Go binding for the EventProcessor
// service defined in event-processor.proto. The upstream service owns the
// schema; this package mirrors it field for field. The messages use legacy
// struct-tag descriptors, which the gRPC proto codec resolves through the
// protobuf legacy adapter, so no generated descriptor blob is required.
package processor

import (
	"github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// EventInput is the legacy single-type push payload. Old deployments of the
// processor only accept this shape.
type EventInput struct {
	Type       string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Blockchain string                 `protobuf:"bytes,2,opt,name=blockchain,proto3" json:"blockchain,omitempty"`
	Contract   string                 `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
	From       string                 `protobuf:"bytes,4,opt,name=from,proto3" json:"from,omitempty"`
	To         string                 `protobuf:"bytes,5,opt,name=to,proto3" json:"to,omitempty"`
	TokenID    string                 `protobuf:"bytes,6,opt,name=tokenid,proto3" json:"tokenid,omitempty"`
	TXID       string                 `protobuf:"bytes,7,opt,name=txid,proto3" json:"txid,omitempty"`
	TXTime     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=txtime,proto3" json:"txtime,omitempty"`
	EventIndex int32                  `protobuf:"varint,9,opt,name=eventindex,proto3" json:"eventindex,omitempty"`
}

func (m *EventInput) Reset()         { *m = EventInput{} }
func (m *EventInput) String() string { return proto.CompactTextString(m) }
func (*EventInput) ProtoMessage()    {}

// NftEventInput is the current push payload for token events.
type NftEventInput struct {
	Type       string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Blockchain string                 `protobuf:"bytes,2,opt,name=blockchain,proto3" json:"blockchain,omitempty"`
	Contract   string                 `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
	From       string                 `protobuf:"bytes,4,opt,name=from,proto3" json:"from,omitempty"`
	To         string                 `protobuf:"bytes,5,opt,name=to,proto3" json:"to,omitempty"`
	TokenID    string                 `protobuf:"bytes,6,opt,name=tokenid,proto3" json:"tokenid,omitempty"`
	TXID       string                 `protobuf:"bytes,7,opt,name=txid,proto3" json:"txid,omitempty"`
	TXTime     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=txtime,proto3" json:"txtime,omitempty"`
	EventIndex int32                  `protobuf:"varint,9,opt,name=eventindex,proto3" json:"eventindex,omitempty"`
}

func (m *NftEventInput) Reset()         { *m = NftEventInput{} }
func (m *NftEventInput) String() string { return proto.CompactTextString(m) }
func (*NftEventInput) ProtoMessage()    {}

// SeriesEventInput carries series-level events with a free-form data struct.
type SeriesEventInput struct {
	Type       string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Contract   string                 `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	Data       *structpb.Struct       `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	TXID       string                 `protobuf:"bytes,4,opt,name=txid,proto3" json:"txid,omitempty"`
	TXTime     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=txtime,proto3" json:"txtime,omitempty"`
	EventIndex int32                  `protobuf:"varint,6,opt,name=eventindex,proto3" json:"eventindex,omitempty"`
}

func (m *SeriesEventInput) Reset()         { *m = SeriesEventInput{} }
func (m *SeriesEventInput) String() string { return proto.CompactTextString(m) }
func (*SeriesEventInput) ProtoMessage()    {}

// EventOutput is the processor's response. Status 200 means the event was
// accepted; anything else is a failure and Result holds the detail.
type EventOutput struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	Status int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *EventOutput) Reset()         { *m = EventOutput{} }
func (m *EventOutput) String() string { return proto.CompactTextString(m) }
func (*EventOutput) ProtoMessage()    {}
