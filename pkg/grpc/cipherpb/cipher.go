// Package cipherpb holds the message and service definitions from cipher.proto.
package cipherpb

import (
	"github.com/golang/protobuf/proto"
)

type CipherRequest struct {
	Message  string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	Key      string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
	Reversed bool   `protobuf:"varint,3,opt,name=reversed,proto3" json:"reversed,omitempty"`
}

func (m *CipherRequest) Reset()         { *m = CipherRequest{} }
func (m *CipherRequest) String() string { return proto.CompactTextString(m) }
func (*CipherRequest) ProtoMessage()    {}

func (m *CipherRequest) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *CipherRequest) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *CipherRequest) GetReversed() bool {
	if m != nil {
		return m.Reversed
	}
	return false
}

type CipherResponse struct {
	Result string `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *CipherResponse) Reset()         { *m = CipherResponse{} }
func (m *CipherResponse) String() string { return proto.CompactTextString(m) }
func (*CipherResponse) ProtoMessage()    {}

func (m *CipherResponse) GetResult() string {
	if m != nil {
		return m.Result
	}
	return ""
}

type SubjectRequest struct {
	SubjectID string `protobuf:"bytes,1,opt,name=subjectID,proto3" json:"subjectID,omitempty"`
	Message   string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *SubjectRequest) Reset()         { *m = SubjectRequest{} }
func (m *SubjectRequest) String() string { return proto.CompactTextString(m) }
func (*SubjectRequest) ProtoMessage()    {}

func (m *SubjectRequest) GetSubjectID() string {
	if m != nil {
		return m.SubjectID
	}
	return ""
}

func (m *SubjectRequest) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

type SubjectKeyRequest struct {
	SubjectID string `protobuf:"bytes,1,opt,name=subjectID,proto3" json:"subjectID,omitempty"`
	Key       string `protobuf:"bytes,2,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *SubjectKeyRequest) Reset()         { *m = SubjectKeyRequest{} }
func (m *SubjectKeyRequest) String() string { return proto.CompactTextString(m) }
func (*SubjectKeyRequest) ProtoMessage()    {}

func (m *SubjectKeyRequest) GetSubjectID() string {
	if m != nil {
		return m.SubjectID
	}
	return ""
}

func (m *SubjectKeyRequest) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

type HealthCheckResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *HealthCheckResponse) Reset()         { *m = HealthCheckResponse{} }
func (m *HealthCheckResponse) String() string { return proto.CompactTextString(m) }
func (*HealthCheckResponse) ProtoMessage()    {}

func (m *HealthCheckResponse) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}
