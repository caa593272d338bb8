package cipherpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const serviceName = "cipherpb.Cipher"

// CipherClient is the client API for the Cipher service.
type CipherClient interface {
	Encrypt(ctx context.Context, in *CipherRequest, opts ...grpc.CallOption) (*CipherResponse, error)
	Decrypt(ctx context.Context, in *CipherRequest, opts ...grpc.CallOption) (*CipherResponse, error)
	EncryptForSubject(ctx context.Context, in *SubjectRequest, opts ...grpc.CallOption) (*CipherResponse, error)
	DecryptForSubject(ctx context.Context, in *SubjectRequest, opts ...grpc.CallOption) (*CipherResponse, error)
	SetSubjectKey(ctx context.Context, in *SubjectKeyRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteSubjectKey(ctx context.Context, in *SubjectRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	HealthCheck(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*HealthCheckResponse, error)
}

type cipherClient struct {
	cc grpc.ClientConnInterface
}

// NewCipherClient constructs a CipherClient over cc.
func NewCipherClient(cc grpc.ClientConnInterface) CipherClient {
	return &cipherClient{cc}
}

func (c *cipherClient) Encrypt(ctx context.Context, in *CipherRequest, opts ...grpc.CallOption) (*CipherResponse, error) {
	out := new(CipherResponse)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Encrypt", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cipherClient) Decrypt(ctx context.Context, in *CipherRequest, opts ...grpc.CallOption) (*CipherResponse, error) {
	out := new(CipherResponse)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/Decrypt", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cipherClient) EncryptForSubject(ctx context.Context, in *SubjectRequest, opts ...grpc.CallOption) (*CipherResponse, error) {
	out := new(CipherResponse)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/EncryptForSubject", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cipherClient) DecryptForSubject(ctx context.Context, in *SubjectRequest, opts ...grpc.CallOption) (*CipherResponse, error) {
	out := new(CipherResponse)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/DecryptForSubject", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cipherClient) SetSubjectKey(ctx context.Context, in *SubjectKeyRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/SetSubjectKey", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cipherClient) DeleteSubjectKey(ctx context.Context, in *SubjectRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/DeleteSubjectKey", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cipherClient) HealthCheck(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, "/"+serviceName+"/HealthCheck", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CipherServer is the server API for the Cipher service.
type CipherServer interface {
	Encrypt(context.Context, *CipherRequest) (*CipherResponse, error)
	Decrypt(context.Context, *CipherRequest) (*CipherResponse, error)
	EncryptForSubject(context.Context, *SubjectRequest) (*CipherResponse, error)
	DecryptForSubject(context.Context, *SubjectRequest) (*CipherResponse, error)
	SetSubjectKey(context.Context, *SubjectKeyRequest) (*emptypb.Empty, error)
	DeleteSubjectKey(context.Context, *SubjectRequest) (*emptypb.Empty, error)
	HealthCheck(context.Context, *emptypb.Empty) (*HealthCheckResponse, error)
}

// UnimplementedCipherServer can be embedded to have forward compatible implementations.
type UnimplementedCipherServer struct{}

func (UnimplementedCipherServer) Encrypt(context.Context, *CipherRequest) (*CipherResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Encrypt not implemented")
}

func (UnimplementedCipherServer) Decrypt(context.Context, *CipherRequest) (*CipherResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Decrypt not implemented")
}

func (UnimplementedCipherServer) EncryptForSubject(context.Context, *SubjectRequest) (*CipherResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EncryptForSubject not implemented")
}

func (UnimplementedCipherServer) DecryptForSubject(context.Context, *SubjectRequest) (*CipherResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecryptForSubject not implemented")
}

func (UnimplementedCipherServer) SetSubjectKey(context.Context, *SubjectKeyRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetSubjectKey not implemented")
}

func (UnimplementedCipherServer) DeleteSubjectKey(context.Context, *SubjectRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSubjectKey not implemented")
}

func (UnimplementedCipherServer) HealthCheck(context.Context, *emptypb.Empty) (*HealthCheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HealthCheck not implemented")
}

// RegisterCipherServer registers srv with s.
func RegisterCipherServer(s *grpc.Server, srv CipherServer) {
	s.RegisterService(&cipherServiceDesc, srv)
}

func encryptHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CipherRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).Encrypt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Encrypt"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).Encrypt(ctx, req.(*CipherRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func decryptHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CipherRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).Decrypt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Decrypt"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).Decrypt(ctx, req.(*CipherRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func encryptForSubjectHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubjectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).EncryptForSubject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/EncryptForSubject"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).EncryptForSubject(ctx, req.(*SubjectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func decryptForSubjectHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubjectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).DecryptForSubject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DecryptForSubject"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).DecryptForSubject(ctx, req.(*SubjectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func setSubjectKeyHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubjectKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).SetSubjectKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/SetSubjectKey"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).SetSubjectKey(ctx, req.(*SubjectKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteSubjectKeyHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubjectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).DeleteSubjectKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/DeleteSubjectKey"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).DeleteSubjectKey(ctx, req.(*SubjectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func healthCheckHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CipherServer).HealthCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/HealthCheck"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CipherServer).HealthCheck(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var cipherServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CipherServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encrypt", Handler: encryptHandler},
		{MethodName: "Decrypt", Handler: decryptHandler},
		{MethodName: "EncryptForSubject", Handler: encryptForSubjectHandler},
		{MethodName: "DecryptForSubject", Handler: decryptForSubjectHandler},
		{MethodName: "SetSubjectKey", Handler: setSubjectKeyHandler},
		{MethodName: "DeleteSubjectKey", Handler: deleteSubjectKeyHandler},
		{MethodName: "HealthCheck", Handler: healthCheckHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cipher.proto",
}
