package cipherserver

import (
	"context"
	"io/ioutil"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/inklabs/vigenere"
	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/crypto/provider/inmemorykeystore"
	"github.com/inklabs/vigenere/pkg/grpc/cipherpb"
)

type cipherServer struct {
	cipherpb.UnimplementedCipherServer
	keyStore crypto.KeyStore
	engine   crypto.Engine
	logger   *log.Logger
}

// Option defines functional option parameters for cipherServer.
type Option func(*cipherServer)

// WithKeyStore is a functional option to inject a crypto.KeyStore.
func WithKeyStore(keyStore crypto.KeyStore) Option {
	return func(server *cipherServer) {
		server.keyStore = keyStore
	}
}

// WithLogger is a functional option to inject a Logger.
func WithLogger(logger *log.Logger) Option {
	return func(server *cipherServer) {
		server.logger = logger
	}
}

// New constructs a new cipherServer.
func New(options ...Option) *cipherServer {
	server := &cipherServer{
		keyStore: inmemorykeystore.New(),
		logger:   log.New(ioutil.Discard, "", 0),
	}

	for _, option := range options {
		option(server)
	}

	server.engine = crypto.NewEngine(server.keyStore, crypto.NewVigenereEncryption(vigenere.DirectMachine))

	return server
}

func (s *cipherServer) Encrypt(_ context.Context, req *cipherpb.CipherRequest) (*cipherpb.CipherResponse, error) {
	return s.transform(vigenere.EncryptMode, req)
}

func (s *cipherServer) Decrypt(_ context.Context, req *cipherpb.CipherRequest) (*cipherpb.CipherResponse, error) {
	return s.transform(vigenere.DecryptMode, req)
}

func (s *cipherServer) transform(mode vigenere.Mode, req *cipherpb.CipherRequest) (*cipherpb.CipherResponse, error) {
	machine := vigenere.New(vigenere.WithDirection(cipherpb.ToDirection(req)))
	result, err := machine.Transform(mode, req.Message, req.Key)
	if err != nil {
		return nil, s.toStatusError(err)
	}

	return &cipherpb.CipherResponse{
		Result: result,
	}, nil
}

func (s *cipherServer) EncryptForSubject(_ context.Context, req *cipherpb.SubjectRequest) (*cipherpb.CipherResponse, error) {
	result, err := s.engine.Encrypt(req.SubjectID, req.Message)
	if err != nil {
		return nil, s.toStatusError(err)
	}

	return &cipherpb.CipherResponse{
		Result: result,
	}, nil
}

func (s *cipherServer) DecryptForSubject(_ context.Context, req *cipherpb.SubjectRequest) (*cipherpb.CipherResponse, error) {
	result, err := s.engine.Decrypt(req.SubjectID, req.Message)
	if err != nil {
		return nil, s.toStatusError(err)
	}

	return &cipherpb.CipherResponse{
		Result: result,
	}, nil
}

func (s *cipherServer) SetSubjectKey(_ context.Context, req *cipherpb.SubjectKeyRequest) (*emptypb.Empty, error) {
	if vigenere.EffectiveKey(req.Key) == "" {
		return nil, s.toStatusError(crypto.ErrInvalidKey)
	}

	err := s.keyStore.Set(req.SubjectID, req.Key)
	if err != nil {
		return nil, s.toStatusError(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *cipherServer) DeleteSubjectKey(_ context.Context, req *cipherpb.SubjectRequest) (*emptypb.Empty, error) {
	err := s.engine.Delete(req.SubjectID)
	if err != nil {
		return nil, s.toStatusError(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *cipherServer) HealthCheck(_ context.Context, _ *emptypb.Empty) (*cipherpb.HealthCheckResponse, error) {
	return &cipherpb.HealthCheckResponse{
		Status: "OK",
	}, nil
}

func (s *cipherServer) toStatusError(err error) error {
	switch err {
	case vigenere.ErrInvalidArgument, crypto.ErrInvalidKey:
		return status.Error(codes.InvalidArgument, err.Error())

	case crypto.ErrKeyNotFound:
		return status.Error(codes.NotFound, err.Error())

	case crypto.ErrKeyWasDeleted:
		return status.Error(codes.FailedPrecondition, err.Error())

	case crypto.ErrKeyExistsForSubjectID:
		return status.Error(codes.AlreadyExists, err.Error())
	}

	s.logger.Printf("unexpected error: %v", err)
	return status.Error(codes.Internal, "internal error")
}
