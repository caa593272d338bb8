package cipherserver_test

import (
	"bytes"
	"context"
	"log"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/crypto/cryptotest"
	"github.com/inklabs/vigenere/pkg/crypto/provider/inmemorykeystore"
	"github.com/inklabs/vigenere/pkg/grpc/cipherpb"
	"github.com/inklabs/vigenere/pkg/grpc/cipherserver"
)

func TestCipherServer_Encrypt(t *testing.T) {
	t.Run("encrypts forward", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.CipherRequest{
			Message: "attack at dawn!",
			Key:     "alphonse",
		}

		// When
		response, err := client.Encrypt(context.Background(), request)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "AEIHQX SX DLLU!", response.Result)
	})

	t.Run("encrypts reversed", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.CipherRequest{
			Message:  "attack at dawn!",
			Key:      "alphonse",
			Reversed: true,
		}

		// When
		response, err := client.Encrypt(context.Background(), request)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "!ULLD XS XQHIEA", response.Result)
	})

	t.Run("errors with invalid argument from empty message", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.CipherRequest{
			Key: "alphonse",
		}

		// When
		response, err := client.Encrypt(context.Background(), request)

		// Then
		require.Nil(t, response)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Equal(t, "Incorrect arguments!", status.Convert(err).Message())
	})
}

func TestCipherServer_Decrypt(t *testing.T) {
	t.Run("decrypts forward", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.CipherRequest{
			Message: "AEIHQX SX DLLU!",
			Key:     "alphonse",
		}

		// When
		response, err := client.Decrypt(context.Background(), request)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "ATTACK AT DAWN!", response.Result)
	})

	t.Run("decrypts reversed", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.CipherRequest{
			Message:  "AEIHQX SX DLLU!",
			Key:      "alphonse",
			Reversed: true,
		}

		// When
		response, err := client.Decrypt(context.Background(), request)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "!NWAD TA KCATTA", response.Result)
	})

	t.Run("errors with invalid argument from key without letters", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.CipherRequest{
			Message: "AEIHQX SX DLLU!",
			Key:     "123",
		}

		// When
		_, err := client.Decrypt(context.Background(), request)

		// Then
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestCipherServer_Subjects(t *testing.T) {
	const subjectID = "a5a5d6b1c0d34b4c9e6f0fd2dbd1c5e1"
	ctx := context.Background()

	t.Run("encrypts and decrypts with a registered key", func(t *testing.T) {
		// Given
		client := getClient(t)
		_, err := client.SetSubjectKey(ctx, &cipherpb.SubjectKeyRequest{
			SubjectID: subjectID,
			Key:       "alphonse",
		})
		require.NoError(t, err)

		// When
		encrypted, err := client.EncryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   "attack at dawn!",
		})
		require.NoError(t, err)
		decrypted, err := client.DecryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   encrypted.Result,
		})
		require.NoError(t, err)

		// Then
		assert.Equal(t, "AEIHQX SX DLLU!", encrypted.Result)
		assert.Equal(t, "ATTACK AT DAWN!", decrypted.Result)
	})

	t.Run("encrypts with a generated key on first use", func(t *testing.T) {
		// Given
		client := getClient(t)

		// When
		encrypted, err := client.EncryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   "lorem ipsum",
		})
		require.NoError(t, err)
		decrypted, err := client.DecryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   encrypted.Result,
		})

		// Then
		require.NoError(t, err)
		assert.Equal(t, "LOREM IPSUM", decrypted.Result)
	})

	t.Run("errors with already exists when setting a second key", func(t *testing.T) {
		// Given
		client := getClient(t)
		request := &cipherpb.SubjectKeyRequest{
			SubjectID: subjectID,
			Key:       "alphonse",
		}
		_, err := client.SetSubjectKey(ctx, request)
		require.NoError(t, err)

		// When
		_, err = client.SetSubjectKey(ctx, request)

		// Then
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("errors with invalid argument when setting an empty key", func(t *testing.T) {
		// Given
		client := getClient(t)

		// When
		_, err := client.SetSubjectKey(ctx, &cipherpb.SubjectKeyRequest{
			SubjectID: subjectID,
		})

		// Then
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Equal(t, crypto.ErrInvalidKey.Error(), status.Convert(err).Message())
	})

	t.Run("errors with invalid argument when setting a key without letters", func(t *testing.T) {
		// Given
		client := getClient(t)

		// When
		_, err := client.SetSubjectKey(ctx, &cipherpb.SubjectKeyRequest{
			SubjectID: subjectID,
			Key:       "123 !?",
		})

		// Then
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Equal(t, crypto.ErrInvalidKey.Error(), status.Convert(err).Message())
		_, err = client.SetSubjectKey(ctx, &cipherpb.SubjectKeyRequest{
			SubjectID: subjectID,
			Key:       "alphonse",
		})
		assert.NoError(t, err)
	})

	t.Run("errors with not found when decrypting for an unknown subject", func(t *testing.T) {
		// Given
		client := getClient(t)

		// When
		_, err := client.DecryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   "AEIHQX",
		})

		// Then
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("errors with failed precondition after the key is deleted", func(t *testing.T) {
		// Given
		client := getClient(t)
		encrypted, err := client.EncryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   "lorem ipsum",
		})
		require.NoError(t, err)
		_, err = client.DeleteSubjectKey(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
		})
		require.NoError(t, err)

		// When
		_, err = client.DecryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   encrypted.Result,
		})

		// Then
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
		assert.Equal(t, crypto.ErrKeyWasDeleted.Error(), status.Convert(err).Message())
	})

	t.Run("errors with internal and logs when the key store fails", func(t *testing.T) {
		// Given
		var logBuffer bytes.Buffer
		client := getClient(t,
			cipherserver.WithKeyStore(cryptotest.NewFailingKeyStore()),
			cipherserver.WithLogger(log.New(&logBuffer, "", 0)),
		)

		// When
		_, err := client.EncryptForSubject(ctx, &cipherpb.SubjectRequest{
			SubjectID: subjectID,
			Message:   "lorem ipsum",
		})

		// Then
		assert.Equal(t, codes.Internal, status.Code(err))
		assert.Equal(t, "internal error", status.Convert(err).Message())
		assert.Equal(t, "unexpected error: failingKeyStore:Get\n", logBuffer.String())
	})
}

func TestCipherServer_WithKeyStore(t *testing.T) {
	// Given
	const subjectID = "9a3c0f6f1fd34c7e8c5fd2c8c0b0a1e2"
	keyStore := inmemorykeystore.New()
	require.NoError(t, keyStore.Set(subjectID, "alphonse"))
	client := getClient(t, cipherserver.WithKeyStore(keyStore))

	// When
	response, err := client.EncryptForSubject(context.Background(), &cipherpb.SubjectRequest{
		SubjectID: subjectID,
		Message:   "attack at dawn!",
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, "AEIHQX SX DLLU!", response.Result)
}

func TestCipherServer_HealthCheck(t *testing.T) {
	// Given
	client := getClient(t)

	// When
	response, err := client.HealthCheck(context.Background(), &emptypb.Empty{})

	// Then
	require.NoError(t, err)
	assert.Equal(t, "OK", response.Status)
}

func getClient(t *testing.T, options ...cipherserver.Option) cipherpb.CipherClient {
	bufListener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	cipherpb.RegisterCipherServer(server, cipherserver.New(options...))
	dialer := grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return bufListener.Dial()
	})
	ctx := context.Background()
	conn, err := grpc.DialContext(ctx, "bufnet", dialer, grpc.WithInsecure())
	require.NoError(t, err)

	t.Cleanup(func() {
		server.Stop()
		require.NoError(t, conn.Close())
	})

	go func() {
		_ = server.Serve(bufListener)
	}()

	return cipherpb.NewCipherClient(conn)
}
