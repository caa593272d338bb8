package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc"

	"github.com/inklabs/vigenere"
	"github.com/inklabs/vigenere/pkg/cipherws"
	"github.com/inklabs/vigenere/pkg/grpc/cipherpb"
)

const remoteTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	key       string
	mode      vigenere.Mode
	direction vigenere.Direction
	gRPCHost  string
	wsHost    string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("vigenere", flag.ContinueOnError)
	flags.SetOutput(stderr)
	key := flags.String("key", "", "keyword; only its letters are used")
	decrypt := flags.Bool("decrypt", false, "decrypt instead of encrypt")
	reverse := flags.Bool("reverse", false, "reverse the output")
	gRPCHost := flags.String("grpc", "", "cipher on a remote gRPC server (host:port)")
	wsHost := flags.String("ws", "", "cipher on a remote WebSocket server (host:port)")
	err := flags.Parse(args)
	if err != nil {
		return 2
	}

	cfg := config{
		key:      *key,
		mode:     vigenere.EncryptMode,
		gRPCHost: *gRPCHost,
		wsHost:   *wsHost,
	}
	if *decrypt {
		cfg.mode = vigenere.DecryptMode
	}
	if *reverse {
		cfg.direction = vigenere.Reversed
	}

	message, err := readMessage(flags.Args(), stdin)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "unable to read message: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
	defer cancel()

	result, err := transform(ctx, cfg, message)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	_, _ = fmt.Fprintln(stdout, result)
	return 0
}

func readMessage(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	input, err := ioutil.ReadAll(stdin)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}

func transform(ctx context.Context, cfg config, message string) (string, error) {
	switch {
	case cfg.gRPCHost != "":
		return transformWithGRPC(ctx, cfg, message)

	case cfg.wsHost != "":
		return transformWithWebSocket(ctx, cfg, message)
	}

	return vigenere.New(vigenere.WithDirection(cfg.direction)).Transform(cfg.mode, message, cfg.key)
}

func transformWithGRPC(ctx context.Context, cfg config, message string) (string, error) {
	conn, err := grpc.DialContext(ctx, cfg.gRPCHost, grpc.WithInsecure())
	if err != nil {
		return "", fmt.Errorf("unable to dial (%s): %v", cfg.gRPCHost, err)
	}
	defer ignoreClose(conn)

	client := cipherpb.NewCipherClient(conn)
	request := cipherpb.ToCipherRequest(message, cfg.key, cfg.direction)

	var response *cipherpb.CipherResponse
	if cfg.mode == vigenere.DecryptMode {
		response, err = client.Decrypt(ctx, request)
	} else {
		response, err = client.Encrypt(ctx, request)
	}
	if err != nil {
		return "", err
	}

	return response.Result, nil
}

func transformWithWebSocket(ctx context.Context, cfg config, message string) (string, error) {
	serverURL := url.URL{Scheme: "ws", Host: cfg.wsHost, Path: "/ws/cipher"}
	socket, _, err := websocket.DefaultDialer.DialContext(ctx, serverURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("unable to dial (%s): %v", serverURL.String(), err)
	}
	defer ignoreClose(socket)

	err = socket.WriteJSON(cipherws.Request{
		Mode:      cfg.mode.String(),
		Direction: cfg.direction.String(),
		Message:   message,
		Key:       cfg.key,
	})
	if err != nil {
		return "", err
	}

	var response cipherws.Response
	err = socket.ReadJSON(&response)
	if err != nil {
		return "", err
	}

	if response.Status != "OK" {
		return "", fmt.Errorf("%s", response.Message)
	}

	return response.Result, nil
}

func ignoreClose(c io.Closer) {
	_ = c.Close()
}
