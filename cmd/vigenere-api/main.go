package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"

	"github.com/inklabs/vigenere/pkg/cipherapi"
	"github.com/inklabs/vigenere/pkg/cipherws"
	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/crypto/provider/cachekeystore"
	"github.com/inklabs/vigenere/pkg/crypto/provider/inmemorykeystore"
	"github.com/inklabs/vigenere/pkg/crypto/provider/leveldbkeystore"
	"github.com/inklabs/vigenere/pkg/crypto/provider/postgreskeystore"
	"github.com/inklabs/vigenere/pkg/crypto/provider/sealedkeystore"
	"github.com/inklabs/vigenere/pkg/grpc/cipherpb"
	"github.com/inklabs/vigenere/pkg/grpc/cipherserver"
)

const (
	httpTimeout = 10 * time.Second
)

func main() {
	fmt.Println("Vigenere API")
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	port := flag.Int("port", 8080, "port")
	dbPath := flag.String("levelDBPath", "", "path to LevelDB directory")
	gRPCPort := flag.Int("gRPCPort", 8081, "gRPC port")
	masterKey := flag.String("masterKey", os.Getenv("VIGENERE_MASTER_KEY"), "base64 master key used to seal stored keywords")
	flag.Parse()

	httpAddress := fmt.Sprintf("0.0.0.0:%d", *port)

	logger := log.New(os.Stderr, "", 0)
	keyStore, closeKeyStore, err := getKeyStore(*dbPath, *masterKey, logger)
	if err != nil {
		log.Fatalf("unable to get key store: %v", err)
	}

	api := cipherapi.New(
		cipherapi.WithKeyStore(keyStore),
		cipherapi.WithLogger(logger),
	)

	websocketAPI := cipherws.New(
		cipherws.WithLogger(logger),
	)

	cipherServer := cipherserver.New(
		cipherserver.WithKeyStore(keyStore),
		cipherserver.WithLogger(logger),
	)

	muxServer := http.NewServeMux()
	muxServer.Handle("/api/", http.StripPrefix("/api", api))
	muxServer.Handle("/ws/", http.StripPrefix("/ws", websocketAPI))

	httpServer := &http.Server{
		Addr:         httpAddress,
		ReadTimeout:  httpTimeout + time.Second,
		WriteTimeout: httpTimeout + time.Second,
		Handler:      muxServer,
	}

	gRPCServer := grpc.NewServer()
	cipherpb.RegisterCipherServer(gRPCServer, cipherServer)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	go serveGRPC(gRPCServer, *gRPCPort)
	go serveHTTP(httpServer, httpAddress)

	<-stop

	fmt.Println("Shutting down gRPC server")
	gRPCServer.Stop()

	fmt.Println("Shutting down WebSocket server")
	websocketAPI.Stop()

	fmt.Println("Shutting down HTTP server")
	err = httpServer.Shutdown(context.Background())
	if err != nil {
		log.Print(err)
	}

	fmt.Println("Shutting down key store")
	err = closeKeyStore()
	if err != nil {
		log.Print(err)
	}
}

func getKeyStore(levelDBPath, masterKey string, logger *log.Logger) (crypto.KeyStore, func() error, error) {
	store, closeStore, err := getPersistentKeyStore(levelDBPath, logger)
	if err != nil {
		return nil, nil, err
	}

	if masterKey != "" {
		sealedStore, err := sealedkeystore.NewFromBase64(store, masterKey)
		if err != nil {
			return nil, nil, err
		}

		fmt.Println("Sealing keywords with master key")
		store = sealedStore
	}

	return cachekeystore.New(inmemorykeystore.New(), store), closeStore, nil
}

func getPersistentKeyStore(levelDBPath string, logger *log.Logger) (crypto.KeyStore, func() error, error) {
	postgreSQLConfig, err := postgreskeystore.NewConfigFromEnvironment()
	if err == nil {
		postgresKeyStore, err := postgreskeystore.New(postgreSQLConfig)
		if err != nil {
			return nil, nil, err
		}

		fmt.Println("Using PostgreSQL Key Store")
		return postgresKeyStore, postgresKeyStore.Close, nil
	}

	if levelDBPath != "" {
		levelDBKeyStore, err := leveldbkeystore.New(levelDBPath, leveldbkeystore.WithLogger(logger))
		if err != nil {
			return nil, nil, fmt.Errorf("unable to load db (%s): %v", levelDBPath, err)
		}

		fmt.Println("Using LevelDB Key Store")
		return levelDBKeyStore, levelDBKeyStore.Close, nil
	}

	fmt.Println("Using In Memory Key Store")
	return inmemorykeystore.New(), nilFunc, nil
}

func nilFunc() error {
	return nil
}

func serveHTTP(srv *http.Server, addr string) {
	fmt.Printf("Listening: http://%s/\n", addr)
	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func serveGRPC(srv *grpc.Server, gRPCPort int) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", gRPCPort))
	if err != nil {
		log.Fatalf("failed to bind to port: %v", err)
	}

	fmt.Printf("gRPC listening: 0.0.0.0:%d\n", gRPCPort)
	err = srv.Serve(listener)
	if err != nil {
		log.Fatal(err)
	}
}
