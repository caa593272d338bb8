package cipherws

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/inklabs/vigenere"
)

type void struct{}

type websocketAPI struct {
	handler  http.Handler
	upgrader *websocket.Upgrader
	logger   *log.Logger

	mux         sync.Mutex
	connections map[*websocket.Conn]void
	stopped     bool
}

// Option defines functional option parameters for websocketAPI.
type Option func(*websocketAPI)

// WithLogger is a functional option to inject a Logger.
func WithLogger(logger *log.Logger) Option {
	return func(api *websocketAPI) {
		api.logger = logger
	}
}

// New constructs a websocketAPI.
func New(options ...Option) *websocketAPI {
	api := &websocketAPI{
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      log.New(ioutil.Discard, "", 0),
		connections: make(map[*websocket.Conn]void),
	}

	for _, option := range options {
		option(api)
	}

	api.initRoutes()

	return api
}

func (a *websocketAPI) initRoutes() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/cipher", a.Cipher)
	a.handler = router
}

// Stop closes every open connection and refuses new sessions.
func (a *websocketAPI) Stop() {
	a.mux.Lock()
	defer a.mux.Unlock()

	a.stopped = true
	for conn := range a.connections {
		_ = conn.Close()
		delete(a.connections, conn)
	}
}

func (a *websocketAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// Cipher serves a session that answers each request frame with a response frame.
func (a *websocketAPI) Cipher(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "unable to upgrade websocket connection", http.StatusBadRequest)
		return
	}

	if !a.track(conn) {
		_ = conn.Close()
		return
	}
	defer a.untrack(conn)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		err = a.sendMessage(conn, a.handleMessage(message))
		if err != nil {
			a.logger.Printf("unable to send response to WebSocket client: %v", err)
			return
		}
	}
}

// Request is a single cipher operation sent as a JSON text frame.
type Request struct {
	Mode      string `json:"mode"`
	Direction string `json:"direction"`
	Message   string `json:"message"`
	Key       string `json:"key"`
}

// Response is the JSON text frame sent back for each Request.
type Response struct {
	Status  string `json:"status"`
	Result  string `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

func (a *websocketAPI) handleMessage(message []byte) Response {
	var request Request
	err := json.Unmarshal(message, &request)
	if err != nil {
		return failed(fmt.Errorf("invalid json request"))
	}

	mode, err := vigenere.ParseMode(request.Mode)
	if err != nil {
		return failed(err)
	}

	direction, err := vigenere.ParseDirection(request.Direction)
	if err != nil {
		return failed(err)
	}

	machine := vigenere.New(vigenere.WithDirection(direction))
	result, err := machine.Transform(mode, request.Message, request.Key)
	if err != nil {
		return failed(err)
	}

	return Response{
		Status: "OK",
		Result: result,
	}
}

func failed(err error) Response {
	return Response{
		Status:  "Failed",
		Message: err.Error(),
	}
}

// MessageWriter is the interface for writing a message to a connection
type MessageWriter interface {
	WriteMessage(messageType int, data []byte) error
}

func (a *websocketAPI) sendMessage(conn MessageWriter, response Response) error {
	message, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return conn.WriteMessage(websocket.TextMessage, message)
}

func (a *websocketAPI) track(conn *websocket.Conn) bool {
	a.mux.Lock()
	defer a.mux.Unlock()

	if a.stopped {
		return false
	}

	a.connections[conn] = void{}
	return true
}

func (a *websocketAPI) untrack(conn *websocket.Conn) {
	a.mux.Lock()
	defer a.mux.Unlock()

	if _, ok := a.connections[conn]; ok {
		_ = conn.Close()
		delete(a.connections, conn)
	}
}
