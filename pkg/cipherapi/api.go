package cipherapi

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/inklabs/vigenere"
	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/crypto/provider/inmemorykeystore"
)

type api struct {
	keyStore crypto.KeyStore
	engine   crypto.Engine
	handler  http.Handler
	logger   *log.Logger
}

// Option defines functional option parameters for api.
type Option func(*api)

// WithKeyStore is a functional option to inject a crypto.KeyStore.
func WithKeyStore(keyStore crypto.KeyStore) Option {
	return func(api *api) {
		api.keyStore = keyStore
	}
}

// WithLogger is a functional option to inject a Logger.
func WithLogger(logger *log.Logger) Option {
	return func(api *api) {
		api.logger = logger
	}
}

// New constructs an api.
func New(options ...Option) *api {
	api := &api{
		keyStore: inmemorykeystore.New(),
		logger:   log.New(ioutil.Discard, "", 0),
	}

	for _, option := range options {
		option(api)
	}

	api.engine = crypto.NewEngine(api.keyStore, crypto.NewVigenereEncryption(vigenere.DirectMachine))
	api.initRoutes()

	return api
}

func (a *api) initRoutes() {
	const subject = "/subjects/{subjectID:[0-9a-zA-Z-]+}"
	const mode = "{mode:encrypt|decrypt}"
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health-check", a.healthCheck).Methods(http.MethodGet)
	router.HandleFunc("/{direction:forward|reversed}/"+mode+".{extension:json|msgpack}", a.transform).Methods(http.MethodPost)
	router.HandleFunc(subject+"/key", a.setSubjectKey).Methods(http.MethodPut)
	router.HandleFunc(subject+"/key", a.deleteSubjectKey).Methods(http.MethodDelete)
	router.HandleFunc(subject+"/"+mode, a.transformForSubject).Methods(http.MethodPost)
	a.handler = handlers.CompressHandler(router)
}

func (a *api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *api) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(`Content-Type`, `application/json`)
	_, _ = fmt.Fprintf(w, `{"status":"OK"}`)
}

type cipherRequest struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

type cipherResponse struct {
	Status string `msgpack:"s" json:"status"`
	Result string `msgpack:"r" json:"result"`
}

func (a *api) transform(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var request cipherRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		a.writeError(w, newInvalidInput(err))
		return
	}

	machine := vigenere.DirectMachine
	if mux.Vars(r)["direction"] == "reversed" {
		machine = vigenere.ReverseMachine
	}

	result, err := machine.Transform(toMode(r), request.Message, request.Key)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResult(w, result, mux.Vars(r)["extension"])
}

func (a *api) setSubjectKey(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var request struct {
		Key string `json:"key"`
	}
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		a.writeError(w, newInvalidInput(err))
		return
	}

	if vigenere.EffectiveKey(request.Key) == "" {
		a.writeError(w, crypto.ErrInvalidKey)
		return
	}

	err = a.keyStore.Set(mux.Vars(r)["subjectID"], request.Key)
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusCreated)
	_, _ = fmt.Fprintf(w, `{"status":"OK"}`)
}

func (a *api) deleteSubjectKey(w http.ResponseWriter, r *http.Request) {
	err := a.engine.Delete(mux.Vars(r)["subjectID"])
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set(`Content-Type`, `application/json`)
	_, _ = fmt.Fprintf(w, `{"status":"OK"}`)
}

func (a *api) transformForSubject(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var request struct {
		Message string `json:"message"`
	}
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		a.writeError(w, newInvalidInput(err))
		return
	}

	subjectID := mux.Vars(r)["subjectID"]
	var result string
	if toMode(r) == vigenere.DecryptMode {
		result, err = a.engine.Decrypt(subjectID, request.Message)
	} else {
		result, err = a.engine.Encrypt(subjectID, request.Message)
	}

	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResult(w, result, "json")
}

func (a *api) writeResult(w http.ResponseWriter, result, extension string) {
	response := cipherResponse{
		Status: "OK",
		Result: result,
	}

	switch extension {
	case "json":
		w.Header().Set(`Content-Type`, `application/json`)
		_ = json.NewEncoder(w).Encode(response)

	case "msgpack":
		w.Header().Set(`Content-Type`, `application/msgpack`)
		base64Writer := base64.NewEncoder(base64.RawStdEncoding, w)
		_ = msgpack.NewEncoder(base64Writer).Encode(response)
		_ = base64Writer.Close()

	}
}

func (a *api) writeError(w http.ResponseWriter, err error) {
	var statusCode int
	message := err.Error()

	switch err.(type) {
	case *invalidInput:
		statusCode = http.StatusBadRequest
		message = "invalid json request body"
	}

	switch err {
	case vigenere.ErrInvalidArgument, crypto.ErrInvalidKey:
		statusCode = http.StatusBadRequest

	case crypto.ErrKeyNotFound:
		statusCode = http.StatusNotFound

	case crypto.ErrKeyExistsForSubjectID:
		statusCode = http.StatusConflict

	case crypto.ErrKeyWasDeleted:
		statusCode = http.StatusGone
	}

	if statusCode == 0 {
		a.logger.Printf("unexpected error: %v", err)
		statusCode = http.StatusInternalServerError
		message = "internal error"
	}

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{
		Status:  "Failed",
		Message: message,
	})
}

func toMode(r *http.Request) vigenere.Mode {
	if mux.Vars(r)["mode"] == "decrypt" {
		return vigenere.DecryptMode
	}

	return vigenere.EncryptMode
}

type invalidInput struct {
	err error
}

func newInvalidInput(err error) *invalidInput {
	return &invalidInput{err: err}
}

func (i invalidInput) Error() string {
	return fmt.Sprintf("invalid input: %v", i.err)
}
