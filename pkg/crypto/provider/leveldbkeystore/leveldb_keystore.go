package leveldbkeystore

import (
	"fmt"
	"io/ioutil"
	"log"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/inklabs/vigenere/pkg/clock"
	"github.com/inklabs/vigenere/pkg/clock/provider/systemclock"
	"github.com/inklabs/vigenere/pkg/crypto"
	"github.com/inklabs/vigenere/pkg/keymutex"
	"github.com/inklabs/vigenere/pkg/keymutex/provider/inmemorykeymutex"
)

const (
	subjectPrefix = "subject!"
	subjectLocks  = 256
)

type record struct {
	Key                string `msgpack:"k"`
	Deleted            bool   `msgpack:"x"`
	DeletedAtTimestamp int64  `msgpack:"d"`
}

type levelDbKeyStore struct {
	logger *log.Logger
	clock  clock.Clock

	// serializes writes per subject
	subjectMutex keymutex.KeyMutex
	db           *leveldb.DB
}

// Option defines functional option parameters for levelDbKeyStore.
type Option func(*levelDbKeyStore)

// WithLogger is a functional option to inject a Logger.
func WithLogger(logger *log.Logger) Option {
	return func(store *levelDbKeyStore) {
		store.logger = logger
	}
}

// WithClock is a functional option to inject a clock.Clock.
func WithClock(clock clock.Clock) Option {
	return func(store *levelDbKeyStore) {
		store.clock = clock
	}
}

// New constructs a crypto.KeyStore persisted in a LevelDB directory.
func New(dbFilePath string, options ...Option) (*levelDbKeyStore, error) {
	db, err := leveldb.OpenFile(dbFilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed opening db: %v", err)
	}

	s := &levelDbKeyStore{
		logger:       log.New(ioutil.Discard, "", 0),
		clock:        systemclock.New(),
		subjectMutex: inmemorykeymutex.New(subjectLocks),
		db:           db,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

func (s *levelDbKeyStore) Get(subjectID string) (string, error) {
	r, err := s.getRecord(subjectID)
	if err != nil {
		return "", err
	}

	if r.Deleted {
		return "", crypto.ErrKeyWasDeleted
	}

	return r.Key, nil
}

func (s *levelDbKeyStore) Set(subjectID, key string) error {
	if key == "" {
		return crypto.ErrInvalidKey
	}

	locker := s.subjectMutex.Get(subjectID)
	locker.Lock()
	defer locker.Unlock()

	has, err := s.db.Has(subjectKey(subjectID), nil)
	if err != nil {
		return err
	}

	if has {
		return crypto.ErrKeyExistsForSubjectID
	}

	return s.putRecord(subjectID, record{Key: key})
}

func (s *levelDbKeyStore) Delete(subjectID string) error {
	locker := s.subjectMutex.Get(subjectID)
	locker.Lock()
	defer locker.Unlock()

	s.logger.Printf("deleting key for subject: %s", subjectID)
	return s.putRecord(subjectID, record{
		Deleted:            true,
		DeletedAtTimestamp: s.clock.Now().Unix(),
	})
}

// DeletedAt returns when the subject's key was deleted.
func (s *levelDbKeyStore) DeletedAt(subjectID string) (time.Time, error) {
	r, err := s.getRecord(subjectID)
	if err != nil {
		return time.Time{}, err
	}

	if !r.Deleted {
		return time.Time{}, crypto.ErrKeyNotFound
	}

	return time.Unix(r.DeletedAtTimestamp, 0), nil
}

// Close releases the underlying LevelDB handle.
func (s *levelDbKeyStore) Close() error {
	return s.db.Close()
}

func (s *levelDbKeyStore) getRecord(subjectID string) (*record, error) {
	value, err := s.db.Get(subjectKey(subjectID), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, crypto.ErrKeyNotFound
		}

		return nil, err
	}

	var r record
	err = msgpack.Unmarshal(value, &r)
	if err != nil {
		return nil, fmt.Errorf("failed decoding key record: %v", err)
	}

	return &r, nil
}

func (s *levelDbKeyStore) putRecord(subjectID string, r record) error {
	value, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed encoding key record: %v", err)
	}

	return s.db.Put(subjectKey(subjectID), value, nil)
}

func subjectKey(subjectID string) []byte {
	return []byte(subjectPrefix + subjectID)
}
