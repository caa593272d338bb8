package postgreskeystore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/inklabs/vigenere/pkg/clock"
	"github.com/inklabs/vigenere/pkg/clock/provider/systemclock"
	"github.com/inklabs/vigenere/pkg/crypto"
)

const (
	PgUniqueViolationCode         = pq.ErrorCode("23505")
	PgDuplicateSubjectIDViolation = "vigenere_key_pkey"
)

type postgresKeyStore struct {
	config *Config
	clock  clock.Clock
	db     *sql.DB
}

// Option defines functional option parameters for postgresKeyStore.
type Option func(*postgresKeyStore)

// WithClock is a functional option to inject a clock.Clock.
func WithClock(clock clock.Clock) Option {
	return func(store *postgresKeyStore) {
		store.clock = clock
	}
}

// New constructs a crypto.KeyStore backed by PostgreSQL, creating its table if needed.
func New(config *Config, options ...Option) (*postgresKeyStore, error) {
	p := &postgresKeyStore{
		config: config,
		clock:  systemclock.New(),
	}

	for _, option := range options {
		option(p)
	}

	err := p.connectToDB()
	if err != nil {
		return nil, err
	}
	err = p.initDB()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *postgresKeyStore) Get(subjectID string) (string, error) {
	row := p.db.QueryRow("SELECT Keyword, DeletedAtTimestamp FROM vigenere_key WHERE SubjectID = $1",
		subjectID)

	var keyword sql.NullString
	var deletedAtTimestamp *int64
	err := row.Scan(&keyword, &deletedAtTimestamp)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", crypto.ErrKeyNotFound
		}

		return "", err
	}

	if deletedAtTimestamp != nil {
		return "", crypto.ErrKeyWasDeleted
	}

	return keyword.String, nil
}

func (p *postgresKeyStore) Set(subjectID, keyword string) error {
	if keyword == "" {
		return crypto.ErrInvalidKey
	}

	_, err := p.db.Exec("INSERT INTO vigenere_key (SubjectID, Keyword) VALUES ($1, $2)",
		subjectID, keyword)
	if err != nil {
		if err, ok := err.(*pq.Error); ok {
			if err.Code == PgUniqueViolationCode && err.Constraint == PgDuplicateSubjectIDViolation {
				return crypto.ErrKeyExistsForSubjectID
			}
		}
		return err
	}

	return nil
}

// Delete clears the keyword and records the deletion time. Unknown subjects
// get a tombstone row.
func (p *postgresKeyStore) Delete(subjectID string) error {
	_, err := p.db.Exec(`INSERT INTO vigenere_key (SubjectID, Keyword, DeletedAtTimestamp) VALUES ($1, NULL, $2)
		ON CONFLICT (SubjectID) DO UPDATE SET Keyword = NULL, DeletedAtTimestamp = EXCLUDED.DeletedAtTimestamp`,
		subjectID,
		p.clock.Now().Unix())
	if err != nil {
		return err
	}

	return nil
}

// DeletedAt returns when the subject's key was deleted.
func (p *postgresKeyStore) DeletedAt(subjectID string) (time.Time, error) {
	row := p.db.QueryRow("SELECT DeletedAtTimestamp FROM vigenere_key WHERE SubjectID = $1",
		subjectID)

	var deletedAtTimestamp *int64
	err := row.Scan(&deletedAtTimestamp)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, crypto.ErrKeyNotFound
		}

		return time.Time{}, err
	}

	if deletedAtTimestamp == nil {
		return time.Time{}, crypto.ErrKeyNotFound
	}

	return time.Unix(*deletedAtTimestamp, 0), nil
}

// Close closes the DB connection pool.
func (p *postgresKeyStore) Close() error {
	return p.db.Close()
}

func (p *postgresKeyStore) connectToDB() error {
	db, err := sql.Open("postgres", p.config.DataSourceName())
	if err != nil {
		return fmt.Errorf("unable to open DB connection: %v", err)
	}

	err = db.Ping()
	if err != nil {
		return fmt.Errorf("unable to connect to DB: %v", err)
	}

	p.db = db

	return nil
}

func (p *postgresKeyStore) initDB() error {
	sqlStatements := []string{
		`CREATE TABLE IF NOT EXISTS vigenere_key (
			SubjectID TEXT PRIMARY KEY,
			Keyword TEXT,
			DeletedAtTimestamp BIGINT
		);`,
	}

	for _, statement := range sqlStatements {
		_, err := p.db.Exec(statement)
		if err != nil {
			return err
		}
	}

	return nil
}
