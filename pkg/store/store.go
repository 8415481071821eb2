// Package store abstracts the persistent storage used for command history.
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoMatchingCmd is the error returned when a PrevCmd or NextCmd query
// completes with no result.
var ErrNoMatchingCmd = errors.New("no matching command line")

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

// Store is an interface satisfied by the storage service.
type Store interface {
	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	DelCmd(seq int) error
	Cmd(seq int) (string, error)
	CmdsWithSeq(from, upto int) ([]Cmd, error)
	NextCmd(from int, prefix string) (Cmd, error)
	PrevCmd(upto int, prefix string) (Cmd, error)
	CullCmds(max int) error

	Close() error
}

var initDB = map[string]func(*bolt.Tx) error{}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a Store backed by the bolt database file at dbPath,
// creating the file if it does not exist.
func NewStore(dbPath string) (Store, error) {
	db, err := bolt.Open(dbPath, 0o644, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a Store from a bolt database that is already open.
func NewStoreFromDB(db *bolt.DB) (Store, error) {
	st := &dbStore{db}
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return errors.New("failed to " + name + ": " + err.Error())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}
