// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
)

// Key prefixes for BadgerDB storage. The user index maps
// "session_user:<userID>:<sessionID>" to the session ID so that
// DeleteByUserID does not scan every session.
const (
	sessionKeyPrefix     = "session:"
	sessionUserKeyPrefix = "session_user:"
)

// BadgerSessionStore persists sessions in BadgerDB so logins survive a
// server restart.
type BadgerSessionStore struct {
	db *badger.DB
}

// NewBadgerSessionStore opens (or creates) a badger store at dir.
func NewBadgerSessionStore(dir string) (*BadgerSessionStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logger is too chatty for session traffic
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store at %s: %w", dir, err)
	}
	return &BadgerSessionStore{db: db}, nil
}

func sessionKey(id string) []byte {
	return []byte(sessionKeyPrefix + id)
}

func userIndexKey(userID int64, sessionID string) []byte {
	return []byte(sessionUserKeyPrefix + strconv.FormatInt(userID, 10) + ":" + sessionID)
}

// Create stores a new session and its user-index entry.
func (s *BadgerSessionStore) Create(_ context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(sessionKey(session.ID), data); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		if err := txn.Set(userIndexKey(session.UserID, session.ID), []byte(session.ID)); err != nil {
			return fmt.Errorf("set user index: %w", err)
		}
		return nil
	})
}

// Get retrieves a session by ID.
func (s *BadgerSessionStore) Get(_ context.Context, id string) (*Session, error) {
	var session Session

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Delete removes a session and its user-index entry.
func (s *BadgerSessionStore) Delete(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	if err != nil && !errors.Is(err, ErrSessionExpired) {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(sessionKey(id)); err != nil {
			return err
		}
		if session != nil {
			return txn.Delete(userIndexKey(session.UserID, id))
		}
		return nil
	})
}

// DeleteByUserID removes all sessions for a user via the user index.
func (s *BadgerSessionStore) DeleteByUserID(_ context.Context, userID int64) (int, error) {
	prefix := []byte(sessionUserKeyPrefix + strconv.FormatInt(userID, 10) + ":")
	count := 0

	err := s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var indexKeys [][]byte
		var ids []string
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			indexKeys = append(indexKeys, item.KeyCopy(nil))
			if err := item.Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			}); err != nil {
				return err
			}
		}

		for i, key := range indexKeys {
			if err := txn.Delete(key); err != nil {
				return err
			}
			if err := txn.Delete(sessionKey(ids[i])); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	return count, err
}

// Touch updates the last-accessed time and expiry of a session.
func (s *BadgerSessionStore) Touch(ctx context.Context, id string, newExpiry time.Time) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	session.LastAccessedAt = time.Now()
	session.ExpiresAt = newExpiry

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(id), data)
	})
}

// CleanupExpired scans for expired sessions and removes them.
func (s *BadgerSessionStore) CleanupExpired(_ context.Context) (int, error) {
	prefix := []byte(sessionKeyPrefix)
	count := 0

	err := s.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		var stale []*Session
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var session Session
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			}); err != nil {
				logging.Warn().Err(err).Msg("Skipping undecodable session during cleanup")
				continue
			}
			if session.IsExpired() {
				stale = append(stale, &session)
			}
		}

		for _, session := range stale {
			if err := txn.Delete(sessionKey(session.ID)); err != nil {
				return err
			}
			if err := txn.Delete(userIndexKey(session.UserID, session.ID)); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	return count, err
}

// Close closes the underlying badger database.
func (s *BadgerSessionStore) Close() error {
	return s.db.Close()
}
