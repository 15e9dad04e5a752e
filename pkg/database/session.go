package database

import (
	"errors"
	"fmt"

	"recipe-catalog/domain"

	"gorm.io/gorm"
)

var ErrSessionClosed = errors.New("session already committed or rolled back")

// Session is one transaction. It is not safe for concurrent use and must not
// outlive the request that opened it.
type Session struct {
	tx   *gorm.DB
	done bool
}

func (s *Session) DB() *gorm.DB {
	return s.tx
}

func (s *Session) Commit() error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	if err := s.tx.Commit().Error; err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Session) Rollback() error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	return s.tx.Rollback().Error
}

// Close rolls back unless the session was already committed or rolled back.
func (s *Session) Close() {
	if s == nil || s.done {
		return
	}
	_ = s.Rollback()
}
