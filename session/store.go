package session

import (
	"database/sql"
	"fmt"
	"recipe-box/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a session stays valid after sign-in
const DefaultTTL = 30 * 24 * time.Hour

// EventType names an auth state change
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
	EventExpired   EventType = "expired"
)

// Event is delivered to listeners registered with OnChange
type Event struct {
	Type      EventType
	SessionID string
	UserID    string
	At        time.Time
}

// Listener receives auth state changes. It runs synchronously on the caller's goroutine.
type Listener func(Event)

// Store persists sessions in the sessions table
type Store struct {
	db  *sql.DB
	ttl time.Duration

	mu        sync.RWMutex
	listeners []Listener

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		ttl:      DefaultTTL,
		stopChan: make(chan struct{}),
	}
}

// OnChange registers a listener for sign-in, sign-out and expiry events
func (s *Store) OnChange(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *Store) notify(eventType EventType, sessionID, userID string) {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	event := Event{Type: eventType, SessionID: sessionID, UserID: userID, At: time.Now()}
	for _, listener := range listeners {
		listener(event)
	}
}

func (s *Store) Create(userID, email, name, picture string) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		ID:         uuid.New().String(),
		UserID:     userID,
		Email:      email,
		Name:       name,
		Picture:    picture,
		ExpiresAt:  now.Add(s.ttl),
		CreatedAt:  now,
		LastUsedAt: now,
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, user_id, email, name, picture, expires_at, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, sess.ID, sess.UserID, sess.Email, sess.Name, sess.Picture,
		sess.ExpiresAt, sess.CreatedAt, sess.LastUsedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.notify(EventSignedIn, sess.ID, sess.UserID)
	return sess, nil
}

// Get returns the session, or nil if it does not exist or has expired
func (s *Store) Get(sessionID string) (*models.Session, error) {
	var sess models.Session
	err := s.db.QueryRow(`
		SELECT id, user_id, email, name, picture, expires_at, created_at, last_used_at
		FROM sessions WHERE id = ?
	`, sessionID).Scan(
		&sess.ID, &sess.UserID, &sess.Email, &sess.Name, &sess.Picture,
		&sess.ExpiresAt, &sess.CreatedAt, &sess.LastUsedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}

	return &sess, nil
}

// Touch records that the session was just used
func (s *Store) Touch(sessionID string) error {
	_, err := s.db.Exec(`UPDATE sessions SET last_used_at = ? WHERE id = ?`, time.Now().UTC(), sessionID)
	return err
}

func (s *Store) Delete(sessionID string) error {
	var userID string
	err := s.db.QueryRow(`SELECT user_id FROM sessions WHERE id = ?`, sessionID).Scan(&userID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return err
	}

	s.notify(EventSignedOut, sessionID, userID)
	return nil
}

// CleanupExpired deletes expired sessions and returns how many were removed
func (s *Store) CleanupExpired() (int, error) {
	now := time.Now().UTC()

	rows, err := s.db.Query(`SELECT id, user_id FROM sessions WHERE expires_at < ?`, now)
	if err != nil {
		return 0, err
	}
	type expired struct{ id, userID string }
	var victims []expired
	for rows.Next() {
		var e expired
		if err := rows.Scan(&e.id, &e.userID); err != nil {
			rows.Close()
			return 0, err
		}
		victims = append(victims, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, v := range victims {
		if _, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, v.id); err != nil {
			return 0, err
		}
		s.notify(EventExpired, v.id, v.userID)
	}

	return len(victims), nil
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.CleanupExpired()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop ends the cleanup routine
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}
