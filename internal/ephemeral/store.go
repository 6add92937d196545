// Package ephemeral implements the in-memory auth and notification service
// used by cmd/lite. All state lives for the process lifetime only; nothing
// is persisted across restarts.
package ephemeral

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrEmailTaken is returned when a signup email is already registered.
var ErrEmailTaken = errors.New("email exists")

// User is an account held in memory.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Notification is one inbox entry held in memory.
type Notification struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	IsRead  bool   `json:"is_read"`
}

// Store holds all service state behind one mutex. Construct it in main and
// inject it into handlers; it has no package-level instance.
type Store struct {
	mu            sync.RWMutex
	users         map[string]User   // keyed by user id
	tokens        map[string]string // token -> user id
	notifications []Notification
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:  make(map[string]User),
		tokens: make(map[string]string),
	}
}

// CreateUser registers a user, failing when the email is already taken.
func (s *Store) CreateUser(email, fullName, password, role string) (User, error) {
	if role == "" {
		role = "EMPLOYEE"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return User{}, ErrEmailTaken
		}
	}

	user := User{
		ID:       uuid.New().String(),
		Email:    email,
		FullName: fullName,
		Password: password,
		Role:     role,
	}
	s.users[user.ID] = user
	return user, nil
}

// FindUserByEmail returns the user with the given email, if any.
func (s *Store) FindUserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// IssueToken creates an opaque token bound to the user.
func (s *Store) IssueToken(userID string) string {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return token
}

// UserByToken resolves an opaque token back to its user.
func (s *Store) UserByToken(token string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uid, ok := s.tokens[token]
	if !ok {
		return User{}, false
	}
	user, ok := s.users[uid]
	return user, ok
}

// AddNotification appends a notification for the target user.
func (s *Store) AddNotification(userID, title, content string) Notification {
	n := Notification{
		ID:      uuid.New().String(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return n
}

// Notifications returns a copy of every notification in the store.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// NotificationsFor returns a copy of the user's notifications.
func (s *Store) NotificationsFor(userID string) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// Notification returns one notification by id.
func (s *Store) Notification(id string) (Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// MarkRead sets is_read on one notification, reporting whether it exists.
func (s *Store) MarkRead(id string) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return s.notifications[i], true
		}
	}
	return Notification{}, false
}

// MarkAllRead sets is_read on every notification owned by the user and
// returns how many were touched.
func (s *Store) MarkAllRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
			count++
		}
	}
	return count
}
