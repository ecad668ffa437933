package storefront

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"sabor-oriental/internal/domain"
)

const sessionStoreKey = "user"

// Session holds at most one signed-in identity and persists it across
// restarts. Mutations notify subscribers, so views re-render from the
// updated state instead of sharing framework context.
type Session struct {
	mu     sync.Mutex
	client *Client
	store  Store
	user   *domain.User
	ready  bool
	subs   []func()
}

func NewSession(client *Client, store Store) *Session {
	return &Session{client: client, store: store}
}

// Rehydrate loads the persisted identity once at application start.
// Malformed persisted data is discarded, not surfaced.
func (s *Session) Rehydrate() {
	s.mu.Lock()

	data, ok, err := s.store.Load(sessionStoreKey)
	if err == nil && ok {
		var user domain.User
		if json.Unmarshal(data, &user) == nil && user.Email != "" {
			s.user = &user
		} else {
			log.Printf("[session] discarding malformed persisted identity")
			s.store.Delete(sessionStoreKey)
		}
	}
	s.ready = true
	s.mu.Unlock()
	s.notify()
}

// Ready reports whether the initial rehydration has completed. Guards show
// a placeholder until it has.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// SignIn looks the user up by email and compares the stored password
// literally. Returns false, nil when the credentials match no record.
func (s *Session) SignIn(ctx context.Context, email, password string) (bool, error) {
	users, err := s.client.Users(ctx)
	if err != nil {
		return false, err
	}

	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			found := users[i]
			s.mu.Lock()
			s.user = &found
			s.persistLocked()
			s.mu.Unlock()
			s.notify()
			return true, nil
		}
	}
	return false, nil
}

func (s *Session) SignOut() {
	s.mu.Lock()
	s.user = nil
	s.store.Delete(sessionStoreKey)
	s.mu.Unlock()
	s.notify()
}

func (s *Session) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.IsAdmin()
}

// PatchIdentity merges the given fields into the retained identity and
// re-persists, the way profile edits update the stored user record.
func (s *Session) PatchIdentity(fields map[string]interface{}) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}

	raw, _ := json.Marshal(s.user)
	merged := map[string]interface{}{}
	json.Unmarshal(raw, &merged)
	for k, v := range fields {
		merged[k] = v
	}

	raw, _ = json.Marshal(merged)
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("[session] identity patch rejected: %v", err)
		s.mu.Unlock()
		return
	}
	s.user = &user
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

func (s *Session) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Session) persistLocked() {
	data, _ := json.Marshal(s.user)
	if err := s.store.Save(sessionStoreKey, data); err != nil {
		log.Printf("[session] failed to persist identity: %v", err)
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
