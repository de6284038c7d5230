package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/storage"
	"auction-marketplace/utils"
)

// DemoPassword is the single credential every demo account accepts. This is
// deliberately not a security boundary: no hashing, no rate limiting, no
// lockout exist anywhere in this store.
const DemoPassword = "password"

const (
	userStorageKey     = "auction_current_user"
	languageStorageKey = "auction_language"
	defaultLanguage    = "en"
)

// Store holds the single logged-in user, if any, over a set of known
// accounts. Every mutation persists a whole snapshot of the current user to
// one storage slot; construction restores the last snapshot verbatim.
type Store struct {
	mu      sync.RWMutex
	users   []models.User
	current *models.User
	storage storage.Store
}

// NewStore creates a session store over the given known users and restores
// the previously persisted session, if one exists.
func NewStore(users []models.User, st storage.Store) *Store {
	s := &Store{
		users:   append([]models.User(nil), users...),
		storage: st,
	}

	data, ok, err := st.Get(userStorageKey)
	if err != nil {
		utils.Warn("session: failed to read persisted user", map[string]any{"error": err.Error()})
		return s
	}
	if ok {
		var u models.User
		if err := json.Unmarshal(data, &u); err != nil {
			utils.Warn("session: corrupt persisted user snapshot", map[string]any{"error": err.Error()})
			return s
		}
		s.current = &u
	}
	return s
}

// Login sets the current user when an account with the given email exists
// and the password matches the demo sentinel. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if password != DemoPassword {
		return models.User{}, fmt.Errorf("session: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			s.current = &u
			if err := s.persistCurrent(); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("session: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
}

// RegisterInput carries the profile fields a new account starts with.
type RegisterInput struct {
	Email   string
	Name    string
	Role    models.Role
	Phone   string
	Address string
}

// Register creates a new account, makes it the current user and persists it.
// Always succeeds; no uniqueness check is performed against existing emails.
func (s *Store) Register(in RegisterInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := in.Role
	if role == "" {
		role = models.RoleBuyer
	}

	u := models.User{
		UserID:   utils.GenerateID(),
		Email:    in.Email,
		Name:     in.Name,
		Role:     role,
		Phone:    in.Phone,
		Address:  in.Address,
		Language: defaultLanguage,
		JoinedAt: time.Now().UTC(),
	}

	s.users = append(s.users, u)
	s.current = &u
	if err := s.persistCurrent(); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Logout clears the current user and removes the persisted snapshot. The
// account record itself is kept. Idempotent.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.storage.Remove(userStorageKey); err != nil {
		return fmt.Errorf("session: logout: %w", err)
	}
	return nil
}

// ProfileUpdate lists the mutable profile fields. Nil fields are left
// untouched; the merge is shallow and explicit.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	Address     *string
	BankAccount *string
	Language    *string
}

// UpdateProfile merges the non-nil fields into the current user and
// re-persists the snapshot. With no active session nothing is mutated.
func (s *Store) UpdateProfile(update ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.User{}, fmt.Errorf("session: update profile: %w", auctionerrors.ErrNoActiveSession)
	}

	if update.Name != nil {
		s.current.Name = *update.Name
	}
	if update.Phone != nil {
		s.current.Phone = *update.Phone
	}
	if update.Address != nil {
		s.current.Address = *update.Address
	}
	if update.BankAccount != nil {
		s.current.BankAccount = *update.BankAccount
	}
	if update.Language != nil {
		s.current.Language = *update.Language
	}

	// Keep the account record in step with the session copy.
	for i := range s.users {
		if s.users[i].UserID == s.current.UserID {
			s.users[i] = *s.current
			break
		}
	}

	if err := s.persistCurrent(); err != nil {
		return models.User{}, err
	}
	return *s.current, nil
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// SetLanguage persists the preferred language code in its own storage slot.
func (s *Store) SetLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(languageStorageKey, []byte(code)); err != nil {
		return fmt.Errorf("session: set language: %w", err)
	}
	return nil
}

// Language returns the persisted language code, defaulting to "en".
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok, err := s.storage.Get(languageStorageKey)
	if err != nil || !ok || len(data) == 0 {
		return defaultLanguage
	}
	return string(data)
}

// persistCurrent must be called with the lock held.
func (s *Store) persistCurrent() error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("session: marshal current user: %w", err)
	}
	if err := s.storage.Set(userStorageKey, data); err != nil {
		return fmt.Errorf("session: persist current user: %w", err)
	}
	return nil
}
