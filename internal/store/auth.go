package store

import (
	"strings"

	"github.com/popoutlabs/popout-store/internal/models"
)

// Signup creates a user, sets it as current, and persists everything.
// It fails with a ValidationError naming the first empty field,
// ErrWeakCredential for a password under 6 characters, and ErrDuplicateUser
// for an email already present. Credentials are stored in plaintext: the
// simulated auth layer makes no security claims.
func (s *Store) Signup(name, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateProcessing()

	switch {
	case strings.TrimSpace(name) == "":
		return models.User{}, &ValidationError{Field: "name"}
	case strings.TrimSpace(email) == "":
		return models.User{}, &ValidationError{Field: "email"}
	case password == "":
		return models.User{}, &ValidationError{Field: "password"}
	}
	if len(password) < 6 {
		return models.User{}, ErrWeakCredential
	}
	for i := range s.users {
		if s.users[i].Email == email {
			return models.User{}, ErrDuplicateUser
		}
	}

	user := models.User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Password: password,
		JoinDate: s.now(),
	}
	s.users = append(s.users, user)
	current := user
	s.currentUser = &current

	if err := s.saveAll(); err != nil {
		return models.User{}, err
	}
	if err := s.saveCurrentUser(); err != nil {
		return models.User{}, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("email", email).Msg("user signed up")
	return user, nil
}

// Login sets the current user when a user matches both email and password
// exactly (case-sensitive plaintext compare), persisting only the
// current-user pointer. Otherwise it fails with ErrInvalidCredentials.
func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.simulateProcessing()

	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			current := s.users[i]
			s.currentUser = &current
			if err := s.saveCurrentUser(); err != nil {
				return models.User{}, err
			}
			s.log.Info().Int64("user_id", s.users[i].ID).Msg("user logged in")
			return s.users[i], nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the current-user pointer. The user record itself is kept.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = nil
	if err := s.saveCurrentUser(); err != nil {
		return err
	}
	s.log.Info().Msg("user logged out")
	return nil
}

// UpdateProfile applies the settings form to a user. Empty fields are left
// unchanged; a changed email must stay unique across users.
func (s *Store) UpdateProfile(userID int64, update models.ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findUser(userID)
	if user == nil {
		return models.User{}, ErrNotFound
	}

	if update.Email != "" && update.Email != user.Email {
		for i := range s.users {
			if s.users[i].ID != userID && s.users[i].Email == update.Email {
				return models.User{}, ErrDuplicateUser
			}
		}
		user.Email = update.Email
	}
	if update.Name != "" {
		user.Name = update.Name
	}
	if update.AccountNumber != "" {
		user.AccountNumber = update.AccountNumber
	}
	if update.Bank != "" {
		user.Bank = update.Bank
	}
	if update.AccountName != "" {
		user.AccountName = update.AccountName
	}

	if err := s.saveAll(); err != nil {
		return models.User{}, err
	}
	if s.currentUser != nil && s.currentUser.ID == userID {
		current := *user
		s.currentUser = &current
		if err := s.saveCurrentUser(); err != nil {
			return models.User{}, err
		}
	}

	s.log.Info().Int64("user_id", userID).Msg("profile updated")
	return *user, nil
}
