package store

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/storage"
)

// ErrNotAuthenticated is returned by session mutations when nobody is
// logged in.
var ErrNotAuthenticated = errors.New("not authenticated")

// RegisterInput carries the fields collected by the signup form.
type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
}

// ProfileUpdate carries optional profile fields; nil means leave unchanged.
type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// Auth owns the authenticated session. The session copy (password stripped)
// persists under the "user" key on every change and is removed on logout.
type Auth struct {
	mu      sync.Mutex
	session *models.Session
	users   *mockapi.UserRepo
	storage storage.Store
	notifier
}

// NewAuth rehydrates an existing session snapshot when one parses.
func NewAuth(users *mockapi.UserRepo, st storage.Store) *Auth {
	a := &Auth{users: users, storage: st}
	var session models.Session
	if ok, err := st.Get(storage.KeyUser, &session); err != nil {
		log.Printf("⚠️ Failed to load session snapshot: %v", err)
	} else if ok {
		a.session = &session
	}
	return a
}

// Login authenticates against the mock user repository and establishes the
// session. The failure message is intentionally generic.
func (a *Auth) Login(email, password string) (models.User, error) {
	user, err := a.users.Authenticate(email, password)
	if err != nil {
		return models.User{}, err
	}
	a.establish(user)
	return user, nil
}

// Register creates the account in the mock repository and immediately
// establishes it as the active session. No email uniqueness check exists at
// the mock layer.
func (a *Auth) Register(in RegisterInput) models.User {
	user := a.users.Create(models.User{
		Email:     strings.TrimSpace(in.Email),
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Addresses: []models.Address{},
	})
	a.establish(user)
	return user
}

func (a *Auth) establish(user models.User) {
	a.mu.Lock()
	nextID := 1
	for _, addr := range user.Addresses {
		if addr.ID >= nextID {
			nextID = addr.ID + 1
		}
	}
	a.session = &models.Session{
		User:          user,
		NextAddressID: nextID,
		LoggedInAt:    time.Now(),
	}
	a.persistLocked()
	a.mu.Unlock()
	a.notify()
}

// Logout clears the session and deletes the persisted snapshot.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.session = nil
	if err := a.storage.Delete(storage.KeyUser); err != nil {
		log.Printf("❌ Failed to clear session snapshot: %v", err)
	}
	a.mu.Unlock()
	a.notify()
}

// Current returns a copy of the session user.
func (a *Auth) Current() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return models.User{}, false
	}
	return a.session.User, true
}

func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

func (a *Auth) IsAdmin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil && a.session.User.IsAdmin
}

// UpdateProfile shallow-merges the provided fields into the session user.
func (a *Auth) UpdateProfile(in ProfileUpdate) (models.User, error) {
	a.mu.Lock()
	if a.session == nil {
		a.mu.Unlock()
		return models.User{}, ErrNotAuthenticated
	}
	u := &a.session.User
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	updated := *u
	a.persistLocked()
	a.mu.Unlock()
	a.notify()
	return updated, nil
}

// AddAddress appends an address with an id from the session's monotonic
// counter, so ids stay unique after deletions. The first address, or one
// flagged default, becomes the sole default.
func (a *Auth) AddAddress(addr models.Address) (models.Address, error) {
	a.mu.Lock()
	if a.session == nil {
		a.mu.Unlock()
		return models.Address{}, ErrNotAuthenticated
	}
	addr.ID = a.session.NextAddressID
	a.session.NextAddressID++
	if len(a.session.User.Addresses) == 0 {
		addr.IsDefault = true
	}
	if addr.IsDefault {
		for i := range a.session.User.Addresses {
			a.session.User.Addresses[i].IsDefault = false
		}
	}
	a.session.User.Addresses = append(a.session.User.Addresses, addr)
	a.persistLocked()
	a.mu.Unlock()
	a.notify()
	return addr, nil
}

// UpdateAddress replaces the fields of the address with the given id.
func (a *Auth) UpdateAddress(id int, addr models.Address) (models.Address, error) {
	a.mu.Lock()
	if a.session == nil {
		a.mu.Unlock()
		return models.Address{}, ErrNotAuthenticated
	}
	for i := range a.session.User.Addresses {
		if a.session.User.Addresses[i].ID == id {
			addr.ID = id
			if addr.IsDefault {
				for j := range a.session.User.Addresses {
					a.session.User.Addresses[j].IsDefault = false
				}
			}
			a.session.User.Addresses[i] = addr
			a.persistLocked()
			a.mu.Unlock()
			a.notify()
			return addr, nil
		}
	}
	a.mu.Unlock()
	return models.Address{}, mockapi.ErrNotFound
}

// DeleteAddress removes the address with the given id.
func (a *Auth) DeleteAddress(id int) error {
	a.mu.Lock()
	if a.session == nil {
		a.mu.Unlock()
		return ErrNotAuthenticated
	}
	addrs := a.session.User.Addresses
	for i := range addrs {
		if addrs[i].ID == id {
			a.session.User.Addresses = append(addrs[:i], addrs[i+1:]...)
			a.persistLocked()
			a.mu.Unlock()
			a.notify()
			return nil
		}
	}
	a.mu.Unlock()
	return mockapi.ErrNotFound
}

// Subscribe registers a callback invoked after every session change.
func (a *Auth) Subscribe(fn func()) func() {
	return a.subscribe(fn)
}

func (a *Auth) persistLocked() {
	if a.session == nil {
		return
	}
	if err := a.storage.Put(storage.KeyUser, a.session); err != nil {
		log.Printf("❌ Failed to persist session snapshot: %v", err)
	}
}
