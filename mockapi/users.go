package mockapi

import (
	"errors"
	"sync"
	"time"

	"github.com/polockprog2/FreshMart-sub000/models"
)

// ErrInvalidCredentials is deliberately generic so a failed login never
// reveals whether the email exists.
var ErrInvalidCredentials = errors.New("Invalid email or password")

// UserRepo serves the seeded demo accounts. Credentials are plaintext demo
// fixtures; the comparison mirrors the mock contract and is not a pattern
// for real account storage.
type UserRepo struct {
	mu      sync.Mutex
	users   []models.User
	latency time.Duration
}

func NewUserRepo(latency time.Duration) *UserRepo {
	return NewUserRepoWith(seedUsers(), latency)
}

func NewUserRepoWith(users []models.User, latency time.Duration) *UserRepo {
	return &UserRepo{users: users, latency: latency}
}

// Authenticate matches email and password exactly. The returned user has the
// password stripped.
func (r *UserRepo) Authenticate(email, password string) (models.User, error) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			u.Password = ""
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Create appends a new account with id = len+1 and no uniqueness check on
// email, matching the mock contract. The returned copy has the password
// stripped.
func (r *UserRepo) Create(u models.User) models.User {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = len(r.users) + 1
	if u.Addresses == nil {
		u.Addresses = []models.Address{}
	}
	u.CreatedAt = time.Now()
	r.users = append(r.users, u)
	u.Password = ""
	return u
}

// Get scans for a user by id, password stripped.
func (r *UserRepo) Get(id int) (models.User, error) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			u.Password = ""
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// All returns every account with passwords stripped, for the admin user list.
func (r *UserRepo) All() []models.User {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, len(r.users))
	for i, u := range r.users {
		u.Password = ""
		out[i] = u
	}
	return out
}

// Count reports the current collection size.
func (r *UserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
