package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/storage"
)

func newAuth(t *testing.T) (*Auth, *storage.Memory) {
	t.Helper()
	st := storage.NewMemory()
	return NewAuth(mockapi.NewUserRepo(0), st), st
}

func TestLoginSuccessStripsPassword(t *testing.T) {
	auth, _ := newAuth(t)

	user, err := auth.Login("demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", user.Email)
	assert.Empty(t, user.Password)
	assert.True(t, auth.IsAuthenticated())
	assert.False(t, auth.IsAdmin())

	// Persisted session carries no password either.
	var session models.Session
	ok, err := func() (bool, error) {
		st := storage.NewMemory()
		a := NewAuth(mockapi.NewUserRepo(0), st)
		a.Login("demo@example.com", "password123")
		return st.Get(storage.KeyUser, &session)
	}()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, session.User.Password)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.Login("demo@example.com", "wrong")
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.False(t, auth.IsAuthenticated())

	// Unknown email fails with the same message.
	_, err2 := auth.Login("nobody@example.com", "password123")
	assert.Equal(t, err.Error(), err2.Error())
}

func TestRegisterEstablishesSession(t *testing.T) {
	auth, _ := newAuth(t)

	user := auth.Register(RegisterInput{
		Email:     "new@example.com",
		Password:  "secret99",
		FirstName: "New",
		LastName:  "Shopper",
	})

	assert.Equal(t, 3, user.ID) // two seeded accounts
	assert.Empty(t, user.Password)
	assert.True(t, auth.IsAuthenticated())

	current, ok := auth.Current()
	require.True(t, ok)
	assert.Equal(t, "new@example.com", current.Email)
	assert.NotNil(t, current.Addresses)
	assert.Empty(t, current.Addresses)
}

func TestLogoutClearsSessionAndSnapshot(t *testing.T) {
	auth, st := newAuth(t)
	_, err := auth.Login("demo@example.com", "password123")
	require.NoError(t, err)

	auth.Logout()

	assert.False(t, auth.IsAuthenticated())
	var session models.Session
	ok, _ := st.Get(storage.KeyUser, &session)
	assert.False(t, ok)
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	_, st := newAuth(t)
	first := NewAuth(mockapi.NewUserRepo(0), st)
	_, err := first.Login("demo@example.com", "password123")
	require.NoError(t, err)

	reloaded := NewAuth(mockapi.NewUserRepo(0), st)
	assert.True(t, reloaded.IsAuthenticated())
	user, _ := reloaded.Current()
	assert.Equal(t, "demo@example.com", user.Email)
}

func TestAddressIDsStayUniqueAfterDeletion(t *testing.T) {
	auth, _ := newAuth(t)
	auth.Register(RegisterInput{Email: "a@b.com", Password: "secret99", FirstName: "A", LastName: "B"})

	addr := func(street string) models.Address {
		return models.Address{Type: "home", Street: street, City: "Springfield", State: "IL", Zip: "62701"}
	}

	first, err := auth.AddAddress(addr("1 First St"))
	require.NoError(t, err)
	second, err := auth.AddAddress(addr("2 Second St"))
	require.NoError(t, err)
	require.NoError(t, auth.DeleteAddress(second.ID))

	third, err := auth.AddAddress(addr("3 Third St"))
	require.NoError(t, err)

	// With the old len+1 scheme this would collide with the surviving id.
	assert.NotEqual(t, first.ID, third.ID)
	assert.NotEqual(t, second.ID, third.ID)
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	auth, _ := newAuth(t)
	auth.Register(RegisterInput{Email: "a@b.com", Password: "secret99", FirstName: "A", LastName: "B"})

	first, err := auth.AddAddress(models.Address{Type: "home", Street: "1 First St", City: "X", State: "IL", Zip: "1"})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := auth.AddAddress(models.Address{Type: "office", Street: "2 Second St", City: "X", State: "IL", Zip: "2", IsDefault: true})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	user, _ := auth.Current()
	defaults := 0
	for _, a := range user.Addresses {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	auth, _ := newAuth(t)
	_, err := auth.Login("demo@example.com", "password123")
	require.NoError(t, err)

	phone := "+1 555 9999"
	user, err := auth.UpdateProfile(ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, user.Phone)
	assert.Equal(t, "Demo", user.FirstName) // untouched fields survive
}

func TestMutationsRequireSession(t *testing.T) {
	auth, _ := newAuth(t)

	_, err := auth.UpdateProfile(ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = auth.AddAddress(models.Address{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, auth.DeleteAddress(1), ErrNotAuthenticated)
}
