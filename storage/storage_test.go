package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestBoltRoundTrip(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer st.Close()

	in := payload{Name: "cart", Count: 3}
	require.NoError(t, st.Put(KeyCart, in))

	var out payload
	ok, err := st.Get(KeyCart, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestBoltMissingKey(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer st.Close()

	var out payload
	ok, err := st.Get("absent", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBoltDelete(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Put(KeyUser, payload{Name: "session"}))
	require.NoError(t, st.Delete(KeyUser))

	var out payload
	ok, err := st.Get(KeyUser, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCorruptSnapshotReportedAbsent(t *testing.T) {
	st := NewMemory()
	st.PutRaw(KeyBanners, []byte("][ not json"))

	var out []payload
	ok, err := st.Get(KeyBanners, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}
