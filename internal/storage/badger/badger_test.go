package badger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRoundTrip(t *testing.T) {
	b := New(InMemoryConfig())
	require.NoError(t, b.Init())
	defer b.Close()

	got, err := b.Read()
	require.NoError(t, err)
	assert.Nil(t, got, "fresh database has no record")

	require.NoError(t, b.Write([]byte(`{"moods":[],"reflections":[]}`)))
	require.NoError(t, b.Write([]byte(`{"moods":[{"id":"a"}],"reflections":[]}`)))

	got, err = b.Read()
	require.NoError(t, err)
	assert.Equal(t, `{"moods":[{"id":"a"}],"reflections":[]}`, string(got))
	assert.Equal(t, ":memory:", b.Path())
}

func TestPersistentReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "moodlog.badger")

	b := New(DefaultConfig(dir))
	require.NoError(t, b.Init())
	require.NoError(t, b.Write([]byte("payload")))
	require.NoError(t, b.Close())

	reopened := New(DefaultConfig(dir))
	require.NoError(t, reopened.Init())
	defer reopened.Close()

	got, err := reopened.Read()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestInitRequiresPath(t *testing.T) {
	err := New(Config{}).Init()
	assert.Error(t, err)
}

func TestUnopened(t *testing.T) {
	b := New(InMemoryConfig())
	_, err := b.Read()
	assert.Error(t, err)
	assert.Error(t, b.Write([]byte("x")))
	assert.NoError(t, b.Close())
}
