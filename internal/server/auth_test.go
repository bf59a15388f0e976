package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	authorized := newPublicKey(t)
	stranger := newPublicKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := "# kiosk operators\n\nnot a key\n" + string(gossh.MarshalAuthorizedKey(authorized))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	assert.True(t, isKeyAuthorized(authorized, path))
	assert.False(t, isKeyAuthorized(stranger, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	assert.False(t, isKeyAuthorized(newPublicKey(t), filepath.Join(t.TempDir(), "missing")))
}

func TestNewServer_CreatesHostKeyDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ssh")

	srv, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Host:               "127.0.0.1",
		HostKeyPath:        filepath.Join(dir, "id_ed25519"),
		Port:               "0",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.DirExists(t, dir)
}
