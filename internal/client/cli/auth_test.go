package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/dmitrijs2005/aroha/internal/client/client"
	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTexts makes getSimpleText return answers in order.
func stubTexts(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		i++
		return answers[i-1], nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPassword(t *testing.T, pw []byte) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}

func TestRegister_Success(t *testing.T) {
	a, out, _, _ := newTestApp("")
	f := &fakeAuth{}
	a.authService = f

	stubInputs(t, "alice@example.org", []byte("secret"))

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "alice@example.org", f.regUser)
	assert.Equal(t, "secret", string(f.regPass))
	assert.Contains(t, out.String(), "Success!")
}

func TestRegister_Error(t *testing.T) {
	a, _, _, _ := newTestApp("")
	a.authService = &fakeAuth{regErr: errors.New("taken")}

	stubInputs(t, "alice@example.org", []byte("secret"))

	require.Error(t, a.Register(context.Background()))
}

func TestLogin_Online(t *testing.T) {
	a, _, _, _ := newTestApp("")
	f := &fakeAuth{}
	a.authService = f

	stubInputs(t, "alice", []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice", f.onlineUser)
	assert.Empty(t, f.offlineUser)
	assert.Equal(t, "alice", a.userName)
	assert.Equal(t, ModeOnline, a.mode())
}

func TestLogin_FallsBackToOffline(t *testing.T) {
	a, _, _, _ := newTestApp("")
	f := &fakeAuth{onlineErr: fmt.Errorf("dial: %w", client.ErrUnavailable)}
	a.authService = f

	stubInputs(t, "alice", []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice", f.offlineUser)
	assert.Equal(t, "alice", a.userName)
	assert.Equal(t, ModeOffline, a.mode())
}

func TestLogin_OfflineFails(t *testing.T) {
	a, _, _, _ := newTestApp("")
	a.authService = &fakeAuth{
		onlineErr:  client.ErrUnavailable,
		offlineErr: errors.New("no cached credentials"),
	}

	stubInputs(t, "alice", []byte("pw"))

	require.Error(t, a.Login(context.Background()))
	assert.Empty(t, a.userName)
	assert.Equal(t, ModeDisabled, a.mode())
}

func TestLogin_RejectedDoesNotTryOffline(t *testing.T) {
	a, _, _, _ := newTestApp("")
	f := &fakeAuth{onlineErr: client.ErrUnauthorized}
	a.authService = f

	stubInputs(t, "alice", []byte("pw"))

	require.ErrorIs(t, a.Login(context.Background()), client.ErrUnauthorized)
	assert.Empty(t, f.offlineUser)
	assert.Empty(t, a.userName)
}

func TestLogin_MigrationOfferAccepted(t *testing.T) {
	a, out, rec, _ := newTestApp("")
	rec.offer = &models.MigrationOffer{AccountID: "uid-alice", LocalCount: 3}
	rec.counts = models.MigrationCounts{Migrated: 3}

	stubTexts(t, "alice", "y")
	stubPassword(t, []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, rec.migrated)
	assert.False(t, rec.keptLocal)
	assert.Contains(t, out.String(), "3 assessment(s)")
	assert.Contains(t, out.String(), "migrated=3 skipped=0 errors=0")
}

func TestLogin_MigrationOfferDeclined(t *testing.T) {
	a, _, rec, _ := newTestApp("")
	rec.offer = &models.MigrationOffer{AccountID: "uid-alice", LocalCount: 1}

	stubTexts(t, "alice", "n")
	stubPassword(t, []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.False(t, rec.migrated)
	assert.True(t, rec.keptLocal)
}

func TestLogin_OfflineSkipsMigrationOffer(t *testing.T) {
	a, _, rec, _ := newTestApp("")
	a.authService = &fakeAuth{onlineErr: client.ErrUnavailable}
	rec.offer = &models.MigrationOffer{AccountID: "uid-alice", LocalCount: 1}

	stubTexts(t, "alice")
	stubPassword(t, []byte("pw"))

	require.NoError(t, a.Login(context.Background()))
	assert.False(t, rec.migrated)
	assert.False(t, rec.keptLocal)
}

func TestLogout(t *testing.T) {
	a, _, _, _ := newTestApp("")
	f := &fakeAuth{}
	a.authService = f
	a.userName = "alice"

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.logoutCalled)
	assert.Empty(t, a.userName)
}

func TestLogout_ErrorPropagates(t *testing.T) {
	a, _, _, _ := newTestApp("")
	a.authService = &fakeAuth{logoutErr: errors.New("clean-fail")}
	a.userName = "alice"

	require.Error(t, a.Logout(context.Background()))
	assert.Equal(t, "alice", a.userName)
}
