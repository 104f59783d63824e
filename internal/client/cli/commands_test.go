package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubNewApp(t *testing.T, a *App, err error) {
	t.Helper()
	orig := newApp
	newApp = func(context.Context) (*App, error) { return a, err }
	t.Cleanup(func() { newApp = orig })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, err := execute(t, "score", "333333333")
	require.NoError(t, err)
	assert.Contains(t, out, "Your score: 27/27 (Severe)")
	assert.Contains(t, out, crisisTitle)

	_, err = execute(t, "score", "0123")
	require.Error(t, err)
}

func TestScoreCommand_IgnoresConfigFlags(t *testing.T) {
	out, err := execute(t, "score", "0,0,0,0,0,0,0,0,0", "-a", "example.org:50051")
	require.NoError(t, err)
	assert.Contains(t, out, "(Minimal)")
}

func TestSubmitCommand(t *testing.T) {
	a, _, rec, _ := newTestApp("")
	stubNewApp(t, a, nil)

	out, err := execute(t, "submit", "222220000")
	require.NoError(t, err)
	require.Len(t, rec.submitted, 1)
	assert.Contains(t, out, "Your score: 10/27 (Moderate)")
	assert.Contains(t, out, nudgeTitle)
}

func TestSubmitCommand_BadAnswersSkipApp(t *testing.T) {
	stubNewApp(t, nil, errors.New("must not be called"))

	_, err := execute(t, "submit", "9")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "must not be called")
}

func TestHistoryCommand(t *testing.T) {
	a, _, _, _ := newTestApp("")
	stubNewApp(t, a, nil)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No assessments yet.")
}

func TestExportCommand(t *testing.T) {
	a, _, rec, _ := newTestApp("")
	rec.export = []byte(`{"records":[]}`)
	stubNewApp(t, a, nil)

	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `{"records":[]}`)
}

func TestDeleteAllCommand_Yes(t *testing.T) {
	a, _, rec, _ := newTestApp("")
	stubNewApp(t, a, nil)

	out, err := execute(t, "delete-all", "--yes")
	require.NoError(t, err)
	assert.True(t, rec.deleted)
	assert.Contains(t, out, "All local data deleted.")
}

func TestDeleteAllCommand_Prompts(t *testing.T) {
	a, _, rec, _ := newTestApp("n\n")
	stubNewApp(t, a, nil)

	_, err := execute(t, "delete-all")
	require.NoError(t, err)
	assert.False(t, rec.deleted)
}

func TestRootCommand_RunsInteractiveSession(t *testing.T) {
	capturePrintln(t)

	a, _, rec, prefs := newTestApp("y\nhistory\nexit\n")
	prefs.backend = false
	stubNewApp(t, a, nil)

	_, err := execute(t)
	require.NoError(t, err)
	require.Len(t, prefs.consentSet, 1)
	assert.True(t, prefs.consentSet[0])
	assert.Empty(t, rec.submitted)
}

func TestRootCommand_SkipsConsentWhenAnswered(t *testing.T) {
	capturePrintln(t)

	a, _, _, prefs := newTestApp("exit\n")
	prefs.backend = false
	prefs.consent = &models.Consent{HasConsented: true}
	stubNewApp(t, a, nil)

	_, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, prefs.consentSet)
}

func TestRootCommand_AppError(t *testing.T) {
	stubNewApp(t, nil, errors.New("db locked"))

	_, err := execute(t)
	require.EqualError(t, err, "db locked")
}
