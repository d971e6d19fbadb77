package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/turskmind/internal/domain"
	"go.uber.org/goleak"
)

func TestStateService(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, cleanup := setupTestStorage(t)
	defer cleanup()

	practices := NewPracticeService(store, nil)
	practices.SetClock(frozenClock{t: testStart})
	practices.SetTickInterval(time.Millisecond)

	state := NewStateService(practices, NewAffirmationService(nil, nil), NewProgressService(store))

	reqCtx, cancelReq := context.WithCancel(context.Background())

	current, err := state.GetCurrentState(reqCtx)
	require.NoError(t, err)
	assert.True(t, current.CanStartSession())

	session, err := state.StartPractice(reqCtx, "Pamir")
	require.NoError(t, err)
	assert.Equal(t, "breathing", session.PracticeKey)

	// The countdown keeps running after the request that started it ends.
	cancelReq()
	time.Sleep(10 * time.Millisecond)

	current, err = state.GetCurrentState(context.Background())
	require.NoError(t, err)
	require.True(t, current.IsSessionActive())
	assert.Equal(t, session.ID, current.ActiveSession.ID)

	cancelled, err := state.CancelPractice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, cancelled.Status)

	history, err := state.GetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, session.ID, history[0].ID)
	assert.Equal(t, domain.SessionStatusCancelled, history[0].Status)

	_, err = state.StartPractice(context.Background(), "qqqqzzzz")
	assert.ErrorIs(t, err, domain.ErrPracticeNotFound)

	assert.True(t, domain.IsAffirmation(state.RandomAffirmation()))

	ack, err := state.SaveCustomAffirmation("I am calm")
	require.NoError(t, err)
	assert.Contains(t, ack.Message, "I am calm")

	dashboard, err := state.GetProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, dashboard.Total)
}
