package domain

// CurrentState is a snapshot of the running app.
type CurrentState struct {
	ActiveSession    *PracticeSession
	LastTick         Tick
	CompletedThisRun int
}

// IsSessionActive returns true if a countdown is running.
func (cs *CurrentState) IsSessionActive() bool {
	return cs.ActiveSession != nil && cs.ActiveSession.IsActive()
}

// CanStartSession returns true if a new countdown can be started.
func (cs *CurrentState) CanStartSession() bool {
	return !cs.IsSessionActive()
}
