package domain

import "testing"

func TestCurrentState_IsSessionActive(t *testing.T) {
	tests := []struct {
		name    string
		session *PracticeSession
		want    bool
	}{
		{"no session", nil, false},
		{"running session", &PracticeSession{Status: SessionStatusRunning}, true},
		{"completed session", &PracticeSession{Status: SessionStatusCompleted}, false},
		{"cancelled session", &PracticeSession{Status: SessionStatusCancelled}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := CurrentState{ActiveSession: tt.session}

			if got := cs.IsSessionActive(); got != tt.want {
				t.Errorf("IsSessionActive() = %v, want %v", got, tt.want)
			}
			if got := cs.CanStartSession(); got == tt.want {
				t.Errorf("CanStartSession() = %v, want %v", got, !tt.want)
			}
		})
	}
}
