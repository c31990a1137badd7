package practice

import (
	"github.com/mathspiral/mathspiral/internal/problemgen"
	sess "github.com/mathspiral/mathspiral/internal/session"
)

// sessionStartedMsg is sent when the session has been created.
type sessionStartedMsg struct {
	Session *sess.Session
	Err     error
}

// problemReadyMsg is sent when the next problem is available.
type problemReadyMsg struct {
	Problem *problemgen.Problem
	Err     error
}

// answerResultMsg is sent after an answer has been checked and
// persisted.
type answerResultMsg struct {
	Feedback *sess.Feedback
	Err      error
}

// abandonedMsg is sent after an early exit has been recorded.
type abandonedMsg struct {
	Err error
}
