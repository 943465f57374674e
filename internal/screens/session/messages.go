package session

// attemptRecordedMsg reports the outcome of persisting a submitted attempt.
type attemptRecordedMsg struct {
	Err error
}
