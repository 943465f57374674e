package quiz

// Phase is the lifecycle phase of a quiz.
type Phase int

const (
	PhaseNotStarted Phase = iota // No session exists
	PhaseInProgress              // Session accepts navigation and answers
	PhaseCompleted               // Session submitted; terminal until restart
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Lifecycle drives a quiz through NotStarted -> InProgress -> Completed and
// back to NotStarted on restart. Any other transition is a no-op.
type Lifecycle struct {
	questions []Question
	opts      []Option
	phase     Phase
	session   *Session
}

// NewLifecycle returns a lifecycle in PhaseNotStarted for questions.
func NewLifecycle(questions []Question, opts ...Option) *Lifecycle {
	return &Lifecycle{questions: questions, opts: opts}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase { return l.phase }

// Session returns the active session, or nil in PhaseNotStarted.
func (l *Lifecycle) Session() *Session { return l.session }

// Start begins a new session. Outside PhaseNotStarted it returns the
// existing session unchanged.
func (l *Lifecycle) Start() (*Session, error) {
	if l.phase != PhaseNotStarted {
		return l.session, nil
	}
	s, err := Start(l.questions, l.opts...)
	if err != nil {
		return nil, err
	}
	l.session = s
	l.phase = PhaseInProgress
	return s, nil
}

// Submit completes the quiz if every question has been answered. It reports
// whether the transition happened; an incomplete submit changes nothing.
func (l *Lifecycle) Submit() bool {
	if l.phase != PhaseInProgress || !l.session.IsComplete() {
		return false
	}
	l.session.sealed = true
	l.phase = PhaseCompleted
	return true
}

// Restart discards the completed session and returns to PhaseNotStarted.
// It reports whether the transition happened.
func (l *Lifecycle) Restart() bool {
	if l.phase != PhaseCompleted {
		return false
	}
	l.session = nil
	l.phase = PhaseNotStarted
	return true
}
