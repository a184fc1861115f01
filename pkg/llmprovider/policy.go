package llmprovider

import "time"

// ActionKind is what the Manager must do after observing an Outcome.
type ActionKind int

const (
	ActionTryNextModel ActionKind = iota
	ActionSleepAndRetry
	ActionReturn
	ActionFail
)

func (a ActionKind) String() string {
	switch a {
	case ActionTryNextModel:
		return "try_next_model"
	case ActionSleepAndRetry:
		return "sleep_and_retry"
	case ActionReturn:
		return "return"
	case ActionFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Action is the decision produced by Policy.Next.
type Action struct {
	Kind  ActionKind
	Delay time.Duration // set for ActionSleepAndRetry
	Err   error         // set for ActionFail
}

// State is the per-call retry state. It never outlives one Complete call.
type State struct {
	Attempt    int // 1-based
	ModelIndex int
	LastModel  string
	LastErr    error
	LastKind   ErrorKind
	TotalDelay time.Duration
}

// Outcome is the result of one provider call. Err is nil on success.
type Outcome struct {
	Model string
	Err   error
	Kind  ErrorKind
}

// Policy encodes the fallback rules: every attempt walks the models in order,
// unavailable models are skipped within the attempt, and any other failure ends
// the attempt. Throttled attempts back off BaseDelay*attempt, others BaseDelay.
type Policy struct {
	NumModels   int
	MaxAttempts int
	BaseDelay   time.Duration
}

// Start returns the state before the first call.
func (p Policy) Start() State {
	return State{Attempt: 1}
}

// Next is the transition function of the retry state machine. It has no side
// effects; the caller performs the returned Action.
func (p Policy) Next(s State, o Outcome) (State, Action) {
	if o.Err == nil {
		s.LastModel = o.Model
		return s, Action{Kind: ActionReturn}
	}

	s.LastModel = o.Model
	s.LastErr = o.Err
	s.LastKind = o.Kind

	if o.Kind == KindModelNotFound && s.ModelIndex+1 < p.NumModels {
		s.ModelIndex++
		return s, Action{Kind: ActionTryNextModel}
	}

	return p.endAttempt(s)
}

func (p Policy) endAttempt(s State) (State, Action) {
	last := s.Attempt >= p.MaxAttempts

	if s.LastKind == KindRateLimited {
		if last {
			return s, Action{Kind: ActionFail, Err: &RateLimitError{
				Model:    s.LastModel,
				Attempts: s.Attempt,
				Err:      s.LastErr,
			}}
		}
		delay := p.BaseDelay * time.Duration(s.Attempt)
		return p.nextAttempt(s, delay), Action{Kind: ActionSleepAndRetry, Delay: delay}
	}

	if last {
		return s, Action{Kind: ActionFail, Err: &AllModelsFailedError{
			Attempts: s.Attempt,
			LastErr:  s.LastErr,
		}}
	}
	return p.nextAttempt(s, p.BaseDelay), Action{Kind: ActionSleepAndRetry, Delay: p.BaseDelay}
}

func (p Policy) nextAttempt(s State, delay time.Duration) State {
	s.Attempt++
	s.ModelIndex = 0
	s.TotalDelay += delay
	return s
}
