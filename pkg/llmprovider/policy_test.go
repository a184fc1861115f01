package llmprovider

import (
	"errors"
	"testing"
	"time"
)

func TestPolicyNext(t *testing.T) {
	p := Policy{NumModels: 3, MaxAttempts: 3, BaseDelay: time.Second}
	boom := errors.New("boom")

	tests := []struct {
		name       string
		state      State
		outcome    Outcome
		wantAction ActionKind
		wantDelay  time.Duration
		wantState  State
		wantErr    error
	}{
		{
			name:       "success returns",
			state:      State{Attempt: 1, ModelIndex: 1},
			outcome:    Outcome{Model: "b"},
			wantAction: ActionReturn,
			wantState:  State{Attempt: 1, ModelIndex: 1, LastModel: "b"},
		},
		{
			name:       "unavailable model moves to next model",
			state:      State{Attempt: 2, ModelIndex: 0},
			outcome:    Outcome{Model: "a", Err: boom, Kind: KindModelNotFound},
			wantAction: ActionTryNextModel,
			wantState:  State{Attempt: 2, ModelIndex: 1, LastModel: "a", LastErr: boom, LastKind: KindModelNotFound},
		},
		{
			name:       "unavailable last model ends the attempt with flat delay",
			state:      State{Attempt: 1, ModelIndex: 2},
			outcome:    Outcome{Model: "c", Err: boom, Kind: KindModelNotFound},
			wantAction: ActionSleepAndRetry,
			wantDelay:  time.Second,
			wantState:  State{Attempt: 2, ModelIndex: 0, LastModel: "c", LastErr: boom, LastKind: KindModelNotFound, TotalDelay: time.Second},
		},
		{
			name:       "rate limit backs off linearly",
			state:      State{Attempt: 2, ModelIndex: 1, TotalDelay: time.Second},
			outcome:    Outcome{Model: "b", Err: boom, Kind: KindRateLimited},
			wantAction: ActionSleepAndRetry,
			wantDelay:  2 * time.Second,
			wantState:  State{Attempt: 3, ModelIndex: 0, LastModel: "b", LastErr: boom, LastKind: KindRateLimited, TotalDelay: 3 * time.Second},
		},
		{
			name:       "generic error skips remaining models",
			state:      State{Attempt: 1, ModelIndex: 0},
			outcome:    Outcome{Model: "a", Err: boom, Kind: KindOther},
			wantAction: ActionSleepAndRetry,
			wantDelay:  time.Second,
			wantState:  State{Attempt: 2, ModelIndex: 0, LastModel: "a", LastErr: boom, LastKind: KindOther, TotalDelay: time.Second},
		},
		{
			name:       "rate limit on last attempt fails",
			state:      State{Attempt: 3, ModelIndex: 0},
			outcome:    Outcome{Model: "a", Err: boom, Kind: KindRateLimited},
			wantAction: ActionFail,
			wantState:  State{Attempt: 3, ModelIndex: 0, LastModel: "a", LastErr: boom, LastKind: KindRateLimited},
			wantErr:    ErrRateLimitExceeded,
		},
		{
			name:       "generic error on last attempt fails",
			state:      State{Attempt: 3, ModelIndex: 0},
			outcome:    Outcome{Model: "a", Err: boom, Kind: KindOther},
			wantAction: ActionFail,
			wantState:  State{Attempt: 3, ModelIndex: 0, LastModel: "a", LastErr: boom, LastKind: KindOther},
			wantErr:    ErrAllModelsFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, action := p.Next(tt.state, tt.outcome)

			if action.Kind != tt.wantAction {
				t.Errorf("action = %s, want %s", action.Kind, tt.wantAction)
			}
			if action.Delay != tt.wantDelay {
				t.Errorf("delay = %s, want %s", action.Delay, tt.wantDelay)
			}
			if got != tt.wantState {
				t.Errorf("state = %+v, want %+v", got, tt.wantState)
			}
			if tt.wantErr != nil {
				if !errors.Is(action.Err, tt.wantErr) {
					t.Errorf("err = %v, want %v", action.Err, tt.wantErr)
				}
				if !errors.Is(action.Err, boom) {
					t.Errorf("err = %v, expected it to wrap the last error", action.Err)
				}
			} else if action.Err != nil {
				t.Errorf("unexpected err: %v", action.Err)
			}
		})
	}
}

func TestPolicy_DelayBeforeAttemptK(t *testing.T) {
	p := Policy{NumModels: 1, MaxAttempts: 5, BaseDelay: 250 * time.Millisecond}
	s := p.Start()

	for k := 2; k <= p.MaxAttempts; k++ {
		var a Action
		s, a = p.Next(s, Outcome{Model: "a", Err: errors.New("429"), Kind: KindRateLimited})
		if a.Kind != ActionSleepAndRetry {
			t.Fatalf("attempt %d: action = %s", k, a.Kind)
		}
		if floor := p.BaseDelay * time.Duration(k-1); a.Delay < floor {
			t.Errorf("delay before attempt %d = %s, want >= %s", k, a.Delay, floor)
		}
		if s.Attempt != k {
			t.Errorf("attempt = %d, want %d", s.Attempt, k)
		}
	}
}
