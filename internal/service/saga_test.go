package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sagaTrace struct {
	calls []string
}

func (tr *sagaTrace) step(name string, actionErr, undoErr error, withUndo bool) sagaStep {
	s := sagaStep{
		name: name,
		action: func(context.Context) error {
			tr.calls = append(tr.calls, "do:"+name)
			return actionErr
		},
	}
	if withUndo {
		s.compensate = func(context.Context) error {
			tr.calls = append(tr.calls, "undo:"+name)
			return undoErr
		}
	}
	return s
}

func TestRunSaga(t *testing.T) {
	errStep := errors.New("step failed")
	errUndo := errors.New("undo failed")

	tests := []struct {
		name          string
		build         func(tr *sagaTrace) []sagaStep
		expectedCalls []string
		failedStep    string
		compensated   []string
		failures      int
	}{
		{
			name: "all steps succeed",
			build: func(tr *sagaTrace) []sagaStep {
				return []sagaStep{
					tr.step("a", nil, nil, true),
					tr.step("b", nil, nil, true),
				}
			},
			expectedCalls: []string{"do:a", "do:b"},
		},
		{
			name: "first step fails without undo",
			build: func(tr *sagaTrace) []sagaStep {
				return []sagaStep{
					tr.step("a", errStep, nil, true),
					tr.step("b", nil, nil, true),
				}
			},
			expectedCalls: []string{"do:a"},
			failedStep:    "a",
		},
		{
			name: "completed steps are undone in reverse order",
			build: func(tr *sagaTrace) []sagaStep {
				return []sagaStep{
					tr.step("a", nil, nil, true),
					tr.step("b", nil, nil, false),
					tr.step("c", nil, nil, true),
					tr.step("d", errStep, nil, true),
				}
			},
			expectedCalls: []string{"do:a", "do:b", "do:c", "do:d", "undo:c", "undo:a"},
			failedStep:    "d",
			compensated:   []string{"c", "a"},
		},
		{
			name: "undo failure does not stop other undos",
			build: func(tr *sagaTrace) []sagaStep {
				return []sagaStep{
					tr.step("a", nil, nil, true),
					tr.step("b", nil, errUndo, true),
					tr.step("c", errStep, nil, true),
				}
			},
			expectedCalls: []string{"do:a", "do:b", "do:c", "undo:b", "undo:a"},
			failedStep:    "c",
			compensated:   []string{"a"},
			failures:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &sagaTrace{}
			res := runSaga(context.Background(), tt.build(tr))

			assert.Equal(t, tt.expectedCalls, tr.calls)
			assert.Equal(t, tt.failedStep, res.failedStep)
			assert.Equal(t, tt.compensated, res.compensated)
			assert.Len(t, res.failures, tt.failures)
			if tt.failedStep == "" {
				assert.NoError(t, res.err)
			} else {
				assert.ErrorIs(t, res.err, errStep)
			}
		})
	}
}

func TestJoinFailures(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	err := joinFailures([]compensationFailure{{step: "x", err: errA}, {step: "y", err: errB}})

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}
