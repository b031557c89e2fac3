package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	r := NewRunner(nil)
	tests := []struct {
		name     string
		answer   bool
		oracle   bool
		complete bool
		wantErr  bool
		agree    bool
	}{
		{"agree true", true, true, true, false, true},
		{"agree false", false, false, false, false, true},
		{"greedy miss", false, true, false, false, false},
		{"greedy invents", true, false, false, true, false},
		{"complete under-reports", false, true, true, true, false},
		{"complete over-reports", true, false, true, true, false},
	}
	for _, tc := range tests {
		res := Result{Problem: "clique", Algorithm: "greedy", Answer: tc.answer}
		err := r.record(&res, tc.oracle, tc.complete)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrMismatch, tc.name)
		} else {
			assert.NoError(t, err, tc.name)
		}
		require.NotNil(t, res.Agree, tc.name)
		assert.Equal(t, tc.agree, *res.Agree, tc.name)
		assert.Equal(t, tc.oracle, *res.Oracle, tc.name)
	}
}

func TestWithClock_PanicsOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithClock(nil) })
}
