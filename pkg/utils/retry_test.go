package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shoppy/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}

	testCases := []struct {
		name      string
		results   []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "succeeds first time",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "succeeds after transient failure",
			results:   []error{errTemporary, nil},
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			results:   []error{errTemporary, errTemporary, errTemporary},
			wantCalls: 3,
			wantErr:   errTemporary,
		},
		{
			name:      "non retryable error stops immediately",
			results:   []error{errFatal},
			wantCalls: 1,
			wantErr:   errFatal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := utils.Retry(context.Background(), cfg, func() error {
				err := tc.results[calls]
				calls++
				return err
			}, errFatal)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("temporary")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
