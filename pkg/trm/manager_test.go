package trm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/settlement-service/pkg/trm"
	"github.com/SergeyBogomolovv/settlement-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var errSerialization = errors.New("serialization failure")

func isRetryable(err error) bool {
	return errors.Is(err, errSerialization)
}

func TestWithRetry(t *testing.T) {
	testCases := []struct {
		name      string
		results   []error
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt", results: []error{nil}, wantCalls: 1},
		{name: "retry after conflict", results: []error{errSerialization, errSerialization, nil}, wantCalls: 3},
		{name: "permanent error", results: []error{errors.New("boom")}, wantCalls: 1, wantErr: errors.New("boom")},
		{
			name:      "attempts exhausted",
			results:   []error{errSerialization, errSerialization, errSerialization, errSerialization, errSerialization},
			wantCalls: 5,
			wantErr:   errSerialization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inner := mocks.NewMockManager(t)
			calls := 0
			inner.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
					return cb(ctx)
				})

			m := trm.WithRetry(inner, isRetryable)
			err := m.Do(context.Background(), func(ctx context.Context) error {
				err := tc.results[calls]
				calls++
				return err
			})

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
