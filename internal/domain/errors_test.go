package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("get client: %w", NotFound("Client not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Client not found", MessageOf(err))
}

func TestUpstream_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("list photos", cause)

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "list photos: connection refused", err.Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "", MessageOf(errors.New("boom")))
}

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		p          PaginationParams
		wantOffset int
		wantLimit  int
	}{
		{"first page", PaginationParams{Page: 1, PageSize: 20}, 0, 20},
		{"third page", PaginationParams{Page: 3, PageSize: 10}, 20, 10},
		{"zero page clamps", PaginationParams{Page: 0, PageSize: 10}, 0, 10},
		{"disabled", PaginationParams{}, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.p.Offset())
			assert.Equal(t, tt.wantLimit, tt.p.Limit())
		})
	}
}
