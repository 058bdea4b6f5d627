package gfx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessagesNameTheCategory(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want string
		kind Kind
	}{
		{"generic", Generic("decode tiles", cause), "graphics error: decode tiles: boom", KindGeneric},
		{"invalid integer", InvalidInteger("window.scale is 0", nil), "invalid integer passed to graphics layer: window.scale is 0", KindInvalidInteger},
		{"window build", WindowBuild(cause), "error building window: boom", KindWindowBuild},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.want)

			kind, ok := KindOf(fmt.Errorf("outer: %w", tc.err))
			assert.True(t, ok)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("no display")
	err := WindowBuild(cause)
	assert.ErrorIs(t, err, cause)

	_, ok := KindOf(cause)
	assert.False(t, ok)
}

func TestBareError(t *testing.T) {
	err := &Error{Kind: KindWindowBuild}
	assert.Equal(t, "error building window", err.Error())
	assert.Equal(t, "unknown graphics error", Kind(9).String())
}
