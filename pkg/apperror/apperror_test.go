package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "direct", err: New(KindConflict, "dup"), want: KindConflict},
		{name: "wrapped by fmt", err: fmt.Errorf("ctx: %w", New(KindNotFound, "missing")), want: KindNotFound},
		{name: "foreign error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("unique violation")
	err := Wrap(cause, KindConflict, "duty already exists")

	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, KindConflict))
	assert.False(t, Is(nil, KindConflict))
	assert.Equal(t, "duty already exists: unique violation", err.Error())
}

func TestMessageOfHidesInternalCause(t *testing.T) {
	assert.Equal(t, "internal error", MessageOf(errors.New("dial tcp 10.0.0.1:5432")))
	assert.Equal(t, "Person not found", MessageOf(New(KindNotFound, "Person not found")))
}
