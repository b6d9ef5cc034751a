package x11

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chordbar/internal/application/port"
)

func TestTranslate(t *testing.T) {
	const bar = xproto.Window(42)

	tests := []struct {
		name string
		in   xgb.Event
		want port.Event
		ok   bool
	}{
		{"bar expose", xproto.ExposeEvent{Window: bar}, port.RedrawEvent{}, true},
		{"partial expose", xproto.ExposeEvent{Window: bar, Count: 2}, nil, false},
		{"border expose", xproto.ExposeEvent{Window: 7}, nil, false},
		{"key press", xproto.KeyPressEvent{Detail: 24}, port.KeyPressEvent{Code: 24}, true},
		{"key release", xproto.KeyReleaseEvent{Detail: 50}, port.KeyReleaseEvent{Code: 50}, true},
		{"other", xproto.FocusInEvent{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in, bar)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrabKeyboard(t *testing.T) {
	t.Run("succeeds after retries", func(t *testing.T) {
		calls := 0
		err := grabKeyboard(context.Background(), func() (bool, error) {
			calls++
			return calls == 3, nil
		}, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		calls := 0
		err := grabKeyboard(context.Background(), func() (bool, error) {
			calls++
			return false, errors.New("already grabbed")
		}, 4, time.Millisecond)
		require.ErrorIs(t, err, ErrGrabFailed)
		assert.Contains(t, err.Error(), "already grabbed")
		assert.Equal(t, 4, calls)
	})

	t.Run("context canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := grabKeyboard(ctx, func() (bool, error) { return false, nil }, 10, time.Second)
		require.ErrorIs(t, err, context.Canceled)
	})
}
