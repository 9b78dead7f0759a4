package haptics

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mousetris/internal/core"
)

type recorder struct {
	played []Pattern
	err    error
}

func (r *recorder) ShortBuzz(context.Context) error { r.played = append(r.played, Short); return r.err }
func (r *recorder) LongBuzz(context.Context) error  { r.played = append(r.played, Long); return r.err }
func (r *recorder) GrandBuzz(context.Context) error { r.played = append(r.played, Grand); return r.err }

func TestForStep(t *testing.T) {
	tests := []struct {
		name string
		res  core.StepResult
		want Pattern
	}{
		{"idle", core.StepResult{}, None},
		{"lock without clear", core.StepResult{Locked: true}, None},
		{"single", core.StepResult{Locked: true, RowsRemoved: 1}, Short},
		{"triple", core.StepResult{Locked: true, RowsRemoved: 3}, Short},
		{"four rows", core.StepResult{Locked: true, RowsRemoved: 4}, Long},
		{"game over", core.StepResult{State: core.GameState{GameOver: true}}, Grand},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ForStep(tc.res); got != tc.want {
				t.Errorf("ForStep() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPlay(t *testing.T) {
	r := &recorder{}
	ctx := context.Background()

	for _, p := range []Pattern{Short, None, Long, Grand} {
		require.NoError(t, Play(ctx, r, p))
	}
	assert.Equal(t, []Pattern{Short, Long, Grand}, r.played)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyIgnore, p)

	p, err = ParsePolicy("propagate")
	require.NoError(t, err)
	assert.Equal(t, PolicyPropagate, p)

	_, err = ParsePolicy("explode")
	assert.Error(t, err)
}

func TestIgnoreErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	r := &recorder{err: errors.New("unplugged")}

	v := IgnoreErrors(r, logger)
	assert.NoError(t, v.ShortBuzz(context.Background()))
	assert.NoError(t, v.GrandBuzz(context.Background()))

	assert.Equal(t, []Pattern{Short, Grand}, r.played)
	assert.Contains(t, buf.String(), "unplugged")
	assert.Contains(t, buf.String(), "grand")
}

func TestApply(t *testing.T) {
	r := &recorder{err: errors.New("boom")}
	ctx := context.Background()

	assert.Error(t, Apply(PolicyPropagate, r, nil).LongBuzz(ctx))
	assert.NoError(t, Apply(PolicyIgnore, r, nil).LongBuzz(ctx))
}

func TestNop(t *testing.T) {
	var v Vibrator = Nop{}
	assert.NoError(t, Play(context.Background(), v, Grand))
}
