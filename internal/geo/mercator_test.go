package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestViewportSurface_ProjectToScreen(t *testing.T) {
	s := NewViewportSurface(Viewport{Center: LatLng{0, 0}, Zoom: 0, Width: 256, Height: 256})

	pt, ok := s.ProjectToScreen(LatLng{0, 0})
	require.True(t, ok)
	assert.InDelta(t, 128, pt.X, 1e-9)
	assert.InDelta(t, 128, pt.Y, 1e-9)

	pt, ok = s.ProjectToScreen(LatLng{0, 90})
	require.True(t, ok)
	assert.InDelta(t, 192, pt.X, 1e-9)

	_, ok = s.ProjectToScreen(LatLng{89.9, 0})
	assert.False(t, ok)
}

func TestViewportSurface_NorthIsUp(t *testing.T) {
	s := NewViewportSurface(Viewport{Center: LatLng{14.675, 121.045}, Zoom: 15, Width: 500, Height: 500})
	north, _ := s.ProjectToScreen(LatLng{14.680, 121.045})
	south, _ := s.ProjectToScreen(LatLng{14.670, 121.045})
	assert.Less(t, north.Y, south.Y)
}

func TestFitZoom(t *testing.T) {
	b := Bounds{SouthWest: LatLng{-10, -10}, NorthEast: LatLng{10, 10}}
	z := FitZoom(b, 512, 512)
	assert.Equal(t, float64(5), z)

	assert.Equal(t, float64(MaxZoom), FitZoom(Bounds{}, 512, 512))
	assert.Equal(t, float64(0), FitZoom(b, 0, 512))
}

func TestViewportSurface_CancelListenerTwice(t *testing.T) {
	s := NewViewportSurface(Viewport{Width: 10, Height: 10})
	calls := 0
	cancel := s.OnBoundsChanged(func() { calls++ })

	s.SetView(LatLng{1, 1}, 3)
	cancel()
	cancel()
	s.SetView(LatLng{2, 2}, 3)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.ListenerCount())
}

func TestAnimator_RunsFitPanDone(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := []LatLng{{14.676, 121.0437}, {14.677, 121.044}, {14.678, 121.045}}
	var steps []Step
	err := Animator{Interval: time.Millisecond}.Run(context.Background(), path, func(s Step) {
		steps = append(steps, s)
	})
	require.NoError(t, err)

	require.Len(t, steps, len(path)+2)
	assert.Equal(t, StepFit, steps[0].Kind)
	assert.Equal(t, LatLng{14.676, 121.0437}, steps[0].Bounds.SouthWest)
	for i := range path {
		assert.Equal(t, StepPan, steps[i+1].Kind)
		assert.Equal(t, i, steps[i+1].Index)
		assert.Equal(t, path[i], *steps[i+1].Target)
	}
	assert.Equal(t, StepDone, steps[len(steps)-1].Kind)
}

func TestAnimator_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	path := []LatLng{{1, 1}, {2, 2}, {3, 3}}
	var pans int
	err := Animator{Interval: 5 * time.Millisecond}.Run(ctx, path, func(s Step) {
		if s.Kind == StepPan {
			pans++
			cancel()
		}
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, pans)
}

func TestAnimator_EmptyPath(t *testing.T) {
	err := Animator{}.Run(context.Background(), nil, func(Step) {})
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestAnimator_PlayMovesSurface(t *testing.T) {
	s := NewViewportSurface(Viewport{Center: LatLng{0, 0}, Zoom: 2, Width: 600, Height: 400})
	path := []LatLng{{14.676, 121.0437}, {14.678, 121.045}}

	require.NoError(t, Animator{Interval: time.Millisecond}.Play(context.Background(), s, path, nil))
	v := s.Viewport()
	assert.Equal(t, path[1], v.Center)
	assert.Greater(t, v.Zoom, float64(2))
}
