package geo

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyPath is returned when there is nothing to animate
var ErrEmptyPath = errors.New("path has no waypoints")

// Animation step kinds
const (
	StepFit  = "fit"
	StepPan  = "pan"
	StepDone = "done"
)

// Step is one event of a path animation
type Step struct {
	Kind   string  `json:"kind"`
	Index  int     `json:"index"`
	Target *LatLng `json:"target,omitempty"`
	Bounds *Bounds `json:"bounds,omitempty"`
}

// Animator walks a path one waypoint per interval
type Animator struct {
	Interval time.Duration
}

// Run emits a fit step, then a pan step per waypoint on each tick, then done.
// It returns ctx.Err() if cancelled part-way.
func (a Animator) Run(ctx context.Context, path []LatLng, emit func(Step)) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	interval := a.Interval
	if interval <= 0 {
		interval = 800 * time.Millisecond
	}

	b, _ := BoundsOf(path...)
	emit(Step{Kind: StepFit, Index: -1, Bounds: &b})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := range path {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		target := path[i]
		emit(Step{Kind: StepPan, Index: i, Target: &target})
	}

	emit(Step{Kind: StepDone, Index: len(path) - 1})
	return nil
}

// Play drives a ViewportSurface through the animation
func (a Animator) Play(ctx context.Context, s *ViewportSurface, path []LatLng, emit func(Step)) error {
	return a.Run(ctx, path, func(step Step) {
		switch step.Kind {
		case StepFit:
			s.FitBounds(*step.Bounds)
		case StepPan:
			s.PanTo(*step.Target)
		}
		if emit != nil {
			emit(step)
		}
	})
}
