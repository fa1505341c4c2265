/*
Package anim provides simple animation primitives
*/
package anim

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

// Normal holds state for an animation between two states that
// is not invertible.
type Normal struct {
	time.Duration
	StartTime time.Time
}

// Progress returns the current progress through the animation
// as a value in the range [0,1]. While the animation runs it requests
// another frame.
func (n *Normal) Progress(gtx layout.Context) float32 {
	return n.progressAt(gtx, gtx.Now)
}

// Eased returns Progress shaped by a smoothstep curve, which starts and
// ends slowly.
func (n *Normal) Eased(gtx layout.Context) float32 {
	p := n.Progress(gtx)
	return p * p * (3 - 2*p)
}

func (n *Normal) progressAt(gtx layout.Context, now time.Time) float32 {
	if n.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(n.StartTime)
	if elapsed >= n.Duration {
		return 1
	}
	if elapsed < 0 {
		elapsed = 0
	}
	op.InvalidateOp{}.Add(gtx.Ops)
	return float32(elapsed) / float32(n.Duration)
}

// Start restarts the animation from the beginning.
func (n *Normal) Start(now time.Time) {
	n.StartTime = now
}

func (n *Normal) Animating(gtx layout.Context) bool {
	if n.Duration <= 0 {
		return false
	}
	return gtx.Now.Before(n.StartTime.Add(n.Duration))
}
