package luminance

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// RefreshEvent describes one refresh attempt.
type RefreshEvent struct {
	Time       float64
	Position   r3.Vec
	Resolution int
	Forced     bool
	Err        error
}

// RefreshObserver is notified after every refresh attempt.
type RefreshObserver interface {
	OnRefresh(RefreshEvent)
}

// RefreshPolicy decides when the stored capture is stale and refreshes it.
//
// Capture state changes only after a capture has been rendered and stored
// successfully. A failed attempt leaves both the state and the stored faces
// as they were, so the next query tries again.
type RefreshPolicy struct {
	provider CaptureProvider
	store    *cubemap.Faces
	logger   *slog.Logger
	observer RefreshObserver

	refreshTime     float64
	refreshDistance float64

	captured bool
	lastTime float64
	lastPos  r3.Vec
	count    int
}

// NewRefreshPolicy returns a policy that refreshes store from provider.
func NewRefreshPolicy(provider CaptureProvider, store *cubemap.Faces, refreshTime, refreshDistance float64) *RefreshPolicy {
	return &RefreshPolicy{
		provider:        provider,
		store:           store,
		logger:          slog.Default(),
		refreshTime:     refreshTime,
		refreshDistance: refreshDistance,
	}
}

// SetThresholds changes the staleness thresholds. It does not refresh.
func (p *RefreshPolicy) SetThresholds(refreshTime, refreshDistance float64) {
	p.refreshTime = refreshTime
	p.refreshDistance = refreshDistance
}

// Stale reports whether the capture must be refreshed before sampling.
func (p *RefreshPolicy) Stale() bool {
	if !p.captured {
		return true
	}
	if p.provider.Now()-p.lastTime > p.refreshTime {
		return true
	}
	return r3.Norm(r3.Sub(p.provider.Position(), p.lastPos)) > p.refreshDistance
}

// TryRefresh refreshes the capture if it is stale. It reports whether a
// refresh succeeded.
func (p *RefreshPolicy) TryRefresh() (bool, error) {
	if !p.Stale() {
		return false, nil
	}
	if err := p.refresh(false); err != nil {
		return false, err
	}
	return true, nil
}

// Refresh captures unconditionally.
func (p *RefreshPolicy) Refresh() error {
	return p.refresh(true)
}

func (p *RefreshPolicy) refresh(forced bool) error {
	now := p.provider.Now()
	pos := p.provider.Position()

	ev := RefreshEvent{Time: now, Position: pos, Forced: forced}
	err := p.capture()
	if err != nil {
		ev.Err = err
		if errors.Is(err, ErrCaptureUnavailable) {
			p.logger.Debug("capture skipped", "error", err)
		} else {
			p.logger.Warn("capture failed", "error", err)
		}
	} else {
		p.captured = true
		p.lastTime = now
		p.lastPos = pos
		p.count++
		ev.Resolution = p.store.Resolution()
		p.logger.Debug("capture refreshed",
			"time", now,
			"resolution", ev.Resolution,
			"forced", forced,
		)
	}

	if p.observer != nil {
		p.observer.OnRefresh(ev)
	}
	return err
}

func (p *RefreshPolicy) capture() error {
	c, err := p.provider.Capture()
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := p.store.Replace(c.Resolution, c.Faces); err != nil {
		return fmt.Errorf("store capture: %w", err)
	}
	return nil
}

// LastCapture returns the time and position of the last successful capture.
// ok is false if nothing was captured yet.
func (p *RefreshPolicy) LastCapture() (t float64, pos r3.Vec, ok bool) {
	return p.lastTime, p.lastPos, p.captured
}

// Count returns the number of successful refreshes.
func (p *RefreshPolicy) Count() int {
	return p.count
}
