package bot

import (
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// timeLayout renders resume timestamps in admin replies
const timeLayout = "2006-01-02 15:04:05"

// Pause holds the process-wide reply suppression window. The zero window is
// active. No timers run, expiry is checked lazily on each inbound event.
// Not persisted, a restart resumes the bot.
type Pause struct {
	loc *time.Location

	mu       sync.Mutex
	until    time.Time
	pausedBy string

	nowFn func() time.Time // replaced in tests
}

// PauseInfo is a point-in-time view of the pause window
type PauseInfo struct {
	Paused    bool
	Until     time.Time
	Remaining time.Duration
	PausedBy  string
}

// NewPause creates pause state reporting times in the given timezone
func NewPause(loc *time.Location) *Pause {
	if loc == nil {
		loc = time.UTC
	}
	return &Pause{loc: loc, nowFn: time.Now}
}

// Set suppresses replies for the given duration and returns the resume time
func (p *Pause) Set(d time.Duration, adminID string) time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.until = p.nowFn().In(p.loc).Add(d)
	p.pausedBy = adminID
	lgr.Printf("[INFO] bot paused by %s until %s", adminID, p.until.Format(timeLayout))
	return p.until
}

// Clear resumes replies immediately
func (p *Pause) Clear(adminID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.until = time.Time{}
	p.pausedBy = ""
	lgr.Printf("[INFO] bot resumed by %s", adminID)
}

// Active reports whether the bot is inside a pause window, clearing the
// window once it expired
func (p *Pause) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.until.IsZero() {
		return false
	}
	if !p.nowFn().Before(p.until) {
		lgr.Printf("[INFO] pause window expired, auto-resuming")
		p.until = time.Time{}
		p.pausedBy = ""
		return false
	}
	return true
}

// Info describes the current pause window without mutating it. An expired
// window reports as not paused.
func (p *Pause) Info() PauseInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.nowFn()
	if p.until.IsZero() || !now.Before(p.until) {
		return PauseInfo{}
	}
	return PauseInfo{
		Paused:    true,
		Until:     p.until,
		Remaining: p.until.Sub(now),
		PausedBy:  p.pausedBy,
	}
}
