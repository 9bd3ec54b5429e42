// Package browser drives a live page through go-rod.
package browser

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Viewport adapts a rod page to nav.Viewport. Evaluation errors are logged
// and reported as an unmounted section or a zero offset.
type Viewport struct {
	page   *rod.Page
	logger *zap.Logger
}

// NewViewport wraps page.
func NewViewport(page *rod.Page, logger *zap.Logger) *Viewport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewport{page: page, logger: logger}
}

// ScrollY returns window.scrollY.
func (v *Viewport) ScrollY() float64 {
	res, err := v.page.Eval(`() => window.scrollY`)
	if err != nil {
		v.logger.Warn("reading scroll offset", zap.Error(err))
		return 0
	}
	return res.Value.Num()
}

// OffsetTop returns the element's document offset.
func (v *Viewport) OffsetTop(id string) (float64, bool) {
	res, err := v.page.Eval(`(id) => {
		const el = document.getElementById(id);
		return el ? el.offsetTop : null;
	}`, id)
	if err != nil {
		v.logger.Warn("reading section offset", zap.String("section", id), zap.Error(err))
		return 0, false
	}
	if res.Value.Nil() {
		return 0, false
	}
	return res.Value.Num(), true
}

// ScrollIntoView smooth-scrolls the element to the top of the viewport.
func (v *Viewport) ScrollIntoView(id string) bool {
	res, err := v.page.Eval(`(id) => {
		const el = document.getElementById(id);
		if (!el) return false;
		el.scrollIntoView({ behavior: 'smooth' });
		return true;
	}`, id)
	if err != nil {
		v.logger.Warn("scrolling to section", zap.String("section", id), zap.Error(err))
		return false
	}
	return res.Value.Bool()
}

// Session is a headless browser with one page open.
type Session struct {
	browser *rod.Browser
	Page    *rod.Page
}

// Open launches headless Chrome and loads url at the given viewport size.
func Open(url string, width, height int, timeout time.Duration) (*Session, error) {
	path, _ := launcher.LookPath()
	u, err := launcher.New().Bin(path).Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	page, err := b.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("opening %s: %w", url, err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
	}); err != nil {
		b.Close()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		b.Close()
		return nil, fmt.Errorf("waiting for %s: %w", url, err)
	}
	return &Session{browser: b, Page: page}, nil
}

// WaitScrollIdle blocks until window.scrollY stops changing or timeout passes.
func (s *Session) WaitScrollIdle(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	last := -1.0
	for time.Now().Before(deadline) {
		res, err := s.Page.Eval(`() => window.scrollY`)
		if err != nil {
			return
		}
		y := res.Value.Num()
		if y == last {
			return
		}
		last = y
		time.Sleep(100 * time.Millisecond)
	}
}

// Close shuts the browser down.
func (s *Session) Close() error {
	return s.browser.Close()
}
