package overlay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/platform"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

type element struct{ name string }

type fixture struct {
	bus    *platform.KeyBus
	doc    *platform.MemoryDocument
	lock   *platform.ScrollLock
	closes int
}

func newFixture() *fixture {
	doc := platform.NewMemoryDocument(map[string]string{platform.OverflowProperty: "auto"})
	return &fixture{
		bus:  platform.NewKeyBus(),
		doc:  doc,
		lock: platform.NewScrollLock(doc),
	}
}

func (f *fixture) controller(mutate func(*Options)) *Controller {
	opts := DefaultOptions()
	opts.Keys = f.bus
	opts.Scroll = f.lock
	opts.OnClose = func() { f.closes++ }
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts)
}

func TestControllerStartsClosed(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(nil)

	assert.Equal(t, Closed, c.State())
	assert.False(t, c.IsOpen())
	assert.Nil(t, c.Classes())
	assert.Equal(t, 0, f.bus.Len())
	assert.Equal(t, 0, f.lock.Held())
}

func TestOpenAcquiresAndCloseReleasesSideEffects(t *testing.T) {
	t.Parallel()

	f := newFixture()
	before := f.doc.Snapshot()
	c := f.controller(nil)

	c.SetOpen(true)
	require.True(t, c.IsOpen())
	assert.Equal(t, 1, f.bus.Len())
	overflow, _ := f.doc.Style(platform.OverflowProperty)
	assert.Equal(t, "hidden", overflow)

	c.SetOpen(true)
	assert.Equal(t, 1, f.bus.Len(), "repeating the open flag must not re-acquire")
	assert.Equal(t, 1, f.lock.Held())

	c.SetOpen(false)
	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, f.bus.Len())
	assert.Equal(t, before, f.doc.Snapshot())

	c.SetOpen(false)
	assert.Equal(t, before, f.doc.Snapshot())
}

func TestEscapeRequestsCloseWithoutChangingState(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(nil)
	c.SetOpen(true)

	f.bus.Dispatch(platform.KeyEvent{Key: "a"})
	assert.Equal(t, 0, f.closes)

	f.bus.Dispatch(platform.KeyEvent{Key: platform.KeyEscape})
	assert.Equal(t, 1, f.closes)
	assert.True(t, c.IsOpen(), "the caller owns the open flag")

	c.SetOpen(false)
	f.bus.Dispatch(platform.KeyEvent{Key: platform.KeyEscape})
	assert.Equal(t, 1, f.closes, "no listener may fire after leaving Open")
}

func TestEscapeIgnoredWhenDisabled(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(func(o *Options) { o.DismissOnEscape = false })
	c.SetOpen(true)

	assert.Zero(t, f.bus.Len(), "no key listener without escape dismissal")

	f.bus.Dispatch(platform.KeyEvent{Key: platform.KeyEscape})
	assert.Equal(t, 0, f.closes)

	c.SetOpen(false)
	assert.Zero(t, f.bus.Len())
}

func TestBackdropClickTargetsBackdropOnly(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(nil)
	backdrop := &element{name: "backdrop"}
	content := &element{name: "content"}

	assert.False(t, c.HandleBackdropClick(ClickEvent{Target: backdrop, CurrentTarget: backdrop}), "closed overlays ignore clicks")

	c.SetOpen(true)
	assert.False(t, c.HandleBackdropClick(ClickEvent{Target: content, CurrentTarget: backdrop}))
	assert.Equal(t, 0, f.closes)

	assert.True(t, c.HandleBackdropClick(ClickEvent{Target: backdrop, CurrentTarget: backdrop}))
	assert.Equal(t, 1, f.closes)
}

func TestBackdropClickIgnoredWhenDisabled(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(func(o *Options) { o.DismissOnBackdrop = false })
	backdrop := &element{name: "backdrop"}
	c.SetOpen(true)

	assert.False(t, c.HandleBackdropClick(ClickEvent{Target: backdrop, CurrentTarget: backdrop}))
	assert.Equal(t, 0, f.closes)
}

func TestMissingCloseCallbackIsNoOp(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(func(o *Options) { o.OnClose = nil })
	backdrop := &element{}
	c.SetOpen(true)

	assert.NotPanics(t, func() {
		f.bus.Dispatch(platform.KeyEvent{Key: platform.KeyEscape})
		c.HandleBackdropClick(ClickEvent{Target: backdrop, CurrentTarget: backdrop})
		c.RequestClose()
	})
}

func TestDisposeReleasesAndStaysClosed(t *testing.T) {
	t.Parallel()

	f := newFixture()
	before := f.doc.Snapshot()
	c := f.controller(nil)
	c.SetOpen(true)

	c.Dispose()
	c.Dispose()
	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, f.bus.Len())
	assert.Equal(t, before, f.doc.Snapshot())

	c.SetOpen(true)
	assert.False(t, c.IsOpen())
	assert.Equal(t, 0, f.lock.Held())
}

func TestTwoOverlaysShareScrollLock(t *testing.T) {
	t.Parallel()

	f := newFixture()
	first := f.controller(nil)
	second := f.controller(nil)

	first.SetOpen(true)
	second.SetOpen(true)
	first.SetOpen(false)

	overflow, _ := f.doc.Style(platform.OverflowProperty)
	assert.Equal(t, "hidden", overflow, "closing one overlay must not unlock scrolling for the other")

	second.SetOpen(false)
	overflow, _ = f.doc.Style(platform.OverflowProperty)
	assert.Equal(t, "auto", overflow)
}

func TestClassesUseOverlayComposition(t *testing.T) {
	t.Parallel()

	f := newFixture()
	c := f.controller(func(o *Options) {
		o.Style = style.Configuration{
			Size:       style.SizeLG,
			MaxWidth:   style.SizeXL,
			Align:      style.AlignCenter,
			Rounded:    style.SizeMD,
			Background: style.BackgroundSurface,
			Dark:       true,
		}
	})
	c.SetOpen(true)

	assert.Equal(t, []string{
		"modal--rounded-md",
		"modal--bg-surface",
		"modal--size-lg",
		"modal--dark",
		"modal--open",
	}, c.Classes())
	assert.Equal(t, []string{"modal-backdrop--dark", "modal-backdrop--open"}, c.BackdropClasses())
}

func TestControllerLogsTransitions(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	f := newFixture()
	c := f.controller(func(o *Options) { o.Logger = log })
	c.SetOpen(true)
	c.SetOpen(false)

	assert.Contains(t, buf.String(), `"state":"open"`)
	assert.Contains(t, buf.String(), `"reason":"flag"`)
}

func TestScopeReleasesOnceInReverseOrder(t *testing.T) {
	t.Parallel()

	var order []string
	s := &Scope{}
	s.Add(func() { order = append(order, "listener") })
	s.Add(func() { order = append(order, "lock") })
	s.Add(nil)

	s.Close()
	s.Close()
	assert.Equal(t, []string{"lock", "listener"}, order)
	assert.True(t, s.Closed())

	s.Add(func() { order = append(order, "late") })
	assert.Equal(t, []string{"lock", "listener", "late"}, order)
}
