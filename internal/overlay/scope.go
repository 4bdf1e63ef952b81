package overlay

// Scope owns side effects acquired for one Open period. Close releases
// every acquisition exactly once, newest first. A closed Scope releases
// anything added later immediately.
type Scope struct {
	releases []func()
	closed   bool
}

// Add registers release to run when the scope closes.
func (s *Scope) Add(release func()) {
	if release == nil {
		return
	}
	if s.closed {
		release()
		return
	}
	s.releases = append(s.releases, release)
}

// Close runs the pending releases. Further calls do nothing.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}

// Closed reports whether Close has run.
func (s *Scope) Closed() bool {
	return s.closed
}
