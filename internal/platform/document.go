package platform

// OverflowProperty is the document style property the scroll lock manages.
const OverflowProperty = "overflow"

// Document exposes document-level style properties.
type Document interface {
	Style(property string) (value string, ok bool)
	SetStyle(property, value string)
	RemoveStyle(property string)
}

// MemoryDocument is a Document backed by a map.
type MemoryDocument struct {
	styles map[string]string
}

// NewMemoryDocument returns a document seeded with styles.
func NewMemoryDocument(styles map[string]string) *MemoryDocument {
	d := &MemoryDocument{styles: make(map[string]string, len(styles))}
	for k, v := range styles {
		d.styles[k] = v
	}
	return d
}

func (d *MemoryDocument) Style(property string) (string, bool) {
	v, ok := d.styles[property]
	return v, ok
}

func (d *MemoryDocument) SetStyle(property, value string) {
	d.styles[property] = value
}

func (d *MemoryDocument) RemoveStyle(property string) {
	delete(d.styles, property)
}

// Snapshot copies the current styles.
func (d *MemoryDocument) Snapshot() map[string]string {
	out := make(map[string]string, len(d.styles))
	for k, v := range d.styles {
		out[k] = v
	}
	return out
}

// ScrollLock suppresses document scrolling while at least one holder is
// active. The first Acquire records the prior overflow value; the last
// release restores it exactly, including its absence.
type ScrollLock struct {
	doc      Document
	holders  int
	prior    string
	hadPrior bool
}

// NewScrollLock returns a lock over doc.
func NewScrollLock(doc Document) *ScrollLock {
	return &ScrollLock{doc: doc}
}

// Acquire takes one hold on the lock and returns its release function.
// Calling the release more than once has no further effect.
func (s *ScrollLock) Acquire() func() {
	if s.holders == 0 {
		s.prior, s.hadPrior = s.doc.Style(OverflowProperty)
		s.doc.SetStyle(OverflowProperty, "hidden")
	}
	s.holders++

	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.release()
	}
}

func (s *ScrollLock) release() {
	if s.holders == 0 {
		return
	}
	s.holders--
	if s.holders > 0 {
		return
	}
	if s.hadPrior {
		s.doc.SetStyle(OverflowProperty, s.prior)
	} else {
		s.doc.RemoveStyle(OverflowProperty)
	}
	s.prior, s.hadPrior = "", false
}

// Held returns the number of active holds.
func (s *ScrollLock) Held() int {
	return s.holders
}
