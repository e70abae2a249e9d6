package core

// Segment is one contiguous interval during which a single job occupies
// the processor.
type Segment struct {
	Pid   int
	Start int
	End   int
}

// Timeline accumulates execution segments against a virtual clock.
// Segments are chronological, non-overlapping and contiguous by
// construction; an idle processor jumps the clock with AdvanceTo instead
// of emitting a segment.
type Timeline struct {
	now      int
	segments []Segment
}

// Now returns the current virtual time.
func (t *Timeline) Now() int { return t.now }

// AdvanceTo moves the clock forward to at. The clock never rewinds, so
// calling it with a time already in the past is a no-op.
func (t *Timeline) AdvanceTo(at int) {
	if at > t.now {
		t.now = at
	}
}

// Run executes pid for d time units starting at the current clock, records
// the segment and returns it.
func (t *Timeline) Run(pid, d int) Segment {
	seg := Segment{Pid: pid, Start: t.now, End: t.now + d}
	t.segments = append(t.segments, seg)
	t.now = seg.End
	return seg
}

// Segments returns the recorded execution sequence in chronological order.
func (t *Timeline) Segments() []Segment { return t.segments }
