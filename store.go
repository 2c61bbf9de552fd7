package scribe

// Store owns all live strokes. Iteration order is insertion order, which
// makes nearest-stroke tie-breaking deterministic: on an exact distance tie
// the stroke added first wins.
//
// Storage is a plain ordered slice. Lookups and removals are linear, which
// is fine at interactive stroke counts; Nearest dominates per-frame cost
// anyway.
type Store struct {
	strokes []*Stroke
}

// NewStore creates an empty stroke store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a stroke. Nil strokes are ignored.
func (s *Store) Add(st *Stroke) {
	if st == nil {
		return
	}
	s.strokes = append(s.strokes, st)
}

// Remove deletes the stroke with the given id. No-op when absent.
func (s *Store) Remove(id uint32) {
	for i, st := range s.strokes {
		if st.ID == id {
			copy(s.strokes[i:], s.strokes[i+1:])
			s.strokes[len(s.strokes)-1] = nil
			s.strokes = s.strokes[:len(s.strokes)-1]
			return
		}
	}
}

// Get returns the stroke with the given id, or nil.
func (s *Store) Get(id uint32) *Stroke {
	for _, st := range s.strokes {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// Len returns the number of live strokes.
func (s *Store) Len() int {
	return len(s.strokes)
}

// Each calls fn for every stroke in insertion order.
func (s *Store) Each(fn func(*Stroke)) {
	for _, st := range s.strokes {
		fn(st)
	}
}

// TotalPoints returns the point count summed over all strokes. This bounds
// the cost of one Nearest call.
func (s *Store) TotalPoints() int {
	n := 0
	for _, st := range s.strokes {
		n += len(st.Points)
	}
	return n
}

// Nearest finds the stroke whose polyline passes closest to query, searching
// every segment of every stroke with clamped point-to-segment projection.
// Returns (id, true) only when the global minimum distance is strictly below
// maxDist. Strokes with fewer than two points contribute no segments and are
// never returned.
//
// Cost is O(total points across all strokes) per call. Called once per frame
// this holds up well into tens of thousands of points; beyond that a spatial
// index would be needed.
func (s *Store) Nearest(query Vec3, maxDist float64) (uint32, bool) {
	best := maxDist
	var bestID uint32
	found := false

	for _, st := range s.strokes {
		pts := st.Points
		for i := 1; i < len(pts); i++ {
			// Strict < keeps the first-added stroke on exact ties.
			if d := distanceToSegment(query, pts[i-1], pts[i]); d < best {
				best = d
				bestID = st.ID
				found = true
			}
		}
	}
	return bestID, found
}
