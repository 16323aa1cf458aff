package ubiart

// Tape is a named timeline of clips.
type Tape struct {
	// Clips is the list of clips in the tape, in physical order. Order is
	// significant when re-encoding.
	Clips []Clip

	// TapeClock is the number of ticks per beat.
	TapeClock uint32

	// TapeBarCount is the number of bars covered by the tape.
	TapeBarCount uint32

	FreeResourcesAfterPlay bool

	// MapName is the song the tape belongs to.
	MapName string

	SoundwichEvent string
}

// Copy returns a deep copy of the tape.
func (t *Tape) Copy() *Tape {
	c := *t
	c.Clips = make([]Clip, len(t.Clips))
	for i, clip := range t.Clips {
		c.Clips[i] = clip.Copy()
	}
	return &c
}

// ClipsOfKind returns the clips of the given kind, in order.
func (t *Tape) ClipsOfKind(kind ClipKind) []Clip {
	var clips []Clip
	for _, c := range t.Clips {
		if c.ClipKind() == kind {
			clips = append(clips, c)
		}
	}
	return clips
}

// Tracks returns the distinct track ids of the tape, in order of first
// appearance.
func (t *Tape) Tracks() []uint32 {
	seen := map[uint32]bool{}
	var tracks []uint32
	for _, c := range t.Clips {
		id := c.Header().TrackID
		if !seen[id] {
			seen[id] = true
			tracks = append(tracks, id)
		}
	}
	return tracks
}

// End returns the time at which the last clip of the tape ends.
func (t *Tape) End() int32 {
	var end int32
	for _, c := range t.Clips {
		h := c.Header()
		if e := h.StartTime + int32(h.Duration); e > end {
			end = e
		}
	}
	return end
}
