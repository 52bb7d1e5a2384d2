package parser

// Frame is one open ancestor in the hierarchy.
type Frame struct {
	Level       int
	Description string
	Code        string
}

// FrameStack tracks the open ancestors while scanning rows top to bottom.
// Frame levels are strictly increasing from bottom to top and, because
// Update never lets a row skip a level, frame i always has level i.
type FrameStack struct {
	frames []Frame
}

// Update closes every frame at level or deeper, pushes the new row and
// returns the level it was pushed at together with its hierarchy.
//
// A row whose signal skips past the current depth is attached directly below
// the nearest open ancestor, so the returned level may be lower than the
// requested one.
func (s *FrameStack) Update(level int, description, code string) (int, []string) {
	for len(s.frames) > 0 && s.frames[len(s.frames)-1].Level >= level {
		s.frames = s.frames[:len(s.frames)-1]
	}
	if level > len(s.frames) {
		level = len(s.frames)
	}
	s.frames = append(s.frames, Frame{Level: level, Description: description, Code: code})

	hierarchy := make([]string, level+1)
	for i := 0; i <= level; i++ {
		hierarchy[i] = s.frames[i].Description
	}
	return level, hierarchy
}

// Parent returns the frame directly enclosing the top frame.
func (s *FrameStack) Parent() (Frame, bool) {
	if len(s.frames) < 2 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-2], true
}

// Depth returns the number of open frames.
func (s *FrameStack) Depth() int {
	return len(s.frames)
}

// Reset closes all frames.
func (s *FrameStack) Reset() {
	s.frames = s.frames[:0]
}
