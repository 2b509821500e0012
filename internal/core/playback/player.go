package playback

// Status is the playback status of a Player.
type Status int

const (
	// StatusIdle covers both "never started" and "paused".
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Player is the playback state machine. The cursor is always within
// [-1, count-1]; -1 means nothing has been revealed.
//
// Player does not own a timer. Callers schedule Tick while Running reports
// true and cancel the schedule as soon as it reports false.
type Player struct {
	count  int
	cursor int
	status Status
}

// NewPlayer returns an idle player over count sentences.
func NewPlayer(count int) *Player {
	return &Player{
		count:  max(count, 0),
		cursor: -1,
		status: StatusIdle,
	}
}

// Cursor returns the current cursor position.
func (p *Player) Cursor() int { return p.cursor }

// Status returns the current status.
func (p *Player) Status() Status { return p.status }

// Count returns the sentence count the player is stepping through.
func (p *Player) Count() int { return p.count }

// Running reports whether ticks should be scheduled.
func (p *Player) Running() bool { return p.status == StatusRunning }

// Completed reports whether playback reached the last sentence.
func (p *Player) Completed() bool { return p.status == StatusCompleted }

// Started reports whether playback has moved away from the initial
// Idle(-1) state. A paused player and a player stepped back to -1 are not
// otherwise distinguished.
func (p *Player) Started() bool {
	return p.status != StatusIdle || p.cursor >= 0
}

// TogglePlayPause restarts a completed player from -1, otherwise flips
// between running and paused while keeping the cursor. Starting with no
// sentences completes immediately.
func (p *Player) TogglePlayPause() {
	switch p.status {
	case StatusCompleted:
		p.cursor = -1
		p.start()
	case StatusRunning:
		p.status = StatusIdle
	default:
		p.start()
	}
}

func (p *Player) start() {
	if p.count == 0 {
		p.cursor = -1
		p.status = StatusCompleted
		return
	}
	p.status = StatusRunning
}

// Tick advances the cursor by one while running and reports whether the
// state changed. Reaching the last index completes playback; ticks in any
// other status are ignored.
func (p *Player) Tick() bool {
	if p.status != StatusRunning {
		return false
	}

	if p.count == 0 {
		p.cursor = -1
		p.status = StatusCompleted
		return true
	}

	if p.cursor < p.count-1 {
		p.cursor++
	}
	if p.cursor >= p.count-1 {
		p.cursor = p.count - 1
		p.status = StatusCompleted
	}
	return true
}

// StepBack moves the cursor back one sentence and stops playback. At -1 it
// only stops playback. Reports whether the state changed.
func (p *Player) StepBack() bool {
	changed := false
	if p.status == StatusRunning {
		p.status = StatusIdle
		changed = true
	}

	if p.cursor < 0 {
		return changed
	}

	p.cursor--
	if p.status == StatusCompleted {
		p.status = StatusIdle
	}
	return true
}

// Complete jumps to the last sentence and stops playback.
func (p *Player) Complete() {
	p.cursor = p.count - 1
	p.status = StatusCompleted
}

// Reset returns the player to Idle(-1).
func (p *Player) Reset() {
	p.cursor = -1
	p.status = StatusIdle
}

// SetCount updates the sentence count after the text changed. The cursor is
// clamped into the new range. A running player whose cursor lands on the
// last index completes; a completed player with sentences left to reveal
// becomes paused.
func (p *Player) SetCount(count int) {
	p.count = max(count, 0)
	p.cursor = min(p.cursor, p.count-1)

	last := p.count - 1
	switch p.status {
	case StatusRunning:
		if p.cursor >= last {
			p.status = StatusCompleted
		}
	case StatusCompleted:
		if p.cursor < last {
			p.status = StatusIdle
		}
	}
}
