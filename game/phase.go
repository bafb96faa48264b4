package game

// Phase is the run state
// Setup lasts until the player spawns; Running ends in GameOver, which is terminal
type Phase int32

const (
	PhaseSetup Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
