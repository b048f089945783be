package obby

// Snapshot contains the observable game state for replays and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Lives      int
	Coins      int
	Deaths     int
	GameOver   bool
	Paused     bool
	CenterText string

	// Player state, zero when no player is active.
	HasPlayer bool
	PlayerX   float32
	PlayerY   float32
	VelX      float32
	VelY      float32
	OnFloor   bool
	Behavior  string

	Entities int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	s := Snapshot{
		Tick:     g.tick,
		Score:    st.Score,
		Level:    st.Level,
		Lives:    st.Lives,
		Deaths:   g.deaths,
		GameOver: st.GameOver,
		Paused:   st.Paused,
	}
	if g.world == nil {
		return s
	}
	s.Coins = g.world.Coins
	s.CenterText = g.world.CenterText
	s.Entities = len(g.world.Entities())
	if p, ok := g.world.Player(); ok {
		s.HasPlayer = true
		s.PlayerX, s.PlayerY = p.Pos.X(), p.Pos.Y()
		s.VelX, s.VelY = p.Vel.X(), p.Vel.Y()
		s.OnFloor = p.OnFloor
		s.Behavior = p.Behavior.String()
	}
	return s
}
