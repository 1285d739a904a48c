// Package trace records the simulated state of the player tick by tick so
// runs can be saved, inspected and compared.
package trace

// Frame records the player's state after one tick
type Frame struct {
	F      uint32  `json:"f"`           // Frame number
	X      float64 `json:"x"`           // Position
	Y      float64 `json:"y"`           //
	VX     float64 `json:"vx"`          // Velocity
	VY     float64 `json:"vy"`          //
	State  string  `json:"s"`           // Motion state
	Ground bool    `json:"g,omitempty"` // OnGround
}

// TraceData contains a whole recorded run
type TraceData struct {
	Version   string  `json:"version"`
	Stage     string  `json:"stage"`
	TickRate  int     `json:"tickRate"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}

// FirstDivergence returns the index of the first frame at which a and b
// differ, or -1 if they are identical. A length mismatch diverges at the
// end of the shorter run.
func FirstDivergence(a, b TraceData) int {
	n := min(len(a.Frames), len(b.Frames))
	for i := 0; i < n; i++ {
		if a.Frames[i] != b.Frames[i] {
			return i
		}
	}
	if len(a.Frames) != len(b.Frames) {
		return n
	}
	return -1
}
