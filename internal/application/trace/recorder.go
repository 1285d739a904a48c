package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ilan-segal/platform-fighter/internal/ecs"
)

// Version of the trace file format
const Version = "1.0"

// Recorder captures the player's state each tick
type Recorder struct {
	data      TraceData
	recording bool
}

// NewRecorder creates a new recorder
func NewRecorder(stage string, tickRate int) *Recorder {
	return &Recorder{
		data: TraceData{
			Version:   Version,
			Stage:     stage,
			TickRate:  tickRate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records the player's state after the tick that just ran
func (r *Recorder) RecordFrame(w *ecs.World) {
	if !r.recording {
		return
	}

	id := w.PlayerID
	pos, ok := w.Position[id]
	if !ok {
		return
	}
	vel := w.Velocity[id]

	f := Frame{
		F:      uint32(w.Frame),
		X:      pos.X,
		Y:      pos.Y,
		VX:     vel.X,
		VY:     vel.Y,
		Ground: w.Movement[id].OnGround,
	}
	if m, ok := w.Motion[id]; ok {
		f.State = m.State().String()
	}

	r.data.Frames = append(r.data.Frames, f)
}

// Data returns the recorded trace
func (r *Recorder) Data() TraceData {
	return r.data
}

// Save writes the trace data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Load reads trace data from a file
func Load(filename string) (*TraceData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data TraceData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}

	return &data, nil
}
