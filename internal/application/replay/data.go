package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	W  bool `json:"w,omitempty"`  // Walk
	J  bool `json:"j,omitempty"`  // Jump
	P  bool `json:"p,omitempty"`  // Primary pressed
	S  bool `json:"s,omitempty"`  // Secondary pressed
	PS bool `json:"ps,omitempty"` // Pause pressed
}

// ReplayData contains all data needed to replay an arena session
type ReplayData struct {
	Version   string       `json:"version"`
	Arena     string       `json:"arena"`
	TickRate  int          `json:"tickRate"` // ticks per second
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
