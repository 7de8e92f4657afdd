package models

import "time"

// Climb outcomes recorded by scouts, ranked by difficulty.
const (
	ClimbDeep    = "DEEP"
	ClimbShallow = "SHALLOW"
	ClimbParked  = "PARKED"
)

// ScoutingEntry is one team's observed performance in one match.
// Entries are created once by a scouting submission and never updated.
//
// All counter fields are pointers: a nil counter means the scout did not
// record that element, which is different from recording a zero. Absent
// counters are excluded from average denominators during aggregation.
type ScoutingEntry struct {
	ID          int64  `json:"id"`
	MatchNumber int    `json:"match_number"`
	TeamNumber  int    `json:"team_number"`
	Alliance    string `json:"alliance"`
	ScoutName   string `json:"scout_name"`

	// Autonomous phase
	AutoL1          *float64 `json:"auto_l1"`
	AutoL2          *float64 `json:"auto_l2"`
	AutoL3          *float64 `json:"auto_l3"`
	AutoL4          *float64 `json:"auto_l4"`
	AutoRemoveAlgae *float64 `json:"auto_remove_algae"`
	LeftStartingZone bool    `json:"left_starting_zone"`

	// Teleoperated phase
	L1             *float64 `json:"l1"`
	L2             *float64 `json:"l2"`
	L3             *float64 `json:"l3"`
	L4             *float64 `json:"l4"`
	RemoveAlgae    *float64 `json:"remove_algae"`
	DefensivePins  *float64 `json:"defensive_pins"`
	ProcessorScore *float64 `json:"processor_score"`
	NetScore       *float64 `json:"net_score"`

	// Endgame
	ClimbOption string `json:"climb_option"`

	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryFilter narrows scouting entry queries.
type EntryFilter struct {
	TeamNumber  int
	MatchNumber int
	Alliance    string
	Limit       int
	Offset      int
}
