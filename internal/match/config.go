package match

// Player is one member of a team roster.
type Player struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Team is a named roster of players.
type Team struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Players []Player `json:"players" yaml:"players"`
}

// PlayerIDs returns the roster ids in declaration order.
func (t Team) PlayerIDs() []string {
	ids := make([]string, len(t.Players))
	for i, p := range t.Players {
		ids[i] = p.ID
	}
	return ids
}

// PowerplayConfig overrides the proportional phase boundaries.
// Overs 1..PowerplayOvers are the powerplay; overs after MiddleEndOver are
// the death phase.
type PowerplayConfig struct {
	PowerplayOvers int `json:"powerplay_overs" yaml:"powerplay_overs"`
	MiddleEndOver  int `json:"middle_end_over" yaml:"middle_end_over"`
}

// MatchConfig is everything needed to seed an initial MatchState.
//
// TeamA bats first. The opener/bowler ids are optional: when absent the
// engine adopts them from the identity fields of the first events it sees.
type MatchConfig struct {
	MatchID string `json:"match_id" yaml:"match_id"`
	TeamA   Team   `json:"team_a" yaml:"team_a"`
	TeamB   Team   `json:"team_b" yaml:"team_b"`

	OversPerInnings int              `json:"overs_per_innings" yaml:"overs_per_innings"`
	Powerplay       *PowerplayConfig `json:"powerplay,omitempty" yaml:"powerplay,omitempty"`

	InitialStrikerID    string `json:"initial_striker_id,omitempty" yaml:"initial_striker_id,omitempty"`
	InitialNonStrikerID string `json:"initial_non_striker_id,omitempty" yaml:"initial_non_striker_id,omitempty"`
	InitialBowlerID     string `json:"initial_bowler_id,omitempty" yaml:"initial_bowler_id,omitempty"`
}
