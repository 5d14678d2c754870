package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// miniScenarioYAML is a complete one-over match: Alphas 13/1, chased down
// by the Bravos with a ball to spare.
const miniScenarioYAML = `name: mini-chase
config:
  match_id: mini-chase
  overs_per_innings: 1
  team_a:
    id: team-a
    name: Alphas
    players:
      - id: a1
      - id: a2
      - id: a3
  team_b:
    id: team-b
    name: Bravos
    players:
      - id: b1
      - id: b2
      - id: b3
flow:
  - balls: "4 6 1 W 2 0"
  - balls: "1 1 4 4 4"
assertions:
  - type: result
    result: win
    winner: team-b
    description: Bravos won by 10 wickets
`

// failingScenarioYAML compiles fine but carries a wrong assertion.
const failingScenarioYAML = `name: wrong-total
config:
  match_id: wrong-total
  overs_per_innings: 1
  team_a:
    id: team-a
    name: Alphas
    players:
      - id: a1
      - id: a2
  team_b:
    id: team-b
    name: Bravos
    players:
      - id: b1
      - id: b2
flow:
  - balls: "1 1 1 1 1 1"
assertions:
  - type: score
    innings: 0
    runs: 99
`

// badTokenScenarioYAML fails token validation: 5 is not a scoreable token.
const badTokenScenarioYAML = `name: bad-token
config:
  match_id: bad-token
  overs_per_innings: 1
  team_a:
    id: team-a
    name: Alphas
    players:
      - id: a1
      - id: a2
  team_b:
    id: team-b
    name: Bravos
    players:
      - id: b1
      - id: b2
flow:
  - balls: "5"
assertions: []
`

// writeScenario drops a scenario file into dir and returns its path.
func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario %s: %v", name, err)
	}
	return path
}
