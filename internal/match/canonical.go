package match

import (
	"bytes"
	"fmt"
	"sort"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces canonical JSON for hashing and byte-for-byte
// state comparison.
//
// Key differences from standard json.Marshal:
//  1. Object keys sorted by UTF-16 code units (not UTF-8 bytes)
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. No floats (returns error) - derived rates are formatted as strings
//     before they reach this function
//  5. No null (returns error) - optional fields are omitted, not nulled
//
// This is the only serialization the determinism validator and the golden
// snapshots use. Standard json.Marshal output is for humans; this is for
// equality.
func MarshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is forbidden in canonical JSON")
	case string:
		return marshalCanonicalString(val), nil
	case bool:
		if val {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	case int:
		return fmt.Appendf(nil, "%d", val), nil
	case int64:
		return fmt.Appendf(nil, "%d", val), nil
	case float64, float32:
		return nil, fmt.Errorf("floats are forbidden in canonical JSON (got %v)", val)
	case []any:
		return marshalCanonicalArray(val)
	case []string:
		arr := make([]any, len(val))
		for i, s := range val {
			arr[i] = s
		}
		return marshalCanonicalArray(arr)
	case map[string]any:
		return marshalCanonicalObject(val)
	default:
		return nil, fmt.Errorf("unsupported type %T in canonical JSON", v)
	}
}

func marshalCanonicalArray(arr []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := MarshalCanonical(elem)
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalObject(obj map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessUTF16(keys[i], keys[j]) })

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(marshalCanonicalString(k))
		buf.WriteByte(':')
		b, err := MarshalCanonical(obj[k])
		if err != nil {
			return nil, fmt.Errorf("object[%q]: %w", k, err)
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// lessUTF16 compares strings by UTF-16 code units, the canonical JSON key
// ordering. This differs from byte order only for characters outside the BMP.
func lessUTF16(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

// marshalCanonicalString NFC-normalizes and JSON-escapes a string with the
// minimal escape set (no HTML escaping).
func marshalCanonicalString(s string) []byte {
	s = norm.NFC.String(s)
	var buf bytes.Buffer
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
	return buf.Bytes()
}

// CanonicalMap flattens a MatchState into the map form MarshalCanonical
// accepts. Optional fields are omitted when unset so that two structurally
// equal states produce identical maps.
func (s *MatchState) CanonicalMap() map[string]any {
	m := map[string]any{
		"match_id":        s.MatchID,
		"status":          string(s.Status),
		"phase":           string(s.Phase),
		"version":         s.Version,
		"current_innings": s.CurrentInnings,
		"total_overs":     s.TotalOvers,
		"team_order":      append([]string(nil), s.TeamOrder...),
		"innings":         inningsListMap(s.Innings),
	}
	if s.Powerplay != nil {
		m["powerplay"] = map[string]any{
			"powerplay_overs": s.Powerplay.PowerplayOvers,
			"middle_end_over": s.Powerplay.MiddleEndOver,
		}
	}
	if len(s.SuperOvers) > 0 {
		m["super_overs"] = inningsListMap(s.SuperOvers)
	}
	teams := make(map[string]any, len(s.Teams))
	for id, t := range s.Teams {
		teams[id] = map[string]any{"name": t.Name, "players": playerIDs(t)}
	}
	m["teams"] = teams
	if s.Interruption != nil {
		m["interruption"] = map[string]any{
			"revised_overs":  s.Interruption.RevisedOvers,
			"revised_target": s.Interruption.RevisedTarget,
		}
	}
	if s.Result != nil {
		res := map[string]any{
			"type":        string(s.Result.Type),
			"description": s.Result.Description,
		}
		if s.Result.WinnerTeamID != "" {
			res["winner_team_id"] = s.Result.WinnerTeamID
		}
		m["result"] = res
	}
	return m
}

func playerIDs(t Team) []any {
	ids := make([]any, len(t.Players))
	for i, p := range t.Players {
		ids[i] = p.ID
	}
	return ids
}

func inningsListMap(list []*InningsState) []any {
	out := make([]any, len(list))
	for i, in := range list {
		out[i] = inningsMap(in)
	}
	return out
}

func inningsMap(in *InningsState) map[string]any {
	m := map[string]any{
		"batting_team_id": in.BattingTeamID,
		"bowling_team_id": in.BowlingTeamID,
		"runs":            in.Runs,
		"wickets":         in.Wickets,
		"balls":           in.Balls,
		"done":            in.Done,
		"over_runs":       in.OverRuns,
		"extras": map[string]any{
			"wides":     in.Extras.Wides,
			"no_balls":  in.Extras.NoBalls,
			"byes":      in.Extras.Byes,
			"leg_byes":  in.Extras.LegByes,
			"penalties": in.Extras.Penalties,
		},
		"batting_order": append([]string(nil), in.BattingOrder...),
	}
	if in.StrikerID != "" {
		m["striker_id"] = in.StrikerID
	}
	if in.NonStrikerID != "" {
		m["non_striker_id"] = in.NonStrikerID
	}
	if in.BowlerID != "" {
		m["bowler_id"] = in.BowlerID
	}
	batters := make(map[string]any, len(in.Batters))
	for id, b := range in.Batters {
		bm := map[string]any{
			"runs":  b.Runs,
			"balls": b.Balls,
			"fours": b.Fours,
			"sixes": b.Sixes,
			"out":   b.Out,
		}
		if b.Out {
			bm["dismissal"] = string(b.Dismissal)
			if b.FielderID != "" {
				bm["fielder_id"] = b.FielderID
			}
			if b.BowlerID != "" {
				bm["bowler_id"] = b.BowlerID
			}
		}
		batters[id] = bm
	}
	m["batters"] = batters
	bowlers := make(map[string]any, len(in.Bowlers))
	for id, b := range in.Bowlers {
		bowlers[id] = map[string]any{
			"balls":         b.Balls,
			"maidens":       b.Maidens,
			"runs_conceded": b.RunsConceded,
			"wickets":       b.Wickets,
		}
	}
	m["bowlers"] = bowlers
	return m
}
