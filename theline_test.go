package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linePlayers = []string{"player1", "player2", "player3"}

func makeLine(values ...float64) []PlacedLineEvent {
	line := make([]PlacedLineEvent, 0, len(values))
	for i, v := range values {
		line = append(line, PlacedLineEvent{
			LineEvent: LineEvent{
				ID:              "TEST_" + string(rune('A'+i)),
				Title:           "Event",
				SortingCategory: "Weight",
				SortingValue:    v,
			},
			PlacedBy:   "system",
			WasCorrect: true,
		})
	}
	return line
}

func lineEventWithValue(id string, v float64) LineEvent {
	return LineEvent{
		ID:              id,
		Title:           "Active",
		SortingCategory: "Weight",
		Funfact:         "active fact",
		DisplayValue:    "30",
		Unit:            "kg",
		SortingValue:    v,
	}
}

func lineStateWith(mutate func(*LineState)) LineState {
	active := lineEventWithValue("A1", 30)
	state := LineState{
		SelectedCategory: "Weight",
		RoundLimit:       5,
		RoundIndex:       1,
		Line:             makeLine(10, 50, 100),
		Deck: []LineEvent{
			lineEventWithValue("D1", 25),
			lineEventWithValue("D2", 75),
		},
		PlayQueue:      linePlayers,
		ActivePlayerID: "player1",
		ActiveEvent:    &active,
		CursorIndex:    1,
		Scores:         map[string]int{"player1": 0, "player2": 0, "player3": 0},
		Status:         linePlaying,
	}
	if mutate != nil {
		mutate(&state)
	}
	return state
}

func TestNewLineState(t *testing.T) {
	state := newLineState("Weight", 5, linePlayers)

	assert.Equal(t, "Weight", state.SelectedCategory)
	assert.Equal(t, 5, state.RoundLimit)
	assert.Equal(t, 1, state.RoundIndex)
	assert.Equal(t, linePlaying, state.Status)
	assert.Equal(t, "player1", state.ActivePlayerID)
	assert.Equal(t, linePlayers, state.PlayQueue)

	require.Len(t, state.Line, 1)
	assert.Equal(t, "system", state.Line[0].PlacedBy)
	assert.True(t, state.Line[0].WasCorrect)

	require.NotNil(t, state.ActiveEvent)
	assert.Len(t, state.Deck, len(lineEventsByCategory("Weight"))-2)

	for _, pid := range linePlayers {
		assert.Equal(t, 0, state.Scores[pid])
	}
}

func TestLineCategories(t *testing.T) {
	categories := lineCategories()
	assert.Equal(t, []string{"Weight", "Speed"}, categories)
	for _, c := range categories {
		assert.NotEmpty(t, lineEventsByCategory(c))
	}
	assert.Empty(t, lineEventsByCategory("Temperature"))
}

func TestMoveLineCursor(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int
		direction string
		status    string
		want      int
	}{
		{name: "moves right", cursor: 0, direction: "right", status: linePlaying, want: 1},
		{name: "moves left", cursor: 2, direction: "left", status: linePlaying, want: 1},
		{name: "clamps at left boundary", cursor: 0, direction: "left", status: linePlaying, want: 0},
		{name: "clamps at right boundary", cursor: 3, direction: "right", status: linePlaying, want: 3},
		{name: "no-op outside playing", cursor: 0, direction: "right", status: lineRevealing, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := lineStateWith(func(s *LineState) {
				s.CursorIndex = tt.cursor
				s.Status = tt.status
			})
			next := moveLineCursor(state, tt.direction)
			assert.Equal(t, tt.want, next.CursorIndex)
		})
	}
}

func TestIsLinePlacementCorrect(t *testing.T) {
	line := makeLine(10, 50, 100)

	tests := []struct {
		name   string
		value  float64
		cursor int
		want   bool
	}{
		{name: "correct between events", value: 30, cursor: 1, want: true},
		{name: "incorrect position", value: 30, cursor: 0, want: false},
		{name: "correct at start for smallest", value: 5, cursor: 0, want: true},
		{name: "correct at end for largest", value: 200, cursor: 3, want: true},
		{name: "equal to neighbor counts as correct", value: 50, cursor: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isLinePlacementCorrect(lineEventWithValue("T1", tt.value), tt.cursor, line)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindLinePosition(t *testing.T) {
	line := makeLine(10, 50, 100)

	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{name: "start", value: 5, want: 0},
		{name: "middle", value: 30, want: 1},
		{name: "end", value: 200, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findLinePosition(lineEventWithValue("T", tt.value), line))
		})
	}
}

func TestPlaceLineCardCorrect(t *testing.T) {
	state := lineStateWith(func(s *LineState) { s.CursorIndex = 1 })
	next := placeLineCard(state)

	assert.Equal(t, lineRevealing, next.Status)
	assert.Equal(t, 1, next.Scores["player1"])
	require.Len(t, next.Line, 4)

	values := make([]float64, 0, 4)
	for _, e := range next.Line {
		values = append(values, e.SortingValue)
	}
	assert.Equal(t, []float64{10, 30, 50, 100}, values)

	require.NotNil(t, next.LastAction)
	assert.Equal(t, "success", next.LastAction.Result)
	assert.Equal(t, "player1", next.LastAction.PlayerID)
	assert.True(t, next.Line[1].WasCorrect)
}

func TestPlaceLineCardIncorrect(t *testing.T) {
	// Guessing index 0 with value 30 is wrong; the card must still land at
	// its true position.
	state := lineStateWith(func(s *LineState) { s.CursorIndex = 0 })
	next := placeLineCard(state)

	assert.Equal(t, lineRevealing, next.Status)
	assert.Equal(t, 0, next.Scores["player1"])
	require.Len(t, next.Line, 4)

	values := make([]float64, 0, 4)
	for _, e := range next.Line {
		values = append(values, e.SortingValue)
	}
	assert.Equal(t, []float64{10, 30, 50, 100}, values)

	require.NotNil(t, next.LastAction)
	assert.Equal(t, "fail", next.LastAction.Result)
	assert.Equal(t, 1, findPlacedIndex(next.Line, "A1"))
	assert.False(t, next.Line[1].WasCorrect)
}

func findPlacedIndex(line []PlacedLineEvent, id string) int {
	for i, e := range line {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func TestPlaceLineCardWrongStatus(t *testing.T) {
	state := lineStateWith(func(s *LineState) { s.Status = lineRevealing })
	next := placeLineCard(state)

	assert.Equal(t, lineRevealing, next.Status)
	assert.Len(t, next.Line, 3)
}

func TestNextLineTurn(t *testing.T) {
	t.Run("advances player and deals card", func(t *testing.T) {
		state := lineStateWith(func(s *LineState) { s.Status = lineRevealing })
		next := nextLineTurn(state)

		assert.Equal(t, "player2", next.ActivePlayerID)
		assert.Equal(t, linePlaying, next.Status)
		require.NotNil(t, next.ActiveEvent)
		assert.Equal(t, "D1", next.ActiveEvent.ID)
		assert.Equal(t, 1, next.RoundIndex)
		assert.Len(t, next.Deck, 1)
		assert.Nil(t, next.LastAction)
		assert.Equal(t, len(next.Line)/2, next.CursorIndex)
	})

	t.Run("increments round on wrap-around", func(t *testing.T) {
		state := lineStateWith(func(s *LineState) {
			s.Status = lineRevealing
			s.ActivePlayerID = "player3"
			s.RoundIndex = 2
		})
		next := nextLineTurn(state)

		assert.Equal(t, "player1", next.ActivePlayerID)
		assert.Equal(t, 3, next.RoundIndex)
	})

	t.Run("finishes when round limit exceeded", func(t *testing.T) {
		state := lineStateWith(func(s *LineState) {
			s.Status = lineRevealing
			s.ActivePlayerID = "player3"
			s.RoundIndex = 5
			s.RoundLimit = 5
		})
		next := nextLineTurn(state)

		assert.Equal(t, lineFinished, next.Status)
	})

	t.Run("finishes when deck empty", func(t *testing.T) {
		state := lineStateWith(func(s *LineState) {
			s.Status = lineRevealing
			s.Deck = nil
		})
		next := nextLineTurn(state)

		assert.Equal(t, lineFinished, next.Status)
	})

	t.Run("no-op outside revealing", func(t *testing.T) {
		state := lineStateWith(nil)
		next := nextLineTurn(state)

		assert.Equal(t, linePlaying, next.Status)
	})
}

func TestGetNextPlayerID(t *testing.T) {
	tests := []struct {
		name    string
		players []string
		current string
		want    string
	}{
		{name: "next in sequence", players: linePlayers, current: "player1", want: "player2"},
		{name: "wraps around", players: linePlayers, current: "player3", want: "player1"},
		{name: "single player", players: []string{"only"}, current: "only", want: "only"},
		{name: "unknown player restarts at front", players: linePlayers, current: "nobody", want: "player1"},
		{name: "empty queue returns current", players: nil, current: "ghost", want: "ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getNextPlayerID(tt.players, tt.current))
		})
	}
}

func TestApplyLineMessage(t *testing.T) {
	t.Run("move_cursor delegates", func(t *testing.T) {
		state := lineStateWith(func(s *LineState) { s.CursorIndex = 0 })
		next := applyLineMessage(state, LineMessage{Type: "move_cursor", Direction: "right"})
		assert.Equal(t, 1, next.CursorIndex)
	})

	t.Run("place_card delegates", func(t *testing.T) {
		state := lineStateWith(nil)
		next := applyLineMessage(state, LineMessage{Type: "place_card"})
		assert.Equal(t, lineRevealing, next.Status)
		require.NotNil(t, next.LastAction)
		assert.Equal(t, "success", next.LastAction.Result)
	})

	t.Run("unknown type is a no-op", func(t *testing.T) {
		state := lineStateWith(nil)
		next := applyLineMessage(state, LineMessage{Type: "teleport"})
		assert.Equal(t, state.Status, next.Status)
		assert.Equal(t, state.CursorIndex, next.CursorIndex)
		assert.Len(t, next.Line, len(state.Line))
	})

	t.Run("is deterministic", func(t *testing.T) {
		state := lineStateWith(nil)
		first := applyLineMessage(state, LineMessage{Type: "place_card"})
		second := applyLineMessage(state, LineMessage{Type: "place_card"})
		assert.Equal(t, first, second)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		state := lineStateWith(nil)
		_ = applyLineMessage(state, LineMessage{Type: "place_card"})
		assert.Len(t, state.Line, 3)
		assert.Equal(t, 0, state.Scores["player1"])
		assert.Equal(t, linePlaying, state.Status)
	})
}
