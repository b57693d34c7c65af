package main

// The Line: players take turns slotting event cards into a line kept sorted
// by a numeric sorting value. A wrong guess still lands the card at its true
// position, it just scores nothing.
//
// All state transitions live in pure functions: same state and message in,
// same state out. The only randomness is the shuffle inside newLineState.

import (
	"crypto/rand"
)

// LineEvent is a single card from the category dataset.
type LineEvent struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	SortingCategory string  `json:"sorting_category"`
	Funfact         string  `json:"funfact"`
	DisplayValue    string  `json:"display_value"`
	Unit            string  `json:"unit"`
	SortingValue    float64 `json:"sorting_value"`
}

// PlacedLineEvent is a card that has landed on the line.
type PlacedLineEvent struct {
	LineEvent
	PlacedBy   string `json:"placedBy"` // player id, or "system" for the seed card
	WasCorrect bool   `json:"wasCorrect"`
}

// LineAction records the outcome of the most recent placement, shown during
// the reveal.
type LineAction struct {
	Result       string `json:"result"` // "success" or "fail"
	PlayerID     string `json:"playerId"`
	EventID      string `json:"eventId"`
	Funfact      string `json:"funfact"`
	DisplayValue string `json:"display_value"`
	Unit         string `json:"unit"`
}

type LineState struct {
	SelectedCategory string `json:"selectedCategory"`
	RoundLimit       int    `json:"roundLimit"`
	RoundIndex       int    `json:"roundIndex"` // 1-based

	// Always sorted by SortingValue.
	Line []PlacedLineEvent `json:"line"`
	Deck []LineEvent       `json:"deck"`

	PlayQueue      []string `json:"playQueue"`
	ActivePlayerID string   `json:"activePlayerId"`

	ActiveEvent *LineEvent `json:"activeEvent"`
	CursorIndex int        `json:"cursorIndex"` // gap index: 0 = leftmost

	Scores map[string]int `json:"scores"`

	Status     string      `json:"status"` // setup|playing|revealing|finished
	LastAction *LineAction `json:"last_action"`
}

const (
	lineSetup     = "setup"
	linePlaying   = "playing"
	lineRevealing = "revealing"
	lineFinished  = "finished"
)

type LineMessage struct {
	Type       string   `json:"type"` // "start_game", "move_cursor", "place_card", "next_turn"
	Category   string   `json:"category,omitempty"`
	RoundLimit int      `json:"roundLimit,omitempty"`
	PlayerIDs  []string `json:"playerIds,omitempty"`
	Direction  string   `json:"direction,omitempty"` // "left" or "right"
}

func isLineMessageType(t string) bool {
	switch t {
	case "start_game", "move_cursor", "place_card", "next_turn":
		return true
	}
	return false
}

// shuffleLineEvents returns a shuffled copy, Fisher-Yates over crypto/rand.
func shuffleLineEvents(events []LineEvent) []LineEvent {
	out := make([]LineEvent, len(events))
	copy(out, events)
	for i := len(out) - 1; i > 0; i-- {
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			continue
		}
		j := int(b[0]) % (i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func indexOfID(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// getNextPlayerID advances round-robin through the ordered queue, wrapping
// at the end. Unknown ids restart at the front.
func getNextPlayerID(playerIDs []string, currentPlayerID string) string {
	if len(playerIDs) == 0 {
		return currentPlayerID
	}
	next := (indexOfID(playerIDs, currentPlayerID) + 1) % len(playerIDs)
	return playerIDs[next]
}

// newLineState seeds the line with one card attributed to "system", deals the
// first active card to the first player, and zeroes all scores.
func newLineState(category string, roundLimit int, playerIDs []string) LineState {
	shuffled := shuffleLineEvents(lineEventsByCategory(category))

	scores := make(map[string]int, len(playerIDs))
	for _, pid := range playerIDs {
		scores[pid] = 0
	}

	state := LineState{
		SelectedCategory: category,
		RoundLimit:       roundLimit,
		RoundIndex:       1,
		PlayQueue:        playerIDs,
		CursorIndex:      0,
		Scores:           scores,
		Status:           linePlaying,
	}
	if len(playerIDs) > 0 {
		state.ActivePlayerID = playerIDs[0]
	}
	if len(shuffled) == 0 {
		state.Status = lineSetup
		return state
	}

	seed := shuffled[0]
	state.Line = []PlacedLineEvent{{
		LineEvent:  seed,
		PlacedBy:   "system",
		WasCorrect: true,
	}}

	remaining := shuffled[1:]
	if len(remaining) > 0 {
		active := remaining[0]
		state.ActiveEvent = &active
		state.Deck = remaining[1:]
	}

	return state
}

// isLinePlacementCorrect judges a placement at a gap index against its
// neighbors. Boundary gaps compare against -Inf/+Inf by omission.
func isLinePlacementCorrect(card LineEvent, cursorIndex int, line []PlacedLineEvent) bool {
	if cursorIndex > 0 && line[cursorIndex-1].SortingValue > card.SortingValue {
		return false
	}
	if cursorIndex < len(line) && card.SortingValue > line[cursorIndex].SortingValue {
		return false
	}
	return true
}

// findLinePosition returns the unique index that keeps the line sorted.
func findLinePosition(card LineEvent, line []PlacedLineEvent) int {
	for i := range line {
		if card.SortingValue <= line[i].SortingValue {
			return i
		}
	}
	return len(line)
}

func moveLineCursor(state LineState, direction string) LineState {
	if state.Status != linePlaying {
		return state
	}

	switch direction {
	case "left":
		if state.CursorIndex > 0 {
			state.CursorIndex--
		}
	case "right":
		if state.CursorIndex < len(state.Line) {
			state.CursorIndex++
		}
	}
	return state
}

func placeLineCard(state LineState) LineState {
	if state.Status != linePlaying || state.ActiveEvent == nil {
		return state
	}

	card := *state.ActiveEvent
	correct := isLinePlacementCorrect(card, state.CursorIndex, state.Line)

	insertIndex := state.CursorIndex
	if !correct {
		insertIndex = findLinePosition(card, state.Line)
	}

	placed := PlacedLineEvent{
		LineEvent:  card,
		PlacedBy:   state.ActivePlayerID,
		WasCorrect: correct,
	}

	line := make([]PlacedLineEvent, 0, len(state.Line)+1)
	line = append(line, state.Line[:insertIndex]...)
	line = append(line, placed)
	line = append(line, state.Line[insertIndex:]...)
	state.Line = line

	scores := make(map[string]int, len(state.Scores))
	for k, v := range state.Scores {
		scores[k] = v
	}
	result := "fail"
	if correct {
		scores[state.ActivePlayerID]++
		result = "success"
	}
	state.Scores = scores

	state.Status = lineRevealing
	state.LastAction = &LineAction{
		Result:       result,
		PlayerID:     state.ActivePlayerID,
		EventID:      card.ID,
		Funfact:      card.Funfact,
		DisplayValue: card.DisplayValue,
		Unit:         card.Unit,
	}

	return state
}

func nextLineTurn(state LineState) LineState {
	if state.Status != lineRevealing {
		return state
	}

	nextPlayer := getNextPlayerID(state.PlayQueue, state.ActivePlayerID)

	// Wrapping back to (or before) the current index means the round is done.
	currentIdx := indexOfID(state.PlayQueue, state.ActivePlayerID)
	nextIdx := indexOfID(state.PlayQueue, nextPlayer)
	roundComplete := nextIdx <= currentIdx

	roundIndex := state.RoundIndex
	if roundComplete {
		roundIndex++
	}

	if roundComplete && roundIndex > state.RoundLimit {
		state.Status = lineFinished
		return state
	}

	if len(state.Deck) == 0 {
		state.Status = lineFinished
		return state
	}

	active := state.Deck[0]
	state.ActiveEvent = &active
	state.Deck = state.Deck[1:]
	state.ActivePlayerID = nextPlayer
	state.CursorIndex = len(state.Line) / 2
	state.RoundIndex = roundIndex
	state.Status = linePlaying
	state.LastAction = nil

	return state
}

// applyLineMessage is the reducer entrypoint: a total function over the line
// message family.
func applyLineMessage(state LineState, msg LineMessage) LineState {
	switch msg.Type {
	case "start_game":
		return newLineState(msg.Category, msg.RoundLimit, msg.PlayerIDs)
	case "move_cursor":
		return moveLineCursor(state, msg.Direction)
	case "place_card":
		return placeLineCard(state)
	case "next_turn":
		return nextLineTurn(state)
	default:
		return state
	}
}
