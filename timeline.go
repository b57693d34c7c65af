package main

// Timeline: players place event cards into chronological (or otherwise
// numeric) order. Two modes share one board:
//
//   - coop: wrong placements burn shared lives; reaching the card goal wins
//     for the whole team, hitting zero lives loses.
//   - competitive: correct placements score for the acting player; the game
//     ends when the event pool runs dry and the highest score wins.
//
// The placement check and fallback insertion mirror The Line, parameterized
// by the event value.

import (
	"crypto/rand"
	"math/big"
)

type TimelineEvent struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description,omitempty"`
}

type PlacedTimelineEvent struct {
	TimelineEvent
	PlacedBy   string `json:"placedBy"`
	WasCorrect bool   `json:"wasCorrect"`
}

type TimelineState struct {
	Mode string `json:"mode"` // "coop" or "competitive"

	// Always sorted by Value.
	PlacedEvents []PlacedTimelineEvent `json:"placedEvents"`

	ActivePlayerID   string         `json:"activePlayerId"`
	ActiveEvent      *TimelineEvent `json:"activeEvent"`
	ProposedPosition int            `json:"proposedPosition"`

	Lives       int `json:"lives"`
	CardsPlaced int `json:"cardsPlaced"`
	CardsGoal   int `json:"cardsGoal"`

	PlayerScores map[string]int `json:"playerScores"`

	Status string `json:"status"` // waiting|placing|revealing|gameOver
	Winner string `json:"winner,omitempty"`

	// Non-host players in join order; fixed at game start. Doubles as the
	// deterministic tie-break for the competitive winner.
	TurnOrder []string `json:"turnOrder"`

	UsedEventIDs []string `json:"usedEventIds"`
}

const (
	timelineWaiting   = "waiting"
	timelinePlacing   = "placing"
	timelineRevealing = "revealing"
	timelineGameOver  = "gameOver"

	timelineCoop        = "coop"
	timelineCompetitive = "competitive"

	teamWinner = "team"

	defaultLives     = 3
	defaultCardsGoal = 20
)

type TimelineMessage struct {
	Type      string `json:"type"` // "startGame", "moveCard", "setPosition", "placeCard", "nextTurn"
	Mode      string `json:"mode,omitempty"`
	CardsGoal int    `json:"cardsGoal,omitempty"`
	Direction string `json:"direction,omitempty"`
	Position  *int   `json:"position,omitempty"`
}

func isTimelineMessageType(t string) bool {
	switch t {
	case "startGame", "moveCard", "setPosition", "placeCard", "nextTurn":
		return true
	}
	return false
}

func randomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// newTimelineState seeds the board with one random event attributed to
// "system". The seed counts toward the card goal.
func newTimelineState(mode string, cardsGoal int, playerIDs []string) TimelineState {
	if mode != timelineCompetitive {
		mode = timelineCoop
	}
	if cardsGoal <= 0 {
		cardsGoal = defaultCardsGoal
	}

	scores := make(map[string]int, len(playerIDs))
	for _, pid := range playerIDs {
		scores[pid] = 0
	}

	seed := timelineEvents[randomIndex(len(timelineEvents))]

	return TimelineState{
		Mode: mode,
		PlacedEvents: []PlacedTimelineEvent{{
			TimelineEvent: seed,
			PlacedBy:      "system",
			WasCorrect:    true,
		}},
		ProposedPosition: 0,
		Lives:            defaultLives,
		CardsPlaced:      1,
		CardsGoal:        cardsGoal,
		PlayerScores:     scores,
		Status:           timelineWaiting,
		TurnOrder:        playerIDs,
		UsedEventIDs:     []string{seed.ID},
	}
}

// dealTimelineEvent hands a random unused event to the given player. An
// empty pool is the game's natural terminal state.
func dealTimelineEvent(state TimelineState, playerID string) TimelineState {
	candidates := make([]TimelineEvent, 0, len(timelineEvents))
	for _, e := range timelineEvents {
		if indexOfID(state.UsedEventIDs, e.ID) == -1 {
			candidates = append(candidates, e)
		}
	}

	if len(candidates) == 0 {
		state.Status = timelineGameOver
		if state.Mode == timelineCompetitive {
			state.Winner = competitiveWinner(state.PlayerScores, state.TurnOrder)
		} else {
			state.Winner = teamWinner
		}
		return state
	}

	event := candidates[randomIndex(len(candidates))]

	used := make([]string, 0, len(state.UsedEventIDs)+1)
	used = append(used, state.UsedEventIDs...)
	state.UsedEventIDs = append(used, event.ID)

	state.ActivePlayerID = playerID
	state.ActiveEvent = &event
	state.ProposedPosition = len(state.PlacedEvents) / 2
	state.Status = timelinePlacing

	return state
}

func moveTimelineCard(state TimelineState, direction string) TimelineState {
	if state.Status != timelinePlacing {
		return state
	}

	switch direction {
	case "left":
		if state.ProposedPosition > 0 {
			state.ProposedPosition--
		}
	case "right":
		if state.ProposedPosition < len(state.PlacedEvents) {
			state.ProposedPosition++
		}
	}
	return state
}

func setTimelinePosition(state TimelineState, position int) TimelineState {
	if state.Status != timelinePlacing {
		return state
	}

	if position < 0 {
		position = 0
	}
	if position > len(state.PlacedEvents) {
		position = len(state.PlacedEvents)
	}
	state.ProposedPosition = position
	return state
}

func isTimelinePlacementCorrect(event TimelineEvent, position int, placed []PlacedTimelineEvent) bool {
	if position > 0 && placed[position-1].Value > event.Value {
		return false
	}
	if position < len(placed) && event.Value > placed[position].Value {
		return false
	}
	return true
}

func findTimelinePosition(event TimelineEvent, placed []PlacedTimelineEvent) int {
	for i := range placed {
		if event.Value <= placed[i].Value {
			return i
		}
	}
	return len(placed)
}

// competitiveWinner picks the highest scorer; ties go to the earliest-joined
// player, i.e. the first in turn order.
func competitiveWinner(scores map[string]int, turnOrder []string) string {
	winner := ""
	best := -1
	for _, pid := range turnOrder {
		if s, ok := scores[pid]; ok && s > best {
			best = s
			winner = pid
		}
	}
	return winner
}

func placeTimelineCard(state TimelineState) TimelineState {
	if state.Status != timelinePlacing || state.ActiveEvent == nil {
		return state
	}

	event := *state.ActiveEvent
	correct := isTimelinePlacementCorrect(event, state.ProposedPosition, state.PlacedEvents)

	insertIndex := state.ProposedPosition
	if !correct {
		insertIndex = findTimelinePosition(event, state.PlacedEvents)
	}

	placedEvent := PlacedTimelineEvent{
		TimelineEvent: event,
		PlacedBy:      state.ActivePlayerID,
		WasCorrect:    correct,
	}

	placed := make([]PlacedTimelineEvent, 0, len(state.PlacedEvents)+1)
	placed = append(placed, state.PlacedEvents[:insertIndex]...)
	placed = append(placed, placedEvent)
	placed = append(placed, state.PlacedEvents[insertIndex:]...)
	state.PlacedEvents = placed

	scores := make(map[string]int, len(state.PlayerScores))
	for k, v := range state.PlayerScores {
		scores[k] = v
	}
	state.PlayerScores = scores

	state.Status = timelineRevealing
	state.CardsPlaced++
	state.ProposedPosition = insertIndex

	switch state.Mode {
	case timelineCoop:
		if !correct && state.Lives > 0 {
			state.Lives--
		}
		if state.Lives == 0 {
			state.Status = timelineGameOver
			state.Winner = ""
		} else if state.CardsPlaced >= state.CardsGoal {
			state.Status = timelineGameOver
			state.Winner = teamWinner
		}
	case timelineCompetitive:
		if correct {
			scores[state.ActivePlayerID]++
		}
		if len(state.UsedEventIDs) >= len(timelineEvents) {
			state.Status = timelineGameOver
			state.Winner = competitiveWinner(scores, state.TurnOrder)
		}
	}

	return state
}

// applyTimelineMessage covers the moves a player can make on their own.
// startGame and nextTurn need the room roster, so the coordinator resolves
// them and they fall through unchanged here.
func applyTimelineMessage(state TimelineState, msg TimelineMessage) TimelineState {
	switch msg.Type {
	case "moveCard":
		return moveTimelineCard(state, msg.Direction)
	case "setPosition":
		if msg.Position == nil {
			return state
		}
		return setTimelinePosition(state, *msg.Position)
	case "placeCard":
		return placeTimelineCard(state)
	default:
		return state
	}
}
