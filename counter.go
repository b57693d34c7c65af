package main

// The counter game is a connectivity smoke test: every player shares one
// number and can bump it up or down.

type CounterState struct {
	Counter int `json:"counter"`
}

type CounterMessage struct {
	Type string `json:"type"` // "increment", "decrement"
}

func isCounterMessageType(t string) bool {
	switch t {
	case "increment", "decrement":
		return true
	}
	return false
}

func newCounterState() CounterState {
	return CounterState{Counter: 0}
}

// applyCounterMessage is a total function: unknown types return the state
// unchanged.
func applyCounterMessage(state CounterState, msg CounterMessage) CounterState {
	switch msg.Type {
	case "increment":
		state.Counter++
	case "decrement":
		state.Counter--
	}
	return state
}
