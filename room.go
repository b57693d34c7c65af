package main

import (
	"crypto/rand"
	"regexp"
	"strings"
	"time"
)

// Player is one roster entry. The id is the canonical identity: either a
// session id supplied by the client, or the connection id of the socket
// that joined.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsHost   bool   `json:"isHost"`
	JoinedAt int64  `json:"joinedAt"`
	Avatar   string `json:"avatar,omitempty"`
}

// RoomState is the room half of the combined state broadcast to clients.
type RoomState struct {
	RoomCode string   `json:"roomCode"`
	HostID   string   `json:"hostId"`
	Players  []Player `json:"players"`
	Status   string   `json:"status"` // "waiting" or "playing"
	GameType string   `json:"gameType"`
}

const (
	roomWaiting = "waiting"
	roomPlaying = "playing"
)

// Avatars handed out in pool order as players join. Once the pool is
// exhausted everyone else gets the fallback die.
var avatarPool = []string{"🦊", "🐼", "🐸", "🦁", "🐙", "🦄", "🐯", "🐻", "🐨", "🐷", "🐵", "🦉"}

const defaultAvatar = "🎲"

func pickAvatar(players []Player) string {
	for _, a := range avatarPool {
		taken := false
		for _, p := range players {
			if p.Avatar == a {
				taken = true
				break
			}
		}
		if !taken {
			return a
		}
	}
	return defaultAvatar
}

// addPlayer appends a new player with the given canonical id, assigning an
// avatar and the host flag. Joining twice with the same id is a no-op, which
// guards the reconnect race where a join may be delivered more than once.
func addPlayer(room RoomState, id, name string) RoomState {
	for _, p := range room.Players {
		if p.ID == id {
			return room
		}
	}

	players := make([]Player, len(room.Players), len(room.Players)+1)
	copy(players, room.Players)

	players = append(players, Player{
		ID:       id,
		Name:     name,
		IsHost:   id == room.HostID,
		JoinedAt: time.Now().UnixMilli(),
		Avatar:   pickAvatar(players),
	})

	room.Players = players
	return room
}

// removePlayer filters the player out of the roster. The hostId slot is left
// alone so a reconnecting host can reclaim it.
func removePlayer(room RoomState, id string) RoomState {
	players := make([]Player, 0, len(room.Players))
	for _, p := range room.Players {
		if p.ID == id {
			continue
		}
		players = append(players, p)
	}
	room.Players = players
	return room
}

// refreshHostFlags recomputes IsHost after a hostId reassignment, keeping
// the at-most-one-host invariant.
func refreshHostFlags(room RoomState) RoomState {
	players := make([]Player, len(room.Players))
	copy(players, room.Players)
	for i := range players {
		players[i].IsHost = players[i].ID == room.HostID
	}
	room.Players = players
	return room
}

// startRoom flips the room to playing. Only the host may start, and the
// transition is one-way.
func startRoom(room RoomState, requesterID string) RoomState {
	if requesterID != room.HostID || room.Status != roomWaiting {
		return room
	}
	room.Status = roomPlaying
	return room
}

func playerIDs(room RoomState) []string {
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

// nonHostPlayerIDs returns the turn order for games where the host screen
// does not take turns, in join order.
func nonHostPlayerIDs(room RoomState) []string {
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		if p.ID == room.HostID {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids
}

// Room codes exclude lookalike characters (I, O, 0, 1).
const roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var roomCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{4,6}$`)

func generateRoomCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	out := make([]byte, 6)
	for i := range out {
		out[i] = roomCodeChars[int(buf[i])%len(roomCodeChars)]
	}
	return string(out)
}

func validateRoomCode(code string) bool {
	return roomCodePattern.MatchString(code)
}

func formatRoomCode(code string) string {
	return strings.ToUpper(code)
}
