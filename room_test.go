package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoom() RoomState {
	return RoomState{
		RoomCode: "ABCD",
		Status:   roomWaiting,
		GameType: gameTypeDemo,
	}
}

func TestAddPlayer(t *testing.T) {
	t.Run("appends with avatar and host flag", func(t *testing.T) {
		room := newTestRoom()
		room.HostID = "h1"
		room = addPlayer(room, "h1", "Host")
		room = addPlayer(room, "p1", "Alice")

		require.Len(t, room.Players, 2)
		assert.True(t, room.Players[0].IsHost)
		assert.False(t, room.Players[1].IsHost)
		assert.NotEmpty(t, room.Players[0].Avatar)
		assert.NotEqual(t, room.Players[0].Avatar, room.Players[1].Avatar)
		assert.NotZero(t, room.Players[1].JoinedAt)
	})

	t.Run("rejoining with the same id is a no-op", func(t *testing.T) {
		room := newTestRoom()
		room = addPlayer(room, "p1", "Alice")
		again := addPlayer(room, "p1", "Alice Again")

		require.Len(t, again.Players, 1)
		assert.Equal(t, "Alice", again.Players[0].Name)
	})

	t.Run("does not mutate the input roster", func(t *testing.T) {
		room := newTestRoom()
		room = addPlayer(room, "p1", "Alice")
		_ = addPlayer(room, "p2", "Bob")
		assert.Len(t, room.Players, 1)
	})

	t.Run("falls back to the default avatar when the pool runs out", func(t *testing.T) {
		room := newTestRoom()
		for i := 0; i <= len(avatarPool); i++ {
			room = addPlayer(room, "p"+string(rune('a'+i)), "Player")
		}

		require.Len(t, room.Players, len(avatarPool)+1)
		assert.Equal(t, defaultAvatar, room.Players[len(avatarPool)].Avatar)
	})
}

func TestRemovePlayer(t *testing.T) {
	room := newTestRoom()
	room.HostID = "h1"
	room = addPlayer(room, "h1", "Host")
	room = addPlayer(room, "p1", "Alice")

	room = removePlayer(room, "h1")

	require.Len(t, room.Players, 1)
	assert.Equal(t, "p1", room.Players[0].ID)
	// The host slot stays reserved for a reconnect.
	assert.Equal(t, "h1", room.HostID)
}

func TestRefreshHostFlags(t *testing.T) {
	room := newTestRoom()
	room.HostID = "old"
	room = addPlayer(room, "old", "Old Host")
	room = addPlayer(room, "new", "New Host")

	room.HostID = "new"
	room = refreshHostFlags(room)

	assert.False(t, room.Players[0].IsHost)
	assert.True(t, room.Players[1].IsHost)
}

func TestStartRoom(t *testing.T) {
	t.Run("host starts the room", func(t *testing.T) {
		room := newTestRoom()
		room.HostID = "h1"
		next := startRoom(room, "h1")
		assert.Equal(t, roomPlaying, next.Status)
	})

	t.Run("non-host cannot start", func(t *testing.T) {
		room := newTestRoom()
		room.HostID = "h1"
		next := startRoom(room, "p1")
		assert.Equal(t, roomWaiting, next.Status)
	})

	t.Run("transition is one-way", func(t *testing.T) {
		room := newTestRoom()
		room.HostID = "h1"
		room.Status = roomPlaying
		next := startRoom(room, "h1")
		assert.Equal(t, roomPlaying, next.Status)
	})
}

func TestNonHostPlayerIDs(t *testing.T) {
	room := newTestRoom()
	room.HostID = "h1"
	room = addPlayer(room, "h1", "Host")
	room = addPlayer(room, "p1", "Alice")
	room = addPlayer(room, "p2", "Bob")

	assert.Equal(t, []string{"p1", "p2"}, nonHostPlayerIDs(room))
	assert.Equal(t, []string{"h1", "p1", "p2"}, playerIDs(room))
}

func TestGenerateRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		code := generateRoomCode()
		assert.Len(t, code, 6)
		for _, c := range code {
			assert.Contains(t, roomCodeChars, string(c))
		}
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "1")
		seen[code] = true
	}
	// 32 draws from a 32^6 space colliding down to one value would mean a
	// broken generator.
	assert.Greater(t, len(seen), 1)
}

func TestValidateRoomCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "ABCD", want: true},
		{code: "abcd23", want: true},
		{code: "AB", want: false},
		{code: "ABCDEFG", want: false},
		{code: "AB-D", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, validateRoomCode(tt.code))
		})
	}
}

func TestFormatRoomCode(t *testing.T) {
	assert.Equal(t, "ABCD", formatRoomCode("abcd"))
	assert.Equal(t, strings.ToUpper("wxyz23"), formatRoomCode("wxyz23"))
}
