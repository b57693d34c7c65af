// Partydeck room coordinator
//
// One Hub per room: an actor that owns the combined {room, game} state and
// the mapping from transient connection ids to canonical player identities.
// Messages are processed one at a time in arrival order; different rooms run
// independently.
//
// Flow per room:
// - First connection claims the host slot and every connection immediately
//   receives a full-state snapshot.
// - Inbound frames are parsed, classified as room-level or game-level by
//   their type tag, dispatched to the registry or the active game reducer,
//   and the new combined state is broadcast to everyone in the room.
// - A join carrying a sessionId keeps a stable identity across the
//   lobby→game redirect, so the reconnect neither duplicates the player nor
//   loses host status.
// - Malformed payloads, unknown tags, and out-of-state actions are absorbed
//   as no-ops; nothing is ever thrown back at a connection.
// - Rooms idle past --session-timeout are reaped.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	gameTypeDemo     = "demo"
	gameTypeLine     = "the-line"
	gameTypeTimeline = "timeline"
)

type gameInfo struct {
	path     string
	gameType string
	title    string
}

var gameCatalog = []gameInfo{
	{path: "/games/demo", gameType: gameTypeDemo, title: "Counter Demo"},
	{path: "/games/the-line", gameType: gameTypeLine, title: "The Line"},
	{path: "/games/timeline", gameType: gameTypeTimeline, title: "Timeline"},
}

// inboundMessage is the decoded envelope for every client frame. The type
// tag selects the message family; unused fields stay zero.
type inboundMessage struct {
	Type string `json:"type"`

	// join
	PlayerName string `json:"playerName,omitempty"`
	GameType   string `json:"gameType,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`

	// the-line start_game
	Category   string   `json:"category,omitempty"`
	RoundLimit int      `json:"roundLimit,omitempty"`
	PlayerIDs  []string `json:"playerIds,omitempty"`

	// shared by both sorting games
	Direction string `json:"direction,omitempty"`

	// timeline
	Mode      string `json:"mode,omitempty"`
	CardsGoal int    `json:"cardsGoal,omitempty"`
	Position  *int   `json:"position,omitempty"`
}

func isRoomMessageType(t string) bool {
	switch t {
	case "join", "leave", "start", "sync":
		return true
	}
	return false
}

// syncMessage is the full-state broadcast sent on every connection and after
// every mutation.
type syncMessage struct {
	Type string    `json:"type"` // always "sync"
	Room RoomState `json:"room"`
	Game any       `json:"game"`
}

type Client struct {
	id   string
	conn *websocket.Conn
	send chan any
}

type inboundFrame struct {
	client *Client
	raw    []byte
}

type Hub struct {
	id string

	clients    map[*Client]bool
	identities map[string]string // connection id -> canonical player id

	room            RoomState
	game            any
	gameInitialized bool

	register chan *Client
	unreg    chan *Client
	inbound  chan inboundFrame
	done     chan struct{}

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
}

func newHub(roomID string) *Hub {
	now := time.Now()
	return &Hub{
		id:         roomID,
		clients:    make(map[*Client]bool),
		identities: make(map[string]string),
		room: RoomState{
			RoomCode: formatRoomCode(roomID),
			Status:   roomWaiting,
			GameType: gameTypeDemo,
		},
		game:       newCounterState(),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		inbound:    make(chan inboundFrame),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}
}

// newGameStateFor builds the pre-start state for a game type, before the
// host configures and starts it.
func newGameStateFor(gameType string) any {
	switch gameType {
	case gameTypeLine:
		return LineState{Status: lineSetup, Scores: map[string]int{}}
	case gameTypeTimeline:
		return newTimelineState(timelineCoop, defaultCardsGoal, nil)
	default:
		return newCounterState()
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()

			// First connection becomes host
			if h.room.HostID == "" {
				h.room.HostID = c.id
			}

			h.clients[c] = true

			// Snapshot goes out immediately, never waiting for the next
			// mutation. Sent under the lock so a concurrent closeAll can't
			// close the channel first.
			snapshot := syncMessage{Type: "sync", Room: h.room, Game: h.game}
			select {
			case c.send <- snapshot:
			default:
			}
			h.mu.Unlock()

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

			canonical, known := h.identities[c.id]
			delete(h.identities, c.id)
			if known {
				h.room = removePlayer(h.room, canonical)
				h.broadcastLocked()
			}
			h.mu.Unlock()

		case frame := <-h.inbound:
			h.handleMessage(cfg, frame)
		}
	}
}

func (h *Hub) canonicalIDLocked(c *Client) string {
	if id, ok := h.identities[c.id]; ok {
		return id
	}
	return c.id
}

// broadcastLocked sends the combined state to every connection in the room.
// Sends are fire-and-forget; clients that can't keep up are dropped.
func (h *Hub) broadcastLocked() {
	msg := syncMessage{Type: "sync", Room: h.room, Game: h.game}

	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

func (h *Hub) handleMessage(cfg *Config, frame inboundFrame) {
	var msg inboundMessage
	if err := json.Unmarshal(frame.raw, &msg); err != nil {
		logf(cfg, "GAMES: Dropping malformed payload in %s: %v", h.id, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	if isRoomMessageType(msg.Type) {
		h.handleRoomMessageLocked(cfg, frame.client, msg)
		return
	}

	h.handleGameMessageLocked(cfg, frame.client, msg)
}

func (h *Hub) handleRoomMessageLocked(cfg *Config, c *Client, msg inboundMessage) {
	switch msg.Type {
	case "join":
		h.handleJoinLocked(cfg, c, msg)

	case "leave":
		canonical := h.canonicalIDLocked(c)
		delete(h.identities, c.id)
		h.room = removePlayer(h.room, canonical)
		h.broadcastLocked()

	case "start":
		before := h.room.Status
		h.room = startRoom(h.room, h.canonicalIDLocked(c))
		if h.room.Status != before {
			logf(cfg, "GAMES: Room %s started (%s) with players %v", h.id, h.room.GameType, playerIDs(h.room))
			h.broadcastLocked()
		}

	case "sync":
		// server → client only
	}
}

func (h *Hub) handleJoinLocked(cfg *Config, c *Client, msg inboundMessage) {
	// Canonical identity: the caller-supplied session id survives the
	// lobby→game redirect, the connection id does not.
	canonical := msg.SessionID
	if canonical == "" {
		canonical = c.id
	}
	h.identities[c.id] = canonical

	if msg.GameType != "" {
		if !h.gameInitialized {
			// The first join carrying a gameType fixes the room's game.
			h.room.GameType = msg.GameType
			h.game = newGameStateFor(msg.GameType)
			h.gameInitialized = true
			h.room.HostID = canonical
			h.room = refreshHostFlags(h.room)
		} else if canonical != h.room.HostID {
			// Host reconnect: reclaim the host slot, leave the game alone.
			// Only the host screen sends a gameType on join; player clients
			// never do. The room code is the sole auth boundary, so any
			// joiner inside the room claiming to be the host screen is
			// believed.
			h.room.HostID = canonical
			h.room = refreshHostFlags(h.room)
		}
	}

	name := msg.PlayerName
	if name == "" {
		name = "Player"
	}

	before := len(h.room.Players)
	h.room = addPlayer(h.room, canonical, name)
	if len(h.room.Players) != before {
		logf(cfg, "GAMES: Player %q (%s) joined %s", name, canonical, h.id)
	}

	h.broadcastLocked()
}

func (h *Hub) handleGameMessageLocked(cfg *Config, c *Client, msg inboundMessage) {
	sender := h.canonicalIDLocked(c)

	switch h.room.GameType {
	case gameTypeDemo:
		if !isCounterMessageType(msg.Type) || h.room.Status != roomPlaying {
			return
		}
		state, ok := h.game.(CounterState)
		if !ok {
			return
		}
		h.game = applyCounterMessage(state, CounterMessage{Type: msg.Type})
		h.broadcastLocked()

	case gameTypeLine:
		if !isLineMessageType(msg.Type) {
			return
		}
		state, ok := h.game.(LineState)
		if !ok {
			return
		}

		// start_game is the host configuring the round; it doubles as the
		// room's waiting→playing transition.
		if msg.Type == "start_game" {
			if sender != h.room.HostID {
				return
			}
			playerIDs := msg.PlayerIDs
			if len(playerIDs) == 0 {
				playerIDs = nonHostPlayerIDs(h.room)
			}
			h.game = newLineState(msg.Category, msg.RoundLimit, playerIDs)
			h.room.Status = roomPlaying
			logf(cfg, "GAMES: Room %s started (%s, category %q)", h.id, h.room.GameType, msg.Category)
			h.broadcastLocked()
			return
		}

		if h.room.Status != roomPlaying {
			return
		}
		h.game = applyLineMessage(state, LineMessage{Type: msg.Type, Direction: msg.Direction})
		h.broadcastLocked()

	case gameTypeTimeline:
		if !isTimelineMessageType(msg.Type) || h.room.Status != roomPlaying {
			return
		}
		state, ok := h.game.(TimelineState)
		if !ok {
			return
		}

		switch msg.Type {
		case "startGame":
			if sender != h.room.HostID {
				return
			}
			order := nonHostPlayerIDs(h.room)
			next := newTimelineState(msg.Mode, msg.CardsGoal, order)
			if len(order) > 0 {
				next = dealTimelineEvent(next, order[0])
			}
			h.game = next

		case "nextTurn":
			// Turn advancement needs the roster ordering, so it lives here
			// rather than in the reducer.
			if state.Status != timelineRevealing {
				return
			}
			h.game = dealTimelineEvent(state, getNextPlayerID(state.TurnOrder, state.ActivePlayerID))

		default:
			h.game = applyTimelineMessage(state, TimelineMessage{
				Type:      msg.Type,
				Mode:      msg.Mode,
				CardsGoal: msg.CardsGoal,
				Direction: msg.Direction,
				Position:  msg.Position,
			})
		}
		h.broadcastLocked()
	}
}

// closeAll disconnects all clients of this hub and stops its run loop
// (used by reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(h.clients, c)
	}

	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// newConnID generates the transient per-connection identity.
func newConnID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	return hex.EncodeToString(buf)
}

// GameManager holds the set of hubs keyed by room code; rooms are created
// lazily on first connection.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration
}

func newGameManager(idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, roomID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[roomID]; ok {
		return hub
	}

	hub := newHub(roomID)
	gm.hubs[roomID] = hub
	go hub.run(cfg)
	return hub
}

// newRoomCode generates a room code and ensures it doesn't collide with an
// existing room.
func (gm *GameManager) newRoomCode() string {
	for {
		code := generateRoomCode()

		gm.mu.Lock()
		_, exists := gm.hubs[code]
		gm.mu.Unlock()

		if !exists {
			return code
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than
// idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		cutoff := time.Now().Add(-gm.idleTimeout)

		gm.mu.Lock()
		for id, hub := range gm.hubs {
			hub.mu.RLock()
			last := hub.lastActive
			hub.mu.RUnlock()

			if last.Before(cutoff) {
				delete(gm.hubs, id)
				go hub.closeAll()
			}
		}
		gm.mu.Unlock()
	}
}

// WebSocket handler that picks the hub based on :roomid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		roomID := ps.ByName("roomid")
		if !validateRoomCode(roomID) {
			http.Error(w, "invalid room code", http.StatusBadRequest)
			return
		}

		connID := newConnID()
		if connID == "" {
			http.Error(w, "unable to assign connection id", http.StatusInternalServerError)
			return
		}

		hub := gm.getHub(cfg, formatRoomCode(roomID))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			id:   connID,
			conn: conn,
			send: make(chan any, 8),
		}

		hub.register <- client

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		select {
		case h.inbound <- inboundFrame{client: c, raw: raw}:
		case <-h.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current room URL.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID := ps.ByName("roomid")
	if roomID == "" {
		http.Error(w, "missing room id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:roomid/qr; strip trailing "/qr" to get the room URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func serveGameClient(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := assets.ReadFile("assets/client.html")
		if err != nil {
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write(data)
	}
}

// redirectNewRoom handles GET /games/<game> by generating a fresh room code
// and redirecting to /games/<game>/:roomid.
func redirectNewRoom(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		code := gm.newRoomCode()
		logf(cfg, "GAMES: Created room %s%s/%s", cfg.prefix, path, code)
		http.Redirect(w, r, cfg.prefix+path+"/"+code, http.StatusTemporaryRedirect)
	}
}

// registerGames sets up routes so that, for each game:
//   - $path              → redirects to a new random room
//   - $path/:roomid      → HTML client
//   - $path/:roomid/ws   → WebSocket for that room
//   - $path/:roomid/qr   → PNG QR code for that room URL
//
// All games share one manager: a room code names the same room regardless of
// which game path reached it.
func registerGames(cfg *Config, mux *httprouter.Router) {
	gm := newGameManager(cfg.sessionTimeout)

	for _, g := range gameCatalog {
		mux.GET(cfg.prefix+g.path, redirectNewRoom(cfg, g.path, gm))
		mux.GET(cfg.prefix+g.path+"/:roomid", serveGameClient(cfg))
		mux.GET(cfg.prefix+g.path+"/:roomid/ws", serveWSForManager(cfg, gm))
		mux.GET(cfg.prefix+g.path+"/:roomid/qr", qrHandler)
	}
}
