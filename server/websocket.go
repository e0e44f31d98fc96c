package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mobile-next/mobileinput/commands"
	"github.com/mobile-next/mobileinput/session"
	"github.com/mobile-next/mobileinput/utils"
)

// EventNotificationParams is sent as the params of an "event" notification
type EventNotificationParams struct {
	SessionID string             `json:"sessionId"`
	Event     commands.EventView `json:"event"`
}

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	ctx context.Context

	subMu         sync.Mutex
	subscriptions map[string]*subscription
	subWG         sync.WaitGroup
}

// subscription is one event stream. An ending stream compares pointers so it
// never removes a newer subscription to the same session.
type subscription struct {
	cancel context.CancelFunc
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := newUpgrader(h.enableCORS).Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	wsConn := &wsConnection{
		conn:          conn,
		ctx:           ctx,
		subscriptions: make(map[string]*subscription),
	}
	defer func() {
		cancel()
		wsConn.subWG.Wait()
	}()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			// connection closed or error
			utils.Verbose("WebSocket connection closed: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			_ = wsConn.sendError(nil, ErrCodeInvalidRequest, "Invalid Request", "only text messages accepted for requests")
			continue
		}

		h.handleWSMessage(wsConn, message)
	}
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

func (h *Handler) handleWSMessage(wsConn *wsConnection, message []byte) {
	var req JSONRPCRequest
	if err := json.Unmarshal(message, &req); err != nil {
		_ = wsConn.sendError(nil, ErrCodeParseError, "Parse error", "expecting jsonrpc payload")
		return
	}

	if req.JSONRPC != "2.0" {
		_ = wsConn.sendError(req.ID, ErrCodeInvalidRequest, "Invalid Request", "'jsonrpc' must be '2.0'")
		return
	}

	if req.ID == nil {
		_ = wsConn.sendError(nil, ErrCodeInvalidRequest, "Invalid Request", "'id' field is required")
		return
	}

	if req.Method == "" {
		_ = wsConn.sendError(req.ID, ErrCodeInvalidRequest, "Invalid Request", "'method' is required")
		return
	}

	utils.Info("WebSocket Request ID: %v, Method: %s, Params: %s", req.ID, req.Method, string(req.Params))

	switch req.Method {
	case "events_subscribe":
		wsConn.handleSubscribe(req)
	case "events_unsubscribe":
		wsConn.handleUnsubscribe(req)
	default:
		h.handleWSMethodCall(wsConn, req)
	}
}

func (h *Handler) handleWSMethodCall(wsConn *wsConnection, req JSONRPCRequest) {
	result, found, err := h.execute(wsConn.ctx, req.Method, req.Params)
	if !found {
		_ = wsConn.sendError(req.ID, ErrCodeMethodNotFound, "Method not found", req.Method+" not found")
		return
	}

	if err != nil {
		utils.Verbose("Error executing method %s: %v", req.Method, err)
		_ = wsConn.sendError(req.ID, ErrCodeServerError, "Server error", err.Error())
		return
	}

	_ = wsConn.sendResponse(req.ID, result)
}

// handleSubscribe streams every event the session produces from now on as
// "event" notifications. Subscribing consumes the session's queue, so
// events_drain returns nothing while a subscription is active.
func (wsc *wsConnection) handleSubscribe(req JSONRPCRequest) {
	params, err := decodeParams[commands.SessionRequest](req.Params, "sessionId", true)
	if err != nil {
		_ = wsc.sendError(req.ID, ErrCodeInvalidParams, "Invalid params", err.Error())
		return
	}

	s, err := commands.FindSession(params.SessionID)
	if err != nil {
		_ = wsc.sendError(req.ID, ErrCodeServerError, "Server error", err.Error())
		return
	}

	wsc.subMu.Lock()
	if _, exists := wsc.subscriptions[s.ID]; exists {
		wsc.subMu.Unlock()
		_ = wsc.sendError(req.ID, ErrCodeServerError, "Server error", fmt.Sprintf("already subscribed to session %s", s.ID))
		return
	}
	ctx, cancel := context.WithCancel(wsc.ctx)
	sub := &subscription{cancel: cancel}
	wsc.subscriptions[s.ID] = sub
	wsc.subMu.Unlock()

	// the response goes out before any notification
	_ = wsc.sendResponse(req.ID, map[string]interface{}{"subscribed": s.ID})

	wsc.subWG.Add(1)
	go func() {
		defer wsc.subWG.Done()
		defer wsc.release(s.ID, sub)
		wsc.streamEvents(ctx, s)
	}()
}

func (wsc *wsConnection) handleUnsubscribe(req JSONRPCRequest) {
	params, err := decodeParams[commands.SessionRequest](req.Params, "sessionId", true)
	if err != nil {
		_ = wsc.sendError(req.ID, ErrCodeInvalidParams, "Invalid params", err.Error())
		return
	}

	id := params.SessionID
	if id == "" {
		s, err := commands.FindSession("")
		if err != nil {
			_ = wsc.sendError(req.ID, ErrCodeServerError, "Server error", err.Error())
			return
		}
		id = s.ID
	}

	if !wsc.unsubscribe(id) {
		_ = wsc.sendError(req.ID, ErrCodeServerError, "Server error", fmt.Sprintf("not subscribed to session %s", id))
		return
	}
	_ = wsc.sendResponse(req.ID, okResponse)
}

func (wsc *wsConnection) unsubscribe(sessionID string) bool {
	wsc.subMu.Lock()
	defer wsc.subMu.Unlock()

	sub, ok := wsc.subscriptions[sessionID]
	if !ok {
		return false
	}
	sub.cancel()
	delete(wsc.subscriptions, sessionID)
	return true
}

// release drops sub when its stream ends, unless a newer subscription for
// the same session has replaced it.
func (wsc *wsConnection) release(sessionID string, sub *subscription) {
	wsc.subMu.Lock()
	defer wsc.subMu.Unlock()

	sub.cancel()
	if wsc.subscriptions[sessionID] == sub {
		delete(wsc.subscriptions, sessionID)
	}
}

func (wsc *wsConnection) streamEvents(ctx context.Context, s *session.Session) {
	queue := s.Events()
	for {
		for _, ev := range queue.Drain() {
			err := wsc.sendJSON(JSONRPCNotification{
				JSONRPC: "2.0",
				Method:  "event",
				Params: EventNotificationParams{
					SessionID: s.ID,
					Event:     commands.NewEventView(ev),
				},
			})
			if err != nil {
				utils.Verbose("Failed to send event for session %s: %v", s.ID, err)
				return
			}
		}

		select {
		case <-queue.Notify():
		case <-s.Done():
			return
		case <-ctx.Done():
			return
		}
	}
}

func (wsc *wsConnection) sendResponse(id interface{}, result interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendError(id interface{}, code int, message string, data interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Error: map[string]interface{}{
			"code":    code,
			"message": message,
			"data":    data,
		},
		ID: id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendJSON(v interface{}) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	return wsc.conn.WriteJSON(v)
}
