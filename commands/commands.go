package commands

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mobile-next/mobileinput/charmap"
	"github.com/mobile-next/mobileinput/config"
	"github.com/mobile-next/mobileinput/session"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

var (
	mu              sync.RWMutex
	sessionRegistry *session.Registry
	activeConfig    = config.Default()
	sharedCharMap   *charmap.Map
)

// SetRegistry sets the global session registry. Call it once at startup
// (main.go or server.go) so open sessions are closed on shutdown.
func SetRegistry(registry *session.Registry) {
	mu.Lock()
	defer mu.Unlock()
	sessionRegistry = registry
}

// GetRegistry returns the current session registry, creating one on first
// use if SetRegistry was never called.
func GetRegistry() *session.Registry {
	mu.Lock()
	defer mu.Unlock()
	if sessionRegistry == nil {
		sessionRegistry = session.NewRegistry()
	}
	return sessionRegistry
}

// SetConfig sets the configuration new sessions are created with.
func SetConfig(cfg *config.Config) {
	mu.Lock()
	defer mu.Unlock()
	activeConfig = cfg
	sharedCharMap = nil
}

func GetConfig() *config.Config {
	mu.RLock()
	defer mu.RUnlock()
	return activeConfig
}

// getCharMap returns the character map shared by all sessions. Per-device
// tables are cached inside it.
func getCharMap() (*charmap.Map, error) {
	mu.Lock()
	defer mu.Unlock()

	if sharedCharMap != nil {
		return sharedCharMap, nil
	}

	cm, err := newCharMap(activeConfig.CharMap)
	if err != nil {
		return nil, err
	}
	sharedCharMap = cm
	return cm, nil
}

// newCharMap builds a character map from config: the layouts file is
// registered first so the default layout may name one of its layouts.
func newCharMap(cfg config.CharMapConfig) (*charmap.Map, error) {
	cm, err := charmap.New(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	if cfg.LayoutFile != "" {
		layouts, err := charmap.LoadLayouts(cfg.LayoutFile)
		if err != nil {
			return nil, err
		}
		for name, layout := range layouts {
			cm.RegisterLayout(name, layout)
		}
	}

	if err := cm.SetFallback(cfg.Layout); err != nil {
		return nil, fmt.Errorf("charmap.layout: %w", err)
	}
	return cm, nil
}

// FindSession finds a session by ID, or auto-selects when sessionID is empty
// and exactly one session is open.
func FindSession(sessionID string) (*session.Session, error) {
	registry := GetRegistry()

	if sessionID != "" {
		return registry.Get(sessionID)
	}

	sessions := registry.List()
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no open sessions, create one with session_create")
	}

	if len(sessions) > 1 {
		return nil, fmt.Errorf("multiple sessions open (%d), please specify sessionId with one of: %s", len(sessions), getSessionIDList(sessions))
	}

	return sessions[0], nil
}

// getSessionIDList returns a comma-separated list of session IDs for error messages
func getSessionIDList(sessions []*session.Session) string {
	var ids []string
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	return fmt.Sprintf("[%s]", strings.Join(ids, ", "))
}
