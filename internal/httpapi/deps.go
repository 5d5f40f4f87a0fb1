package httpapi

import (
	"sync/atomic"

	"applydesk-engine/internal/config"
	"applydesk-engine/internal/events"
	"applydesk-engine/internal/prefs"
	"applydesk-engine/internal/remote"
	"applydesk-engine/internal/session"
	"applydesk-engine/internal/view"
)

type Deps struct {
	Session *session.Store
	Service *remote.Service
	Views   *view.State
	Prefs   *prefs.Store

	Hub *events.Hub

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
