package usecase

import (
	"context"
	"sync"

	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
)

// Workspaces holds one workspace per analyst session
type Workspaces struct {
	mu         sync.Mutex
	workspaces map[types.SessionKey]*model.Workspace
}

// NewWorkspaces creates an empty registry
func NewWorkspaces() *Workspaces {
	return &Workspaces{
		workspaces: make(map[types.SessionKey]*model.Workspace),
	}
}

// Get returns the workspace of key, creating it on first use
func (w *Workspaces) Get(key types.SessionKey) *model.Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	ws, ok := w.workspaces[key]
	if !ok {
		ws = model.NewWorkspace(key)
		w.workspaces[key] = ws
	}
	return ws
}

// For returns the workspace of the caller found in ctx
func (w *Workspaces) For(ctx context.Context) *model.Workspace {
	authCtx, _ := model.GetAuthContext(ctx)
	return w.Get(authCtx.SessionKey())
}

// Snapshot copies the caller's workspace
func (w *Workspaces) Snapshot(ctx context.Context) model.WorkspaceSnapshot {
	return w.For(ctx).Snapshot()
}
