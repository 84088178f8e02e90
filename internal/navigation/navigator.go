package navigation

import (
	"sync"

	"github.com/onebluedot/site/pkg/logger"
	"go.uber.org/zap"
)

// History is where pushed paths are recorded, such as a browser history.
type History interface {
	Push(path string)
	Location() string
}

// Navigator holds the current route and notifies subscribers of changes.
// Transitions are synchronous.
type Navigator struct {
	resolver Resolver
	history  History

	mu      sync.Mutex
	current Route
	subs    map[int]func(Route)
	nextSub int
}

// NewNavigator starts at the route for the history's current location.
func NewNavigator(resolver Resolver, history History) *Navigator {
	return &Navigator{
		resolver: resolver,
		history:  history,
		current:  resolver.Parse(history.Location()),
		subs:     make(map[int]func(Route)),
	}
}

// Current returns the route being shown.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Subscribe registers fn to be called after every route change. The returned
// func removes it.
func (n *Navigator) Subscribe(fn func(Route)) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextSub
	n.nextSub++
	n.subs[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// NavigateTo pushes the path for page and switches to the route it parses as.
func (n *Navigator) NavigateTo(page Page, projectID string) Route {
	path := n.resolver.Path(page, projectID)
	n.history.Push(path)
	return n.set(n.resolver.Parse(path))
}

// PopState re-reads the history location, for example after the user went back.
func (n *Navigator) PopState() Route {
	return n.set(n.resolver.Parse(n.history.Location()))
}

func (n *Navigator) set(r Route) Route {
	n.mu.Lock()
	n.current = r
	subs := make([]func(Route), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	logger.L().Debug("route changed", zap.String("page", string(r.Page)), zap.String("project_id", r.ProjectID))
	for _, fn := range subs {
		fn(r)
	}
	return r
}
