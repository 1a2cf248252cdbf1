// internal/application/agent_directory.go
package application

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

const agentsTable = "agents"

type AgentDirectory struct {
	agents ports.AgentRepositoryPort
	feed   ports.ChangeFeedPort
	log    *logger.Logger
	pick   func(n int) int
}

func NewAgentDirectory(agents ports.AgentRepositoryPort, feed ports.ChangeFeedPort, log *logger.Logger) *AgentDirectory {
	return &AgentDirectory{agents: agents, feed: feed, log: log, pick: rand.IntN}
}

// ListAgents returns every agent, online agents first.
func (d *AgentDirectory) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	agents, err := d.agents.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(agents, func(i, j int) bool {
		return agents[i].IsOnline() && !agents[j].IsOnline()
	})
	return agents, nil
}

// FetchAgents is ListAgents with backend errors logged and swallowed.
func (d *AgentDirectory) FetchAgents(ctx context.Context) []domain.Agent {
	agents, err := d.ListAgents(ctx)
	if err != nil {
		d.log.Error("agents.fetch", err, nil)
		return []domain.Agent{}
	}
	return agents
}

func (d *AgentDirectory) FetchOnlineAgents(ctx context.Context) ([]domain.Agent, error) {
	return d.agents.ListAgentsByStatus(ctx, domain.AgentOnline)
}

// GetRandomOnlineAgent picks one online agent uniformly, or returns nil when
// nobody is online.
func (d *AgentDirectory) GetRandomOnlineAgent(ctx context.Context) (*domain.Agent, error) {
	online, err := d.FetchOnlineAgents(ctx)
	if err != nil {
		return nil, err
	}
	if len(online) == 0 {
		return nil, nil
	}
	agent := online[d.pick(len(online))]
	return &agent, nil
}

// SubscribeToAgentStatusChanges calls fn for every insert, update and delete
// on the agents table until ctx is done or the subscription is closed.
func (d *AgentDirectory) SubscribeToAgentStatusChanges(ctx context.Context, fn func(domain.Change)) (*Subscription, error) {
	return subscribe(ctx, d.feed, agentsTable, domain.Filter{}, fn)
}

// Subscription is a live change listener bound to a context. Close is
// idempotent and no callback starts after it returns; a callback that is
// running when Close is called finishes first, so callbacks must not close
// their own subscription.
type Subscription struct {
	cancel context.CancelFunc
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func subscribe(ctx context.Context, feed ports.ChangeFeedPort, table string, filter domain.Filter, fn func(domain.Change)) (*Subscription, error) {
	sctx, cancel := context.WithCancel(ctx)
	changes, err := feed.Subscribe(sctx, table, filter)
	if err != nil {
		cancel()
		return nil, err
	}
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		for change := range changes {
			sub.dispatch(fn, change)
		}
	}()
	return sub, nil
}

func (s *Subscription) dispatch(fn func(domain.Change), change domain.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		fn(change)
	}
}

func (s *Subscription) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

// Done is closed once the listener goroutine has exited.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// AgentList keeps the last agent list shown to the customer. Every reload
// takes a new request token and only the newest token may commit its
// result, so a slow earlier response never overwrites a later one.
type AgentList struct {
	dir *AgentDirectory

	mu      sync.Mutex
	latest  uint64
	agents  []domain.Agent
	err     error
	loading bool
}

type AgentListView struct {
	Agents  []domain.Agent `json:"agents"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
	Empty   bool           `json:"empty"`
}

func NewAgentList(dir *AgentDirectory) *AgentList {
	return &AgentList{dir: dir}
}

// Reload fetches the agent list and reports whether its result was kept.
func (l *AgentList) Reload(ctx context.Context) bool {
	l.mu.Lock()
	l.latest++
	token := l.latest
	l.loading = true
	l.mu.Unlock()

	agents, err := l.dir.ListAgents(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.latest {
		return false
	}
	l.loading = false
	if err != nil {
		l.dir.log.Error("agents.reload", err, nil)
		l.err = err
		l.agents = nil
		return true
	}
	l.err = nil
	l.agents = agents
	return true
}

func (l *AgentList) View() AgentListView {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := AgentListView{Agents: append([]domain.Agent(nil), l.agents...), Loading: l.loading}
	if l.err != nil {
		v.Error = "failed to load agents"
	}
	v.Empty = !v.Loading && v.Error == "" && len(v.Agents) == 0
	return v
}

// Watch reloads the list whenever an agent row changes, for as long as ctx lives.
func (l *AgentList) Watch(ctx context.Context) (*Subscription, error) {
	return l.dir.SubscribeToAgentStatusChanges(ctx, func(domain.Change) {
		l.Reload(ctx)
	})
}
