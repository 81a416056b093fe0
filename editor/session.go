package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/plus3/scenedit/undo"
)

var (
	ErrSessionClosed = errors.New("editor: session closed")
	ErrQueueFull     = errors.New("editor: message queue full")
)

// Message is anything a Session consumes.
type Message interface {
	isMessage()
}

// DoCommand asks the session to execute a command and record it.
type DoCommand struct {
	Command Command
}

type UndoMessage struct{}

type RedoMessage struct{}

// ClearMessage finalizes and drops the whole history.
type ClearMessage struct{}

func (DoCommand) isMessage()    {}
func (UndoMessage) isMessage()  {}
func (RedoMessage) isMessage()  {}
func (ClearMessage) isMessage() {}

// Checker is implemented by commands that can refuse to run against a context. A
// command whose Check fails is dropped before it reaches the history.
type Checker interface {
	Check(ctx *Context) error
}

type EventKind int

const (
	EventDo EventKind = iota
	EventUndo
	EventRedo
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventDo:
		return "Do"
	case EventUndo:
		return "Undo"
	case EventRedo:
		return "Redo"
	case EventClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Event reports a message that changed the history. Name is the affected command and is
// empty for EventClear.
type Event struct {
	Kind   EventKind
	Name   string
	Cursor int
	Len    int
}

// Session owns a Context and its History and applies messages to them one at a time, in
// the order they were sent. Messages are consumed either by Run on a dedicated goroutine
// or by calling Flush from the goroutine that owns the context, never both.
type Session struct {
	ctx       *Context
	history   *History
	logger    Logger
	listeners []func(Event)

	mu     sync.RWMutex
	closed bool
	queue  chan Message
}

// NewSession creates a session for ctx. A nil logger discards output.
func NewSession(ctx *Context, cfg Config, logger Logger) *Session {
	if logger == nil {
		logger = NewNopLogger()
	}
	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Session{
		ctx:     ctx,
		history: undo.NewHistory[*Context](cfg.HistoryLimit),
		logger:  logger,
		queue:   make(chan Message, size),
	}
}

func (s *Session) Context() *Context {
	return s.ctx
}

func (s *Session) History() *History {
	return s.history
}

func (s *Session) Logger() Logger {
	return s.logger
}

// OnChange registers fn to be called after every message that changed the history.
// Listeners run on the consuming goroutine.
func (s *Session) OnChange(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

// Send queues msg without blocking.
func (s *Session) Send(msg Message) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrSessionClosed
	}
	select {
	case s.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (s *Session) Submit(cmd Command) error {
	return s.Send(DoCommand{Command: cmd})
}

func (s *Session) Undo() error {
	return s.Send(UndoMessage{})
}

func (s *Session) Redo() error {
	return s.Send(RedoMessage{})
}

func (s *Session) Clear() error {
	return s.Send(ClearMessage{})
}

// Close stops accepting messages. Messages already queued are still delivered.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.queue)
}

// Flush applies every queued message and returns how many were consumed.
func (s *Session) Flush() int {
	n := 0
	for {
		select {
		case msg, ok := <-s.queue:
			if !ok {
				return n
			}
			s.apply(msg)
			n++
		default:
			return n
		}
	}
}

// Run applies messages until ctx is done or the session is closed and drained.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-s.queue:
			if !ok {
				return nil
			}
			s.apply(msg)
		}
	}
}

func (s *Session) apply(msg Message) {
	switch m := msg.(type) {
	case DoCommand:
		s.do(m.Command)
	case UndoMessage:
		top, ok := s.history.Top()
		if !ok || !s.history.Undo(s.ctx) {
			s.logger.Debugf("nothing to undo")
			return
		}
		s.emit(EventUndo, top.Name(s.ctx))
	case RedoMessage:
		next, ok := s.history.Next()
		if !ok || !s.history.Redo(s.ctx) {
			s.logger.Debugf("nothing to redo")
			return
		}
		s.emit(EventRedo, next.Name(s.ctx))
	case ClearMessage:
		s.logger.Debugf("clearing %d commands", s.history.Len())
		s.history.Clear(s.ctx)
		s.emit(EventClear, "")
	default:
		s.logger.Warnf("ignoring unknown message %T", msg)
	}
}

func (s *Session) do(cmd Command) {
	if cmd == nil {
		s.logger.Warnf("ignoring nil command")
		return
	}
	name := cmd.Name(s.ctx)

	if g, ok := cmd.(*undo.Group[*Context]); ok && g.Len() == 0 {
		s.logger.Debugf("dropping empty group %q", name)
		return
	}
	if c, ok := cmd.(Checker); ok {
		if err := c.Check(s.ctx); err != nil {
			s.logger.Warnf("rejecting %q: %v", name, err)
			return
		}
	}

	if discarded := s.history.Len() - s.history.Cursor(); discarded > 0 {
		s.logger.Debugf("discarding %d undone commands", discarded)
	}
	s.history.Do(s.ctx, cmd)
	s.logger.Debugf("executed %q (%d/%d)", name, s.history.Cursor(), s.history.Len())
	s.emit(EventDo, name)
}

func (s *Session) emit(kind EventKind, name string) {
	ev := Event{
		Kind:   kind,
		Name:   name,
		Cursor: s.history.Cursor(),
		Len:    s.history.Len(),
	}
	for _, fn := range s.listeners {
		fn(ev)
	}
}
