package state

import "log"

// AppState tracks whether a mini-app window is open and focused.
type AppState int

const (
	Closed AppState = iota
	RunningForeground
	RunningBackground
)

func (s AppState) String() string {
	switch s {
	case RunningForeground:
		return "foreground"
	case RunningBackground:
		return "background"
	default:
		return "closed"
	}
}

// Lifecycle is the host-owned state of one mini-app. Sessions only ever
// receive it through the Closer capability.
type Lifecycle struct {
	Name     string
	state    AppState
	OnChange func(AppState)
}

// Closer is the capability a session uses to tell its host it may close.
type Closer interface {
	SetClosed()
}

var _ Closer = (*Lifecycle)(nil)

func (l *Lifecycle) State() AppState { return l.state }

// Set moves the app to s, firing OnChange on a transition.
func (l *Lifecycle) Set(s AppState) {
	if l.state == s {
		return
	}
	log.Printf("[HOST] %s: %s -> %s", l.Name, l.state, s)
	l.state = s
	if l.OnChange != nil {
		l.OnChange(s)
	}
}

func (l *Lifecycle) SetClosed() { l.Set(Closed) }

// Running reports whether the app has an open window.
func (l *Lifecycle) Running() bool { return l.state != Closed }
