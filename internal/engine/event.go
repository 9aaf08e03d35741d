package engine

// EventKind classifies an event pulled from the engine queue.  The player only reacts to a few of
// them; the rest are drained and dropped.
type EventKind int

const (
	EventNone EventKind = iota
	EventShutdown
	EventLogMessage
	EventStartFile
	EventEndFile
	EventFileLoaded
	EventPlaybackRestart
	EventPropertyChange
	EventQueueOverflow
	EventOther
)

var eventNames = map[EventKind]string{
	EventNone:            "none",
	EventShutdown:        "shutdown",
	EventLogMessage:      "log-message",
	EventStartFile:       "start-file",
	EventEndFile:         "end-file",
	EventFileLoaded:      "file-loaded",
	EventPlaybackRestart: "playback-restart",
	EventPropertyChange:  "property-change",
	EventQueueOverflow:   "event-queue-overflow",
	EventOther:           "other",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// EndReason says why the engine stopped playing a file
type EndReason string

const (
	EndEOF      EndReason = "eof"
	EndStop     EndReason = "stop"
	EndQuit     EndReason = "quit"
	EndError    EndReason = "error"
	EndRedirect EndReason = "redirect"
)

// LogMessage is an engine log line requested through the log level option
type LogMessage struct {
	Prefix string
	Level  string
	Text   string
}

// Event is a single notification from the engine queue.  Only the field matching Kind is filled in.
type Event struct {
	Kind EventKind
	// Name is the engine's own name for the event, kept for logging
	Name string
	// Err is set when the engine attached an error to the event
	Err error

	EndReason EndReason
	Log       *LogMessage
	Property  string
}

// Source is anything events can be fetched from without blocking.  ok is false once the queue is empty.
type Source interface {
	NextEvent() (event Event, ok bool)
}

// Drain fetches events from src until it reports empty, calling handle for each one.  handle may be
// nil, in which case events are simply discarded.  It returns the number of events drained.
//
// Drain must run at least once per frame: the engine's queue is bounded and a full queue stalls later
// commands and property writes.
func Drain(src Source, handle func(Event)) int {
	n := 0
	for {
		ev, ok := src.NextEvent()
		if !ok {
			return n
		}
		n++
		if handle != nil {
			handle(ev)
		}
	}
}
