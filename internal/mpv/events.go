package mpv

import (
	"strings"

	"github.com/PizzaHomicide/toyunda/internal/engine"
	"github.com/gen2brain/go-mpv"
)

var eventKinds = map[mpv.EventID]engine.EventKind{
	mpv.EventShutdown:        engine.EventShutdown,
	mpv.EventLogMsg:          engine.EventLogMessage,
	mpv.EventStart:           engine.EventStartFile,
	mpv.EventEnd:             engine.EventEndFile,
	mpv.EventFileLoaded:      engine.EventFileLoaded,
	mpv.EventPlaybackRestart: engine.EventPlaybackRestart,
	mpv.EventPropertyChange:  engine.EventPropertyChange,
	mpv.EventQueueOverflow:   engine.EventQueueOverflow,
}

// convertEvent copies what the player needs out of an mpv event.  The event's data is owned by mpv
// and only valid until the next WaitEvent call, so nothing here may keep a reference to it.
func convertEvent(ev *mpv.Event) engine.Event {
	out := engine.Event{
		Kind: engine.EventOther,
		Name: ev.EventID.String(),
		Err:  ev.Error,
	}
	if kind, ok := eventKinds[ev.EventID]; ok {
		out.Kind = kind
	}

	if ev.Data == nil {
		return out
	}

	switch ev.EventID {
	case mpv.EventLogMsg:
		msg := ev.LogMessage()
		out.Log = &engine.LogMessage{
			Prefix: msg.Prefix,
			Level:  msg.Level,
			Text:   strings.TrimRight(msg.Text, "\n"),
		}
	case mpv.EventEnd:
		end := ev.EndFile()
		out.EndReason = engine.EndReason(end.Reason.String())
		if end.Error != nil {
			out.Err = end.Error
		}
	case mpv.EventPropertyChange:
		out.Property = ev.Property().Name
	}
	return out
}
