package player

import (
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/vidmark-cli/vidmark/log"
)

// observedProperties are the mpv properties whose changes feed the clock's
// event stream. mpv pushes a notification on every change, at whatever rate
// the pipeline produces them.
var observedProperties = []struct {
	id   int
	name string
}{
	{1, "time-pos"},
	{2, "duration"},
	{3, "pause"},
	{4, "fullscreen"},
	{5, "speed"},
	{6, "eof-reached"},
}

// listener maintains a persistent IPC connection and translates mpv
// property-change notifications into typed clock events.
type listener struct {
	socketPath string
	conn       net.Conn
	events     chan<- Event
	exited     <-chan struct{}
	stopCh     chan struct{}
	mu         sync.Mutex
	listening  bool
}

func newListener(socketPath string, events chan<- Event, exited <-chan struct{}) *listener {
	return &listener{
		socketPath: socketPath,
		events:     events,
		exited:     exited,
		stopCh:     make(chan struct{}),
	}
}

// start subscribes to property observation and launches the read loop.
func (l *listener) start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listening {
		return nil
	}

	for _, prop := range observedProperties {
		_, err := doSendCommand(l.socketPath, []interface{}{"observe_property", prop.id, prop.name})
		if err != nil {
			return fmt.Errorf("observe %s: %w", prop.name, err)
		}
	}

	conn, err := net.Dial("unix", l.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}
	l.conn = conn
	l.listening = true

	go l.readLoop()

	log.Infof("mpv event listener started on %s", l.socketPath)
	return nil
}

// stop terminates the listener.
func (l *listener) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.listening {
		return
	}

	close(l.stopCh)
	if l.conn != nil {
		l.conn.Close()
	}
	l.listening = false
}

// readLoop continuously reads newline-delimited JSON notifications from the
// persistent mpv connection and forwards translated events.
func (l *listener) readLoop() {
	defer func() {
		l.mu.Lock()
		l.listening = false
		l.mu.Unlock()
	}()

	buf := make([]byte, 4096)
	var remainder []byte

	for {
		select {
		case <-l.stopCh:
			return
		case <-l.exited:
			l.emit(Exited{})
			return
		default:
		}

		// Bounded read so the stop channel is checked regularly
		if err := l.conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
			return
		}

		n, err := l.conn.Read(buf)
		if err != nil {
			if strings.Contains(err.Error(), "timeout") || strings.Contains(err.Error(), "deadline") {
				continue
			}
			log.Warnf("event listener read error: %v", err)
			l.emit(Exited{})
			return
		}

		data := append(remainder, buf[:n]...)
		remainder = nil

		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			// Last incomplete line goes to remainder for the next read
			if i == len(lines)-1 && !strings.HasSuffix(string(data), "\n") {
				remainder = []byte(line)
				continue
			}

			l.processLine(line)
		}
	}
}

// processLine parses a single notification and emits its typed event, if any.
func (l *listener) processLine(line string) {
	var notification struct {
		Event string      `json:"event"`
		Name  string      `json:"name"`
		Data  interface{} `json:"data"`
	}
	if err := json.Unmarshal([]byte(line), &notification); err != nil {
		return // skip unparseable lines
	}

	switch notification.Event {
	case "property-change":
		if ev, ok := eventFromProperty(notification.Name, notification.Data); ok {
			l.emit(ev)
		}
	case "end-file":
		l.emit(EndReached{})
	}
}

// emit forwards an event without blocking the read loop; if the consumer
// lags behind, the oldest unread notification is dropped.
func (l *listener) emit(ev Event) {
	select {
	case l.events <- ev:
	default:
		log.Debugf("event channel full, dropping %T", ev)
	}
}
