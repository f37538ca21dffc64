package plan

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Pipeline steps in emission order.
const (
	StepAccounts = "accounts"
	StepReels    = "reels"
	StepEnrich   = "enrich"
	StepScenario = "scenario"
	StepError    = "error"
)

// Event statuses.
const (
	StatusRunning   = "running"
	StatusStreaming = "streaming"
	StatusDone      = "done"
	StatusError     = "error"
)

// Event is one progress frame of a pipeline run.
type Event struct {
	Step    string `json:"step"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Chunk   string `json:"chunk,omitempty"`
}

// EventSink receives pipeline events in emission order.
type EventSink interface {
	Send(event Event) error
}

type sseEmitter struct {
	writer  http.ResponseWriter
	flusher http.Flusher
}

// NewSSEEmitter wraps a response writer as an event sink producing one
// server-sent frame per event. Fails when the writer cannot flush
// incrementally.
func NewSSEEmitter(writer http.ResponseWriter) (EventSink, error) {
	flusher, ok := writer.(http.Flusher)
	if !ok {
		return nil, errors.New("response writer does not support streaming")
	}
	return &sseEmitter{writer: writer, flusher: flusher}, nil
}

func (s *sseEmitter) Send(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "data: %s\n\n", data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// EventDecoder incrementally decodes a server-sent event stream back into
// pipeline events. Malformed frames are silently discarded so one bad frame
// never breaks the rest of the run.
type EventDecoder struct {
	reader *bufio.Reader
}

func NewEventDecoder(r io.Reader) *EventDecoder {
	return &EventDecoder{reader: bufio.NewReader(r)}
}

// Next returns the next well-formed event, or io.EOF when the stream ends.
func (d *EventDecoder) Next() (Event, error) {
	for {
		frame, err := d.readFrame()
		if err != nil {
			return Event{}, err
		}
		payload := strings.TrimSpace(frame)
		if payload == "" || payload == "[DONE]" {
			continue
		}
		var event Event
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			continue
		}
		return event, nil
	}
}

func (d *EventDecoder) readFrame() (string, error) {
	var dataLines []string
	for {
		line, err := d.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if len(dataLines) > 0 {
				return strings.Join(dataLines, "\n"), nil
			}
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			continue
		}
		if strings.HasPrefix(line, "data:") {
			dataLines = append(dataLines, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
		if errors.Is(err, io.EOF) {
			if len(dataLines) > 0 {
				return strings.Join(dataLines, "\n"), nil
			}
			return "", io.EOF
		}
	}
}
