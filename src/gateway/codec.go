package gateway

import (
	"bytes"
	"fmt"
	"io"

	"github.com/DeadLyBro/teamly/src/structs"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zlib"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope is the wire shape of every gateway message, in both directions.
type Envelope struct {
	T string `json:"t"`
	D any    `json:"d"`
}

// Frame is a decoded inbound envelope.
type Frame struct {
	Tag  string
	Data structs.Payload
}

const tagHeartbeat = "HEARTBEAT"

var heartbeatEnvelope = Envelope{T: tagHeartbeat, D: struct{}{}}

func encodeEnvelope(e Envelope) ([]byte, error) {
	if e.T == "" {
		return nil, fmt.Errorf("%w: empty tag", ErrMalformedFrame)
	}
	if e.D == nil {
		e.D = struct{}{}
	}
	return json.Marshal(e)
}

// decodeFrame parses one inbound message. Binary messages are
// zlib-compressed JSON.
func decodeFrame(messageType int, message []byte) (Frame, error) {
	if messageType == websocket.BinaryMessage {
		z, err := zlib.NewReader(bytes.NewReader(message))
		if err != nil {
			return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		defer z.Close()
		message, err = io.ReadAll(z)
		if err != nil {
			return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
	}

	var raw struct {
		T any `json:"t"`
		D any `json:"d"`
	}
	if err := json.Unmarshal(message, &raw); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	tag, ok := raw.T.(string)
	if !ok || tag == "" {
		return Frame{}, fmt.Errorf("%w: missing tag", ErrMalformedFrame)
	}

	frame := Frame{Tag: tag, Data: structs.Payload{}}
	switch d := raw.D.(type) {
	case nil:
	case map[string]any:
		frame.Data = d
	default:
		return Frame{}, fmt.Errorf("%w: data of %s is %T, not an object", ErrMalformedFrame, tag, raw.D)
	}
	return frame, nil
}

func sample(message []byte) string {
	const max = 64
	if len(message) > max {
		return string(message[:max]) + "..."
	}
	return string(message)
}
