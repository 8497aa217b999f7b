// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package dap

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-dap"
)

// Direction indicates the flow direction of a DAP message through the proxy.
type Direction int

const (
	// Upstream indicates a message flowing from the editor to the debug server.
	Upstream Direction = iota
	// Downstream indicates a message flowing from the debug server to the editor.
	Downstream
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Upstream:
		return "upstream"
	case Downstream:
		return "downstream"
	default:
		return "unknown"
	}
}

// Message is a single DAP message in its wire form.
// The proxy forwards the content verbatim, so messages the go-dap codec does not know
// (custom events in particular) pass through unchanged.
type Message struct {
	Content []byte

	header messageHeader
}

type messageHeader struct {
	Seq     int    `json:"seq"`
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
	Event   string `json:"event,omitempty"`
}

// ParseMessage wraps the JSON content of a DAP message.
// Only the envelope is parsed; the arguments or body are not validated.
func ParseMessage(content []byte) (*Message, error) {
	var h messageHeader
	if err := json.Unmarshal(content, &h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	if h.Type == "" {
		return nil, fmt.Errorf("%w: the message has no type", ErrInvalidMessage)
	}
	return &Message{Content: content, header: h}, nil
}

// NewMessage encodes a go-dap protocol message.
func NewMessage(msg dap.Message) (*Message, error) {
	content, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode DAP message: %w", err)
	}
	return ParseMessage(content)
}

func (m *Message) Seq() int        { return m.header.Seq }
func (m *Message) Type() string    { return m.header.Type }
func (m *Message) Command() string { return m.header.Command }
func (m *Message) Event() string   { return m.header.Event }

// IsEvent reports whether the message is an event with the given name.
func (m *Message) IsEvent(name string) bool {
	return m.header.Type == "event" && m.header.Event == name
}

// Decode converts the message into its go-dap representation.
// Fails for messages the go-dap codec does not know.
func (m *Message) Decode() (dap.Message, error) {
	msg, err := dap.DecodeProtocolMessage(m.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode DAP message: %w", err)
	}
	return msg, nil
}

// Body unmarshals the "body" property of an event or response into target.
func (m *Message) Body(target any) error {
	var envelope struct {
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(m.Content, &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	if len(envelope.Body) == 0 {
		return fmt.Errorf("%w: the message has no body", ErrInvalidMessage)
	}
	if err := json.Unmarshal(envelope.Body, target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return nil
}

func (m *Message) String() string {
	switch m.header.Type {
	case "request", "response":
		return fmt.Sprintf("%s %s (seq %d)", m.header.Type, m.header.Command, m.header.Seq)
	case "event":
		return fmt.Sprintf("event %s (seq %d)", m.header.Event, m.header.Seq)
	default:
		return fmt.Sprintf("%s (seq %d)", m.header.Type, m.header.Seq)
	}
}
