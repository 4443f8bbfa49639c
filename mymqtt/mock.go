package mymqtt

import (
	"context"
	"sync"
)

// Message is one recorded publish.
type Message struct {
	Topic   string `json:"topic"`
	Payload []byte `json:"payload"`
}

// MockClient is a minimal Client implementation for testing. It records every
// publish instead of sending it anywhere.
type MockClient struct {
	mu         sync.Mutex
	messages   []Message
	PublishErr error // returned by Publish when non-nil
}

// NewMockClient creates a new mock MQTT client
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Id() string {
	return "mock-client"
}

func (m *MockClient) Publish(ctx context.Context, topic string, payload []byte) error {
	if m.PublishErr != nil {
		return m.PublishErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, Message{
		Topic:   topic,
		Payload: append([]byte(nil), payload...),
	})
	return nil
}

func (m *MockClient) Close() {}

// Published returns a copy of the messages recorded so far.
func (m *MockClient) Published() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.messages...)
}
