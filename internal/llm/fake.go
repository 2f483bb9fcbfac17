package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// FakeReply is one scripted FakeClient response.
type FakeReply struct {
	Raw json.RawMessage
	Err error
}

// FakeClient returns scripted payloads in order for offline use and tests.
// Once the script is exhausted, the last reply repeats.
type FakeClient struct {
	mu     sync.Mutex
	script []FakeReply
	calls  int
}

func NewFakeClient(script ...FakeReply) *FakeClient {
	if len(script) == 0 {
		script = []FakeReply{{Raw: json.RawMessage(`{}`)}}
	}
	return &FakeClient{script: script}
}

func (f *FakeClient) Name() string { return "fake" }
func (f *FakeClient) Close() error { return nil }

// Calls reports how many GenerateJSON invocations were made.
func (f *FakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, input any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	idx := f.calls
	f.calls++
	if idx >= len(f.script) {
		idx = len(f.script) - 1
	}
	reply := f.script[idx]
	f.mu.Unlock()
	if reply.Err != nil {
		return nil, reply.Err
	}
	return reply.Raw, nil
}
