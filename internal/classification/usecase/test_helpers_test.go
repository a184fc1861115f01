package usecase

import (
	"context"

	"finmail-classifier/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeCompleter returns a canned response and records every request.
type fakeCompleter struct {
	text  string
	model string
	err   error
	calls []*llmprovider.Request
}

func (f *fakeCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ModelName: f.model, ProviderName: "fake"}, nil
}

const validJSON = `{"category":"Produtivo","reason":"Pede status do chamado","summary":"Cliente cobra status do chamado 123","suggestedResponse":"Olá, estamos verificando.","priority":"Alta","sentiment":"Neutro"}`
