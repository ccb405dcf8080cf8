package fakes

import (
	"context"
	"sync"
)

type ClassificationClient struct {
	ExtractJSONCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			Ctx          context.Context
			Prompt       string
			SystemPrompt string
		}
		Returns struct {
			MapStringAny map[string]any
			Error        error
		}
		Stub func(context.Context, string, string) (map[string]any, error)
	}
}

func (f *ClassificationClient) ExtractJSON(param1 context.Context, param2 string, param3 string) (map[string]any, error) {
	f.ExtractJSONCall.Lock()
	defer f.ExtractJSONCall.Unlock()
	f.ExtractJSONCall.CallCount++
	f.ExtractJSONCall.Receives.Ctx = param1
	f.ExtractJSONCall.Receives.Prompt = param2
	f.ExtractJSONCall.Receives.SystemPrompt = param3
	if f.ExtractJSONCall.Stub != nil {
		return f.ExtractJSONCall.Stub(param1, param2, param3)
	}
	return f.ExtractJSONCall.Returns.MapStringAny, f.ExtractJSONCall.Returns.Error
}
