package fakes

import "sync"

type TextSource struct {
	TextCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			Path string
		}
		Returns struct {
			String string
			Error  error
		}
		Stub func(string) (string, error)
	}
}

func (f *TextSource) Text(param1 string) (string, error) {
	f.TextCall.Lock()
	defer f.TextCall.Unlock()
	f.TextCall.CallCount++
	f.TextCall.Receives.Path = param1
	if f.TextCall.Stub != nil {
		return f.TextCall.Stub(param1)
	}
	return f.TextCall.Returns.String, f.TextCall.Returns.Error
}
