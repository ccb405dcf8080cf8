package fakes

import (
	"context"
	"sync"

	fileclassify "github.com/fileclassify/fileclassify"
)

type FileClassifier struct {
	ClassifyCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			Ctx  context.Context
			Path string
		}
		Returns struct {
			Classification fileclassify.Classification
			Error          error
		}
		Stub func(context.Context, string) (fileclassify.Classification, error)
	}
}

func (f *FileClassifier) Classify(param1 context.Context, param2 string) (fileclassify.Classification, error) {
	f.ClassifyCall.Lock()
	defer f.ClassifyCall.Unlock()
	f.ClassifyCall.CallCount++
	f.ClassifyCall.Receives.Ctx = param1
	f.ClassifyCall.Receives.Path = param2
	if f.ClassifyCall.Stub != nil {
		return f.ClassifyCall.Stub(param1, param2)
	}
	return f.ClassifyCall.Returns.Classification, f.ClassifyCall.Returns.Error
}
