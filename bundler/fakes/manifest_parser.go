package fakes

import (
	"sync"

	"github.com/fileclassify/fileclassify/bundler"
)

type ManifestParser struct {
	ParseCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			Path string
		}
		Returns struct {
			RequirementSlice []bundler.Requirement
			Error            error
		}
		Stub func(string) ([]bundler.Requirement, error)
	}
}

func (f *ManifestParser) Parse(param1 string) ([]bundler.Requirement, error) {
	f.ParseCall.Lock()
	defer f.ParseCall.Unlock()
	f.ParseCall.CallCount++
	f.ParseCall.Receives.Path = param1
	if f.ParseCall.Stub != nil {
		return f.ParseCall.Stub(param1)
	}
	return f.ParseCall.Returns.RequirementSlice, f.ParseCall.Returns.Error
}
