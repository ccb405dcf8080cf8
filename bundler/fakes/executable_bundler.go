package fakes

import (
	"sync"

	"github.com/fileclassify/fileclassify/bundler"
)

type ExecutableBundler struct {
	RunCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir string
			Options    bundler.BundleOptions
		}
		Returns struct {
			ArtifactPath string
			Err          error
		}
		Stub func(string, bundler.BundleOptions) (string, error)
	}
}

func (f *ExecutableBundler) Run(param1 string, param2 bundler.BundleOptions) (string, error) {
	f.RunCall.Lock()
	defer f.RunCall.Unlock()
	f.RunCall.CallCount++
	f.RunCall.Receives.WorkingDir = param1
	f.RunCall.Receives.Options = param2
	if f.RunCall.Stub != nil {
		return f.RunCall.Stub(param1, param2)
	}
	return f.RunCall.Returns.ArtifactPath, f.RunCall.Returns.Err
}
