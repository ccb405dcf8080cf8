package fakes

import "sync"

type DependencyInstaller struct {
	ShouldRunCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir   string
			ManifestPath string
			Metadata     map[string]interface{}
		}
		Returns struct {
			Run bool
			Sha string
			Err error
		}
		Stub func(string, string, map[string]interface{}) (bool, string, error)
	}
	RunCall struct {
		sync.Mutex
		CallCount int
		Receives  struct {
			WorkingDir   string
			ManifestPath string
		}
		Returns struct {
			Error error
		}
		Stub func(string, string) error
	}
}

func (f *DependencyInstaller) ShouldRun(param1 string, param2 string, param3 map[string]interface{}) (bool, string, error) {
	f.ShouldRunCall.Lock()
	defer f.ShouldRunCall.Unlock()
	f.ShouldRunCall.CallCount++
	f.ShouldRunCall.Receives.WorkingDir = param1
	f.ShouldRunCall.Receives.ManifestPath = param2
	f.ShouldRunCall.Receives.Metadata = param3
	if f.ShouldRunCall.Stub != nil {
		return f.ShouldRunCall.Stub(param1, param2, param3)
	}
	return f.ShouldRunCall.Returns.Run, f.ShouldRunCall.Returns.Sha, f.ShouldRunCall.Returns.Err
}

func (f *DependencyInstaller) Run(param1 string, param2 string) error {
	f.RunCall.Lock()
	defer f.RunCall.Unlock()
	f.RunCall.CallCount++
	f.RunCall.Receives.WorkingDir = param1
	f.RunCall.Receives.ManifestPath = param2
	if f.RunCall.Stub != nil {
		return f.RunCall.Stub(param1, param2)
	}
	return f.RunCall.Returns.Error
}
