package bundler

import "os"

type Environment struct {
	defaultValues map[string]string
}

func NewEnvironment() Environment {
	return Environment{
		defaultValues: map[string]string{
			"PIP_DISABLE_PIP_VERSION_CHECK": "1",
		},
	}
}

func (e Environment) GetValue(key string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return e.defaultValues[key]
}
