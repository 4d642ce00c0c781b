package registry

import (
	"github.com/dymensionxyz/tonshard/topology"
)

type Provider string

const (
	LiteClient Provider = "liteclient"

	Static Provider = "static"
)

var providers = map[Provider]func() topology.Provider{
	LiteClient: func() topology.Provider { return topology.NewLiteClient() },
	Static:     func() topology.Provider { return topology.NewStatic() },
}

func GetProvider(provider Provider) topology.Provider {
	f, ok := providers[provider]
	if !ok {
		return nil
	}
	return f()
}

func RegisteredProviders() []Provider {
	registered := make([]Provider, 0, len(providers))
	for provider := range providers {
		registered = append(registered, provider)
	}
	return registered
}
