package config

import "time"

type ClientConfig interface {
	GetRequestTimeout() time.Duration
}

type ClientSettings struct{}

var _ ClientConfig = ClientSettings{}

func (ClientSettings) GetRequestTimeout() time.Duration {
	return 30 * time.Second
}
