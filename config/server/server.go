package server

import (
	"time"
)

type ServerConfig struct {
	Addr     string `yaml:"addr" split_words:"true"`
	Timeouts struct {
		Read   time.Duration `yaml:"read" split_words:"true"`
		Header time.Duration `yaml:"header" split_words:"true"`
		Write  time.Duration `yaml:"write" split_words:"true"`
		Idle   time.Duration `yaml:"idle" split_words:"true"`
	} `yaml:"timeouts" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

func Defaults() ServerConfig {
	var s ServerConfig
	s.Addr = ":8080"
	s.Timeouts.Read = 10 * time.Second
	s.Timeouts.Header = 5 * time.Second
	s.Timeouts.Write = 10 * time.Second
	s.Timeouts.Idle = 60 * time.Second
	s.ShutdownTimeout = 5 * time.Second
	return s
}
