package middleware

import (
	"wardrobe-ai/pkg/log"
)

type Middleware struct {
	l           log.Logger
	jwtSecret   string
	environment string
}

func New(l log.Logger, jwtSecret, environment string) Middleware {
	return Middleware{
		l:           l,
		jwtSecret:   jwtSecret,
		environment: environment,
	}
}
