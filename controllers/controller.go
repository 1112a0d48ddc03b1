// Package controllers wires the operation layer to Fiber. Handlers parse
// and validate input, call one service operation and encode the result; no
// decision logic lives here.
package controllers

import (
	"go.uber.org/zap"

	"nouhin-backend/services"
)

type Controller struct {
	svc *services.Service
	log *zap.Logger
}

func New(svc *services.Service, log *zap.Logger) *Controller {
	return &Controller{svc: svc, log: log}
}
