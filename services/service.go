// Package services implements the operation layer: entity lifecycle,
// voucher-backed creation, document issuance and sales aggregation. The
// HTTP controllers are thin wrappers over this package.
package services

import (
	"go.uber.org/zap"

	"nouhin-backend/documents"
	"nouhin-backend/store"
)

type Service struct {
	store    *store.Store
	renderer documents.Renderer
	log      *zap.Logger
}

func New(st *store.Store, renderer documents.Renderer, log *zap.Logger) *Service {
	return &Service{store: st, renderer: renderer, log: log}
}
