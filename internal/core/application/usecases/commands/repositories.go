// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// StatusEventRepoFactory provides access to the audit trail repository within a transaction.
	StatusEventRepoFactory interface {
		StatusEventRepository() ports.StatusEventRepository
	}

	// NDRRepoFactory provides access to the NDR repository within a transaction.
	NDRRepoFactory interface {
		NDRRepository() ports.NDRRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only create or modify the shipment aggregate.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// LifecycleUoW manages transactions for lifecycle transitions.
	// Every status change lands together with exactly one audit event, so
	// both repositories share one transaction.
	LifecycleUoW interface {
		TxManager
		ShipmentRepoFactory
		StatusEventRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// NDRUoW manages transactions spanning the NDR workflow: report changes,
	// call logs, the shipment transition and its audit event all commit or
	// roll back together.
	NDRUoW interface {
		TxManager
		ShipmentRepoFactory
		StatusEventRepoFactory
		NDRRepoFactory
	}

	// NDRUoWFactory creates new NDR unit of work instances.
	NDRUoWFactory interface {
		Create() NDRUoW
	}
)
