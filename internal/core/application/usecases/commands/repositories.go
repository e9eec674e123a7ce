// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
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

	// ZoneRepoFactory provides access to the zone repository within a transaction.
	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	// MethodRepoFactory provides access to the method repository within a transaction.
	MethodRepoFactory interface {
		MethodRepository() ports.MethodRepository
	}

	// MethodUoW manages transactions for method-only operations.
	MethodUoW interface {
		TxManager
		MethodRepoFactory
	}

	// MethodUoWFactory creates new method unit of work instances.
	MethodUoWFactory interface {
		Create() MethodUoW
	}

	// UoW manages transactions across both zone and method aggregates.
	// Zone creation reads methods to validate links, so it needs both.
	UoW interface {
		TxManager
		ZoneRepoFactory
		MethodRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
