package cmd

import (
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/serviceability"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	serviceability ports.ServiceabilityProvider
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		serviceability: serviceability.NewGormServiceabilityProvider(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f, c.serviceability)
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordFailedAttemptCommandHandler() commands.RecordFailedAttemptCommandHandler {
	var f commands.NDRUoWFactory = FuncNDRUoWFactory(func() commands.NDRUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordFailedAttemptCommandHandler(f)
}

func (c *CompositionRoot) CreateLogNDRContactCommandHandler() commands.LogNDRContactCommandHandler {
	var f commands.NDRUoWFactory = FuncNDRUoWFactory(func() commands.NDRUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogNDRContactCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveNDRCommandHandler() commands.ResolveNDRCommandHandler {
	var f commands.NDRUoWFactory = FuncNDRUoWFactory(func() commands.NDRUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveNDRCommandHandler(f)
}

func (c *CompositionRoot) CreateEscalateOverdueNDRsCommandHandler() commands.EscalateOverdueNDRsCommandHandler {
	var f commands.NDRUoWFactory = FuncNDRUoWFactory(func() commands.NDRUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEscalateOverdueNDRsCommandHandler(f)
}

func (c *CompositionRoot) CreateSelectPartnerQueryHandler() queries.SelectPartnerQueryHandler {
	return queries.NewSelectPartnerQueryHandler(c.serviceability)
}

func (c *CompositionRoot) CreateGetAllowedTransitionsQueryHandler() queries.GetAllowedTransitionsQueryHandler {
	return queries.NewGetAllowedTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncNDRUoWFactory func() commands.NDRUoW

func (f FuncNDRUoWFactory) Create() commands.NDRUoW {
	return f()
}
