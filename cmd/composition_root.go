package cmd

import (
	"production/internal/adapters/out/postgres"
	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"
	"production/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStopOrderCommandHandler() commands.StopOrderCommandHandler {
	return commands.NewStopOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteReclamationOrderCommandHandler() commands.CompleteReclamationOrderCommandHandler {
	return commands.NewCompleteReclamationOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateHideOrderCommandHandler() commands.HideOrderCommandHandler {
	return commands.NewHideOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRestoreOrderCommandHandler() commands.RestoreOrderCommandHandler {
	return commands.NewRestoreOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetRatingCommandHandler() commands.SetRatingCommandHandler {
	return commands.NewSetRatingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetResourceStatusCommandHandler() commands.SetResourceStatusCommandHandler {
	return commands.NewSetResourceStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClaimStageCommandHandler() commands.ClaimStageCommandHandler {
	return commands.NewClaimStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceStageCommandHandler() commands.AdvanceStageCommandHandler {
	return commands.NewAdvanceStageCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordBreakCommandHandler() commands.RecordBreakCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordBreakCommandHandler(f, services.NewBreakResolver())
}

func (c *CompositionRoot) CreatePurgeHiddenOrdersCommandHandler() commands.PurgeHiddenOrdersCommandHandler {
	return commands.NewPurgeHiddenOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderStagesQueryHandler() queries.GetOrderStagesQueryHandler {
	return queries.NewGetOrderStagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveStagesQueryHandler() queries.GetActiveStagesQueryHandler {
	return queries.NewGetActiveStagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClaimableStagesQueryHandler() queries.GetClaimableStagesQueryHandler {
	return queries.NewGetClaimableStagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEligibleBreakDepartmentsQueryHandler() queries.GetEligibleBreakDepartmentsQueryHandler {
	return queries.NewGetEligibleBreakDepartmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
