package cmd

import (
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateConsultationCommandHandler() commands.UpdateConsultationCommandHandler {
	return commands.NewUpdateConsultationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateEmergencyContactCommandHandler() commands.UpdateEmergencyContactCommandHandler {
	return commands.NewUpdateEmergencyContactCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOpenRevisionCommandHandler() commands.OpenRevisionCommandHandler {
	return commands.NewOpenRevisionCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateReviewRevisionCommandHandler() commands.ReviewRevisionCommandHandler {
	return commands.NewReviewRevisionCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateAddMilestoneCommandHandler() commands.AddMilestoneCommandHandler {
	return commands.NewAddMilestoneCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateMarkMilestonePaidCommandHandler() commands.MarkMilestonePaidCommandHandler {
	return commands.NewMarkMilestonePaidCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	return commands.NewOpenDisputeCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRequestAlterationCommandHandler() commands.RequestAlterationCommandHandler {
	return commands.NewRequestAlterationCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateReviewAlterationCommandHandler() commands.ReviewAlterationCommandHandler {
	return commands.NewReviewAlterationCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	return commands.NewRequestRefundCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateProcessRefundCommandHandler() commands.ProcessRefundCommandHandler {
	return commands.NewProcessRefundCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderQueryHandler(uow.OrderRepository())
}

func (c *CompositionRoot) CreateGetOverdueMilestonesQueryHandler() queries.GetOverdueMilestonesQueryHandler {
	return queries.NewGetOverdueMilestonesQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
