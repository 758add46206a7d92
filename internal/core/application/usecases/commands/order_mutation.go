package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// mutateOrder runs the load-mutate-save cycle every order command shares:
// it loads the aggregate inside a fresh transaction, applies the mutation,
// persists it with an optimistic concurrency check, and commits.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = mutate(aggregate); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// publishOrderChanged emits the integration event for the aggregate's latest
// timeline entry. Best effort: publishing runs after commit and a broker
// failure never surfaces to the caller.
func publishOrderChanged(ctx context.Context, publisher ports.OrderEventPublisher, aggregate *order.Order, actor kernel.Actor) {
	if publisher == nil {
		return
	}

	timeline := aggregate.Timeline()
	if len(timeline) == 0 {
		return
	}
	last := timeline[len(timeline)-1]

	_ = publisher.PublishOrderChanged(ctx, ports.OrderChangedEvent{
		OrderID:     aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber(),
		Step:        last.Step(),
		Status:      aggregate.Status().String(),
		ActorID:     actor.ID().String(),
		ActorRole:   actor.Role().String(),
		OccurredAt:  last.At(),
	})
}
