package commands

import (
	"context"
)

type AgeStockCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewAgeStockCommandHandler(uowFactory StockUoWFactory) AgeStockCommandHandler {
	return AgeStockCommandHandler{uowFactory: uowFactory}
}

// Handle returns how many stock lines changed.
func (h *AgeStockCommandHandler) Handle(ctx context.Context, cmd AgeStockCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StockRepository()

	items, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, item := range items {
		if !item.Age() {
			continue
		}
		if err = repo.Update(ctx, item); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
