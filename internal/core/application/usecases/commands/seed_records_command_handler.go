package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/notification"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/payment"
	"pharmacygo/internal/core/domain/model/pharmacy"
	"pharmacygo/internal/core/ports"
	"pharmacygo/internal/pkg/errs"
)

// SeedLockKey serializes seeding so concurrent first visits seed once.
const SeedLockKey int64 = 0x5047_5345_4544 // "PGSEED"

// SeedRecordsCommandHandler seeds each table independently: a table that
// already holds rows is left alone.
type SeedRecordsCommandHandler struct {
	uowFactory UoWFactory
}

func NewSeedRecordsCommandHandler(uowFactory UoWFactory) SeedRecordsCommandHandler {
	return SeedRecordsCommandHandler{uowFactory: uowFactory}
}

type seeder struct {
	uow UoW
	now time.Time
	seq int
}

// at hands out strictly increasing timestamps so fixture order survives
// "newest first" listings.
func (s *seeder) at() time.Time {
	s.seq++
	return s.now.Add(time.Duration(s.seq) * time.Millisecond)
}

func (h *SeedRecordsCommandHandler) Handle(ctx context.Context, cmd SeedRecordsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Lock(ctx, SeedLockKey); err != nil {
		return err
	}

	s := &seeder{uow: uow, now: time.Now().UTC()}

	steps := []struct {
		count func(context.Context) (int64, error)
		seed  func(context.Context) error
	}{
		{uow.PharmacyRepository().Count, s.pharmacies},
		{uow.ApplicationRepository().Count, s.applications},
		{uow.OrderRepository().Count, s.orders},
		{uow.ProviderRepository().Count, s.providers},
		{uow.CardRepository().Count, s.cards},
		{uow.NotificationRepository().Count, s.notifications},
		{uow.StockRepository().Count, s.stock},
		{uow.TaskRepository().Count, s.tasks},
		{uow.TimelineRepository().Count, s.timeline},
		{uow.StatusBoardRepository().Count, s.statusBoard},
	}

	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err = step.seed(ctx); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (s *seeder) pharmacies(ctx context.Context) error {
	repo := s.uow.PharmacyRepository()
	for _, f := range seedPharmacies {
		pin, err := kernel.ParseMapPin(f.pinTop, f.pinLeft)
		if err != nil {
			return err
		}
		p, err := pharmacy.NewPharmacy(kernel.NewUUID(), f.name, f.distanceKm, f.rating, "", pin)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// pharmacyNamed returns the pharmacy with that name, creating it with
// fallback attributes when missing.
func (s *seeder) pharmacyNamed(ctx context.Context, name string) (*pharmacy.Pharmacy, error) {
	repo := s.uow.PharmacyRepository()

	p, err := repo.GetByName(ctx, name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	p, err = pharmacy.NewPharmacy(kernel.NewUUID(), name, fallbackDistanceKm, fallbackRating, "", kernel.DefaultMapPin())
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *seeder) applications(ctx context.Context) error {
	repo := s.uow.ApplicationRepository()
	for _, f := range seedApplications {
		status := pharmacy.Review
		if strings.EqualFold(f.status, "pending") {
			status = pharmacy.Pending
		}
		a, err := pharmacy.RestoreApplication(kernel.NewUUID(), f.name, f.documents, status, s.at())
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) orders(ctx context.Context) error {
	repo := s.uow.OrderRepository()

	adminStatuses := map[string]order.Status{
		"Out for delivery": order.Out,
		"Delivered":        order.Delivered,
		"Awaiting courier": order.Pending,
		"Packed":           order.Packed,
	}

	for _, f := range seedAdminOrders {
		p, err := s.pharmacyNamed(ctx, f.pharmacy)
		if err != nil {
			return err
		}
		status, ok := adminStatuses[f.status]
		if !ok {
			status = order.Pending
		}
		if err = s.addOrder(ctx, repo, f.code, f.customer, p.ID(), status, f.items, f.progress, f.eta); err != nil {
			return err
		}
	}

	home, err := s.pharmacyNamed(ctx, seedPharmacies[0].name)
	if err != nil {
		return err
	}

	for _, f := range seedCustomerOrders {
		exists, err := repo.CodeExists(ctx, f.code)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		status := order.Out
		if strings.Contains(f.status, "Delivered") {
			status = order.Delivered
		}
		if err = s.addOrder(ctx, repo, f.code, seedCustomerName, home.ID(), status, f.items, f.progress, f.status); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) addOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	code, customer string,
	pharmacyID kernel.UUID,
	status order.Status,
	items, progress, eta string,
) error {
	at := s.at()
	o, err := order.RestoreOrder(kernel.NewUUID(), code, customer, nil, pharmacyID,
		status, order.ParseItems(items), progress, eta, at, at, 0)
	if err != nil {
		return err
	}
	return repo.Add(ctx, o)
}

func (s *seeder) providers(ctx context.Context) error {
	repo := s.uow.ProviderRepository()
	for _, f := range seedProviders {
		p, err := payment.NewProvider(kernel.NewUUID(), f.name, f.status, f.fee)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) cards(ctx context.Context) error {
	providers := s.uow.ProviderRepository()
	repo := s.uow.CardRepository()
	for _, f := range seedCards {
		p, err := providers.GetByName(ctx, f.provider)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}
		c, err := payment.NewCard(kernel.NewUUID(), f.holder, p.ID(), f.last4, f.theme, f.limit)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) notifications(ctx context.Context) error {
	repo := s.uow.NotificationRepository()
	for _, f := range seedNotifications {
		kind, err := notification.ParseType(f.kind)
		if err != nil {
			return err
		}
		n, err := notification.NewNotification(kernel.NewUUID(), identity.Customer, f.message, kind, s.at())
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) stock(ctx context.Context) error {
	repo := s.uow.StockRepository()
	for _, f := range seedStock {
		item, err := inventory.NewStockItem(kernel.NewUUID(), f.sku, f.name, f.quantity, f.status)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) tasks(ctx context.Context) error {
	repo := s.uow.TaskRepository()
	for _, f := range seedTasks {
		p, err := s.pharmacyNamed(ctx, f.pharmacy)
		if err != nil {
			return err
		}
		status, err := delivery.ParseTaskStatus(f.status)
		if err != nil {
			status = delivery.Awaiting
		}
		t, err := delivery.RestoreTask(kernel.NewUUID(), f.code, p.ID(), f.address, f.eta, status, s.at(), 0)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) timeline(ctx context.Context) error {
	repo := s.uow.TimelineRepository()
	for i, f := range seedTimeline {
		e, err := delivery.NewTimelineEvent(kernel.NewUUID(), f.label, f.timeText, i == activeTimelineAt, s.at())
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) statusBoard(ctx context.Context) error {
	repo := s.uow.StatusBoardRepository()
	for _, f := range seedStatusBoard {
		e, err := delivery.NewStatusEntry(kernel.NewUUID(), f.orderCode, f.pharmacy, f.status)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
