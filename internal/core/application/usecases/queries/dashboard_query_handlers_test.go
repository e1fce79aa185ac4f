package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pharmacygo/internal/adapters/out/postgres/accountrepo"
	"pharmacygo/internal/adapters/out/postgres/deliveryrepo"
	"pharmacygo/internal/adapters/out/postgres/inventoryrepo"
	"pharmacygo/internal/adapters/out/postgres/notificationrepo"
	"pharmacygo/internal/adapters/out/postgres/orderrepo"
	"pharmacygo/internal/adapters/out/postgres/paymentrepo"
	"pharmacygo/internal/adapters/out/postgres/pgtest"
	"pharmacygo/internal/adapters/out/postgres/pharmacyrepo"
	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/notification"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/payment"
	"pharmacygo/internal/core/domain/model/pharmacy"
	"pharmacygo/internal/pkg/errs"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// DashboardQueriesTestSuite runs the read side against a migrated database
// seeded through the repositories.
type DashboardQueriesTestSuite struct {
	suite.Suite
	pg  *pgtest.Database
	now time.Time
}

func (suite *DashboardQueriesTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *DashboardQueriesTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.now = time.Now().UTC().Truncate(time.Microsecond)
}

func (suite *DashboardQueriesTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *DashboardQueriesTestSuite) addPharmacy(name string) *pharmacy.Pharmacy {
	p, err := pharmacy.NewPharmacy(kernel.NewUUID(), name, 1.2, 4.7, randomdata.Address(), kernel.DefaultMapPin())
	suite.Require().NoError(err)
	suite.Require().NoError(pharmacyrepo.NewGormPharmacyRepository(suite.pg.DB).Add(context.Background(), p))
	return p
}

func (suite *DashboardQueriesTestSuite) addOrder(
	code string, p *pharmacy.Pharmacy, customerID *kernel.UUID, status order.Status, createdAt time.Time,
) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), code, randomdata.FullName(randomdata.RandomGender), customerID,
		p.ID(), status, []string{"Xyzal 5mg"}, "Requested", "TBD", createdAt, createdAt, 0)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), o))
	return o
}

func (suite *DashboardQueriesTestSuite) addAccount(role identity.Role, email, phone, org string, createdAt time.Time) *identity.Account {
	a, err := identity.NewAccount(kernel.NewUUID(), role, randomdata.FullName(randomdata.RandomGender),
		email, phone, org, "hash", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(accountrepo.NewGormAccountRepository(suite.pg.DB).Add(context.Background(), a))
	return a
}

func (suite *DashboardQueriesTestSuite) addApplication(name string, status pharmacy.ApplicationStatus, createdAt time.Time) {
	a, err := pharmacy.RestoreApplication(kernel.NewUUID(), name, "License", status, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(pharmacyrepo.NewGormApplicationRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), a))
}

func (suite *DashboardQueriesTestSuite) addNotification(audience identity.Role, message string, createdAt time.Time) {
	n, err := notification.NewNotification(kernel.NewUUID(), audience, message, notification.Info, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(notificationrepo.NewGormNotificationRepository(suite.pg.DB).Add(context.Background(), n))
}

func (suite *DashboardQueriesTestSuite) addStock(sku string) {
	item, err := inventory.NewStockItem(kernel.NewUUID(), sku, "Item "+sku, 12, inventory.StatusHealthy)
	suite.Require().NoError(err)
	suite.Require().NoError(inventoryrepo.NewGormStockRepository(suite.pg.DB).Add(context.Background(), item))
}

func (suite *DashboardQueriesTestSuite) addTask(code string, pharmacyID kernel.UUID, createdAt time.Time) *delivery.Task {
	task, err := delivery.NewTask(kernel.NewUUID(), code, pharmacyID, randomdata.Address(), "12 min", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(deliveryrepo.NewGormTaskRepository(suite.pg.DB, noopTracker{}).Add(context.Background(), task))
	return task
}

func (suite *DashboardQueriesTestSuite) TestAdminDashboard() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	for i, code := range []string{"#PG-0001", "#PG-0002", "#PG-0003", "#PG-0004", "#PG-0005", "#PG-0006"} {
		suite.addOrder(code, p, nil, order.Pending, suite.now.Add(time.Duration(i)*time.Minute))
	}
	suite.addOrder("#PG-DONE", p, nil, order.Delivered, suite.now.AddDate(0, 0, -1))
	suite.addApplication("Sunrise Apteka", pharmacy.Pending, suite.now)
	suite.addApplication("Green Cross", pharmacy.Approved, suite.now.Add(-time.Hour))
	suite.addAccount(identity.Customer, "", "+998901112233", "", suite.now)
	suite.addAccount(identity.Distributor, "fleet@flow.uz", "", "Flow Logistics", suite.now)
	suite.addAccount(identity.Pharmacy, "store@oasis.uz", "", "", suite.now)

	q := queries.NewGetAdminDashboardQuery(suite.now)
	dashboard, err := queries.NewGetAdminDashboardQueryHandler(suite.pg.DB).Handle(ctx, q)

	suite.Require().NoError(err)
	suite.Require().Len(dashboard.Orders, queries.AdminRecentOrdersLimit)
	suite.Equal("#PG-0006", dashboard.Orders[0].Code)
	suite.Equal("Oasis Pharmacy", dashboard.Orders[0].PharmacyName)
	suite.Require().Len(dashboard.Applications, 2)
	suite.Equal("Sunrise Apteka", dashboard.Applications[0].PharmacyName)

	suite.Require().Len(dashboard.Segments.Customers, 1)
	suite.Equal("+998901112233", dashboard.Segments.Customers[0].Contact)
	suite.Equal("Customer", dashboard.Segments.Customers[0].Meta)
	suite.Require().Len(dashboard.Segments.Distributors, 1)
	suite.Equal("Flow Logistics", dashboard.Segments.Distributors[0].Meta)
	suite.Equal("fleet@flow.uz", dashboard.Segments.Distributors[0].Contact)
	suite.Require().Len(dashboard.Segments.Pharmacies, 1)
	suite.Equal("Pharmacy store", dashboard.Segments.Pharmacies[0].Meta)

	suite.Require().Len(dashboard.KPIs, 3)
	suite.Equal("Delivered orders", dashboard.KPIs[1].Label)
	suite.Equal("1", dashboard.KPIs[1].Value)
	suite.Equal("1", dashboard.KPIs[2].Value)
	suite.Equal("1 awaiting approval", dashboard.KPIs[2].Delta)
}

func (suite *DashboardQueriesTestSuite) TestCustomerDashboard() {
	ctx := context.Background()
	customer := suite.addAccount(identity.Customer, "", "+998900000001", "", suite.now)
	other := kernel.NewUUID()
	otherID := &other
	p := suite.addPharmacy("Oasis Pharmacy")
	customerID := customer.ID()
	suite.addOrder("#PG-MINE", p, &customerID, order.Out, suite.now)
	suite.addOrder("#PG-GUES", p, nil, order.Pending, suite.now.Add(-time.Minute))
	suite.addOrder("#PG-THEM", p, otherID, order.Pending, suite.now.Add(time.Minute))

	provider, err := payment.NewProvider(kernel.NewUUID(), "Payme", "", "1%")
	suite.Require().NoError(err)
	suite.Require().NoError(paymentrepo.NewGormProviderRepository(suite.pg.DB).Add(ctx, provider))
	card, err := payment.NewCard(kernel.NewUUID(), "Laylo Karimova", provider.ID(), "2345", "", "$300")
	suite.Require().NoError(err)
	suite.Require().NoError(paymentrepo.NewGormCardRepository(suite.pg.DB).Add(ctx, card))

	for i := 0; i < 7; i++ {
		suite.addNotification(identity.Customer, fmt.Sprintf("Order update %d", i), suite.now.Add(time.Duration(i)*time.Second))
	}
	suite.addNotification(identity.Pharmacy, "Not for customers", suite.now.Add(time.Hour))

	q, err := queries.NewGetCustomerDashboardQuery(customer.ID())
	suite.Require().NoError(err)
	dashboard, err := queries.NewGetCustomerDashboardQueryHandler(suite.pg.DB).Handle(ctx, q)

	suite.Require().NoError(err)
	suite.Require().Len(dashboard.Pharmacies, 1)
	suite.Equal("50%", dashboard.Pharmacies[0].PinTop)
	suite.Require().Len(dashboard.Orders, 2)
	suite.Equal("#PG-MINE", dashboard.Orders[0].Code)
	suite.Equal("Out for delivery", dashboard.Orders[0].StatusLabel())
	suite.Equal("#PG-GUES", dashboard.Orders[1].Code)
	suite.Require().Len(dashboard.Providers, 1)
	suite.Equal("Connected", dashboard.Providers[0].Status)
	suite.Require().Len(dashboard.Cards, 1)
	suite.Equal("Payme", dashboard.Cards[0].ProviderName)
	suite.Equal("•••• 2345", dashboard.Cards[0].Masked)
	suite.Len(dashboard.Notifications, queries.CustomerNotificationsLimit)
	for _, n := range dashboard.Notifications {
		suite.NotEqual("Not for customers", n.Message)
	}
}

func (suite *DashboardQueriesTestSuite) TestPharmacyStoreDashboard() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	suite.addOrder("#PG-PACK", p, nil, order.Packed, suite.now.Add(time.Minute))
	suite.addOrder("#PG-PEND", p, nil, order.Pending, suite.now)
	suite.addOrder("#PG-OUT1", p, nil, order.Out, suite.now)
	suite.addStock("ZNC-10")
	suite.addStock("AMX-500")
	suite.addNotification(identity.Pharmacy, "Application approved", suite.now)
	suite.addApplication("Oasis Pharmacy", pharmacy.Review, suite.now)
	suite.addApplication("Someone Else", pharmacy.Pending, suite.now)

	q := queries.NewGetPharmacyStoreDashboardQuery(" oasis pharmacy ")
	dashboard, err := queries.NewGetPharmacyStoreDashboardQueryHandler(suite.pg.DB).Handle(ctx, q)

	suite.Require().NoError(err)
	suite.Require().Len(dashboard.Orders, 2)
	suite.Equal("#PG-PEND", dashboard.Orders[0].Code)
	suite.Equal("#PG-PACK", dashboard.Orders[1].Code)
	suite.Require().Len(dashboard.Stock, 2)
	suite.Equal("AMX-500", dashboard.Stock[0].Sku)
	suite.Len(dashboard.Notifications, 1)
	suite.Require().Len(dashboard.Applications, 1)
	suite.Equal(pharmacy.Review, dashboard.Applications[0].Status)

	all, err := queries.NewGetPharmacyStoreDashboardQueryHandler(suite.pg.DB).
		Handle(ctx, queries.NewGetPharmacyStoreDashboardQuery(""))
	suite.Require().NoError(err)
	suite.Len(all.Applications, 2)
}

func (suite *DashboardQueriesTestSuite) TestDistributorDashboard() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	suite.addTask("#DL-2", p.ID(), suite.now.Add(time.Minute))
	suite.addTask("#DL-1", p.ID(), suite.now)
	suite.addStock("AMX-500")
	for i, label := range []string{"Picked up", "In transit", "Arrived"} {
		e, err := delivery.NewTimelineEvent(kernel.NewUUID(), label, "09:00", i == 1, suite.now.Add(time.Duration(i)*time.Second))
		suite.Require().NoError(err)
		suite.Require().NoError(deliveryrepo.NewGormTimelineRepository(suite.pg.DB).Add(ctx, e))
	}
	entry, err := delivery.NewStatusEntry(kernel.NewUUID(), "#PG-2148", "Oasis Pharmacy", "Awaiting pickup")
	suite.Require().NoError(err)
	suite.Require().NoError(deliveryrepo.NewGormStatusBoardRepository(suite.pg.DB).Add(ctx, entry))

	dashboard, err := queries.NewGetDistributorDashboardQueryHandler(suite.pg.DB).
		Handle(ctx, queries.NewGetDistributorDashboardQuery())

	suite.Require().NoError(err)
	suite.Len(dashboard.Stock, 1)
	suite.Require().Len(dashboard.Tasks, 2)
	suite.Equal("#DL-1", dashboard.Tasks[0].Code)
	suite.Equal("Oasis Pharmacy", dashboard.Tasks[0].PharmacyName)
	suite.Equal(delivery.Awaiting, dashboard.Tasks[0].Status)
	suite.Require().Len(dashboard.Timeline, 3)
	suite.Equal("Picked up", dashboard.Timeline[0].Label)
	suite.True(dashboard.Timeline[1].Active)
	suite.Require().Len(dashboard.StatusBoard, 1)
	suite.Equal("Awaiting pickup", dashboard.StatusBoard[0].Status)
}

func (suite *DashboardQueriesTestSuite) TestPharmacyDetail() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	other := suite.addPharmacy("Green Cross")
	suite.addOrder("#PG-0001", p, nil, order.Pending, suite.now)
	suite.addOrder("#PG-0002", other, nil, order.Pending, suite.now)

	q, err := queries.NewGetPharmacyDetailQuery(p.ID())
	suite.Require().NoError(err)
	detail, err := queries.NewGetPharmacyDetailQueryHandler(suite.pg.DB).Handle(ctx, q)

	suite.Require().NoError(err)
	suite.Equal("Oasis Pharmacy", detail.Pharmacy.Name)
	suite.InDelta(4.7, detail.Pharmacy.Rating, 0.001)
	suite.Require().Len(detail.RecentOrders, 1)
	suite.Equal("#PG-0001", detail.RecentOrders[0].Code)

	q, err = queries.NewGetPharmacyDetailQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetPharmacyDetailQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DashboardQueriesTestSuite) TestDeliveryDetail() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	task := suite.addTask("#DL-9", p.ID(), suite.now)
	orphan := suite.addTask("#DL-0", kernel.NewUUID(), suite.now)

	q, err := queries.NewGetDeliveryDetailQuery(task.ID())
	suite.Require().NoError(err)
	detail, err := queries.NewGetDeliveryDetailQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Equal("#DL-9", detail.Task.Code)
	suite.Require().NotNil(detail.Pharmacy)
	suite.Equal("Oasis Pharmacy", detail.Pharmacy.Name)

	q, err = queries.NewGetDeliveryDetailQuery(orphan.ID())
	suite.Require().NoError(err)
	detail, err = queries.NewGetDeliveryDetailQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().NoError(err)
	suite.Nil(detail.Pharmacy)

	q, err = queries.NewGetDeliveryDetailQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetDeliveryDetailQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DashboardQueriesTestSuite) TestListOrdersAndTasks() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	suite.addOrder("#PG-0001", p, nil, order.Pending, suite.now)
	suite.addOrder("#PG-0002", p, nil, order.Delivered, suite.now.Add(time.Minute))
	suite.addTask("#DL-1", p.ID(), suite.now)

	all, err := queries.NewListOrdersQuery("", 0)
	suite.Require().NoError(err)
	orders, err := queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Len(orders, 2)
	suite.Equal("#PG-0002", orders[0].Code)

	delivered, err := queries.NewListOrdersQuery("delivered", 10)
	suite.Require().NoError(err)
	orders, err = queries.NewListOrdersQueryHandler(suite.pg.DB).Handle(ctx, delivered)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(order.Delivered, orders[0].Status)

	inProgress, err := queries.NewListDeliveryTasksQuery("in_progress")
	suite.Require().NoError(err)
	tasks, err := queries.NewListDeliveryTasksQueryHandler(suite.pg.DB).Handle(ctx, inProgress)
	suite.Require().NoError(err)
	suite.Empty(tasks)

	everything, err := queries.NewListDeliveryTasksQuery("")
	suite.Require().NoError(err)
	tasks, err = queries.NewListDeliveryTasksQueryHandler(suite.pg.DB).Handle(ctx, everything)
	suite.Require().NoError(err)
	suite.Len(tasks, 1)
}

func (suite *DashboardQueriesTestSuite) TestGetAccount() {
	ctx := context.Background()
	a := suite.addAccount(identity.Distributor, "fleet@flow.uz", "", "Flow Logistics", suite.now)

	q, err := queries.NewGetAccountQuery(a.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetAccountQueryHandler(suite.pg.DB).Handle(ctx, q)

	suite.Require().NoError(err)
	suite.Equal(identity.Distributor, view.Role)
	suite.Equal(a.FullName(), view.DisplayName)
	suite.Equal("Flow Logistics", view.Organization)

	q, err = queries.NewGetAccountQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetAccountQueryHandler(suite.pg.DB).Handle(ctx, q)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DashboardQueriesTestSuite) TestFindRecord() {
	ctx := context.Background()
	p := suite.addPharmacy("Oasis Pharmacy")
	o := suite.addOrder("#PG-2148", p, nil, order.Pending, suite.now)
	task := suite.addTask("DLV-1042", p.ID(), suite.now)
	h := queries.NewFindRecordQueryHandler(suite.pg.DB)

	q, err := queries.NewFindRecordQuery(queries.OrderRecord, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(h.Handle(ctx, q))

	q, err = queries.NewFindRecordQuery(queries.DeliveryTaskRecord, task.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(h.Handle(ctx, q))

	q, err = queries.NewFindRecordQuery(queries.DeliveryTaskRecord, o.ID())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(h.Handle(ctx, q), errs.ErrObjectNotFound)

	q, err = queries.NewFindRecordQuery(queries.ApplicationRecord, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(h.Handle(ctx, q), errs.ErrObjectNotFound)

	_, err = queries.NewFindRecordQuery("prescription", kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestDashboardQueriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DashboardQueriesTestSuite))
}
