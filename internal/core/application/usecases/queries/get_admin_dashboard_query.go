package queries

import (
	"errors"
	"time"

	"pharmacygo/internal/pkg/guard"
)

const (
	AdminRecentOrdersLimit       = 5
	AdminRecentApplicationsLimit = 5
	AdminSegmentLimit            = 5
)

var ErrGetAdminDashboardQueryIsNotConstructed = errors.New(
	"GetAdminDashboardQuery must be created via NewGetAdminDashboardQuery constructor",
)

// GetAdminDashboardQuery collects the admin control page. now anchors the
// "today" and "yesterday" windows of the KPIs.
type GetAdminDashboardQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

func NewGetAdminDashboardQuery(now time.Time) GetAdminDashboardQuery {
	return GetAdminDashboardQuery{now: now, guard: guard.NewConstructorGuard()}
}

func (q GetAdminDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminDashboardQueryIsNotConstructed)
}

// KPI is one headline tile on the admin page.
type KPI struct {
	Label string
	Value string
	Delta string
}

// ProfileRow is an account as listed in the admin user segments.
type ProfileRow struct {
	Name    string
	Contact string
	Meta    string
}

type UserSegments struct {
	Customers    []ProfileRow
	Pharmacies   []ProfileRow
	Distributors []ProfileRow
}

type AdminDashboard struct {
	KPIs         []KPI
	Orders       []OrderRow
	Applications []ApplicationRow
	Segments     UserSegments
}
