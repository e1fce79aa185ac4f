package web

import (
	"pharmacygo/internal/core/domain/model/identity"
)

const (
	LoginPath                  = "/"
	SignUpPath                 = "/signup/"
	ForgotPasswordPath         = "/forgot-password/"
	LogoutPath                 = "/logout/"
	AdminDashboardPath         = "/dashboard/admin/"
	CustomerDashboardPath      = "/dashboard/customer/"
	PharmacyStoreDashboardPath = "/dashboard/pharmacy-store/"
	DistributorDashboardPath   = "/dashboard/distributor/"
)

// DashboardPath is where an account of the given role lands after signing
// in. Unknown roles get the customer dashboard.
func DashboardPath(role identity.Role) string {
	switch role {
	case identity.Admin:
		return AdminDashboardPath
	case identity.Pharmacy:
		return PharmacyStoreDashboardPath
	case identity.Distributor:
		return DistributorDashboardPath
	case identity.Customer, identity.UnknownRole:
	}
	return CustomerDashboardPath
}
