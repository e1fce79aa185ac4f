package commands

type (
	pharmacyFixture struct {
		name       string
		distanceKm float64
		rating     float64
		pinTop     string
		pinLeft    string
	}

	applicationFixture struct {
		name      string
		documents string
		status    string
	}

	orderFixture struct {
		code     string
		customer string
		pharmacy string
		status   string
		eta      string
		items    string
		progress string
	}

	providerFixture struct {
		name   string
		status string
		fee    string
	}

	cardFixture struct {
		holder   string
		provider string
		last4    string
		theme    string
		limit    string
	}

	notificationFixture struct {
		message string
		kind    string
	}

	stockFixture struct {
		sku      string
		name     string
		quantity int
		status   string
	}

	taskFixture struct {
		code     string
		pharmacy string
		eta      string
		status   string
		address  string
	}

	timelineFixture struct {
		label    string
		timeText string
	}

	boardFixture struct {
		orderCode string
		pharmacy  string
		status    string
	}
)

// Defaults for pharmacies that fixtures mention only by name.
const (
	fallbackDistanceKm = 1.2
	fallbackRating     = 4.7

	seedCustomerName = "Laylo Karimova"
	activeTimelineAt = 2
)

var seedPharmacies = []pharmacyFixture{
	{"PharmaLife Downtown", 0.8, 4.9, "32%", "48%"},
	{"UzMed Express", 1.1, 4.7, "55%", "22%"},
	{"CarePoint Sergeli", 1.6, 4.8, "18%", "72%"},
}

var seedApplications = []applicationFixture{
	{"NovaPharm Mirzo", "License + Tax ID", "Pending"},
	{"HealthHub Sergeli", "Warehouse permit", "Review"},
}

var seedAdminOrders = []orderFixture{
	{"#PG-2148", "Laylo Karimova", "PharmaLife Downtown", "Out for delivery", "12 min", "Care pack", "Out for delivery"},
	{"#PG-2145", "Aziz Yuldashev", "CityMeds Park", "Delivered", "Completed", "Care pack", "Delivered"},
	{"#PG-2142", "Mavluda Rustam", "UzPharma Green", "Awaiting courier", "Assign rider", "Care pack", "Awaiting courier"},
	{"#PG-2137", "Sardor Mardan", "CarePoint Sergeli", "Packed", "18 min", "Care pack", "Packed"},
}

// Customer orders belong to seedCustomerName at the first seeded pharmacy;
// codes already used by admin orders are skipped.
var seedCustomerOrders = []orderFixture{
	{code: "#PG-2148", items: "Xyzal 5mg", status: "Courier assigned", progress: "In progress"},
	{code: "#PG-2091", items: "Amoxil 500mg", status: "Delivered", progress: "Delivered"},
}

var seedProviders = []providerFixture{
	{"Uzum", "Connected", "0% instant"},
	{"Uzcard", "Connected", "0.7%"},
	{"Humo", "Pending", "0.5%"},
}

var seedCards = []cardFixture{
	{"Laylo Karimova", "Uzcard", "2345", "ocean", "25,000,000 UZS"},
	{"Laylo Karimova", "Uzum", "1121", "sunrise", "12,000,000 UZS"},
}

var seedNotifications = []notificationFixture{
	{"Courier Bekzod is 5 minutes away", "info"},
	{"Prescription approved by Dr. Saodat", "success"},
	{"New promo: 15% off immunity boosters", "warning"},
}

var seedStock = []stockFixture{
	{"AMX-500", "Amoxil 500mg", 320, "Healthy"},
	{"GLC-20", "Glucophage XR", 110, "Watch"},
	{"XYZ-5", "Xyzal 5mg", 540, "Healthy"},
}

var seedTasks = []taskFixture{
	{"#DL-902", "PharmaLife Downtown", "12:40", "Awaiting", "Yunusabad 12"},
	{"#DL-898", "UzMed Express", "13:10", "In progress", "Chilanzar 4"},
}

var seedTimeline = []timelineFixture{
	{"Assigned", "09:05"},
	{"Picked up", "09:40"},
	{"In transit", "10:15"},
	{"Delivered", "10:48"},
}

var seedStatusBoard = []boardFixture{
	{"#PG-2148", "PharmaLife Downtown", "In progress"},
	{"#PG-2145", "CityMeds Park", "Delivered"},
	{"#PG-2139", "UzMed Express", "Awaiting pickup"},
}
