package model

type MonthlyRevenue struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	NewStores int     `json:"newStores"`
	Renewals  int     `json:"renewals"`
}

type PackageShare struct {
	Package string  `json:"package"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type TopStore struct {
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Locations int     `json:"locations"`
	Package   string  `json:"package"`
}

type SubscriptionTrend struct {
	Date     string `json:"date"`
	Active   int    `json:"active"`
	Expiring int    `json:"expiring"`
	Expired  int    `json:"expired"`
}

type Dashboard struct {
	TotalStores              int                 `json:"totalStores"`
	TotalActiveSubscriptions int                 `json:"totalActiveSubscriptions"`
	TotalRevenue             float64             `json:"totalRevenue"`
	MonthlyRevenue           []MonthlyRevenue    `json:"monthlyRevenue"`
	SubscriptionDistribution []PackageShare      `json:"subscriptionDistribution"`
	TopStores                []TopStore          `json:"topStores"`
	SubscriptionTrends       []SubscriptionTrend `json:"subscriptionTrends"`
}

// Overview is the landing summary assembled from several list endpoints.
type Overview struct {
	TotalStores     int
	ActiveStores    int
	SuspendedStores int
	TotalPackages   int
	ActivePackages  int
	TotalUsers      int
	ActiveUsers     int
}
