package dbmodels

// Scan targets for aggregate queries.

type ClientDemand struct {
	ClientID   string
	ClientName string
	Headcount  int64
}

type StatusCount struct {
	Status string
	Count  int64
}
