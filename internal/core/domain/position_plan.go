package domain

// PositionDeactivation names a source position and the version it was read at.
// Applying it is a compare-and-swap: it fails if the position changed in between.
type PositionDeactivation struct {
	PositionID      string `json:"positionID"`
	ExpectedVersion int64  `json:"expectedVersion"`
}

// PositionPlan is a validated transaction together with the position changes it implies.
// A plan is applied as one atomic unit: ledger append, creations and deactivations.
type PositionPlan struct {
	Transaction ShareTransaction       `json:"transaction"`
	Create      []SharePosition        `json:"create"`
	Deactivate  []PositionDeactivation `json:"deactivate"`
}
