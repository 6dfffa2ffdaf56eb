package domain

type RentalStatus string

const (
	RentalStatusPending  RentalStatus = "pending"
	RentalStatusApproved RentalStatus = "approved"
	RentalStatusRejected RentalStatus = "rejected"
)

// Rental is a single request to borrow some quantity of one equipment item
// for a date range. Requests start out pending/unreturned/undamaged and are
// only ever mutated by admin actions; they are never deleted except when
// their equipment is deleted.
type Rental struct {
	ID             string `json:"id"`
	EquipmentID    string `json:"equipment_id"`
	Quantity       int32  `json:"quantity"`
	StartDate      string `json:"start_date"` // yyyy-mm-dd
	EndDate        string `json:"end_date"`   // yyyy-mm-dd, strictly after StartDate
	UserName       string `json:"user_name"`
	UserDepartment string `json:"user_department"`
	UserPosition   string `json:"user_position"`
	// Bcrypt hash of the requester's 4-digit self-service password.
	PasswordHash    string       `json:"password_hash"`
	Status          RentalStatus `json:"status"`
	Returned        bool         `json:"returned"`
	ReturnedDate    *string      `json:"returned_date,omitempty"`
	Damaged         bool         `json:"damaged"`
	DamageNote      string       `json:"damage_note"`
	RepairRequested bool         `json:"repair_requested"`
	Repaired        bool         `json:"repaired"`
	RequestDate     string       `json:"request_date"` // yyyy-mm-dd, immutable
}

// ActiveLoan reports whether the rental currently holds units out of the
// inventory: approved and not yet returned.
func (r *Rental) ActiveLoan() bool {
	return r.Status == RentalStatusApproved && !r.Returned
}

// DamagedUnrepaired reports whether the rented units are out of service
// because of unrepaired damage. Status and return state do not matter here.
func (r *Rental) DamagedUnrepaired() bool {
	return r.Damaged && !r.Repaired
}

// AwaitingRepair reports whether an admin has requested a repair for this
// damage and it has not been completed yet.
func (r *Rental) AwaitingRepair() bool {
	return r.Damaged && r.RepairRequested && !r.Repaired
}
