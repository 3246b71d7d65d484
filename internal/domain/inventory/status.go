package inventory

// Status is the sale state of a painting. The string values double as the
// wire and backup-file representation, so they must stay exactly as written.
type Status string

const (
	StatusAvailable     = Status("Available")
	StatusBooked        = Status("Booked")
	StatusSold          = Status("Sold")
	StatusUnderContract = Status("Under Contract")
)

func Statuses() []Status {
	return []Status{StatusAvailable, StatusBooked, StatusSold, StatusUnderContract}
}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusSold, StatusUnderContract:
		return true
	}
	return false
}
