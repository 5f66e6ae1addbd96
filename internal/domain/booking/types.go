package booking

type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusExpired:
		return true
	default:
		return false
	}
}

// NewStatus parses a stored status cell. The legacy sheets wrote Spanish
// labels; they are accepted on read and normalized on the next write.
func NewStatus(s string) (Status, error) {
	switch s {
	case "Active", "Activo":
		return StatusActive, nil
	case "Expired", "Vencido":
		return StatusExpired, nil
	default:
		return "", ErrInvalidStatus
	}
}
