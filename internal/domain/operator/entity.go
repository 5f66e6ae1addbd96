package operator

import (
	"strings"

	"adslot-panel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole      = errs.New("invalid operator role")
	ErrMalformedEntry   = errs.New("malformed operator entry")
	ErrOperatorNotFound = errs.New("operator not found")
)

// Operator is a dashboard account. Accounts live in deployment config, not
// in the record store: the spreadsheet holds bookings only, and the source
// dashboards kept their credentials in secrets the same way.
type Operator struct {
	id           uuid.UUID
	name         string
	role         Role
	passwordHash string
}

// NewOperator derives a stable id from the account name so tokens stay
// valid across restarts.
func NewOperator(name string, role Role, passwordHash string) (*Operator, error) {
	name = strings.TrimSpace(name)
	if name == "" || passwordHash == "" {
		return nil, ErrMalformedEntry
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &Operator{
		id:           uuid.NewSHA1(uuid.NameSpaceOID, []byte("operator:"+name)),
		name:         name,
		role:         role,
		passwordHash: passwordHash,
	}, nil
}

func (o *Operator) ID() uuid.UUID        { return o.id }
func (o *Operator) Name() string         { return o.name }
func (o *Operator) Role() Role           { return o.role }
func (o *Operator) PasswordHash() string { return o.passwordHash }

// Directory is the fixed set of configured operators.
type Directory struct {
	byName map[string]*Operator
	byID   map[uuid.UUID]*Operator
}

// ParseDirectory builds a Directory from config entries of the form
// "name:role:bcrypt-hash". The hash may itself contain colons, so only the
// first two separators split.
func ParseDirectory(entries []string) (*Directory, error) {
	dir := &Directory{
		byName: make(map[string]*Operator, len(entries)),
		byID:   make(map[uuid.UUID]*Operator, len(entries)),
	}

	for _, entry := range entries {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			return nil, ErrMalformedEntry
		}

		role, err := NewRole(parts[1])
		if err != nil {
			return nil, err
		}

		op, err := NewOperator(parts[0], role, parts[2])
		if err != nil {
			return nil, err
		}

		dir.byName[op.Name()] = op
		dir.byID[op.ID()] = op
	}

	return dir, nil
}

func (d *Directory) FindByName(name string) (*Operator, error) {
	op, ok := d.byName[strings.TrimSpace(name)]
	if !ok {
		return nil, ErrOperatorNotFound
	}
	return op, nil
}

func (d *Directory) FindByID(id uuid.UUID) (*Operator, error) {
	op, ok := d.byID[id]
	if !ok {
		return nil, ErrOperatorNotFound
	}
	return op, nil
}
