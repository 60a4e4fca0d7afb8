package technician

import (
	"errors"
	"strings"

	"fieldroutes/internal/core/domain/model/kernel"
	"fieldroutes/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via RestoreTechnician constructor")

	// ErrInvalidCredentials is returned when a password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Technician is a field technician account.
type Technician struct {
	id           kernel.ID
	name         string
	number       string
	plant        string
	passwordHash string
	deviceToken  *string

	isConstructed bool
}

// RestoreTechnician rebuilds a technician from storage.
func RestoreTechnician(id kernel.ID, name, number, plant, passwordHash string, deviceToken *string) (*Technician, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Technician{
		id:            id,
		name:          name,
		number:        number,
		plant:         plant,
		passwordHash:  passwordHash,
		deviceToken:   deviceToken,
		isConstructed: true,
	}, nil
}

func (t *Technician) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTechnicianIsNotConstructed
	}
	return nil
}

func (t *Technician) ID() kernel.ID {
	return t.id
}

func (t *Technician) Name() string {
	return t.name
}

func (t *Technician) Number() string {
	return t.number
}

func (t *Technician) Plant() string {
	return t.plant
}

func (t *Technician) PasswordHash() string {
	return t.passwordHash
}

// DeviceToken returns the push notification token of the last signed-in device, if any.
func (t *Technician) DeviceToken() *string {
	return t.deviceToken
}

// VerifyPassword compares password against the stored bcrypt hash.
// Accounts without a hash can never sign in.
func (t *Technician) VerifyPassword(password string) error {
	if t.passwordHash == "" || password == "" {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// RegisterDeviceToken records the device the technician signed in from.
func (t *Technician) RegisterDeviceToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("deviceToken")
	}
	t.deviceToken = &token
	return nil
}

// HashPassword produces the bcrypt hash stored for a technician password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(hash), nil
}
