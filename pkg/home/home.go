package home

//go:generate mockgen -source=home.go -destination=mocks/mock_home.go -package=mocks

import (
	"context"
	"time"

	"liyu1981.xyz/home-sensor-api/pkg/db"
	"liyu1981.xyz/home-sensor-api/pkg/models"
)

// IResource is the owner-scoped CRUD contract shared by every resource family.
// Every method filters by userID; rows of other users behave as absent.
type IResource[T models.Record] interface {
	List(ctx context.Context, userID uint) ([]T, error)
	Get(ctx context.Context, userID, id uint) (*T, error)
	Create(ctx context.Context, rec *T) (*T, error)
	Update(ctx context.Context, userID, id uint, rec *T) (*T, error)
	Delete(ctx context.Context, userID, id uint) error
}

type ITemperature interface {
	IResource[models.Temperature]
	GetLatest(ctx context.Context, userID uint) (*models.Temperature, error)
}

type ISwitch = IResource[models.Switch]

type ILight = IResource[models.Light]

type IAuth interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
	CreateUser(ctx context.Context, username, name, password string) (*models.User, error)
	SetPassword(ctx context.Context, userID uint, password string) error
}

type Home struct {
	Db           db.DB
	SessionTTL   time.Duration
	Temperatures ITemperature
	Switches     ISwitch
	Lights       ILight
	Auth         IAuth
}

type ServiceOpts struct {
	Temperatures ITemperature
	Switches     ISwitch
	Lights       ILight
	Auth         IAuth
}

func (h *Home) WithServices(opts ServiceOpts) *Home {
	if opts.Temperatures != nil {
		h.Temperatures = opts.Temperatures
	}
	if opts.Switches != nil {
		h.Switches = opts.Switches
	}
	if opts.Lights != nil {
		h.Lights = opts.Lights
	}
	if opts.Auth != nil {
		h.Auth = opts.Auth
	}
	return h
}

// WithDefaultServices wires the gorm backed implementations.
func (h *Home) WithDefaultServices() *Home {
	return h.WithServices(ServiceOpts{
		Temperatures: h.GetITemperature(),
		Switches:     h.GetISwitch(),
		Lights:       h.GetILight(),
		Auth:         h.GetIAuth(),
	})
}

type userCtxKey struct{}

// WithUser attaches the authenticated user to ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the user attached by WithUser, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*models.User)
	return user, ok && user != nil
}
