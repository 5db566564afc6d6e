package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/config-store/metrics"
	"github.com/blogem/config-store/repositories"
)

// Services holds all service instances
type Services struct {
	Settings      SettingsService
	Audit         AuditService
	Configuration ConfigurationFacade
}

// Options carries the optional collaborators of the services
type Options struct {
	Publisher     ChangePublisher
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	RecordViews   bool
	FailureBuffer int
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, opts Options) *Services {
	audit := NewAuditService(repos.Audit, opts.Metrics, opts.Logger, opts.FailureBuffer)
	settings := NewSettingsService(repos.Settings, audit, opts.Publisher, opts.Metrics, opts.Logger)

	return &Services{
		Settings:      settings,
		Audit:         audit,
		Configuration: NewConfigurationFacade(settings, audit, opts.RecordViews),
	}
}

// timeNow is replaced in tests; stored timestamps keep microsecond precision
var timeNow = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// newID returns a time-ordered identifier
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
