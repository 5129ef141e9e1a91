package admin

import (
	"context"

	"github.com/jrsteele09/go-admin-client/adminmodel"
	"github.com/jrsteele09/go-admin-client/client"
	"github.com/jrsteele09/go-admin-client/resources"
	"github.com/pkg/errors"
)

// Resource path segments exposed by the admin API.
const (
	ResourceUsers         = "user"
	ResourceMatches       = "matching"
	ResourceReports       = "reports"
	ResourceConcepts      = "concepts"
	ResourceDailyTimes    = "daily-times"
	ResourceNotifications = "notifications"
	ResourcePolicies      = "policies"
)

// Service is the typed surface over the generic data adapter for the
// endpoints the panel's detail pages use.
type Service struct {
	provider *resources.Provider
}

// NewService initializes a Service over an existing client.
func NewService(c *client.Client) (*Service, error) {
	provider, err := resources.NewProvider(c)
	if err != nil {
		return nil, errors.Wrap(err, "[admin.NewService] NewProvider")
	}
	return &Service{provider: provider}, nil
}

// Provider exposes the underlying generic adapter for untyped access.
func (s *Service) Provider() *resources.Provider {
	return s.provider
}

// DashboardStats fetches the aggregate snapshot for the dashboard page.
func (s *Service) DashboardStats(ctx context.Context) (*adminmodel.DashboardStats, error) {
	res, err := s.provider.Custom(ctx, resources.CustomRequest{URL: "/user/admin/dashboard"})
	if err != nil {
		return nil, err
	}
	stats, err := resources.Decode[adminmodel.DashboardStats](res)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListUsers fetches a page of users.
func (s *Service) ListUsers(ctx context.Context, query resources.ListQuery) ([]adminmodel.User, int, error) {
	return listAs[adminmodel.User](ctx, s.provider, ResourceUsers, query)
}

// ListMatches fetches a page of matches.
func (s *Service) ListMatches(ctx context.Context, query resources.ListQuery) ([]adminmodel.Match, int, error) {
	return listAs[adminmodel.Match](ctx, s.provider, ResourceMatches, query)
}

// ListReports fetches a page of reports.
func (s *Service) ListReports(ctx context.Context, query resources.ListQuery) ([]adminmodel.Report, int, error) {
	return listAs[adminmodel.Report](ctx, s.provider, ResourceReports, query)
}

// ListConcepts fetches a page of photo concepts.
func (s *Service) ListConcepts(ctx context.Context, query resources.ListQuery) ([]adminmodel.Concept, int, error) {
	return listAs[adminmodel.Concept](ctx, s.provider, ResourceConcepts, query)
}

// ListDailyTimes fetches the configured daily upload windows.
func (s *Service) ListDailyTimes(ctx context.Context, query resources.ListQuery) ([]adminmodel.DailyTime, int, error) {
	return listAs[adminmodel.DailyTime](ctx, s.provider, ResourceDailyTimes, query)
}

// ListNotifications fetches a page of notifications.
func (s *Service) ListNotifications(ctx context.Context, query resources.ListQuery) ([]adminmodel.Notification, int, error) {
	return listAs[adminmodel.Notification](ctx, s.provider, ResourceNotifications, query)
}

// ListPolicies fetches a page of policies.
func (s *Service) ListPolicies(ctx context.Context, query resources.ListQuery) ([]adminmodel.Policy, int, error) {
	return listAs[adminmodel.Policy](ctx, s.provider, ResourcePolicies, query)
}

// GetUser fetches one user by id.
func (s *Service) GetUser(ctx context.Context, id string) (*adminmodel.User, error) {
	return getAs[adminmodel.User](ctx, s.provider, ResourceUsers, id)
}

// GetConcept fetches one photo concept by id.
func (s *Service) GetConcept(ctx context.Context, id string) (*adminmodel.Concept, error) {
	return getAs[adminmodel.Concept](ctx, s.provider, ResourceConcepts, id)
}

// GetReport fetches one report by id.
func (s *Service) GetReport(ctx context.Context, id string) (*adminmodel.Report, error) {
	return getAs[adminmodel.Report](ctx, s.provider, ResourceReports, id)
}

func listAs[T any](ctx context.Context, p *resources.Provider, resource string, query resources.ListQuery) ([]T, int, error) {
	list, err := p.List(ctx, resource, query)
	if err != nil {
		return nil, 0, err
	}
	items, err := resources.DecodeItems[T](list)
	if err != nil {
		return nil, 0, err
	}
	return items, list.Total, nil
}

func getAs[T any](ctx context.Context, p *resources.Provider, resource, id string) (*T, error) {
	res, err := p.Get(ctx, resource, id)
	if err != nil {
		return nil, err
	}
	item, err := resources.Decode[T](res)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
