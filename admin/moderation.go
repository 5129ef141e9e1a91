package admin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jrsteele09/go-admin-client/adminmodel"
	"github.com/jrsteele09/go-admin-client/resources"
)

// BanRequest describes why and for how long a user is banned. A nil Until
// means the ban is indefinite.
type BanRequest struct {
	Reason string     `json:"reason"`
	Until  *time.Time `json:"bannedUntil,omitempty"`
}

// BanUser bans a user.
func (s *Service) BanUser(ctx context.Context, userID string, ban BanRequest) error {
	_, err := s.provider.Custom(ctx, resources.CustomRequest{
		URL:    fmt.Sprintf("/user/%s/ban", userID),
		Method: http.MethodPost,
		Body:   ban,
	})
	return err
}

// UnbanUser lifts a user's ban.
func (s *Service) UnbanUser(ctx context.Context, userID string) error {
	_, err := s.provider.Custom(ctx, resources.CustomRequest{
		URL:    fmt.Sprintf("/user/%s/unban", userID),
		Method: http.MethodPost,
	})
	return err
}

// ReportReview updates a report's moderation state.
type ReportReview struct {
	Status    adminmodel.ReportStatus `json:"status"`
	AdminNote string                  `json:"adminNote,omitempty"`
}

// ReviewReport applies a moderation decision to a report.
func (s *Service) ReviewReport(ctx context.Context, reportID string, review ReportReview) error {
	_, err := s.provider.Custom(ctx, resources.CustomRequest{
		URL:    fmt.Sprintf("/reports/%s", reportID),
		Method: http.MethodPatch,
		Body:   review,
	})
	return err
}

// UserMatches fetches all matches for one user.
func (s *Service) UserMatches(ctx context.Context, userID string) ([]adminmodel.Match, error) {
	return customList[adminmodel.Match](ctx, s, fmt.Sprintf("/matching/user/%s", userID))
}

// UserPhotos fetches all photo sets for one user.
func (s *Service) UserPhotos(ctx context.Context, userID string) ([]adminmodel.Photo, error) {
	return customList[adminmodel.Photo](ctx, s, fmt.Sprintf("/photos/user/%s", userID))
}

// ConceptStats fetches the usage summary for one concept.
func (s *Service) ConceptStats(ctx context.Context, conceptID string) (*adminmodel.ConceptStats, error) {
	res, err := s.provider.Custom(ctx, resources.CustomRequest{
		URL: fmt.Sprintf("/concepts/%s/stats", conceptID),
	})
	if err != nil {
		return nil, err
	}
	stats, err := resources.Decode[adminmodel.ConceptStats](res)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// customList fetches a read endpoint that returns either a bare array or a
// data envelope and decodes the items.
func customList[T any](ctx context.Context, s *Service, url string) ([]T, error) {
	res, err := s.provider.Custom(ctx, resources.CustomRequest{URL: url})
	if err != nil {
		return nil, err
	}
	list, err := resources.NormalizeList(res.Item)
	if err != nil {
		return nil, err
	}
	return resources.DecodeItems[T](list)
}
