package enrichment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ougirez/solarscope/internal/catalog"
	"github.com/ougirez/solarscope/internal/domain"
	"github.com/ougirez/solarscope/internal/notify"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/metrics"
	"github.com/ougirez/solarscope/internal/pkg/sessions"
	"github.com/ougirez/solarscope/internal/pkg/task"
)

type Delays struct {
	Search  time.Duration
	Details time.Duration
}

type Service struct {
	notifier notify.Notifier
	tasks    *task.Runner
	delays   Delays

	facilities []domain.EnrichedFacilityRecord
	hidden     domain.EnrichedFacilityRecord
	triggers   []string

	mx       sync.Mutex
	sessions *sessions.Registry[*session]
}

type session struct {
	query          string
	results        []domain.EnrichedFacilityRecord
	isSearching    bool
	showDetails    bool
	detailsLoading bool
}

// Row is a displayed record. Derived is set only while details are shown.
type Row struct {
	domain.EnrichedFacilityRecord
	Derived *domain.DerivedMetrics `json:"derived,omitempty"`
}

type View struct {
	Query          string `json:"query"`
	Facilities     []Row  `json:"facilities"`
	ResultCount    int    `json:"resultCount"`
	IsSearching    bool   `json:"isSearching"`
	ShowDetails    bool   `json:"showDetails"`
	DetailsLoading bool   `json:"detailsLoading"`
}

// FacilityDetail is the detail page of one facility. Fallback is set when the requested id was
// unknown and the first catalog record is shown instead.
type FacilityDetail struct {
	Facility domain.EnrichedFacilityRecord `json:"facility"`
	Derived  domain.DerivedMetrics         `json:"derived"`
	Routes   domain.FacilityRoutes         `json:"routes"`
	Fallback bool                          `json:"fallback"`
}

func NewEnrichmentService(notifier notify.Notifier, tasks *task.Runner, delays Delays, limits sessions.Limits) *Service {
	return &Service{
		notifier:   notifier,
		tasks:      tasks,
		delays:     delays,
		facilities: catalog.EnrichedFacilities(),
		hidden:     catalog.HiddenFacility(),
		triggers:   catalog.HiddenTriggers,
		sessions:   sessions.NewRegistry("enrichment", limits, func() *session { return &session{} }),
	}
}

// session returns the state of sid. s.mx must be held.
func (s *Service) session(sid string) *session {
	return s.sessions.Get(sid)
}

func (s *Service) Sessions() int {
	return s.sessions.Len()
}

func taskKey(sid, op string) string {
	return sid + "/enrichment/" + op
}

// Match returns the hidden record when query contains one of its triggers, followed by every
// catalog record with a field containing query. Matching ignores case.
func (s *Service) Match(query string) (results []domain.EnrichedFacilityRecord, hiddenFound bool) {
	q := strings.ToLower(query)

	if slices.ContainsFunc(s.triggers, func(t string) bool { return strings.Contains(q, t) }) {
		results = append(results, s.hidden)
		hiddenFound = true
	}

	for _, f := range s.facilities {
		fields := []string{f.Name, f.Company, f.Location, f.FacilityType, f.Email}
		if slices.ContainsFunc(fields, func(v string) bool { return strings.Contains(strings.ToLower(v), q) }) {
			results = append(results, f)
		}
	}

	return results, hiddenFound
}

// Search displays the records matching query after the search delay. An empty result displays
// the full catalog.
func (s *Service) Search(ctx context.Context, sid string, query string) (*View, error) {
	s.mx.Lock()
	sess := s.session(sid)
	sess.query = query
	sess.isSearching = true
	s.mx.Unlock()

	var (
		results     []domain.EnrichedFacilityRecord
		hiddenFound bool
	)
	err := s.tasks.Run(ctx, taskKey(sid, "search"), s.delays.Search, func(context.Context) error {
		results, hiddenFound = s.Match(query)

		s.mx.Lock()
		defer s.mx.Unlock()

		sess.results = results
		sess.isSearching = false
		return nil
	})
	if err != nil {
		if !errors.Is(err, constants.ErrSuperseded) {
			s.mx.Lock()
			sess.isSearching = false
			s.mx.Unlock()
		}
		return nil, err
	}

	metrics.Searches.WithLabelValues("enrichment").Inc()
	logger.Debugf(ctx, "enrichment search %q: %d results", query, len(results))

	switch {
	case hiddenFound:
		s.notifier.Notify(ctx, sid, notify.Success(
			fmt.Sprintf("Found %s at %s", s.hidden.Name, s.hidden.Company),
		))
	case len(results) > 0:
		s.notifier.Notify(ctx, sid, notify.Success(fmt.Sprintf("%d facilities found", len(results))))
	default:
		s.notifier.Notify(ctx, sid, notify.Error(fmt.Sprintf("No facilities found for %q", query)))
	}

	return s.View(sid), nil
}

func (s *Service) ClearSearch(sid string) *View {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	sess.query = ""
	sess.results = nil
	sess.isSearching = false

	return s.view(sess)
}

// ToggleDetails shows the derived columns after the details delay, or hides them at once.
// Hiding also cancels a pending reveal.
func (s *Service) ToggleDetails(ctx context.Context, sid string) (*View, error) {
	s.mx.Lock()
	sess := s.session(sid)
	show := !sess.showDetails && !sess.detailsLoading
	sess.detailsLoading = show
	s.mx.Unlock()

	delay := time.Duration(0)
	if show {
		delay = s.delays.Details
	}

	err := s.tasks.Run(ctx, taskKey(sid, "details"), delay, func(context.Context) error {
		s.mx.Lock()
		defer s.mx.Unlock()

		sess.showDetails = show
		sess.detailsLoading = false
		return nil
	})
	if err != nil {
		if !errors.Is(err, constants.ErrSuperseded) {
			s.mx.Lock()
			sess.detailsLoading = false
			s.mx.Unlock()
		}
		return nil, err
	}

	return s.View(sid), nil
}

// Facility looks id up in the catalog and the hidden record. A miss yields the first catalog record.
func (s *Service) Facility(id int) FacilityDetail {
	idx := slices.IndexFunc(s.facilities, func(f domain.EnrichedFacilityRecord) bool { return f.ID == id })

	var (
		rec      domain.EnrichedFacilityRecord
		fallback bool
	)
	switch {
	case idx >= 0:
		rec = s.facilities[idx]
	case s.hidden.ID == id:
		rec = s.hidden
	default:
		rec = s.facilities[0]
		fallback = true
	}

	return FacilityDetail{
		Facility: rec,
		Derived:  rec.Derive(),
		Routes:   domain.RoutesFor(rec.ID),
		Fallback: fallback,
	}
}

func (s *Service) View(sid string) *View {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.view(s.session(sid))
}

// view renders sess. s.mx must be held.
func (s *Service) view(sess *session) *View {
	displayed := sess.results
	if len(displayed) == 0 {
		displayed = s.facilities
	}

	rows := make([]Row, 0, len(displayed))
	for _, rec := range displayed {
		row := Row{EnrichedFacilityRecord: rec}
		if sess.showDetails {
			derived := rec.Derive()
			row.Derived = &derived
		}
		rows = append(rows, row)
	}

	return &View{
		Query:          sess.query,
		Facilities:     rows,
		ResultCount:    len(sess.results),
		IsSearching:    sess.isSearching,
		ShowDetails:    sess.showDetails,
		DetailsLoading: sess.detailsLoading,
	}
}
