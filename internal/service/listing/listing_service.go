package listing

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
	"github.com/ougirez/solarscope/internal/filter"
	"github.com/ougirez/solarscope/internal/notify"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"github.com/ougirez/solarscope/internal/pkg/metrics"
	"github.com/ougirez/solarscope/internal/pkg/sessions"
	"github.com/ougirez/solarscope/internal/pkg/store"
	"github.com/ougirez/solarscope/internal/pkg/task"
	"github.com/ougirez/solarscope/internal/scraper"
)

type Delays struct {
	Search time.Duration
	Scrape time.Duration
	Enrich time.Duration
}

type Options struct {
	ItemsPerPage int
	// CatalogTotal is shown as the filtered total while no filter is active.
	CatalogTotal int
	// FilteredTotal is shown as the filtered total while any filter is active. It is a display
	// figure and is unrelated to how many records actually match.
	FilteredTotal int
	Delays        Delays
	Sessions      sessions.Limits
	// Predicate defaults to filter.NewPredicate().
	Predicate *filter.Predicate
}

type Service struct {
	store     store.KVStore
	scraper   scraper.Scraper
	notifier  notify.Notifier
	tasks     *task.Runner
	predicate *filter.Predicate
	opts      Options

	mx       sync.Mutex
	sessions *sessions.Registry[*session]
}

type session struct {
	records       []domain.FacilityRecord
	filters       filter.State
	searchTerm    string
	dataScraped   bool
	loading       bool
	mounted       bool
	filteredTotal int
	pagination    domain.PaginationState
	selected      map[int]struct{}
}

// View is what the listing screen renders.
type View struct {
	Facilities    []domain.FacilityRecord `json:"facilities"`
	MatchedCount  int                     `json:"matchedCount"`
	FilteredTotal int                     `json:"filteredTotal"`
	CatalogTotal  int                     `json:"catalogTotal"`
	Pagination    domain.PaginationState  `json:"pagination"`
	ActiveFilters domain.FilterSelection  `json:"activeFilters"`
	Summary       string                  `json:"summary"`
	SearchTerm    string                  `json:"searchTerm"`
	SelectedIDs   []int                   `json:"selectedIds"`
	DataScraped   bool                    `json:"dataScraped"`
	Loading       bool                    `json:"loading"`
}

func NewListingService(
	kv store.KVStore,
	sc scraper.Scraper,
	notifier notify.Notifier,
	tasks *task.Runner,
	opts Options,
) *Service {
	predicate := opts.Predicate
	if predicate == nil {
		predicate = filter.NewPredicate()
	}
	s := &Service{
		store:     kv,
		scraper:   sc,
		notifier:  notifier,
		tasks:     tasks,
		predicate: predicate,
		opts:      opts,
	}
	s.sessions = sessions.NewRegistry("listing", opts.Sessions, s.newSession)

	return s
}

func (s *Service) newSession() *session {
	return &session{
		records:       catalog.Facilities(),
		filteredTotal: s.opts.CatalogTotal,
		pagination:    domain.NewPagination(s.opts.ItemsPerPage, s.opts.CatalogTotal),
		selected:      make(map[int]struct{}),
	}
}

// session returns the state of sid, seeding it on first use. s.mx must be held.
func (s *Service) session(sid string) *session {
	return s.sessions.Get(sid)
}

// Sessions returns the number of session states currently held.
func (s *Service) Sessions() int {
	return s.sessions.Len()
}

func taskKey(sid, op string) string {
	return sid + "/listing/" + op
}

// Mount restores the persisted filter selection the first time a session is shown.
func (s *Service) Mount(ctx context.Context, sid string) *View {
	s.mx.Lock()
	mounted := s.session(sid).mounted
	s.mx.Unlock()

	var sel domain.FilterSelection
	if !mounted {
		sel = s.restore(ctx, sid)
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	if !sess.mounted {
		sess.mounted = true
		if sel != nil {
			state, skipped := filter.FromSelection(sel)
			if len(skipped) > 0 {
				logger.Warnf(ctx, "ignored persisted filters %v", skipped)
			}
			// Filters set before the first mount win over persisted ones.
			sess.filters = sess.filters.WithDefaults(state)
			s.recount(sess)
		}
	}

	return s.view(sess)
}

func (s *Service) View(sid string) *View {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.view(s.session(sid))
}

func (s *Service) SetFilter(ctx context.Context, sid string, category string, value any) (*View, error) {
	return s.reduce(ctx, sid, filter.Set(filter.Category(category), value))
}

func (s *Service) ClearFilter(ctx context.Context, sid string, category string) (*View, error) {
	return s.reduce(ctx, sid, filter.Clear(filter.Category(category)))
}

// ClearFilters resets every filter and the displayed total.
func (s *Service) ClearFilters(ctx context.Context, sid string) *View {
	view, _ := s.reduce(ctx, sid, filter.Reset())
	return view
}

func (s *Service) reduce(ctx context.Context, sid string, a filter.Action) (*View, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	next, err := filter.Reduce(sess.filters, a)
	if err != nil {
		logger.Debugf(ctx, "reduce filters: %s", err.Error())
		return nil, err
	}
	sess.filters = next
	s.recount(sess)

	return s.view(sess), nil
}

// recount refreshes the displayed total and page count after a filter change. s.mx must be held.
func (s *Service) recount(sess *session) {
	if sess.filters.Active() {
		sess.filteredTotal = s.opts.FilteredTotal
	} else {
		sess.filteredTotal = s.opts.CatalogTotal
	}
	sess.pagination.Recompute(sess.filteredTotal)
	sess.pagination.CurrentPage = 1
}

func (s *Service) SetSearchTerm(sid string, term string) *View {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	sess.searchTerm = term
	sess.pagination.CurrentPage = 1

	return s.view(sess)
}

// Search persists the active filters and reveals the results after the search delay.
func (s *Service) Search(ctx context.Context, sid string) (*View, error) {
	s.mx.Lock()
	sess := s.session(sid)
	sel := sess.filters.Selection()
	sess.loading = true
	s.mx.Unlock()

	s.persist(ctx, sid, sel)

	s.notifier.Notify(ctx, sid, notify.Custom("Searching facilities...", map[string]any{
		"asset": constants.LoadingAsset,
	}))

	err := s.tasks.Run(ctx, taskKey(sid, "search"), s.opts.Delays.Search, func(context.Context) error {
		s.mx.Lock()
		defer s.mx.Unlock()

		sess.dataScraped = true
		sess.loading = false
		return nil
	})
	if err != nil {
		if !errors.Is(err, constants.ErrSuperseded) {
			s.mx.Lock()
			sess.loading = false
			s.mx.Unlock()
		}
		return nil, err
	}

	metrics.Searches.WithLabelValues("listing").Inc()
	view := s.View(sid)
	s.notifier.Notify(ctx, sid, notify.Success(
		fmt.Sprintf("Search completed! Found %s facilities", domain.FormatInt(int64(view.FilteredTotal))),
	))

	return view, nil
}

// Scrape appends the records found for query after the scrape delay.
func (s *Service) Scrape(ctx context.Context, sid string, query string) (*View, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.notifier.Notify(ctx, sid, notify.Error(constants.ErrEmptyScrapeQuery.Error()))
		metrics.Actions.WithLabelValues("scrape", "rejected").Inc()
		return nil, constants.ErrEmptyScrapeQuery
	}

	var added int
	err := s.tasks.Run(ctx, taskKey(sid, "scrape"), s.opts.Delays.Scrape, func(ctx context.Context) error {
		records, err := s.scraper.Scrape(ctx, query)
		if err != nil {
			return fmt.Errorf("scraper.Scrape: %w", err)
		}

		s.mx.Lock()
		defer s.mx.Unlock()

		sess := s.session(sid)
		next := nextID(sess.records)
		for i := range records {
			records[i].ID = next + i
		}
		sess.records = append(sess.records, records...)
		sess.dataScraped = true
		added = len(records)
		return nil
	})
	if err != nil {
		metrics.Actions.WithLabelValues("scrape", "failed").Inc()
		return nil, err
	}

	metrics.Actions.WithLabelValues("scrape", "ok").Inc()
	s.notifier.Notify(ctx, sid, notify.Success(fmt.Sprintf("Scraped %d new %s facilities", added, query)))

	return s.View(sid), nil
}

func nextID(records []domain.FacilityRecord) int {
	maxID := 0
	for _, r := range records {
		maxID = max(maxID, r.ID)
	}
	return maxID + 1
}

// Select replaces the selection with the known ids among ids.
func (s *Service) Select(sid string, ids []int) *View {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	known := make(map[int]struct{}, len(sess.records))
	for _, r := range sess.records {
		known[r.ID] = struct{}{}
	}

	sess.selected = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; ok {
			sess.selected[id] = struct{}{}
		}
	}

	return s.view(sess)
}

func (s *Service) ToggleSelect(sid string, id int) (*View, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	if !slices.ContainsFunc(sess.records, func(r domain.FacilityRecord) bool { return r.ID == id }) {
		return nil, fmt.Errorf("facility %d: %w", id, constants.ErrDBNotFound)
	}

	if _, ok := sess.selected[id]; ok {
		delete(sess.selected, id)
	} else {
		sess.selected[id] = struct{}{}
	}

	return s.view(sess), nil
}

// Enrich marks the selected facilities as enriched after the enrich delay.
func (s *Service) Enrich(ctx context.Context, sid string) (*View, error) {
	s.mx.Lock()
	sess := s.session(sid)
	ids := selectedIDs(sess)
	s.mx.Unlock()

	if len(ids) == 0 {
		s.notifier.Notify(ctx, sid, notify.Error(constants.ErrNoSelection.Error()))
		metrics.Actions.WithLabelValues("enrich", "rejected").Inc()
		return nil, constants.ErrNoSelection
	}

	err := s.tasks.Run(ctx, taskKey(sid, "enrich"), s.opts.Delays.Enrich, func(context.Context) error {
		s.mx.Lock()
		defer s.mx.Unlock()

		for i := range sess.records {
			if slices.Contains(ids, sess.records[i].ID) {
				sess.records[i].Enriched = true
			}
		}
		for _, id := range ids {
			delete(sess.selected, id)
		}
		return nil
	})
	if err != nil {
		metrics.Actions.WithLabelValues("enrich", "failed").Inc()
		return nil, err
	}

	metrics.Actions.WithLabelValues("enrich", "ok").Inc()
	s.notifier.Notify(ctx, sid, notify.Success(fmt.Sprintf("Successfully enriched %d facilities", len(ids))))

	return s.View(sid), nil
}

func (s *Service) NextPage(sid string) *View {
	return s.paginate(sid, func(p *domain.PaginationState) { p.NextPage() })
}

func (s *Service) PrevPage(sid string) *View {
	return s.paginate(sid, func(p *domain.PaginationState) { p.PrevPage() })
}

func (s *Service) GoToPage(sid string, page int) *View {
	return s.paginate(sid, func(p *domain.PaginationState) { p.GoToPage(page) })
}

func (s *Service) paginate(sid string, move func(p *domain.PaginationState)) *View {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	move(&sess.pagination)

	return s.view(sess)
}

// Routes returns the navigation targets of a facility on the session's listing.
func (s *Service) Routes(sid string, id int) (domain.FacilityRoutes, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	sess := s.session(sid)
	if !slices.ContainsFunc(sess.records, func(r domain.FacilityRecord) bool { return r.ID == id }) {
		return domain.FacilityRoutes{}, fmt.Errorf("facility %d: %w", id, constants.ErrDBNotFound)
	}

	return domain.RoutesFor(id), nil
}

func selectedIDs(sess *session) []int {
	ids := make([]int, 0, len(sess.selected))
	for id := range sess.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// view renders sess. s.mx must be held.
func (s *Service) view(sess *session) *View {
	matched := s.predicate.Filter(sess.records, filter.Query{
		Scraped:    sess.dataScraped,
		SearchTerm: sess.searchTerm,
		Filters:    sess.filters,
	})
	start, end := sess.pagination.Bounds(len(matched))

	return &View{
		Facilities:    slices.Clone(matched[start:end]),
		MatchedCount:  len(matched),
		FilteredTotal: sess.filteredTotal,
		CatalogTotal:  s.opts.CatalogTotal,
		Pagination:    sess.pagination,
		ActiveFilters: sess.filters.Selection(),
		Summary:       sess.filters.Summary(),
		SearchTerm:    sess.searchTerm,
		SelectedIDs:   selectedIDs(sess),
		DataScraped:   sess.dataScraped,
		Loading:       sess.loading,
	}
}
