package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ougirez/solarscope/internal/domain"
	"github.com/ougirez/solarscope/internal/notify"
	"github.com/ougirez/solarscope/internal/pkg/constants"
	"github.com/ougirez/solarscope/internal/pkg/sessions"
	"github.com/ougirez/solarscope/internal/pkg/store"
	"github.com/ougirez/solarscope/internal/pkg/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sid = "session-1"

type stubScraper struct {
	records []domain.FacilityRecord
	err     error
}

func (s stubScraper) Scrape(context.Context, string) ([]domain.FacilityRecord, error) {
	out := make([]domain.FacilityRecord, len(s.records))
	copy(out, s.records)
	return out, s.err
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func (failingStore) Clear(context.Context, string) error {
	return errors.New("storage unavailable")
}

func testOptions() Options {
	return Options{ItemsPerPage: 10, CatalogTotal: 24500, FilteredTotal: 5600}
}

func newTestService(kv store.KVStore, sc stubScraper, hub *notify.Hub, opts Options) *Service {
	return NewListingService(kv, sc, hub, task.NewRunner(), opts)
}

func ids(records []domain.FacilityRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestService_MountEmpty(t *testing.T) {
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	view := s.Mount(context.Background(), sid)
	assert.Empty(t, view.Facilities)
	assert.False(t, view.DataScraped)
	assert.Equal(t, 24500, view.FilteredTotal)
	assert.Equal(t, 2450, view.Pagination.TotalPages)
	assert.Equal(t, "All facilities", view.Summary)
	assert.Empty(t, view.ActiveFilters)
}

func TestService_SearchMichiganVerified(t *testing.T) {
	ctx := context.Background()
	hub := notify.NewHub(0, sessions.Limits{})
	kv := store.NewMemoryStore()
	s := newTestService(kv, stubScraper{}, hub, testOptions())
	s.Mount(ctx, sid)

	_, err := s.SetFilter(ctx, sid, "state", "Michigan")
	require.NoError(t, err)
	view, err := s.SetFilter(ctx, sid, "verified", true)
	require.NoError(t, err)
	assert.Equal(t, 5600, view.FilteredTotal)
	assert.Equal(t, 560, view.Pagination.TotalPages)
	assert.Empty(t, view.Facilities)

	view, err = s.Search(ctx, sid)
	require.NoError(t, err)
	assert.True(t, view.DataScraped)
	assert.False(t, view.Loading)
	assert.Equal(t, 11, view.MatchedCount)
	assert.Equal(t, []int{1, 2, 4, 5, 7, 9, 12, 14, 16, 18}, ids(view.Facilities))
	for _, f := range view.Facilities {
		assert.True(t, f.Verified)
		assert.Contains(t, f.Location, "Michigan")
	}
	assert.Equal(t, "Facilities in Michigan; verified contacts only", view.Summary)

	raw, err := kv.Get(ctx, storageKey(sid))
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"Michigan","verified":true}`, string(raw))

	feed := hub.Drain(sid)
	require.Len(t, feed, 2)
	assert.Equal(t, notify.KindCustom, feed[0].Kind)
	assert.Equal(t, constants.LoadingAsset, feed[0].Payload["asset"])
	assert.Equal(t, notify.KindSuccess, feed[1].Kind)
	assert.Equal(t, "Search completed! Found 5,600 facilities", feed[1].Message)
}

func TestService_MountRestoresPersistedFilters(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()

	first := newTestService(kv, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())
	first.Mount(ctx, sid)
	_, err := first.SetFilter(ctx, sid, "state", "Michigan")
	require.NoError(t, err)
	_, err = first.SetFilter(ctx, sid, "verified", true)
	require.NoError(t, err)
	_, err = first.SetFilter(ctx, sid, "jobTitle", []string{"Energy Manager"})
	require.NoError(t, err)
	_, err = first.Search(ctx, sid)
	require.NoError(t, err)

	reloaded := newTestService(kv, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())
	view := reloaded.Mount(ctx, sid)
	assert.Equal(t, domain.FilterSelection{
		"state":    "Michigan",
		"verified": true,
		"jobTitle": []string{"Energy Manager"},
	}, view.ActiveFilters)
	assert.Equal(t, 5600, view.FilteredTotal)
	assert.False(t, view.DataScraped)

	other := reloaded.Mount(ctx, "session-2")
	assert.Empty(t, other.ActiveFilters)
}

func TestService_MountKeepsFiltersSetBeforeIt(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storageKey(sid), []byte(`{"state":"Michigan","companyName":"Stellantis"}`)))

	s := newTestService(kv, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())
	_, err := s.SetFilter(ctx, sid, "companyName", "Ford")
	require.NoError(t, err)

	view := s.Mount(ctx, sid)
	assert.Equal(t, domain.FilterSelection{
		"companyName": "Ford",
		"state":       "Michigan",
	}, view.ActiveFilters)
	assert.Equal(t, 5600, view.FilteredTotal)
}

func TestService_MountTwiceDoesNotReload(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := newTestService(kv, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	s.Mount(ctx, sid)
	require.NoError(t, kv.Set(ctx, storageKey(sid), []byte(`{"state":"Ohio"}`)))

	view := s.Mount(ctx, sid)
	assert.Empty(t, view.ActiveFilters)
}

func TestService_MountIgnoresMalformedSelection(t *testing.T) {
	ctx := context.Background()

	for name, raw := range map[string]string{
		"not json":   `{"state":`,
		"not object": `["Michigan"]`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := store.NewMemoryStore()
			require.NoError(t, kv.Set(ctx, storageKey(sid), []byte(raw)))

			s := newTestService(kv, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())
			view := s.Mount(ctx, sid)
			assert.Empty(t, view.ActiveFilters)
			assert.Equal(t, 24500, view.FilteredTotal)
		})
	}
}

func TestService_MountSkipsMismatchedValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storageKey(sid),
		[]byte(`{"state":"Michigan","verified":"yes","jobTitle":["CEO",7],"legacy":1}`)))

	s := newTestService(kv, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())
	view := s.Mount(ctx, sid)
	assert.Equal(t, domain.FilterSelection{
		"state":    "Michigan",
		"jobTitle": []string{"CEO"},
	}, view.ActiveFilters)
}

func TestService_StoreFailuresNeverSurface(t *testing.T) {
	ctx := context.Background()
	s := newTestService(failingStore{}, stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	view := s.Mount(ctx, sid)
	assert.Empty(t, view.ActiveFilters)

	_, err := s.SetFilter(ctx, sid, "state", "Michigan")
	require.NoError(t, err)
	view, err = s.Search(ctx, sid)
	require.NoError(t, err)
	assert.True(t, view.DataScraped)
	assert.NotEmpty(t, view.Facilities)
}

func TestService_ClearFiltersIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.SetFilter(ctx, sid, "industry", "Ford")
	require.NoError(t, err)
	s.NextPage(sid)

	once := s.ClearFilters(ctx, sid)
	twice := s.ClearFilters(ctx, sid)
	assert.Equal(t, once, twice)
	assert.Empty(t, once.ActiveFilters)
	assert.Equal(t, 24500, once.FilteredTotal)
	assert.Equal(t, 1, once.Pagination.CurrentPage)
}

func TestService_ClearFilterRestoresCatalogTotal(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.SetFilter(ctx, sid, "companyName", "ford")
	require.NoError(t, err)
	view, err := s.ClearFilter(ctx, sid, "companyName")
	require.NoError(t, err)
	assert.Equal(t, 24500, view.FilteredTotal)

	view, err = s.SetFilter(ctx, sid, "companyName", "")
	require.NoError(t, err)
	assert.Empty(t, view.ActiveFilters)
}

func TestService_SetFilterRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.SetFilter(ctx, sid, "verified", "yes")
	assert.ErrorIs(t, err, constants.ErrInvalidFilterValue)

	_, err = s.SetFilter(ctx, sid, "revenue", "1M")
	assert.ErrorIs(t, err, constants.ErrUnknownFilter)

	assert.Empty(t, s.View(sid).ActiveFilters)
}

func TestService_SearchTerm(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	view := s.SetSearchTerm(sid, "stellan")
	assert.Empty(t, view.Facilities)

	_, err := s.Search(ctx, sid)
	require.NoError(t, err)
	view = s.View(sid)
	assert.Equal(t, []int{1}, ids(view.Facilities))
	assert.Equal(t, 24500, view.FilteredTotal)

	view = s.SetSearchTerm(sid, "ZZZ")
	assert.Empty(t, view.Facilities)
	assert.Zero(t, view.MatchedCount)
}

func TestService_SearchTermIsNotTrimmed(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.Search(ctx, sid)
	require.NoError(t, err)

	view := s.SetSearchTerm(sid, "ford ")
	assert.Equal(t, "ford ", view.SearchTerm)
	assert.Equal(t, []int{2, 7}, ids(view.Facilities))

	view = s.SetSearchTerm(sid, " ford")
	assert.Equal(t, []int{7}, ids(view.Facilities))

	view = s.SetSearchTerm(sid, "stellantis ")
	assert.Empty(t, view.Facilities)
}

func TestService_SearchSupersedesPending(t *testing.T) {
	ctx := context.Background()
	opts := testOptions()
	opts.Delays.Search = 50 * time.Millisecond
	hub := notify.NewHub(0, sessions.Limits{})
	s := newTestService(store.NewMemoryStore(), stubScraper{}, hub, opts)

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = s.Search(ctx, sid)
	}()

	time.Sleep(10 * time.Millisecond)
	view, err := s.Search(ctx, sid)
	wg.Wait()

	require.NoError(t, err)
	assert.ErrorIs(t, firstErr, constants.ErrSuperseded)
	assert.True(t, view.DataScraped)
	assert.False(t, view.Loading)

	var successes int
	for _, n := range hub.Drain(sid) {
		if n.Kind == notify.KindSuccess {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
}

func TestService_ScrapeRequiresQuery(t *testing.T) {
	ctx := context.Background()
	hub := notify.NewHub(0, sessions.Limits{})
	s := newTestService(store.NewMemoryStore(), stubScraper{}, hub, testOptions())

	_, err := s.Scrape(ctx, sid, "   ")
	assert.ErrorIs(t, err, constants.ErrEmptyScrapeQuery)
	assert.False(t, s.View(sid).DataScraped)

	feed := hub.Drain(sid)
	require.Len(t, feed, 1)
	assert.Equal(t, notify.KindError, feed[0].Kind)
	assert.Equal(t, "please enter a facility type to scrape", feed[0].Message)
}

func TestService_ScrapeAppendsRecords(t *testing.T) {
	ctx := context.Background()
	hub := notify.NewHub(0, sessions.Limits{})
	sc := stubScraper{records: []domain.FacilityRecord{
		{Name: "Olivia Bennett", Company: "Herman Miller", Location: "Zeeland, Michigan", Verified: true},
		{Name: "Marcus Hill", Company: "SpartanNash", Location: "Byron Center, Michigan"},
	}}
	s := newTestService(store.NewMemoryStore(), sc, hub, testOptions())

	_, err := s.Scrape(ctx, sid, "Manufacturing")
	require.NoError(t, err)

	view := s.GoToPage(sid, 3)
	assert.True(t, view.DataScraped)
	assert.Equal(t, 22, view.MatchedCount)
	assert.Equal(t, []int{21, 22}, ids(view.Facilities))

	feed := hub.Drain(sid)
	require.Len(t, feed, 1)
	assert.Equal(t, "Scraped 2 new Manufacturing facilities", feed[0].Message)
}

func TestService_ScrapeFailure(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{err: errors.New("directory down")}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.Scrape(ctx, sid, "Retail")
	require.Error(t, err)
	assert.False(t, s.View(sid).DataScraped)
}

func TestService_EnrichRequiresSelection(t *testing.T) {
	ctx := context.Background()
	hub := notify.NewHub(0, sessions.Limits{})
	s := newTestService(store.NewMemoryStore(), stubScraper{}, hub, testOptions())

	_, err := s.Enrich(ctx, sid)
	assert.ErrorIs(t, err, constants.ErrNoSelection)

	feed := hub.Drain(sid)
	require.Len(t, feed, 1)
	assert.Equal(t, notify.KindError, feed[0].Kind)
	assert.Equal(t, "please select at least one facility to enrich", feed[0].Message)
}

func TestService_EnrichSelected(t *testing.T) {
	ctx := context.Background()
	hub := notify.NewHub(0, sessions.Limits{})
	s := newTestService(store.NewMemoryStore(), stubScraper{}, hub, testOptions())

	_, err := s.Search(ctx, sid)
	require.NoError(t, err)
	hub.Drain(sid)

	_, err = s.ToggleSelect(sid, 2)
	require.NoError(t, err)
	_, err = s.ToggleSelect(sid, 3)
	require.NoError(t, err)
	view, err := s.ToggleSelect(sid, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, view.SelectedIDs)

	view = s.Select(sid, []int{1, 2, 999})
	assert.Equal(t, []int{1, 2}, view.SelectedIDs)

	view, err = s.Enrich(ctx, sid)
	require.NoError(t, err)
	assert.Empty(t, view.SelectedIDs)
	for _, f := range view.Facilities {
		assert.Equal(t, f.ID == 1 || f.ID == 2, f.Enriched, "facility %d", f.ID)
	}

	feed := hub.Drain(sid)
	require.Len(t, feed, 1)
	assert.Equal(t, "Successfully enriched 2 facilities", feed[0].Message)
}

func TestService_EnrichKeepsSelectionMadeWhilePending(t *testing.T) {
	ctx := context.Background()
	opts := testOptions()
	opts.Delays.Enrich = 100 * time.Millisecond
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), opts)

	_, err := s.Search(ctx, sid)
	require.NoError(t, err)
	s.Select(sid, []int{1, 2})

	var (
		wg        sync.WaitGroup
		enrichErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, enrichErr = s.Enrich(ctx, sid)
	}()

	time.Sleep(20 * time.Millisecond)
	_, err = s.ToggleSelect(sid, 3)
	require.NoError(t, err)
	wg.Wait()

	require.NoError(t, enrichErr)
	view := s.View(sid)
	assert.Equal(t, []int{3}, view.SelectedIDs)
	for _, f := range view.Facilities {
		assert.Equal(t, f.ID == 1 || f.ID == 2, f.Enriched, "facility %d", f.ID)
	}
}

func TestService_SessionsStayBounded(t *testing.T) {
	ctx := context.Background()
	opts := testOptions()
	opts.Sessions = sessions.Limits{Max: 8}
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), opts)

	for i := range 1000 {
		_, err := s.SetFilter(ctx, fmt.Sprintf("session-%d", i), "state", "Michigan")
		require.NoError(t, err)
	}
	assert.Equal(t, 8, s.Sessions())
	assert.Equal(t, "Michigan", s.View("session-999").ActiveFilters["state"])
	assert.Empty(t, s.View("session-0").ActiveFilters)
}

func TestService_ToggleSelectUnknown(t *testing.T) {
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.ToggleSelect(sid, 404)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestService_Pagination(t *testing.T) {
	ctx := context.Background()
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	_, err := s.Search(ctx, sid)
	require.NoError(t, err)

	view := s.PrevPage(sid)
	assert.Equal(t, 1, view.Pagination.CurrentPage)
	assert.Len(t, view.Facilities, 10)

	view = s.NextPage(sid)
	assert.Equal(t, 2, view.Pagination.CurrentPage)
	assert.Equal(t, 11, view.Facilities[0].ID)

	view = s.GoToPage(sid, 10000)
	assert.Equal(t, 2450, view.Pagination.CurrentPage)
	assert.Empty(t, view.Facilities)

	view, err = s.SetFilter(ctx, sid, "state", "Michigan")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Pagination.CurrentPage)
	assert.Equal(t, 560, view.Pagination.TotalPages)
}

func TestService_Routes(t *testing.T) {
	s := newTestService(store.NewMemoryStore(), stubScraper{}, notify.NewHub(0, sessions.Limits{}), testOptions())

	routes, err := s.Routes(sid, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RoutesFor(1), routes)

	_, err = s.Routes(sid, 404)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}
