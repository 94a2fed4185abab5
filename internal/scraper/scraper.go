package scraper

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/solarscope/internal/domain"
	"github.com/ougirez/solarscope/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

//go:embed scrape.html
var fixture []byte

// Scraper finds new facility records for a free-text facility type query.
type Scraper interface {
	Scrape(ctx context.Context, query string) ([]domain.FacilityRecord, error)
}

// HTMLScraper reads facility rows out of a directory page. Without a source URL it parses the
// embedded directory snapshot. Returned records have no ID; the caller assigns them.
type HTMLScraper struct {
	sourceURL string
	retries   uint64
	client    *http.Client
}

func NewHTMLScraper(sourceURL string, retries uint64) *HTMLScraper {
	return &HTMLScraper{
		sourceURL: sourceURL,
		retries:   retries,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTMLScraper) Scrape(ctx context.Context, query string) ([]domain.FacilityRecord, error) {
	body, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	records, err := parseDirectory(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parseDirectory: %w", err)
	}

	logger.Infof(ctx, "scraped %d facilities for %q", len(records), query)
	return records, nil
}

func (s *HTMLScraper) document(ctx context.Context) (io.ReadCloser, error) {
	if s.sourceURL == "" {
		return io.NopCloser(bytes.NewReader(fixture)), nil
	}

	var resp *http.Response
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
			if reqErr != nil {
				return backoff.Permanent(fmt.Errorf("new request: %w", reqErr))
			}

			var httpErr error
			resp, httpErr = s.client.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Do: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				_ = resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), s.retries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

type rankedRecord struct {
	rank   int
	record domain.FacilityRecord
}

func parseDirectory(ctx context.Context, doc *goquery.Document) ([]domain.FacilityRecord, error) {
	ranked := make([]rankedRecord, 0, 8)
	rankedMx := sync.Mutex{}
	eg, _ := errgroup.WithContext(ctx)

	doc.Find("table#facilities tbody tr").Each(func(i int, tr *goquery.Selection) {
		eg.Go(func() error {
			rank := i
			if attr, ok := tr.Attr("data-rank"); ok {
				parsed, err := strconv.Atoi(attr)
				if err != nil {
					return fmt.Errorf("failed to parse rank %q: %w", attr, err)
				}
				rank = parsed
			}

			rec, err := parseRow(tr)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}

			rankedMx.Lock()
			defer rankedMx.Unlock()
			ranked = append(ranked, rankedRecord{rank: rank, record: rec})
			return nil
		})
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(ranked, func(a, b rankedRecord) int { return a.rank - b.rank })

	records := make([]domain.FacilityRecord, 0, len(ranked))
	for _, r := range ranked {
		records = append(records, r.record)
	}
	return records, nil
}

func parseRow(tr *goquery.Selection) (domain.FacilityRecord, error) {
	cell := func(class string) string {
		return strings.TrimSpace(tr.Find("td." + class).Text())
	}

	rec := domain.FacilityRecord{
		Name:          cell("name"),
		JobTitle:      cell("job-title"),
		Company:       cell("company"),
		Location:      cell("location"),
		Email:         cell("email"),
		Phone:         cell("phone"),
		FacilityType:  cell("type"),
		EmployeeCount: cell("employees"),
		Verified:      strings.EqualFold(cell("verified"), "yes"),
	}
	if rec.Name == "" || rec.Company == "" {
		return domain.FacilityRecord{}, fmt.Errorf("missing name or company")
	}
	rec.Emails = rec.Email != ""
	rec.PhoneNumbers = rec.Phone != ""

	return rec, nil
}
