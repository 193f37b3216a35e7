package menus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"slugmenu-backend/lib/locations"
	"slugmenu-backend/lib/scrapers/hours"
	"slugmenu-backend/lib/scrapers/menu"
	"slugmenu-backend/lib/scrapers/waitz"
	"slugmenu-backend/lib/telemetry"
	"slugmenu-backend/lib/timezone"
)

var tracer = telemetry.Tracer("slugmenu.services.menus")

// hours rows are keyed per location in the schema, but the scrape is
// one page for everything, so it lives in a single row
const hoursRowKey = "all"
const waitzRowKey = "ucsc"

const hoursFreshFor = time.Hour * 24 * 7

type MenuSource interface {
	FetchMenu(ctx context.Context, loc locations.Location, date time.Time) (menu.Menu, error)
}

type HoursSource interface {
	FetchAll(ctx context.Context) (hours.AllHours, error)
}

type BusynessSource interface {
	FetchSnapshot(ctx context.Context) (waitz.Snapshot, error)
}

type Sources struct {
	Menu     MenuSource
	Hours    HoursSource
	Busyness BusynessSource
}

// Service is the cache-aside layer every caller goes through: check
// the stored row, return it while fresh, otherwise fetch, store and
// return. Constructed explicitly and injected by the composition
// root, there is no hidden global instance.
type Service struct {
	store Store
	src   Sources
	// read-through memo over the sqlite rows so repeat lookups in
	// one session skip the decode
	memo  *expirable.LRU[string, menu.Menu]
	clock func() time.Time
}

func NewService(database *sql.DB, src Sources) *Service {
	return &Service{
		store: NewStore(database),
		src:   src,
		memo:  expirable.NewLRU[string, menu.Menu](64, nil, time.Minute*15),
		clock: timezone.Now,
	}
}

// GetMenu returns a location's menu for today, cached for the rest of
// the day once fetched.
func (s *Service) GetMenu(ctx context.Context, key string) (menu.Menu, error) {
	ctx, span := tracer.Start(ctx, "service:GetMenu")
	defer span.End()
	span.SetAttributes(attribute.String("location", key))

	loc, ok := locations.Get(key)
	if !ok {
		return nil, fmt.Errorf("unknown location: %s", key)
	}

	today := timezone.DateStamp(s.clock())
	memoKey := key + "@" + today
	if cached, hit := s.memo.Get(memoKey); hit {
		return cached, nil
	}

	row, found, err := s.store.GetMenuRow(ctx, key)
	if err != nil {
		return nil, err
	}
	if found && row.CacheDate == today {
		var cached menu.Menu
		err = json.Unmarshal([]byte(row.Menus), &cached)
		if err == nil {
			s.memo.Add(memoKey, cached)
			return cached, nil
		}
		slog.WarnContext(ctx, "discarding unreadable cached menu", "location", key, "err", err)
	}

	fetched, err := s.src.Menu.FetchMenu(ctx, loc, time.Time{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "menu fetch failed")
		return nil, err
	}

	serialized, err := json.Marshal(fetched)
	if err != nil {
		return nil, err
	}
	err = s.store.PutMenuRow(ctx, MenuRow{
		Location:  key,
		Menus:     string(serialized),
		CacheDate: today,
	})
	if err != nil {
		return nil, err
	}

	s.memo.Add(memoKey, fetched)
	return fetched, nil
}

// GetMenuForDate serves an explicit historical request. It always
// goes to the source and never touches the cache rows.
func (s *Service) GetMenuForDate(ctx context.Context, key string, date time.Time) (menu.Menu, error) {
	ctx, span := tracer.Start(ctx, "service:GetMenuForDate")
	defer span.End()
	span.SetAttributes(
		attribute.String("location", key),
		attribute.String("date", timezone.DateStamp(date)),
	)

	loc, ok := locations.Get(key)
	if !ok {
		return nil, fmt.Errorf("unknown location: %s", key)
	}
	return s.src.Menu.FetchMenu(ctx, loc, date)
}

// GetHours returns operating hours for every location. The scrape is
// refreshed weekly; when the fetch fails the last cached copy is
// served no matter how stale, and with no cache at all the literal
// baked into the binary is the terminal fallback.
func (s *Service) GetHours(ctx context.Context) (hours.AllHours, error) {
	ctx, span := tracer.Start(ctx, "service:GetHours")
	defer span.End()

	row, found, err := s.store.GetHoursRow(ctx, hoursRowKey)
	if err != nil {
		return nil, err
	}

	var cached hours.AllHours
	haveCached := false
	if found {
		err = json.Unmarshal([]byte(row.Hours), &cached)
		if err == nil {
			haveCached = true
		} else {
			slog.WarnContext(ctx, "discarding unreadable cached hours", "err", err)
		}
	}

	if haveCached {
		stamp, err := time.ParseInLocation("2006-01-02", row.CacheDate, timezone.Location)
		if err == nil && s.clock().Sub(stamp) < hoursFreshFor {
			return cached.Normalized(), nil
		}
	}

	fetched, err := s.src.Hours.FetchAll(ctx)
	if err != nil {
		span.RecordError(err)
		if haveCached {
			slog.WarnContext(ctx, "hours fetch failed, serving stale cache", "err", err)
			return cached.Normalized(), nil
		}
		slog.WarnContext(ctx, "hours fetch failed with no cache, serving built-in fallback", "err", err)
		return hours.Default(), nil
	}

	fetched = fetched.Normalized()
	serialized, err := json.Marshal(fetched)
	if err != nil {
		return nil, err
	}
	err = s.store.PutHoursRow(ctx, HoursRow{
		Location:  hoursRowKey,
		Hours:     string(serialized),
		CacheDate: timezone.DateStamp(s.clock()),
	})
	if err != nil {
		return nil, err
	}

	return fetched, nil
}

// GetBusyness returns the live occupancy snapshot. Busyness is
// near-real-time so the cache stamp must match the current minute
// exactly, same-day is nowhere near fresh enough.
func (s *Service) GetBusyness(ctx context.Context) (waitz.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "service:GetBusyness")
	defer span.End()

	minute := timezone.MinuteStamp(s.clock())

	row, found, err := s.store.GetWaitzRow(ctx, waitzRowKey)
	if err != nil {
		return waitz.Snapshot{}, err
	}
	if found && row.CacheTime == minute {
		var snapshot waitz.Snapshot
		liveErr := json.Unmarshal([]byte(row.Live), &snapshot.Live)
		compareErr := json.Unmarshal([]byte(row.Compare), &snapshot.Compare)
		if liveErr == nil && compareErr == nil {
			return snapshot, nil
		}
		slog.WarnContext(ctx, "discarding unreadable cached busyness", "err", liveErr, "err2", compareErr)
	}

	fetched, err := s.src.Busyness.FetchSnapshot(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "busyness fetch failed")
		return waitz.Snapshot{}, err
	}

	live, err := json.Marshal(fetched.Live)
	if err != nil {
		return waitz.Snapshot{}, err
	}
	compare, err := json.Marshal(fetched.Compare)
	if err != nil {
		return waitz.Snapshot{}, err
	}
	err = s.store.PutWaitzRow(ctx, WaitzRow{
		Location:  waitzRowKey,
		CacheTime: minute,
		Live:      string(live),
		Compare:   string(compare),
	})
	if err != nil {
		return waitz.Snapshot{}, err
	}

	return fetched, nil
}

// RefreshAll warms the cache for every location plus hours and
// busyness in one fan-out. Each fetch runs as its own task, failures
// are logged and joined at the end so one broken location never takes
// the rest down with it.
func (s *Service) RefreshAll(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "service:RefreshAll")
	defer span.End()

	var errlist []error
	var errLock sync.Mutex
	wg := sync.WaitGroup{}

	report := func(what string, err error) {
		if err == nil {
			return
		}
		slog.ErrorContext(ctx, "refresh failed", "what", what, "err", err)
		errLock.Lock()
		defer errLock.Unlock()
		errlist = append(errlist, fmt.Errorf("%s: %w", what, err))
	}

	for _, loc := range locations.All {
		wg.Add(1)
		go func(loc locations.Location) {
			defer wg.Done()
			_, err := s.GetMenu(ctx, loc.Key)
			report("menu "+loc.Key, err)
		}(loc)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.GetHours(ctx)
		report("hours", err)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.GetBusyness(ctx)
		report("busyness", err)
	}()

	wg.Wait()

	if len(errlist) > 0 {
		return errors.Join(errlist...)
	}
	return nil
}

func (s *Service) Favorites(ctx context.Context) ([]string, error) {
	return s.store.ListFavorites(ctx)
}

func (s *Service) AddFavorite(ctx context.Context, name string) error {
	return s.store.AddFavorite(ctx, name)
}

func (s *Service) RemoveFavorite(ctx context.Context, name string) error {
	return s.store.RemoveFavorite(ctx, name)
}

func (s *Service) ClearMenuCache(ctx context.Context) error {
	s.memo.Purge()
	return s.store.ClearMenus(ctx)
}

func (s *Service) ClearHoursCache(ctx context.Context) error {
	return s.store.ClearHours(ctx)
}

func (s *Service) ClearBusynessCache(ctx context.Context) error {
	return s.store.ClearWaitz(ctx)
}

func (s *Service) ClearAllCaches(ctx context.Context) error {
	s.memo.Purge()
	return s.store.ClearAll(ctx)
}
