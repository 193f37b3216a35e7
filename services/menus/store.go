package menus

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Store owns every read and write against the cache rows. Callers go
// through the Service, which layers the freshness rules on top.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

type MenuRow struct {
	Location  string
	Menus     string
	CacheDate string
}

func (s Store) GetMenuRow(ctx context.Context, location string) (MenuRow, bool, error) {
	var row MenuRow
	err := s.db.QueryRowContext(
		ctx,
		`SELECT location, menus, cache_date FROM menu WHERE location = ?`,
		location,
	).Scan(&row.Location, &row.Menus, &row.CacheDate)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuRow{}, false, nil
	}
	if err != nil {
		return MenuRow{}, false, err
	}
	return row, true, nil
}

func (s Store) PutMenuRow(ctx context.Context, row MenuRow) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO menu (location, menus, cache_date) VALUES (?, ?, ?)
		 ON CONFLICT(location) DO UPDATE SET
		     menus = excluded.menus,
		     cache_date = excluded.cache_date`,
		row.Location, row.Menus, row.CacheDate,
	)
	return err
}

type HoursRow struct {
	Location  string
	Hours     string
	CacheDate string
}

func (s Store) GetHoursRow(ctx context.Context, location string) (HoursRow, bool, error) {
	var row HoursRow
	err := s.db.QueryRowContext(
		ctx,
		`SELECT location, hours, cache_date FROM hours WHERE location = ?`,
		location,
	).Scan(&row.Location, &row.Hours, &row.CacheDate)
	if errors.Is(err, sql.ErrNoRows) {
		return HoursRow{}, false, nil
	}
	if err != nil {
		return HoursRow{}, false, err
	}
	return row, true, nil
}

func (s Store) PutHoursRow(ctx context.Context, row HoursRow) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO hours (location, hours, cache_date) VALUES (?, ?, ?)
		 ON CONFLICT(location) DO UPDATE SET
		     hours = excluded.hours,
		     cache_date = excluded.cache_date`,
		row.Location, row.Hours, row.CacheDate,
	)
	return err
}

type WaitzRow struct {
	Location  string
	CacheTime string
	Live      string
	Compare   string
}

func (s Store) GetWaitzRow(ctx context.Context, location string) (WaitzRow, bool, error) {
	var row WaitzRow
	err := s.db.QueryRowContext(
		ctx,
		`SELECT location, cache_time, live, compare FROM waitz WHERE location = ?`,
		location,
	).Scan(&row.Location, &row.CacheTime, &row.Live, &row.Compare)
	if errors.Is(err, sql.ErrNoRows) {
		return WaitzRow{}, false, nil
	}
	if err != nil {
		return WaitzRow{}, false, err
	}
	return row, true, nil
}

func (s Store) PutWaitzRow(ctx context.Context, row WaitzRow) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO waitz (location, cache_time, live, compare) VALUES (?, ?, ?, ?)
		 ON CONFLICT(location) DO UPDATE SET
		     cache_time = excluded.cache_time,
		     live = excluded.live,
		     compare = excluded.compare`,
		row.Location, row.CacheTime, row.Live, row.Compare,
	)
	return err
}

func (s Store) AddFavorite(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO favorites (name) VALUES (?) ON CONFLICT(name) DO NOTHING`,
		name,
	)
	return err
}

func (s Store) RemoveFavorite(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE name = ?`, name)
	return err
}

func (s Store) ListFavorites(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM favorites ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		err = rows.Scan(&name)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (s Store) ClearMenus(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM menu`)
	return err
}

func (s Store) ClearHours(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM hours`)
	return err
}

func (s Store) ClearWaitz(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM waitz`)
	return err
}

// ClearAll wipes every cache table. Favorites are user data, not a
// cache, so they survive.
func (s Store) ClearAll(ctx context.Context) error {
	errlist := []error{
		s.ClearMenus(ctx),
		s.ClearHours(ctx),
		s.ClearWaitz(ctx),
	}
	return errors.Join(errlist...)
}
