package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	mterrors "metatrader-client/pkg/errors"
	"metatrader-client/pkg/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", mterrors.ErrDatabaseError, err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to initialize schema: %w", mterrors.ErrDatabaseError, err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Bars fetched with get_ohlcv, one row per bar open time
	CREATE TABLE IF NOT EXISTS bars (
		symbol TEXT NOT NULL,
		timeframe INTEGER NOT NULL,
		time INTEGER NOT NULL,
		open REAL NOT NULL,
		high REAL NOT NULL,
		low REAL NOT NULL,
		close REAL NOT NULL,
		tick_volume INTEGER NOT NULL,
		fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (symbol, timeframe, time)
	);

	-- Journal of order actions sent to the terminal
	CREATE TABLE IF NOT EXISTS order_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		action TEXT NOT NULL,
		ticket INTEGER NOT NULL DEFAULT 0,
		symbol TEXT NOT NULL DEFAULT '',
		dialect TEXT NOT NULL DEFAULT '',
		request TEXT,
		success INTEGER NOT NULL,
		error TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_order_events_ticket ON order_events(ticket);
	CREATE INDEX IF NOT EXISTS idx_order_events_timestamp ON order_events(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveBars upserts bars keyed by symbol, timeframe and bar time.
func (s *SQLiteStore) SaveBars(ctx context.Context, symbol string, timeframe int, bars []models.OHLCV) error {
	if len(bars) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", mterrors.ErrDatabaseError, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO bars (symbol, timeframe, time, open, high, low, close, tick_volume, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare statement: %w", mterrors.ErrDatabaseError, err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, b := range bars {
		_, err := stmt.ExecContext(ctx, symbol, timeframe, b.Time, b.Open, b.High, b.Low, b.Close, b.TickVolume, now)
		if err != nil {
			return fmt.Errorf("%w: failed to insert bar: %w", mterrors.ErrDatabaseError, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", mterrors.ErrDatabaseError, err)
	}

	return nil
}

// GetBars returns cached bars in ascending time order.
func (s *SQLiteStore) GetBars(ctx context.Context, symbol string, timeframe int, filter BarFilter) ([]models.OHLCV, error) {
	query := `
		SELECT time, open, high, low, close, tick_volume
		FROM bars
		WHERE symbol = ? AND timeframe = ?`
	args := []interface{}{symbol, timeframe}

	if filter.From != 0 {
		query += " AND time >= ?"
		args = append(args, filter.From)
	}
	if filter.To != 0 {
		query += " AND time <= ?"
		args = append(args, filter.To)
	}
	query += " ORDER BY time DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query bars: %w", mterrors.ErrDatabaseError, err)
	}
	defer rows.Close()

	var bars []models.OHLCV
	for rows.Next() {
		var b models.OHLCV
		if err := rows.Scan(&b.Time, &b.Open, &b.High, &b.Low, &b.Close, &b.TickVolume); err != nil {
			return nil, fmt.Errorf("%w: failed to scan bar: %w", mterrors.ErrDatabaseError, err)
		}
		bars = append(bars, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating bars: %w", mterrors.ErrDatabaseError, err)
	}

	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
	return bars, nil
}

// GetBarsFreshness returns the open time of the newest cached bar.
func (s *SQLiteStore) GetBarsFreshness(ctx context.Context, symbol string, timeframe int) (time.Time, error) {
	var last sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(time) FROM bars WHERE symbol = ? AND timeframe = ?
	`, symbol, timeframe).Scan(&last)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to query freshness: %w", mterrors.ErrDatabaseError, err)
	}
	if !last.Valid {
		return time.Time{}, fmt.Errorf("%w: no bars for %s/%d", mterrors.ErrDataNotFound, symbol, timeframe)
	}
	return time.Unix(last.Int64, 0).UTC(), nil
}

// ListSeries summarizes the cache per symbol and timeframe.
func (s *SQLiteStore) ListSeries(ctx context.Context) ([]Series, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT symbol, timeframe, COUNT(*), MIN(time), MAX(time)
		FROM bars
		GROUP BY symbol, timeframe
		ORDER BY symbol, timeframe
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query series: %w", mterrors.ErrDatabaseError, err)
	}
	defer rows.Close()

	var series []Series
	for rows.Next() {
		var sr Series
		if err := rows.Scan(&sr.Symbol, &sr.Timeframe, &sr.Bars, &sr.First, &sr.Last); err != nil {
			return nil, fmt.Errorf("%w: failed to scan series: %w", mterrors.ErrDatabaseError, err)
		}
		series = append(series, sr)
	}
	return series, rows.Err()
}

// LogOrderEvent appends an event to the order journal and sets its ID.
func (s *SQLiteStore) LogOrderEvent(ctx context.Context, event *OrderEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Timestamp = event.Timestamp.UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO order_events (timestamp, action, ticket, symbol, dialect, request, success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, event.Timestamp, event.Action, event.Ticket, event.Symbol, event.Dialect,
		nullString(event.Request), event.Success, nullString(event.Error))
	if err != nil {
		return fmt.Errorf("%w: failed to log order event: %w", mterrors.ErrDatabaseError, err)
	}

	id, err := res.LastInsertId()
	if err == nil {
		event.ID = id
	}
	return nil
}

// GetOrderEvents returns journal entries, newest first.
func (s *SQLiteStore) GetOrderEvents(ctx context.Context, filter EventFilter) ([]OrderEvent, error) {
	var conditions []string
	var args []interface{}

	if filter.Action != "" {
		conditions = append(conditions, "action = ?")
		args = append(args, filter.Action)
	}
	if filter.Symbol != "" {
		conditions = append(conditions, "symbol = ?")
		args = append(args, filter.Symbol)
	}
	if filter.Ticket != 0 {
		conditions = append(conditions, "ticket = ?")
		args = append(args, filter.Ticket)
	}
	if !filter.StartDate.IsZero() {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if !filter.EndDate.IsZero() {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, filter.EndDate.UTC())
	}

	query := `SELECT id, timestamp, action, ticket, symbol, dialect, request, success, error FROM order_events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp DESC, id DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query order events: %w", mterrors.ErrDatabaseError, err)
	}
	defer rows.Close()

	var events []OrderEvent
	for rows.Next() {
		var e OrderEvent
		var request, errText sql.NullString
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.Ticket, &e.Symbol, &e.Dialect, &request, &e.Success, &errText); err != nil {
			return nil, fmt.Errorf("%w: failed to scan order event: %w", mterrors.ErrDatabaseError, err)
		}
		e.Request = request.String
		e.Error = errText.String
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating order events: %w", mterrors.ErrDatabaseError, err)
	}

	return events, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ DataStore = (*SQLiteStore)(nil)
