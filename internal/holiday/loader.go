package holiday

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Loader fetches the holiday list once per process and shares the result
// across every picker. Failure never reaches the picker: the fetch falls
// back to the local cache, and a cold cache falls back to an empty set.
type Loader struct {
	URL    string
	Client *http.Client
	DB     *sql.DB
}

// Load returns the best available holiday set. It never returns an error;
// all failure paths are terminal substitutions.
func (l Loader) Load(ctx context.Context) Set {
	if text, err := l.fetch(ctx); err == nil {
		set := Parse(text)
		if l.DB != nil {
			_ = l.saveCache(ctx, set)
		}
		return set
	}
	if l.DB != nil {
		if set, err := l.loadCache(ctx); err == nil {
			return set
		}
	}
	return Set{}
}

func (l Loader) fetch(ctx context.Context) (string, error) {
	if l.URL == "" {
		return "", fmt.Errorf("no holiday source configured")
	}
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("holiday fetch: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (l Loader) saveCache(ctx context.Context, set Set) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM holidays`); err != nil {
		_ = tx.Rollback()
		return err
	}
	for k := range set {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO holidays (year, month, day) VALUES (?, ?, ?)`,
			k.Year, int(k.Month), k.Day)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (l Loader) loadCache(ctx context.Context) (Set, error) {
	rows, err := l.DB.QueryContext(ctx, `SELECT year, month, day FROM holidays`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := Set{}
	for rows.Next() {
		var y, m, d int
		if err := rows.Scan(&y, &m, &d); err != nil {
			return nil, err
		}
		out.Add(Key{Year: y, Month: time.Month(m), Day: d})
	}
	return out, rows.Err()
}
