package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLStore persists quizzes in a relational database. The quiz body is
// stored as a JSON text column; only sharing metadata gets columns of
// its own.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Save(ctx context.Context, rec Record) (Record, error) {
	buf, err := json.Marshal(rec.Data)
	if err != nil {
		return Record{}, fmt.Errorf("encoding quiz: %w", err)
	}
	now := time.Now().Unix()
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO quizzes (title, data, user_id, share_id, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		rec.Title, string(buf), nullable(rec.UserID), rec.ShareID, now, now)
	if err := row.Scan(&rec.ID); err != nil {
		return Record{}, err
	}
	rec.CreatedAt = time.Unix(now, 0)
	rec.UpdatedAt = rec.CreatedAt
	return rec, nil
}

func (s *SQLStore) GetByID(ctx context.Context, id int64) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, data, user_id, share_id, created_at, updated_at FROM quizzes WHERE id=$1`, id)
	return scanRecord(row)
}

func (s *SQLStore) GetByShareID(ctx context.Context, shareID string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, data, user_id, share_id, created_at, updated_at FROM quizzes WHERE share_id=$1`, shareID)
	return scanRecord(row)
}

func (s *SQLStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, data, user_id, share_id, created_at, updated_at FROM quizzes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLStore) Update(ctx context.Context, id int64, title string, data Quiz) (Record, error) {
	buf, err := json.Marshal(data)
	if err != nil {
		return Record{}, fmt.Errorf("encoding quiz: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE quizzes SET title=COALESCE(NULLIF($1,''), title), data=$2, updated_at=$3 WHERE id=$4`,
		title, string(buf), time.Now().Unix(), id)
	if err != nil {
		return Record{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Record{}, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec       Record
		data      string
		userID    sql.NullString
		createdAt int64
		updatedAt int64
	)
	if err := row.Scan(&rec.ID, &rec.Title, &data, &userID, &rec.ShareID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(data), &rec.Data); err != nil {
		return Record{}, fmt.Errorf("decoding quiz %d: %w", rec.ID, err)
	}
	rec.UserID = userID.String
	rec.CreatedAt = time.Unix(createdAt, 0)
	rec.UpdatedAt = time.Unix(updatedAt, 0)
	return rec, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
