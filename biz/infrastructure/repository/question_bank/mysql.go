package question_bank

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"class-hive/biz/infrastructure/util/log"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLMapper struct {
	db *sql.DB
}

// SeedQuestion is a curated question from the institutional bank, mixed into
// generation prompts as few-shot material.
type SeedQuestion struct {
	ID         int     `db:"id"`
	Subject    *string `db:"subject"`
	Grade      *int    `db:"grade"`
	Difficulty *int    `db:"difficulty"`
	Content    *string `db:"content"`
	Answer     *string `db:"answer"`
}

func NewMySQLMapper(dsn string) (*MySQLMapper, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	log.Info("MySQL connection established successfully")
	return &MySQLMapper{db: db}, nil
}

func (m *MySQLMapper) Close() error {
	return m.db.Close()
}

// ListSeedQuestions returns up to limit bank questions, optionally filtered by
// subject.
func (m *MySQLMapper) ListSeedQuestions(ctx context.Context, subject string, limit int64) ([]*SeedQuestion, error) {
	var conditions []string
	var args []interface{}

	if subject != "" {
		conditions = append(conditions, "subject = ?")
		args = append(args, subject)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, subject, grade, difficulty, content, answer
		FROM Questions %s
		ORDER BY RAND()
		LIMIT ?
	`, whereClause)
	args = append(args, limit)

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("Failed to query seed questions: %v", err)
		return nil, fmt.Errorf("failed to query seed questions: %w", err)
	}
	defer rows.Close()

	var questions []*SeedQuestion
	for rows.Next() {
		var q SeedQuestion
		err := rows.Scan(
			&q.ID,
			&q.Subject,
			&q.Grade,
			&q.Difficulty,
			&q.Content,
			&q.Answer,
		)
		if err != nil {
			log.Error("Failed to scan question row: %v", err)
			continue
		}
		questions = append(questions, &q)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return questions, nil
}

// SafeString converts a nullable column to its value or "".
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
