package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Document is a raw record read back from a collection. ID and CreatedAt are
// row metadata; Body is the stored JSON as written at insert time.
type Document struct {
	ID        string
	Body      json.RawMessage
	CreatedAt int64
}

// CreateDocument inserts a JSON-marshaled record into the named collection
// and returns its generated id. created_at is assigned server-side in unix
// milliseconds.
func (db *DB) CreateDocument(collection string, record any) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal %s record: %w", collection, err)
	}

	id := uuid.New().String()
	now := time.Now().UnixMilli()

	_, err = db.Exec(`
		INSERT INTO documents (id, collection, body, created_at)
		VALUES (?, ?, ?, ?)
	`, id, collection, string(body), now)
	if err != nil {
		return "", fmt.Errorf("insert %s document: %w", collection, err)
	}
	return id, nil
}

// ListDocuments returns all documents in a collection, newest first.
// filter matches top-level JSON fields exactly; a nil or empty filter
// returns everything. An empty collection yields an empty slice, not an
// error.
func (db *DB) ListDocuments(collection string, filter map[string]string) ([]Document, error) {
	query := `
		SELECT id, body, created_at
		FROM documents WHERE collection = ?`
	args := []any{collection}

	// Deterministic clause order for stable query plans and tests.
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		query += ` AND json_extract(body, ?) = ?`
		args = append(args, "$."+k, filter[k])
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s documents: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var d Document
		var body string
		if err := rows.Scan(&d.ID, &body, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s document: %w", collection, err)
		}
		d.Body = json.RawMessage(body)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Collections returns the distinct collection names present in the store.
func (db *DB) Collections() ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
