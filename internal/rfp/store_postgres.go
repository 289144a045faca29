package rfp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rfpforge/pkg/sentinel"
)

// PostgresStore persists documents durably. Sequence allocation uses an
// atomic per-year upsert on rfp_sequences inside the insert transaction, so
// numbering stays gapless under concurrent creation.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, doc *Document) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create document: %w", err)
	}
	defer tx.Rollback(ctx)

	year := doc.CreatedAt.Year()
	var seq int
	err = tx.QueryRow(ctx,
		`INSERT INTO rfp_sequences (year, seq) VALUES ($1, 1)
		 ON CONFLICT (year) DO UPDATE SET seq = rfp_sequences.seq + 1
		 RETURNING seq`,
		year,
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("allocate document number: %w", err)
	}
	doc.Number = fmt.Sprintf("RFP-%d-%03d", year, seq)

	_, err = tx.Exec(ctx,
		`INSERT INTO rfp_documents
		   (id, number, title, objective, acquisition_type, security_level,
		    contract_value, compliance_requirements, status, created_by,
		    created_at, updated_at, content)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		doc.ID, doc.Number, doc.Title, doc.Objective, doc.AcquisitionType,
		doc.SecurityLevel, doc.ContractValue, doc.ComplianceRequirements,
		string(doc.Status), doc.CreatedBy, doc.CreatedAt.UTC(), doc.UpdatedAt.UTC(), doc.Content,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return tx.Commit(ctx)
}

const documentColumns = `id, number, title, objective, acquisition_type, security_level,
	contract_value, compliance_requirements, status, created_by, created_at, updated_at, content`

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*Document, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM rfp_documents WHERE id = $1`, id)
	doc, err := scanDocument(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID string) ([]*Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM rfp_documents WHERE created_by = $1 ORDER BY created_at ASC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc    Document
		status string
	)
	err := row.Scan(&doc.ID, &doc.Number, &doc.Title, &doc.Objective,
		&doc.AcquisitionType, &doc.SecurityLevel, &doc.ContractValue,
		&doc.ComplianceRequirements, &status, &doc.CreatedBy,
		&doc.CreatedAt, &doc.UpdatedAt, &doc.Content)
	if err != nil {
		return nil, err
	}
	doc.Status = Status(status)
	return &doc, nil
}
