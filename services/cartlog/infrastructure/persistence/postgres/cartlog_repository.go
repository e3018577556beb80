package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/linentrack/pkg/database"
	"github.com/ghuser/linentrack/pkg/events"
	cartlogdomain "github.com/ghuser/linentrack/services/cartlog/domain"
	domainevents "github.com/ghuser/linentrack/services/cartlog/domain/events"
	"github.com/ghuser/linentrack/services/cartlog/domain/models"
	"github.com/ghuser/linentrack/services/cartlog/domain/repositories"
)

// CartLogRepository implements repositories.CartLogRepository against
// PostgreSQL. All mutations run in one transaction and publish their domain
// event through the transactional outbox, so a failed write never leaves a
// partial aggregate or a phantom event.
type CartLogRepository struct {
	db      *database.Database
	catalog *CatalogRepository
	bus     *events.EventBus
}

// NewCartLogRepository returns a CartLogRepository backed by the given pool
// and event bus. The bus is used to publish cart-log events within the
// mutation transaction; pass nil to disable publishing (tests).
func NewCartLogRepository(db *database.Database, catalog *CatalogRepository, bus *events.EventBus) *CartLogRepository {
	return &CartLogRepository{db: db, catalog: catalog, bus: bus}
}

// GetHeader loads a cart log and its line items without catalog joins.
func (r *CartLogRepository) GetHeader(ctx context.Context, id int64) (*models.CartLog, error) {
	var log models.CartLog
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT cart_log_id, receipt_number, COALESCE(reported_weight, 0), actual_weight,
		        COALESCE(comments, 'No comments'), date_weighed, cart_id, location_id, employee_id
		 FROM cart_logs WHERE cart_log_id = $1`, id,
	).Scan(&log.ID, &log.ReceiptNumber, &log.ReportedWeight, &log.ActualWeight,
		&log.Comments, &log.DateWeighed, &log.CartID, &log.LocationID, &log.EmployeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cartlogdomain.ErrCartLogNotFound
		}
		return nil, fmt.Errorf("query cart log: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT d.cart_log_detail_id, d.linen_id, COALESCE(l.name, 'Unknown'), d.count
		 FROM cart_log_details d
		 LEFT JOIN linens l ON l.linen_id = d.linen_id
		 WHERE d.cart_log_id = $1
		 ORDER BY d.cart_log_detail_id`, id)
	if err != nil {
		return nil, fmt.Errorf("query line items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		item := models.LineItem{CartLogID: id}
		if err := rows.Scan(&item.ID, &item.LinenID, &item.LinenName, &item.Count); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		log.LineItems = append(log.LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line items: %w", err)
	}
	return &log, nil
}

// Upsert persists the aggregate atomically. A header with id 0 is inserted
// and the generated id propagated to the aggregate and its line items; an
// existing header has its mutable fields overwritten. Each line item's
// linen reference is resolved through the catalog (creating rows for
// unknown ids), then the line item is inserted or updated in place.
// Stored line items absent from log.LineItems are not removed.
func (r *CartLogRepository) Upsert(ctx context.Context, log *models.CartLog) (*models.CartLog, error) {
	created := log.IsNew()
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.upsertHeader(ctx, tx, log); err != nil {
			return err
		}

		for i := range log.LineItems {
			if err := r.reconcileLineItem(ctx, tx, log, &log.LineItems[i]); err != nil {
				return err
			}
		}

		if r.bus != nil {
			event := domainevents.CartLogUpsertedEvent{
				EventID:    uuid.New(),
				Version:    1,
				CartLogID:  log.ID,
				EmployeeID: log.EmployeeID,
				Created:    created,
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(tx, domainevents.TopicCartLogUpserted, event.EventID, event); err != nil {
				return fmt.Errorf("publish cart log upserted: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func (r *CartLogRepository) upsertHeader(ctx context.Context, tx *sql.Tx, log *models.CartLog) error {
	if log.IsNew() {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO cart_logs
			   (receipt_number, reported_weight, actual_weight, comments, date_weighed, cart_id, location_id, employee_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING cart_log_id`,
			log.ReceiptNumber, log.ReportedWeight, log.ActualWeight, log.Comments,
			log.DateWeighed, log.CartID, log.LocationID, log.EmployeeID,
		).Scan(&log.ID)
		if err != nil {
			return fmt.Errorf("insert cart log: %w", err)
		}
		return nil
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE cart_logs
		 SET receipt_number = $2, reported_weight = $3, actual_weight = $4,
		     comments = $5, date_weighed = $6, cart_id = $7, location_id = $8, employee_id = $9
		 WHERE cart_log_id = $1`,
		log.ID, log.ReceiptNumber, log.ReportedWeight, log.ActualWeight, log.Comments,
		log.DateWeighed, log.CartID, log.LocationID, log.EmployeeID)
	if err != nil {
		return fmt.Errorf("update cart log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return cartlogdomain.ErrCartLogNotFound
	}
	return nil
}

func (r *CartLogRepository) reconcileLineItem(ctx context.Context, tx *sql.Tx, log *models.CartLog, item *models.LineItem) error {
	linenID, err := r.catalog.FindOrCreateLinen(ctx, tx, item.LinenID, item.LinenName)
	if err != nil {
		return err
	}
	item.LinenID = linenID
	item.CartLogID = log.ID

	if !item.IsNew() {
		res, err := tx.ExecContext(ctx,
			`UPDATE cart_log_details SET linen_id = $3, count = $4
			 WHERE cart_log_detail_id = $1 AND cart_log_id = $2`,
			item.ID, log.ID, item.LinenID, item.Count)
		if err != nil {
			return fmt.Errorf("update line item: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			return nil
		}
		// No row with that id belongs to this log: fall through to insert.
	}

	if err := tx.QueryRowContext(ctx,
		`INSERT INTO cart_log_details (cart_log_id, linen_id, count)
		 VALUES ($1, $2, $3) RETURNING cart_log_detail_id`,
		log.ID, item.LinenID, item.Count,
	).Scan(&item.ID); err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// Delete removes the cart log, its line items, and every linen catalog row
// those line items referenced which no remaining line item references.
func (r *CartLogRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var employeeID int64
		err := tx.QueryRowContext(ctx,
			`SELECT employee_id FROM cart_logs WHERE cart_log_id = $1`, id).Scan(&employeeID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return cartlogdomain.ErrCartLogNotFound
			}
			return fmt.Errorf("query cart log owner: %w", err)
		}

		linenIDs, err := r.referencedLinens(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM cart_log_details WHERE cart_log_id = $1`, id); err != nil {
			return fmt.Errorf("delete line items: %w", err)
		}

		// Drop linen rows that only existed to back this log's line items.
		// Rows still referenced by another log's line items survive.
		for _, linenID := range linenIDs {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM linens
				 WHERE linen_id = $1
				   AND NOT EXISTS (SELECT 1 FROM cart_log_details WHERE linen_id = $1)`,
				linenID); err != nil {
				return fmt.Errorf("delete linen %d: %w", linenID, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM cart_logs WHERE cart_log_id = $1`, id); err != nil {
			return fmt.Errorf("delete cart log: %w", err)
		}

		if r.bus != nil {
			event := domainevents.CartLogDeletedEvent{
				EventID:    uuid.New(),
				Version:    1,
				CartLogID:  id,
				EmployeeID: employeeID,
				OccurredAt: time.Now().UTC(),
			}
			if err := r.publish(tx, domainevents.TopicCartLogDeleted, event.EventID, event); err != nil {
				return fmt.Errorf("publish cart log deleted: %w", err)
			}
		}
		return nil
	})
}

func (r *CartLogRepository) referencedLinens(ctx context.Context, tx *sql.Tx, cartLogID int64) ([]int64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT DISTINCT linen_id FROM cart_log_details WHERE cart_log_id = $1`, cartLogID)
	if err != nil {
		return nil, fmt.Errorf("query referenced linens: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan linen id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate linen ids: %w", err)
	}
	return ids, nil
}

// GetView builds the joined projection for one cart log. Missing catalog
// rows yield nil sub-objects; null storage fields are coerced to policy
// defaults.
func (r *CartLogRepository) GetView(ctx context.Context, id int64) (*models.CartLogView, error) {
	view, err := scanView(r.db.DB().QueryRowContext(ctx, viewSelect+` WHERE cl.cart_log_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cartlogdomain.ErrCartLogNotFound
		}
		return nil, fmt.Errorf("query cart log view: %w", err)
	}
	if err := r.loadLineItems(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// ListViews returns projections matching the filter, newest weigh date
// first. A supplied filter requires the corresponding catalog join to exist
// and match; without a filter, dangling references are tolerated.
func (r *CartLogRepository) ListViews(ctx context.Context, f repositories.Filter) ([]*models.CartLogView, error) {
	query := viewSelect
	var (
		conds []string
		args  []any
	)
	if f.CartType != "" {
		args = append(args, f.CartType)
		conds = append(conds, fmt.Sprintf("c.type = $%d", len(args)))
	}
	if f.LocationName != "" {
		args = append(args, f.LocationName)
		conds = append(conds, fmt.Sprintf("loc.name = $%d", len(args)))
	}
	if f.EmployeeID != 0 {
		args = append(args, f.EmployeeID)
		conds = append(conds, fmt.Sprintf("cl.employee_id = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY cl.date_weighed DESC, cl.cart_log_id ASC"

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cart log views: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	views := []*models.CartLogView{}
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart log view: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart log views: %w", err)
	}

	for _, view := range views {
		if err := r.loadLineItems(ctx, view); err != nil {
			return nil, err
		}
	}
	return views, nil
}

const viewSelect = `
	SELECT cl.cart_log_id, cl.receipt_number, COALESCE(cl.reported_weight, 0), cl.actual_weight,
	       COALESCE(cl.comments, 'No comments'), cl.date_weighed,
	       c.cart_id, COALESCE(c.name, 'Unknown'), COALESCE(c.weight, 0), COALESCE(c.type, 'Unknown'),
	       loc.location_id, COALESCE(loc.name, 'Unknown'), COALESCE(loc.type, 'Unknown'),
	       e.employee_id, COALESCE(e.name, 'Unknown')
	FROM cart_logs cl
	LEFT JOIN carts c ON c.cart_id = cl.cart_id
	LEFT JOIN locations loc ON loc.location_id = cl.location_id
	LEFT JOIN employees e ON e.employee_id = cl.employee_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanView(row rowScanner) (*models.CartLogView, error) {
	var (
		view    models.CartLogView
		cartID  sql.NullInt64
		cartN   sql.NullString
		cartW   sql.NullFloat64
		cartT   sql.NullString
		locID   sql.NullInt64
		locN    sql.NullString
		locT    sql.NullString
		empID   sql.NullInt64
		empName sql.NullString
	)
	if err := row.Scan(
		&view.ID, &view.ReceiptNumber, &view.ReportedWeight, &view.ActualWeight,
		&view.Comments, &view.DateWeighed,
		&cartID, &cartN, &cartW, &cartT,
		&locID, &locN, &locT,
		&empID, &empName,
	); err != nil {
		return nil, err
	}
	if cartID.Valid {
		view.Cart = &models.Cart{ID: cartID.Int64, Name: cartN.String, Weight: cartW.Float64, Type: cartT.String}
	}
	if locID.Valid {
		view.Location = &models.Location{ID: locID.Int64, Name: locN.String, Type: locT.String}
	}
	if empID.Valid {
		view.Employee = &models.EmployeeRef{ID: empID.Int64, Name: empName.String}
	}
	return &view, nil
}

func (r *CartLogRepository) loadLineItems(ctx context.Context, view *models.CartLogView) error {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT d.cart_log_detail_id, d.linen_id, COALESCE(l.name, 'Unknown'), d.count
		 FROM cart_log_details d
		 LEFT JOIN linens l ON l.linen_id = d.linen_id
		 WHERE d.cart_log_id = $1
		 ORDER BY d.cart_log_detail_id`, view.ID)
	if err != nil {
		return fmt.Errorf("query line item views: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	view.LineItems = []models.LineItemView{}
	for rows.Next() {
		var item models.LineItemView
		if err := rows.Scan(&item.ID, &item.LinenID, &item.Name, &item.Count); err != nil {
			return fmt.Errorf("scan line item view: %w", err)
		}
		view.LineItems = append(view.LineItems, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate line item views: %w", err)
	}
	return nil
}

func (r *CartLogRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}
