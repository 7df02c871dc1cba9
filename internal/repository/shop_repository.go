package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/palseverance/internal/error_values"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/entity"
)

type ShopRepository struct {
	conn PgConnection
}

func NewShopRepo(cfg DBConfig) *ShopRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for shopRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for shopRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing shopRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ShopRepository{
		conn: pool,
	}
}

func NewShopRepoWithConn(conn PgConnection) *ShopRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for shopRepo: " + err.Error())
	}
	return &ShopRepository{
		conn: conn,
	}
}

func (sr *ShopRepository) ListItems(ctx context.Context) ([]entity.ShopItem, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, name, type, cost FROM shop_items ORDER BY type, cost, name;`)
	if err != nil {
		return nil, errors.New("listing shop items error: " + err.Error())
	}
	defer rows.Close()
	items := make([]entity.ShopItem, 0)
	for rows.Next() {
		var it entity.ShopItem
		if err = rows.Scan(&it.ID, &it.Name, &it.Type, &it.Cost); err != nil {
			return nil, errors.New("scanning shop item error: " + err.Error())
		}
		items = append(items, it)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning shop items: " + rows.Err().Error())
	}
	return items, nil
}

func (sr *ShopRepository) GetItem(ctx context.Context, id uuid.UUID) (*entity.ShopItem, error) {
	var it entity.ShopItem
	it.ID = id
	row := sr.conn.QueryRow(ctx, `SELECT name, type, cost FROM shop_items WHERE id = $1;`, id)
	if err := row.Scan(&it.Name, &it.Type, &it.Cost); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrItemNotFound
		}
		return nil, errors.New("getting shop item error: " + err.Error())
	}
	return &it, nil
}

// Purchase runs the whole buy flow in one transaction: funds check,
// deduction, ownership row and the collector badge recomputation from the
// new owned count. Insufficient funds or duplicate ownership roll back
// with nothing written. Serialization failures rerun the whole transaction.
func (sr *ShopRepository) Purchase(ctx context.Context, uid uuid.UUID, item *entity.ShopItem, promote PromoteFunc) error {
	if item == nil {
		return errors.New("item is nil")
	}
	return withRetry(ctx, func(ctx context.Context) error {
		return sr.purchaseTx(ctx, uid, item, promote)
	})
}

func (sr *ShopRepository) purchaseTx(ctx context.Context, uid uuid.UUID, item *entity.ShopItem, promote PromoteFunc) error {
	tx, err := sr.conn.BeginTx(ctx, txOptions)
	if err != nil {
		return errors.New("beginning purchase tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var currency int
	row := tx.QueryRow(ctx, `SELECT currency FROM users WHERE id = $1 FOR UPDATE;`, uid)
	if err = row.Scan(&currency); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrUserNotFound
		}
		return txError("reading user in purchase tx error", err)
	}
	if currency < item.Cost {
		return errorvalues.ErrInsufficientFunds
	}
	_, err = tx.Exec(ctx, `INSERT INTO owned_items (user_id, item_id) VALUES ($1, $2);`, uid, item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return errorvalues.ErrItemOwned
			case "23503":
				return errorvalues.ErrItemNotFound
			}
		}
		return txError("recording ownership error", err)
	}
	_, err = tx.Exec(ctx, `UPDATE users SET currency = currency - $1 WHERE id = $2;`, item.Cost, uid)
	if err != nil {
		return txError("deducting currency error", err)
	}

	var ownedCount int
	row = tx.QueryRow(ctx, `SELECT COUNT(*) FROM owned_items WHERE user_id = $1;`, uid)
	if err = row.Scan(&ownedCount); err != nil {
		return txError("counting owned items error", err)
	}
	badges, err := scanUserBadges(ctx, tx, uid)
	if err != nil {
		return err
	}
	if promote != nil {
		if err = upsertUserBadges(ctx, tx, uid, promote(ownedCount, badges)); err != nil {
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return txError("committing purchase tx error", err)
	}
	return nil
}

func (sr *ShopRepository) ListOwnedItemIDs(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error) {
	rows, err := sr.conn.Query(ctx, `SELECT item_id FROM owned_items WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("listing owned items error: " + err.Error())
	}
	defer rows.Close()
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("scanning owned item error: " + err.Error())
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning owned items: " + rows.Err().Error())
	}
	return ids, nil
}

func (sr *ShopRepository) OwnsItem(ctx context.Context, uid, itemID uuid.UUID) (bool, error) {
	var exists bool
	row := sr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM owned_items WHERE user_id = $1 AND item_id = $2);`, uid, itemID)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting ownership error: " + err.Error())
	}
	return exists, nil
}

func (sr *ShopRepository) GetEquipment(ctx context.Context, uid uuid.UUID) (entity.Equipment, error) {
	rows, err := sr.conn.Query(ctx, `SELECT slot, item_name FROM user_equipment WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting equipment error: " + err.Error())
	}
	defer rows.Close()
	eq := make(entity.Equipment)
	for rows.Next() {
		var slot, name string
		if err = rows.Scan(&slot, &name); err != nil {
			return nil, errors.New("scanning equipment error: " + err.Error())
		}
		eq[slot] = name
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning equipment: " + rows.Err().Error())
	}
	return eq, nil
}

func (sr *ShopRepository) SetEquipment(ctx context.Context, uid uuid.UUID, slot, itemName string) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO user_equipment (user_id, slot, item_name) VALUES ($1, $2, $3)
	ON CONFLICT (user_id, slot) DO UPDATE SET item_name = EXCLUDED.item_name;`,
		uid, slot, itemName)
	if err != nil {
		return errors.New("setting equipment error: " + err.Error())
	}
	return nil
}
