package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/palseverance/internal/progression"
	"github.com/limbo/palseverance/pkg/cleanup"
	"github.com/limbo/palseverance/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(cfg DBConfig) *BadgesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for badgesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing badgesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &BadgesRepository{
		conn: pool,
	}
}

func NewBadgesRepoWithConn(conn PgConnection) *BadgesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	return &BadgesRepository{
		conn: conn,
	}
}

// LoadCatalog reads the whole badge reference data. The catalog is
// logically immutable at request timescales, so it is loaded once at
// process start and shared read-only.
func (br *BadgesRepository) LoadCatalog(ctx context.Context) (progression.Catalog, error) {
	catalog := make(progression.Catalog)
	rows, err := br.conn.Query(ctx, `SELECT id, title, base_description FROM badges ORDER BY id;`)
	if err != nil {
		return nil, errors.New("querying badges error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var b entity.Badge
		if err = rows.Scan(&b.ID, &b.Title, &b.BaseDescription); err != nil {
			return nil, errors.New("scanning badge error: " + err.Error())
		}
		catalog[b.ID] = b
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning badges: " + rows.Err().Error())
	}

	tierRows, err := br.conn.Query(ctx, `SELECT badge_id, tier, threshold, tier_description, image_url FROM badge_tiers ORDER BY badge_id, tier;`)
	if err != nil {
		return nil, errors.New("querying badge tiers error: " + err.Error())
	}
	defer tierRows.Close()
	for tierRows.Next() {
		var badgeID string
		var t entity.BadgeTier
		if err = tierRows.Scan(&badgeID, &t.Tier, &t.Threshold, &t.TierDescription, &t.ImageURL); err != nil {
			return nil, errors.New("scanning badge tier error: " + err.Error())
		}
		badge, ok := catalog[badgeID]
		if !ok {
			return nil, errors.New("badge tier references unknown badge: " + badgeID)
		}
		badge.Tiers = append(badge.Tiers, t)
		catalog[badgeID] = badge
	}
	if tierRows.Err() != nil {
		return nil, errors.New("unexpected error after scanning badge tiers: " + tierRows.Err().Error())
	}
	return catalog, nil
}
