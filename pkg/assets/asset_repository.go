package assets

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"

	"gorm.io/gorm"
)

type (
	// AssetRepository reads and writes the assets_url column of any table
	// that has one.
	AssetRepository interface {
		GetAssetsURL(ctx context.Context, table, keyColumn string, id uint) (string, error)
		SetAssetsURL(ctx context.Context, table, keyColumn string, id uint, url string) (int64, error)
	}

	assetRepository struct {
		db *gorm.DB
	}
)

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) GetAssetsURL(ctx context.Context, table, keyColumn string, id uint) (string, error) {
	var urls []string
	err := store.Conn(ctx, r.db).
		Table(table).
		Where(keyColumn+" = ?", id).
		Limit(1).
		Pluck(entities.ColAssetsURL, &urls).Error
	if err != nil {
		return "", store.Wrap(err, "select "+table+" asset")
	}
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

func (r *assetRepository) SetAssetsURL(ctx context.Context, table, keyColumn string, id uint, url string) (int64, error) {
	stmt, args, err := patch.New().
		Set(entities.ColAssetsURL, url).
		UpdateStatement(table, patch.Key{Column: keyColumn, Value: id})
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update "+table+" asset")
}
