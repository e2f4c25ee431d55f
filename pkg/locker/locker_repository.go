package locker

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"

	"gorm.io/gorm"
)

type (
	LockerRepository interface {
		CreateLocker(ctx context.Context, locker *entities.Locker) error
		GetLockers(ctx context.Context) ([]*entities.Locker, error)
		UpdateLocker(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error)
	}

	lockerRepository struct {
		db *gorm.DB
	}
)

func NewLockerRepository(db *gorm.DB) LockerRepository {
	return &lockerRepository{db: db}
}

func (r *lockerRepository) CreateLocker(ctx context.Context, locker *entities.Locker) error {
	return store.Wrap(store.Conn(ctx, r.db).Create(locker).Error, "insert locker")
}

func (r *lockerRepository) GetLockers(ctx context.Context) ([]*entities.Locker, error) {
	var lockers []*entities.Locker
	if err := store.Conn(ctx, r.db).Order("locker_id asc").Find(&lockers).Error; err != nil {
		return nil, store.Wrap(err, "select lockers")
	}
	return lockers, nil
}

func (r *lockerRepository) UpdateLocker(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableLockers, patch.Key{Column: entities.ColLockerID, Value: id})
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update locker")
}
