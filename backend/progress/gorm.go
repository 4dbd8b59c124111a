package progress

import (
	"errors"

	"gorm.io/gorm"

	"project/backend/models"
)

// GormStorage persists snapshots as rows in the progress_snapshots table.
type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

func (gs *GormStorage) Load(key string) ([]byte, bool, error) {
	var snapshot models.ProgressSnapshot
	err := gs.DB.Where("storage_key = ?", key).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return snapshot.Data, true, nil
}

func (gs *GormStorage) Save(key string, data []byte) error {
	var snapshot models.ProgressSnapshot
	err := gs.DB.Where("storage_key = ?", key).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gs.DB.Create(&models.ProgressSnapshot{StorageKey: key, Data: data}).Error
		}
		return err
	}
	snapshot.Data = data
	return gs.DB.Save(&snapshot).Error
}
