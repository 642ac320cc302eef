package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"cropsense/entities"
	"cropsense/pkg/weather/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CacheRepository { return &repo{db} }

func (r *repo) Get(key string, notBefore time.Time) (*entities.WeatherCache, error) {
	var row entities.WeatherCache
	err := r.db.Where("key = ? AND fetched_at >= ?", key, notBefore).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repo) Put(key, payload string, fetchedAt time.Time) error {
	var row entities.WeatherCache
	err := r.db.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&entities.WeatherCache{Key: key, Payload: payload, FetchedAt: fetchedAt}).Error
	}
	if err != nil {
		return err
	}
	row.Payload = payload
	row.FetchedAt = fetchedAt
	return r.db.Save(&row).Error
}
