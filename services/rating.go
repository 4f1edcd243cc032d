package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"foodapi/models"

	"gorm.io/gorm"
)

// RatingAggregator recomputes dish and shop rates from their source rows.
type RatingAggregator struct {
	db *gorm.DB
}

func NewRatingAggregator(db *gorm.DB) *RatingAggregator {
	return &RatingAggregator{db: db}
}

// WithTx returns an aggregator that reads and writes through tx.
func (a *RatingAggregator) WithTx(tx *gorm.DB) *RatingAggregator {
	return &RatingAggregator{db: tx}
}

// RecomputeDishRate stores the mean rate of the dish's comments on the dish.
// fallback is used when the dish has no comments or the mean is not positive.
func (a *RatingAggregator) RecomputeDishRate(ctx context.Context, dishID uint, fallback float64) (float64, error) {
	avg, err := a.average(ctx, &models.Comment{}, "dish_id = ?", dishID)
	if err != nil {
		return 0, fmt.Errorf("average comment rate of dish %d: %w", dishID, err)
	}

	rate := rateOrFallback(avg, fallback)
	err = a.db.WithContext(ctx).Model(&models.Dish{}).Where("id = ?", dishID).Update("rate", rate).Error
	if err != nil {
		return 0, fmt.Errorf("update rate of dish %d: %w", dishID, err)
	}
	return rate, nil
}

// RecomputeShopRate stores the mean rate of the shop's positively rated dishes on the shop.
// fallback is used when no dish of the shop has a positive rate.
func (a *RatingAggregator) RecomputeShopRate(ctx context.Context, shopID uint, fallback float64) (float64, error) {
	avg, err := a.average(ctx, &models.Dish{}, "shop_id = ? AND rate > ?", shopID, 0)
	if err != nil {
		return 0, fmt.Errorf("average dish rate of shop %d: %w", shopID, err)
	}

	rate := rateOrFallback(avg, fallback)
	err = a.db.WithContext(ctx).Model(&models.Shop{}).Where("id = ?", shopID).Update("rate", rate).Error
	if err != nil {
		return 0, fmt.Errorf("update rate of shop %d: %w", shopID, err)
	}
	return rate, nil
}

func (a *RatingAggregator) average(ctx context.Context, model any, query string, args ...any) (sql.NullFloat64, error) {
	var avg sql.NullFloat64
	err := a.db.WithContext(ctx).
		Model(model).
		Select("AVG(rate)").
		Where(query, args...).
		Scan(&avg).Error
	return avg, err
}

// AVG over no rows is NULL; both NULL and a non-positive mean fall back.
func rateOrFallback(avg sql.NullFloat64, fallback float64) float64 {
	if !avg.Valid || avg.Float64 <= 0 {
		return fallback
	}
	return roundRate(avg.Float64)
}

// roundRate keeps one fractional digit, matching the decimal(2,1) columns.
func roundRate(v float64) float64 {
	return math.Round(v*10) / 10
}
