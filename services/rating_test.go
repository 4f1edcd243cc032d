package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeDishRate(t *testing.T) {
	tests := []struct {
		name     string
		comments []float64
		fallback float64
		want     float64
	}{
		{name: "mean of comments", comments: []float64{4, 5, 3}, fallback: 1, want: 4.0},
		{name: "rounded to one digit", comments: []float64{4, 5, 5}, fallback: 1, want: 4.7},
		{name: "single comment", comments: []float64{2}, fallback: 5, want: 2},
		{name: "no comments falls back", comments: nil, fallback: 2.5, want: 2.5},
		{name: "zero mean falls back", comments: []float64{0, 0}, fallback: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			shop := seedShop(t, db, 0)
			dish := seedDish(t, db, shop.ID, 0)
			other := seedDish(t, db, shop.ID, 0)
			seedComments(t, db, dish.ID, tt.comments...)
			seedComments(t, db, other.ID, 1, 1, 1)

			got, err := NewRatingAggregator(db).RecomputeDishRate(context.Background(), dish.ID, tt.fallback)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, reloadDish(t, db, dish.ID).Rate, 1e-9)
			assert.InDelta(t, 0, reloadDish(t, db, other.ID).Rate, 1e-9, "other dishes must not change")
		})
	}
}

func TestRecomputeShopRate(t *testing.T) {
	tests := []struct {
		name     string
		dishes   []float64
		fallback float64
		want     float64
	}{
		{name: "ignores non-positive dishes", dishes: []float64{0, 0, 4}, fallback: 1, want: 4},
		{name: "mean of positive dishes", dishes: []float64{3.5, 4.5, 0}, fallback: 1, want: 4},
		{name: "no positive dish falls back", dishes: []float64{0, 0}, fallback: 2, want: 2},
		{name: "no dishes falls back", dishes: nil, fallback: 3.5, want: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			shop := seedShop(t, db, 0)
			otherShop := seedShop(t, db, 0)
			for _, rate := range tt.dishes {
				seedDish(t, db, shop.ID, rate)
			}
			seedDish(t, db, otherShop.ID, 1)

			got, err := NewRatingAggregator(db).RecomputeShopRate(context.Background(), shop.ID, tt.fallback)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, reloadShop(t, db, shop.ID).Rate, 1e-9)
			assert.InDelta(t, 0, reloadShop(t, db, otherShop.ID).Rate, 1e-9)
		})
	}
}

func TestRateOrFallback(t *testing.T) {
	assert.Equal(t, 3.0, rateOrFallback(sql.NullFloat64{}, 3))
	assert.Equal(t, 3.0, rateOrFallback(sql.NullFloat64{Valid: true, Float64: -1}, 3))
	assert.Equal(t, 3.0, rateOrFallback(sql.NullFloat64{Valid: true, Float64: 0}, 3))
	assert.Equal(t, 4.3, rateOrFallback(sql.NullFloat64{Valid: true, Float64: 4.3333}, 3))
}
