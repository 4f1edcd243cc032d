package services

import (
	"context"
	"errors"
	"fmt"

	"foodapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateShopInput struct {
	Name string
	Type int
}

type CreateDishInput struct {
	Name        string
	Price       int64
	Description string
	Picture     string
}

// CatalogService manages shops and their dishes.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) ListShops(ctx context.Context, page Page) ([]models.Shop, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.Shop{}).Where("is_active = ?", true)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internal("count shops", err)
	}

	shops := []models.Shop{}
	if err := db.Order("id DESC").Offset(page.Offset()).Limit(page.Limit()).Find(&shops).Error; err != nil {
		return nil, 0, internal("list shops", err)
	}
	return shops, total, nil
}

func (s *CatalogService) GetShop(ctx context.Context, shopID uint) (*models.Shop, error) {
	var shop models.Shop
	err := s.db.WithContext(ctx).Where("id = ?", shopID).First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(MsgShopNotFound)
	}
	if err != nil {
		return nil, internal("find shop", err)
	}
	return &shop, nil
}

func (s *CatalogService) CreateShop(ctx context.Context, in CreateShopInput) (*models.Shop, error) {
	shop := models.Shop{
		Name:     in.Name,
		Type:     in.Type,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&shop).Error; err != nil {
		return nil, internal("create shop", err)
	}
	return &shop, nil
}

func (s *CatalogService) ListDishes(ctx context.Context, shopID uint, page Page) ([]models.Dish, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.Dish{}).Where("shop_id = ?", shopID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internal("count dishes", err)
	}

	dishes := []models.Dish{}
	if err := db.Order("id DESC").Offset(page.Offset()).Limit(page.Limit()).Find(&dishes).Error; err != nil {
		return nil, 0, internal("list dishes", err)
	}
	return dishes, total, nil
}

func (s *CatalogService) GetDish(ctx context.Context, dishID uint) (*models.Dish, error) {
	var dish models.Dish
	err := s.db.WithContext(ctx).Where("id = ?", dishID).First(&dish).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(MsgDishNotFound)
	}
	if err != nil {
		return nil, internal("find dish", err)
	}
	return &dish, nil
}

// CreateDish adds a dish to the shop and bumps the shop's dishes_count.
func (s *CatalogService) CreateDish(ctx context.Context, shopID uint, in CreateDishInput) (*models.Dish, error) {
	dish := models.Dish{
		ShopID:      shopID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Picture:     in.Picture,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", shopID).First(&shop).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(MsgShopNotFound)
		}
		if err != nil {
			return fmt.Errorf("find shop %d: %w", shopID, err)
		}

		if err := tx.Create(&dish).Error; err != nil {
			return fmt.Errorf("create dish: %w", err)
		}
		return tx.Model(&shop).UpdateColumn("dishes_count", gorm.Expr("dishes_count + ?", 1)).Error
	})
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, err
		}
		return nil, internal("create dish", err)
	}
	return &dish, nil
}

// SetDishPicture replaces the dish's picture URL.
func (s *CatalogService) SetDishPicture(ctx context.Context, dishID uint, picture string) (*models.Dish, error) {
	dish, err := s.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(dish).Update("picture", picture).Error; err != nil {
		return nil, internal("update dish picture", err)
	}
	return dish, nil
}
