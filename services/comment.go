package services

import (
	"context"
	"errors"
	"fmt"

	"foodapi/logger"
	"foodapi/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentModerator classifies user text. passed is false when the text is
// flagged; err is set when no verdict could be obtained.
type ContentModerator interface {
	CheckText(ctx context.Context, content string) (passed bool, err error)
}

// SubmitCommentInput is a validated comment submission.
type SubmitCommentInput struct {
	UserID     uint
	UserName   string
	UserAvatar string
	ShopID     uint // optional, defaults to the dish's shop
	DishID     uint
	Comment    string
	Rate       float64
}

type CommentService struct {
	db        *gorm.DB
	moderator ContentModerator
	ratings   *RatingAggregator
	log       logrus.FieldLogger
}

func NewCommentService(db *gorm.DB, moderator ContentModerator, log logrus.FieldLogger) *CommentService {
	return &CommentService{
		db:        db,
		moderator: moderator,
		ratings:   NewRatingAggregator(db),
		log:       log,
	}
}

// Submit moderates the text, checks the dish, then stores the comment and
// recomputes the dish and shop rates in one transaction.
func (s *CommentService) Submit(ctx context.Context, in SubmitCommentInput) (*models.Comment, error) {
	log := logger.FromContext(ctx, s.log).WithFields(logrus.Fields{
		"user_id": in.UserID,
		"dish_id": in.DishID,
	})

	passed, err := s.moderator.CheckText(ctx, in.Comment)
	if err != nil {
		return nil, unavailable("moderation check failed", err)
	}
	if !passed {
		log.Info("comment rejected by moderation")
		return nil, validationError(MsgSensitiveContent)
	}

	dish, err := s.findDish(ctx, in.DishID)
	if err != nil {
		return nil, err
	}

	shopID := in.ShopID
	if shopID == 0 {
		shopID = dish.ShopID
	} else if shopID != dish.ShopID {
		return nil, validationError(MsgDishNotInShop)
	}

	comment := models.Comment{
		UserID:     in.UserID,
		UserName:   in.UserName,
		UserAvatar: in.UserAvatar,
		DishID:     dish.ID,
		Comment:    in.Comment,
		Rate:       in.Rate,
	}

	var dishRate, shopRate float64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// shop before dish, so concurrent submissions lock in the same order
		if err := lockRow(tx, &models.Shop{}, shopID); err != nil {
			return fmt.Errorf("lock shop %d: %w", shopID, err)
		}
		if err := lockRow(tx, &models.Dish{}, dish.ID); err != nil {
			return fmt.Errorf("lock dish %d: %w", dish.ID, err)
		}

		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		ratings := s.ratings.WithTx(tx)
		var err error
		if dishRate, err = ratings.RecomputeDishRate(ctx, dish.ID, in.Rate); err != nil {
			return err
		}
		if shopRate, err = ratings.RecomputeShopRate(ctx, shopID, in.Rate); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, internal("submit comment", err)
	}

	log.WithFields(logrus.Fields{
		"comment_id": comment.ID,
		"shop_id":    shopID,
		"dish_rate":  dishRate,
		"shop_rate":  shopRate,
	}).Info("comment submitted")
	return &comment, nil
}

// ListByDish returns one page of the dish's comments, newest first, and the total count.
func (s *CommentService) ListByDish(ctx context.Context, dishID uint, page Page) ([]models.Comment, int64, error) {
	db := s.db.WithContext(ctx).Model(&models.Comment{}).Where("dish_id = ?", dishID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, internal("count comments", err)
	}

	comments := []models.Comment{}
	if err := db.Order("id DESC").Offset(page.Offset()).Limit(page.Limit()).Find(&comments).Error; err != nil {
		return nil, 0, internal("list comments", err)
	}
	return comments, total, nil
}

func (s *CommentService) findDish(ctx context.Context, dishID uint) (*models.Dish, error) {
	if dishID == 0 {
		return nil, notFound(MsgDishNotFound)
	}

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

// lockRow takes a row lock for the rest of tx. sqlite ignores the clause and
// relies on the transaction's write lock instead.
func lockRow(tx *gorm.DB, model any, id uint) error {
	return tx.Model(model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		Find(model).Error
}
