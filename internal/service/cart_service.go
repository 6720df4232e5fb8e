package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
	"artisticdb/internal/repository"
)

// CartService manages the classes a user intends to buy.
type CartService interface {
	Add(ctx context.Context, classID, email string) (model.InsertResult, error)
	List(ctx context.Context, email string) ([]model.CartItem, error)
	Remove(ctx context.Context, email, className string) (model.DeleteResult, error)
}

type cartService struct {
	classRepo repository.ClassRepository
	cartRepo  repository.CartRepository
}

// NewCartService creates a new cart service.
func NewCartService(classRepo repository.ClassRepository, cartRepo repository.CartRepository) CartService {
	return &cartService{classRepo: classRepo, cartRepo: cartRepo}
}

// Add copies the class with classID into email's cart.
func (s *cartService) Add(ctx context.Context, classID, email string) (model.InsertResult, error) {
	oid, err := repository.ParseID(classID)
	if err != nil {
		return model.InsertResult{}, err
	}

	class, err := s.classRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.InsertResult{}, errors.ErrClassNotFound
		}
		return model.InsertResult{}, fmt.Errorf("find class %s: %w", classID, err)
	}

	item := model.NewCartItem(*class, email, time.Now())
	res, err := s.cartRepo.Create(ctx, &item)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("add to cart: %w", err)
	}
	return res, nil
}

func (s *cartService) List(ctx context.Context, email string) ([]model.CartItem, error) {
	items, err := s.cartRepo.ListByUser(ctx, model.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}

func (s *cartService) Remove(ctx context.Context, email, className string) (model.DeleteResult, error) {
	res, err := s.cartRepo.DeleteByUserAndClass(ctx, model.NormalizeEmail(email), className)
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("remove from cart: %w", err)
	}
	return res, nil
}
