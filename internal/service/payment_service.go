package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"artisticdb/internal/errors"
	"artisticdb/internal/model"
	"artisticdb/internal/payment"
	"artisticdb/internal/repository"
)

// PaymentService creates provider payment intents and records confirmed
// payments.
type PaymentService interface {
	CreateIntent(ctx context.Context, price decimal.Decimal) (clientSecret string, err error)
	Record(ctx context.Context, p *model.Payment) (model.InsertResult, error)
	ListByUser(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentService struct {
	provider    payment.Provider
	currency    string
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	log         *zap.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	provider payment.Provider,
	currency string,
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		provider:    provider,
		currency:    currency,
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		log:         log,
	}
}

// CreateIntent opens a provider payment intent for price in major units.
func (s *paymentService) CreateIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	amount, err := payment.ToMinorUnits(price)
	if err != nil {
		return "", err
	}

	intent, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		s.log.Error("create payment intent", zap.Int64("amount", amount), zap.Error(err))
		return "", fmt.Errorf("%w: %w", errors.ErrPaymentProvider, err)
	}
	return intent.ClientSecret, nil
}

// Record stores p after confirming with the provider that its transaction
// succeeded for exactly the recorded price. The purchased class is then
// dropped from the buyer's cart.
func (s *paymentService) Record(ctx context.Context, p *model.Payment) (model.InsertResult, error) {
	p.UserEmail = model.NormalizeEmail(p.UserEmail)
	if p.TransactionID == "" {
		return model.InsertResult{}, fmt.Errorf("%w: missing transaction id", errors.ErrPaymentMismatch)
	}

	if _, err := s.paymentRepo.FindByTransactionID(ctx, p.TransactionID); err == nil {
		return model.InsertResult{}, errors.ErrDuplicatePayment
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.InsertResult{}, fmt.Errorf("find payment %s: %w", p.TransactionID, err)
	}

	intent, err := s.provider.GetIntent(ctx, p.TransactionID)
	if err != nil {
		s.log.Error("get payment intent", zap.String("transaction_id", p.TransactionID), zap.Error(err))
		return model.InsertResult{}, fmt.Errorf("%w: %w", errors.ErrPaymentProvider, err)
	}
	if err := s.verify(intent, p); err != nil {
		s.log.Warn("payment rejected", zap.String("transaction_id", p.TransactionID), zap.String("user", p.UserEmail), zap.Error(err))
		return model.InsertResult{}, err
	}

	p.Currency = intent.Currency
	p.Status = intent.Status
	p.Date = time.Now().UTC()

	res, err := s.paymentRepo.Create(ctx, p)
	if err != nil {
		if !errors.Is(err, errors.ErrDuplicatePayment) {
			s.log.Error("record payment", zap.String("transaction_id", p.TransactionID), zap.Error(err))
		}
		return model.InsertResult{}, fmt.Errorf("record payment: %w", err)
	}

	if p.ClassName != "" {
		if _, err := s.cartRepo.DeleteByUserAndClass(ctx, p.UserEmail, p.ClassName); err != nil {
			s.log.Warn("clear purchased cart item", zap.String("user", p.UserEmail), zap.String("class", p.ClassName), zap.Error(err))
		}
	}
	return res, nil
}

func (s *paymentService) verify(intent *payment.Intent, p *model.Payment) error {
	if intent.Status != payment.StatusSucceeded {
		return fmt.Errorf("%w: intent status %q", errors.ErrPaymentMismatch, intent.Status)
	}
	want, err := payment.ToMinorUnits(decimal.NewFromFloat(p.Price))
	if err != nil {
		return fmt.Errorf("recorded price %v: %w", p.Price, err)
	}
	if want != intent.Amount {
		return fmt.Errorf("%w: amount %s, charged %s", errors.ErrPaymentMismatch,
			payment.FromMinorUnits(want).StringFixed(2), payment.FromMinorUnits(intent.Amount).StringFixed(2))
	}
	if intent.Currency != "" && intent.Currency != s.currency {
		return fmt.Errorf("%w: currency %q", errors.ErrPaymentMismatch, intent.Currency)
	}
	return nil
}

// ListByUser returns email's payments, newest first.
func (s *paymentService) ListByUser(ctx context.Context, email string) ([]model.Payment, error) {
	payments, err := s.paymentRepo.ListByUser(ctx, model.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
