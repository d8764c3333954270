package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"biomarket-api/internal/dto"
	"biomarket-api/internal/model"
	"biomarket-api/internal/repository"
)

// Plan is a subscription duration/price tier.
type Plan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Period   string  `json:"period"`
	Price    float64 `json:"price"`
	Savings  float64 `json:"savings"`
	AddMonth int     `json:"-"`
	AddYear  int     `json:"-"`
}

// Plans supported at checkout, priced in CZK.
var Plans = map[string]Plan{
	"1month":  {ID: "1month", Name: "1 měsíc", Period: "30 dní", Price: 590, Savings: 0, AddMonth: 1},
	"3months": {ID: "3months", Name: "3 měsíce", Period: "90 dní", Price: 1500, Savings: 270, AddMonth: 3},
	"1year":   {ID: "1year", Name: "1 rok", Period: "365 dní", Price: 4900, Savings: 2180, AddYear: 1},
}

type SubscriptionService interface {
	// Latest returns the user's most recent subscription, or nil without
	// error when none exists.
	Latest(ctx context.Context, userID uint) (*model.Subscription, error)
	Create(ctx context.Context, userID uint, req *dto.CreateSubscriptionRequest) (*model.Subscription, error)
}

type subscriptionServiceImpl struct {
	db      *gorm.DB
	subRepo repository.SubscriptionRepository
}

func NewSubscriptionService(db *gorm.DB, subRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionServiceImpl{
		db:      db,
		subRepo: subRepo,
	}
}

func (s *subscriptionServiceImpl) Latest(ctx context.Context, userID uint) (*model.Subscription, error) {
	sub, err := s.subRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return sub, nil
}

// Create activates a subscription immediately. The end date is the start
// plus the plan duration; expiry is derived from it on read, no background
// job flips the status.
func (s *subscriptionServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateSubscriptionRequest) (*model.Subscription, error) {
	plan, found := Plans[req.Plan]
	if !found {
		return nil, ErrUnknownPlan
	}

	start := time.Now()
	sub := &model.Subscription{
		UserID:    userID,
		Plan:      plan.ID,
		Status:    "active",
		StartDate: start,
		EndDate:   start.AddDate(plan.AddYear, plan.AddMonth, 0),
	}

	if err := s.subRepo.Create(ctx, s.db, sub); err != nil {
		return nil, fmt.Errorf("store subscription: %w", err)
	}

	return sub, nil
}
