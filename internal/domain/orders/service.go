package orders

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create prices and records a new job order. The order id is the
// creation timestamp in yymmdd-hhmmss form, which doubles as the claim
// stub number on the printed slip.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	if !ValidPaymentType(in.PaymentType) {
		return nil, ErrInvalidPayment
	}
	amount, err := PriceOrder(in.Tier, in.Loads, in.Supplies, in.MiscAmount)
	if err != nil {
		return nil, err
	}

	now := s.now()
	notes := in.Notes
	if supplyNote := SuppliesNote(in.Supplies); supplyNote != "" {
		if notes != "" {
			notes = notes + " | " + supplyNote
		} else {
			notes = supplyNote
		}
	}

	paymentStatus := PaymentStatusUnpaid
	if in.Paid {
		paymentStatus = PaymentStatusPaid
	}

	garment := strings.TrimSpace(in.GarmentType)
	if garment == "" {
		garment = "Regular"
	}

	order := Order{
		OrderID:       now.Format("060102-150405"),
		OrderDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Customer:      strings.TrimSpace(in.Customer),
		Contact:       strings.TrimSpace(in.Contact),
		Tier:          in.Tier,
		GarmentType:   garment,
		Loads:         in.Loads,
		Additionals:   SuppliesTotal(in.Supplies),
		MiscAmount:    in.MiscAmount,
		Amount:        amount,
		PaymentType:   in.PaymentType,
		PaymentStatus: paymentStatus,
		WorkStatus:    WorkStatusWIP,
		Notes:         notes,
	}
	if err := s.store.Insert(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	return s.store.Get(ctx, orderID)
}

func (s *Service) Search(ctx context.Context, query, workStatus string, limit int) ([]Order, error) {
	if workStatus != "" && !ValidWorkStatus(workStatus) {
		return nil, ErrInvalidStatus
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.store.Search(ctx, strings.TrimSpace(query), workStatus, limit)
}

func (s *Service) UpdateStatus(ctx context.Context, orderID string, upd StatusUpdate) (*Order, error) {
	if !ValidWorkStatus(upd.WorkStatus) {
		return nil, ErrInvalidStatus
	}
	if !ValidPaymentType(upd.PaymentType) {
		return nil, ErrInvalidPayment
	}
	if upd.PaymentStatus != PaymentStatusPaid && upd.PaymentStatus != PaymentStatusUnpaid {
		return nil, ErrInvalidPayment
	}
	if err := s.store.UpdateStatus(ctx, orderID, upd); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, orderID)
}

func (s *Service) Delete(ctx context.Context, orderID string) error {
	return s.store.Delete(ctx, orderID)
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.store.DashboardFor(ctx, today)
}
