package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/domain"
	"github.com/shsakib002/e-comm/internal/repository"
	"github.com/shsakib002/e-comm/pkg/errors"
)

// DraftService manages composer sessions. Each draft is owned by the one
// client composing it and is mutated synchronously per request; the
// registry map is the only shared state and is guarded here. The type is
// exported, unlike the stateless services, because one instance is shared
// across handlers.
type DraftService struct {
	repos  *repository.Repositories
	logger *zap.Logger

	mu     sync.RWMutex
	drafts map[string]*domain.Draft
}

// NewDraftService creates a new draft service
func NewDraftService(repos *repository.Repositories, logger *zap.Logger) *DraftService {
	return &DraftService{
		repos:  repos,
		logger: logger,
		drafts: make(map[string]*domain.Draft),
	}
}

// CreateDraft opens a composer session. With an order ID the draft seeds
// its items and shipping from the stored order (edit flow); otherwise it
// starts empty with the default shipping charge.
func (s *DraftService) CreateDraft(ctx context.Context, orderID string) (*DraftView, error) {
	var draft *domain.Draft
	if orderID != "" {
		order, err := s.repos.Order.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		draft = domain.DraftFromOrder(order)
	} else {
		draft = domain.NewDraft()
	}

	s.mu.Lock()
	s.drafts[draft.ID] = draft
	s.mu.Unlock()

	s.logger.Info("draft opened",
		zap.String("draft_id", draft.ID),
		zap.String("order_id", orderID),
	)

	return s.view(draft), nil
}

// GetDraft returns the current state of a composer session.
func (s *DraftService) GetDraft(ctx context.Context, draftID string) (*DraftView, error) {
	draft, err := s.get(draftID)
	if err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// AddItem resolves the product selection against the catalog and appends a
// line-item snapshot to the draft.
func (s *DraftService) AddItem(ctx context.Context, draftID string, req AddItemRequest) (*DraftView, error) {
	draft, err := s.get(draftID)
	if err != nil {
		return nil, err
	}

	product, err := s.repos.Product.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var variant *domain.Variant
	if req.VariantID != "" {
		variant = product.FindVariant(req.VariantID)
		if variant == nil {
			return nil, &errors.ErrNotFound{Resource: "variant", ID: req.VariantID}
		}
	}

	if _, err := draft.AddItem(product, variant, req.Quantity); err != nil {
		return nil, err
	}

	s.logger.Info("line item added",
		zap.String("draft_id", draftID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	return s.view(draft), nil
}

// RemoveItem deletes every line matching the (productID, variantValue)
// pair; removing an absent pair is a no-op.
func (s *DraftService) RemoveItem(ctx context.Context, draftID, productID, variantValue string) (*DraftView, error) {
	draft, err := s.get(draftID)
	if err != nil {
		return nil, err
	}
	if _, err := draft.RemoveItem(productID, variantValue); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// RemoveLine deletes a single line by its line ID.
func (s *DraftService) RemoveLine(ctx context.Context, draftID, lineID string) (*DraftView, error) {
	draft, err := s.get(draftID)
	if err != nil {
		return nil, err
	}
	if _, err := draft.RemoveLine(lineID); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// SetShipping replaces the draft's shipping charge.
func (s *DraftService) SetShipping(ctx context.Context, draftID string, amount float64) (*DraftView, error) {
	draft, err := s.get(draftID)
	if err != nil {
		return nil, err
	}
	if _, err := draft.SetShipping(amount); err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

// Submit finalizes the draft into an order bundle and closes the session.
// Persistence is an external collaborator this system does not have yet, so
// the hand-off is the returned value itself; the submission is logged the
// way the real call will be.
func (s *DraftService) Submit(ctx context.Context, draftID string, req SubmitOrderRequest) (*domain.Order, error) {
	draft, err := s.get(draftID)
	if err != nil {
		return nil, err
	}

	order, err := draft.Finalize(domain.Submission{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        domain.OrderStatus(req.Status),
		ShippingAddress: domain.ShippingAddress{
			Street:  req.Street,
			City:    req.City,
			ZipCode: req.ZipCode,
			Country: req.Country,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()

	s.logger.Info("order submitted",
		zap.String("draft_id", draftID),
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total),
	)

	return order, nil
}

func (s *DraftService) get(draftID string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[draftID]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "draft", ID: draftID}
	}
	return draft, nil
}

func (s *DraftService) view(draft *domain.Draft) *DraftView {
	return &DraftView{
		ID:        draft.ID,
		OrderID:   draft.SourceOrderID(),
		Items:     draft.Items(),
		Totals:    draft.Totals(),
		Submitted: draft.Submitted(),
	}
}
