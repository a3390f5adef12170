// Package formsession keeps one order form per operator session and runs
// the form's calls to the catalog, customer directory and order service.
package formsession

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/customers"
	"github.com/junaidrashid-git/orderdesk/orderform"
	"github.com/junaidrashid-git/orderdesk/orders"
	"github.com/junaidrashid-git/orderdesk/search"
)

var (
	ErrSubmitInFlight  = errors.New("an order submission is already in progress")
	ErrNoProducts      = errors.New("add at least one product before submitting")
	ErrMobileRequired  = errors.New("mobile number is required before submitting")
	ErrOutOfStock      = errors.New("product is out of stock")
	ErrNoCustomer      = errors.New("no searched customer to populate from")
	ErrSubmitFailed    = errors.New("order submission failed")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoCatalog       = errors.New("no product catalog configured")
)

const (
	CustomerNotFoundMessage = "No customer found with this mobile number"
	customerSearchFailed    = "Failed to search customer"
	couponCheckFailed       = "Failed to validate coupon"
	orderCreateFailed       = "Failed to create order"
)

// ValidationError carries the full error set of a refused submission.
type ValidationError struct {
	Errors orderform.Errors
}

func (e *ValidationError) Error() string {
	return "order form has validation errors"
}

type CustomerSearch struct {
	Customer    *customers.Customer `json:"searchedCustomer"`
	IsSearching bool                `json:"isSearching"`
	Error       string              `json:"customerSearchError,omitempty"`
}

type CouponState struct {
	IsValidating bool    `json:"isValidating"`
	IsValid      bool    `json:"isValid"`
	Discount     float64 `json:"discount"`
	Message      string  `json:"message"`
}

type SubmitState struct {
	IsSubmitting  bool             `json:"isSubmitting"`
	SubmitSuccess bool             `json:"submitSuccess"`
	SubmitError   string           `json:"submitError,omitempty"`
	Order         *orders.Response `json:"order,omitempty"`
}

// Snapshot is a consistent copy of everything the form shows.
type Snapshot struct {
	ID             string                        `json:"sessionId"`
	Draft          orderform.DraftOrder          `json:"formData"`
	Summary        orderform.Summary             `json:"summary"`
	Errors         orderform.Errors              `json:"errors"`
	CustomerSearch CustomerSearch                `json:"customerSearch"`
	Coupon         CouponState                   `json:"couponValidation"`
	Submit         SubmitState                   `json:"submit"`
	ProductSearch  search.State[catalog.Product] `json:"productSearch"`
}

// Deps are the collaborators every session talks to.
type Deps struct {
	Catalog      catalog.Service
	Customers    customers.Directory
	Orders       orders.Service
	Logger       *zap.Logger
	SearchDelay  time.Duration
	OrderTimeout time.Duration
	NewID        func() string // line-item ids; uuid when nil
}

// Session owns one form. Outbound calls run without the lock held; while an
// order is being created every mutation is refused.
type Session struct {
	ID string

	mu       sync.Mutex
	deps     Deps
	form     *orderform.Form
	products *search.Coalescer[catalog.Product]
	customer CustomerSearch
	coupon   CouponState
	submit   SubmitState
	lastUsed time.Time
	now      func() time.Time
}

func newSession(base context.Context, id string, deps Deps, now func() time.Time) *Session {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	var opts []orderform.Option
	if deps.NewID != nil {
		opts = append(opts, orderform.WithIDGenerator(deps.NewID))
	}

	s := &Session{
		ID:       id,
		deps:     deps,
		form:     orderform.New(opts...),
		lastUsed: now(),
		now:      now,
	}
	s.products = search.New(base, deps.SearchDelay, s.searchCatalog, deps.Logger.With(zap.String("session_id", id)))
	if deps.Catalog != nil {
		s.products.Load()
	}
	return s
}

func (s *Session) searchCatalog(ctx context.Context, query string) ([]catalog.Product, error) {
	if s.deps.Catalog == nil {
		return nil, ErrNoCatalog
	}
	var (
		page catalog.Page
		err  error
	)
	if strings.TrimSpace(query) == "" {
		page, err = s.deps.Catalog.All(ctx, 1, catalog.DefaultListLimit)
	} else {
		page, err = s.deps.Catalog.Search(ctx, query, 1, catalog.DefaultSearchLimit)
	}
	return page.Products, err
}

func (s *Session) touch() {
	s.lastUsed = s.now()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) close() {
	s.products.Close()
}

// Update runs fn against the form.
func (s *Session) Update(fn func(f *orderform.Form) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submit.IsSubmitting {
		return ErrSubmitInFlight
	}
	s.touch()
	return fn(s.form)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		ID:             s.ID,
		Draft:          s.form.Draft(),
		Summary:        s.form.Summary(),
		Errors:         s.form.Errors(),
		CustomerSearch: s.customer,
		Coupon:         s.coupon,
		Submit:         s.submit,
		ProductSearch:  s.products.State(),
	}
	if s.customer.Customer != nil {
		c := *s.customer.Customer
		snap.CustomerSearch.Customer = &c
	}
	if s.submit.Order != nil {
		o := *s.submit.Order
		snap.Submit.Order = &o
	}
	return snap
}

// AddProduct fetches a catalog product and puts it on the draft. Adding
// closes the product search panel.
func (s *Session) AddProduct(ctx context.Context, productID string) (orderform.LineItem, error) {
	if s.deps.Catalog == nil {
		return orderform.LineItem{}, ErrNoCatalog
	}
	p, err := s.deps.Catalog.Get(ctx, productID)
	if err != nil {
		return orderform.LineItem{}, err
	}
	if !p.Addable() {
		return orderform.LineItem{}, ErrOutOfStock
	}

	var item orderform.LineItem
	err = s.Update(func(f *orderform.Form) error {
		item = f.AddProduct(p)
		return nil
	})
	if err != nil {
		return orderform.LineItem{}, err
	}
	s.products.Clear()
	return item, nil
}

func (s *Session) SetSearchQuery(q string) {
	s.mu.Lock()
	s.touch()
	s.mu.Unlock()
	s.products.SetQuery(q)
}

func (s *Session) SetShowResults(show bool) {
	s.products.SetShowResults(show)
}

func (s *Session) SearchState() search.State[catalog.Product] {
	return s.products.State()
}

// SearchCustomer looks up a customer by mobile number. A blank number
// clears the previous result without calling the directory.
func (s *Session) SearchCustomer(ctx context.Context, number string) (CustomerSearch, error) {
	s.mu.Lock()
	if s.submit.IsSubmitting {
		s.mu.Unlock()
		return CustomerSearch{}, ErrSubmitInFlight
	}
	s.touch()
	s.form.Apply(orderform.Patch{SearchMobileNumber: &number})
	if strings.TrimSpace(number) == "" {
		s.customer = CustomerSearch{}
		s.mu.Unlock()
		return CustomerSearch{}, nil
	}
	s.customer = CustomerSearch{IsSearching: true}
	s.mu.Unlock()

	found, err := s.deps.Customers.SearchByMobile(ctx, number)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		s.deps.Logger.Warn("customer search failed", zap.String("session_id", s.ID), zap.Error(err))
		s.customer = CustomerSearch{Error: customerSearchFailed}
	case found == nil:
		s.customer = CustomerSearch{Error: CustomerNotFoundMessage}
	default:
		s.customer = CustomerSearch{Customer: found}
	}
	return s.snapshot().CustomerSearch, nil
}

func (s *Session) ClearCustomerSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = CustomerSearch{}
}

// PopulateCustomer fills the draft from the last searched customer.
func (s *Session) PopulateCustomer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submit.IsSubmitting {
		return ErrSubmitInFlight
	}
	if s.customer.Customer == nil {
		return ErrNoCustomer
	}
	s.touch()
	s.form.PopulateCustomer(*s.customer.Customer)
	return nil
}

// ApplyCoupon checks code against the current subtotal. Only a valid
// coupon changes the draft's coupon discount.
func (s *Session) ApplyCoupon(ctx context.Context, code string) (CouponState, error) {
	s.mu.Lock()
	if s.submit.IsSubmitting {
		s.mu.Unlock()
		return CouponState{}, ErrSubmitInFlight
	}
	s.touch()
	s.form.Apply(orderform.Patch{CouponCode: &code})
	subtotal := orderform.Subtotal(s.form.Draft().Products)
	s.coupon = CouponState{IsValidating: true}
	s.mu.Unlock()

	res, err := s.deps.Orders.ValidateCoupon(ctx, code, subtotal)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.deps.Logger.Warn("coupon validation failed", zap.String("session_id", s.ID), zap.Error(err))
		s.coupon = CouponState{Message: couponCheckFailed}
		return s.coupon, err
	}

	s.coupon = CouponState{IsValid: res.Valid, Discount: res.Discount, Message: res.Message}
	if res.Valid {
		s.form.ApplyCouponDiscount(strings.ToUpper(strings.TrimSpace(code)), res.Discount)
	}
	return s.coupon, nil
}

// Validate runs every rule and returns the resulting error set.
func (s *Session) Validate() orderform.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.form.Validate()
}

// Submit validates the draft and hands it to the order service. One call
// may be in flight per session; a failure keeps the draft for a retry.
func (s *Session) Submit(ctx context.Context) (orders.Response, error) {
	s.mu.Lock()
	if s.submit.IsSubmitting {
		s.mu.Unlock()
		return orders.Response{}, ErrSubmitInFlight
	}
	s.touch()

	errs := s.form.Validate()
	draft := s.form.Draft()
	switch {
	case len(draft.Products) == 0:
		s.mu.Unlock()
		return orders.Response{}, ErrNoProducts
	case strings.TrimSpace(draft.MobileNumber) == "":
		s.mu.Unlock()
		return orders.Response{}, ErrMobileRequired
	case !errs.Empty():
		s.mu.Unlock()
		return orders.Response{}, &ValidationError{Errors: errs}
	}
	s.submit = SubmitState{IsSubmitting: true}
	s.mu.Unlock()

	if s.deps.OrderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deps.OrderTimeout)
		defer cancel()
	}
	resp, err := s.deps.Orders.CreateOrder(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		msg := err.Error()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			msg = orderCreateFailed
		}
		s.submit = SubmitState{SubmitError: msg}
		s.deps.Logger.Warn("order submission failed", zap.String("session_id", s.ID), zap.Error(err))
		return orders.Response{}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	s.form.Reset()
	s.customer = CustomerSearch{}
	s.coupon = CouponState{}
	s.submit = SubmitState{SubmitSuccess: true, Order: &resp}
	s.deps.Logger.Info("order submitted", zap.String("session_id", s.ID), zap.String("order_number", resp.OrderNumber))
	return resp, nil
}

// Reset discards the draft and all per-form state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submit.IsSubmitting {
		return ErrSubmitInFlight
	}
	s.touch()
	s.form.Reset()
	s.customer = CustomerSearch{}
	s.coupon = CouponState{}
	s.submit = SubmitState{}
	return nil
}
