package draftControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/formsession"
	"github.com/junaidrashid-git/orderdesk/middleware"
	"github.com/junaidrashid-git/orderdesk/orderform"
	"github.com/junaidrashid-git/orderdesk/orders"
)

// -------- Request Structs --------

type AddressInput struct {
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	PinCode *string `json:"pinCode"`
}

type MirrorInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type AddProductInput struct {
	ProductID string `json:"productId" binding:"required"`
}

type QuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SearchInput struct {
	Query       string `json:"query"`
	ShowResults *bool  `json:"showResults"`
}

type CustomerSearchInput struct {
	MobileNumber string `json:"mobileNumber"`
}

type CouponInput struct {
	CouponCode string `json:"couponCode" binding:"required"`
}

// -------- Helpers --------

// currentSession resolves the caller's form session or writes the error.
func currentSession(c *gin.Context, store *formsession.Store) (*formsession.Session, bool) {
	id := c.GetString(middleware.SessionKey)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	sess, err := store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form session not found or expired"})
		return nil, false
	}
	return sess, true
}

func writeError(c *gin.Context, err error) {
	var verr *formsession.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Errors})
	case errors.Is(err, formsession.ErrSubmitInFlight),
		errors.Is(err, formsession.ErrOutOfStock),
		errors.Is(err, orderform.ErrBillingReadOnly):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, formsession.ErrNoProducts),
		errors.Is(err, formsession.ErrMobileRequired),
		errors.Is(err, formsession.ErrNoCustomer),
		errors.Is(err, orderform.ErrUnknownField),
		errors.Is(err, orderform.ErrUnknownAddressKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// -------- Handlers --------

// GET /draft
func GetDraft(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// PATCH /draft/fields
func UpdateFields(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var patch orderform.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cleanPatch(&patch)

		if err := sess.Update(func(f *orderform.Form) error {
			f.Apply(patch)
			return nil
		}); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// PUT /draft/address/:type
func UpdateAddress(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		kind := orderform.AddressKind(c.Param("type"))
		if kind != orderform.ShippingAddress && kind != orderform.BillingAddress {
			writeError(c, orderform.ErrUnknownAddressKind)
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fields := []struct {
			name  orderform.AddressField
			value *string
		}{
			{orderform.AddressStreet, input.Address},
			{orderform.AddressCity, input.City},
			{orderform.AddressState, input.State},
			{orderform.AddressCountry, input.Country},
			{orderform.AddressPinCode, input.PinCode},
		}

		err := sess.Update(func(f *orderform.Form) error {
			for _, field := range fields {
				if field.value == nil {
					continue
				}
				if err := f.SetAddressField(kind, field.name, cleanText(*field.value)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// PUT /draft/mirror
func SetMirror(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var input MirrorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := sess.Update(func(f *orderform.Form) error {
			f.SetCopyBillingToShipping(*input.Enabled)
			return nil
		}); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// POST /draft/products
func AddProduct(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var input AddProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := sess.AddProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"item":  item,
			"draft": sess.Snapshot(),
		})
	}
}

// PUT /draft/products/:itemID
func UpdateQuantity(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		itemID := c.Param("itemID")
		if err := sess.Update(func(f *orderform.Form) error {
			f.SetQuantity(itemID, *input.Quantity)
			return nil
		}); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// DELETE /draft/products/:itemID
func RemoveProduct(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		itemID := c.Param("itemID")
		if err := sess.Update(func(f *orderform.Form) error {
			f.RemoveProduct(itemID)
			return nil
		}); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// PUT /draft/search
func SetSearch(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var input SearchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.SetSearchQuery(cleanText(input.Query))
		if input.ShowResults != nil {
			sess.SetShowResults(*input.ShowResults)
		}
		c.JSON(http.StatusAccepted, sess.SearchState())
	}
}

// GET /draft/search
func GetSearch(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, sess.SearchState())
	}
}

// POST /draft/customer/search
func SearchCustomer(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var input CustomerSearchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := sess.SearchCustomer(c.Request.Context(), cleanText(input.MobileNumber))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /draft/customer/populate
func PopulateCustomer(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}
		if err := sess.PopulateCustomer(); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}

// POST /draft/coupon
func ApplyCoupon(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := sess.ApplyCoupon(c.Request.Context(), cleanText(input.CouponCode))
		if err != nil {
			if errors.Is(err, formsession.ErrSubmitInFlight) {
				writeError(c, err)
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": result.Message})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /draft/validate
func Validate(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		errs := sess.Validate()
		if !errs.Empty() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "errors": errs})
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": true, "errors": errs})
	}
}

// POST /draft/submit
func Submit(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}

		resp, err := sess.Submit(c.Request.Context())
		if err == nil {
			c.JSON(http.StatusCreated, resp)
			return
		}
		if !errors.Is(err, formsession.ErrSubmitFailed) {
			writeError(c, err)
			return
		}

		status := http.StatusBadGateway
		if errors.Is(err, orders.ErrNoProducts) ||
			errors.Is(err, orders.ErrCustomerName) ||
			errors.Is(err, orders.ErrCustomerContact) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": sess.Snapshot().Submit.SubmitError})
	}
}

// POST /draft/reset
func Reset(store *formsession.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := currentSession(c, store)
		if !ok {
			return
		}
		if err := sess.Reset(); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess.Snapshot())
	}
}
