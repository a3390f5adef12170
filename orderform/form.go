package orderform

import (
	"github.com/google/uuid"

	"github.com/junaidrashid-git/orderdesk/catalog"
	"github.com/junaidrashid-git/orderdesk/customers"
)

// Patch carries the scalar fields a form event may change. Nil fields are
// left alone.
type Patch struct {
	MobileNumber          *string        `json:"mobileNumber"`
	FirstName             *string        `json:"firstName"`
	LastName              *string        `json:"lastName"`
	Email                 *string        `json:"email"`
	SearchMobileNumber    *string        `json:"searchMobileNumber"`
	WhatsAppNumber        *string        `json:"whatsappNumber"`
	CopyBillingToShipping *bool          `json:"copyBillingToShipping"`
	CouponCode            *string        `json:"couponCode"`
	TotalDiscount         *float64       `json:"totalDiscount"`
	ShippingCharges       *float64       `json:"shippingCharges"`
	BankDiscount          *float64       `json:"bankDiscount"`
	CouponDiscount        *float64       `json:"couponDiscount"`
	PaymentMode           *PaymentMethod `json:"paymentMode"`
}

// Form owns a draft order and the validation messages currently shown for
// it. Every mutation re-validates the fields it touched; Validate checks
// everything. A Form is not safe for concurrent use.
type Form struct {
	draft  DraftOrder
	errors Errors
	newID  func() string
}

type Option func(*Form)

// WithIDGenerator replaces the line-item id source.
func WithIDGenerator(fn func() string) Option {
	return func(f *Form) {
		f.newID = fn
	}
}

func New(opts ...Option) *Form {
	f := &Form{
		draft:  NewDraftOrder(),
		errors: Errors{},
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() DraftOrder {
	return f.draft.Clone()
}

func (f *Form) Summary() Summary {
	return f.draft.Summary()
}

// Errors returns a copy of the messages from the latest validation runs.
func (f *Form) Errors() Errors {
	return f.errors.Clone()
}

// Apply sets every non-nil field of p and returns the fields it touched.
func (f *Form) Apply(p Patch) []Field {
	var touched []Field
	setString := func(field Field, dst *string, v *string) {
		if v != nil {
			*dst = *v
			touched = append(touched, field)
		}
	}
	setNumber := func(field Field, dst *float64, v *float64) {
		if v != nil {
			*dst = *v
			touched = append(touched, field)
		}
	}

	setString(FieldMobileNumber, &f.draft.MobileNumber, p.MobileNumber)
	setString(FieldFirstName, &f.draft.FirstName, p.FirstName)
	setString(FieldLastName, &f.draft.LastName, p.LastName)
	setString(FieldEmail, &f.draft.Email, p.Email)
	setString(FieldSearchMobileNumber, &f.draft.SearchMobileNumber, p.SearchMobileNumber)
	setString(FieldWhatsAppNumber, &f.draft.WhatsAppNumber, p.WhatsAppNumber)
	setString(FieldCouponCode, &f.draft.CouponCode, p.CouponCode)
	setNumber(FieldTotalDiscount, &f.draft.TotalDiscount, p.TotalDiscount)
	setNumber(FieldShippingCharges, &f.draft.ShippingCharges, p.ShippingCharges)
	setNumber(FieldBankDiscount, &f.draft.BankDiscount, p.BankDiscount)
	setNumber(FieldCouponDiscount, &f.draft.CouponDiscount, p.CouponDiscount)
	if p.PaymentMode != nil {
		f.draft.PaymentMode = *p.PaymentMode
		touched = append(touched, FieldPaymentMode)
	}
	if p.CopyBillingToShipping != nil {
		f.draft.SetCopyBillingToShipping(*p.CopyBillingToShipping)
		touched = append(touched, FieldCopyBillingToShipping)
	}

	f.revalidate(touched...)
	return touched
}

// SetCopyBillingToShipping flips the mirror flag (see DraftOrder).
func (f *Form) SetCopyBillingToShipping(on bool) {
	f.draft.SetCopyBillingToShipping(on)
	f.revalidate(FieldBillingAddress)
}

func (f *Form) SetAddressField(kind AddressKind, field AddressField, value string) error {
	if err := f.draft.SetAddressField(kind, field, value); err != nil {
		return err
	}
	if kind == ShippingAddress {
		f.revalidate(FieldShippingAddress, FieldBillingAddress)
	} else {
		f.revalidate(FieldBillingAddress)
	}
	return nil
}

func (f *Form) AddProduct(p catalog.Product) LineItem {
	item := f.draft.AddProduct(p, f.newID)
	f.revalidate(FieldProducts)
	return item
}

func (f *Form) SetQuantity(id string, quantity int) {
	f.draft.SetQuantity(id, quantity)
	f.revalidate(FieldProducts)
}

func (f *Form) RemoveProduct(id string) {
	f.draft.RemoveProduct(id)
	f.revalidate(FieldProducts)
}

// ApplyCouponDiscount records a coupon the order service accepted.
func (f *Form) ApplyCouponDiscount(code string, discount float64) {
	f.draft.CouponCode = code
	f.draft.CouponDiscount = discount
	f.revalidate(FieldCouponDiscount)
}

// PopulateCustomer copies a directory customer's identity and default
// addresses into the draft. Addresses without a default are left as they are.
func (f *Form) PopulateCustomer(c customers.Customer) {
	f.draft.FirstName = c.FirstName
	f.draft.LastName = c.LastName
	f.draft.Email = c.Email
	f.draft.MobileNumber = c.MobileNumber
	f.draft.WhatsAppNumber = c.WhatsAppNumber

	if a, ok := c.DefaultAddress(customers.AddressShipping); ok {
		f.draft.ShippingAddress = fromCustomerAddress(a)
		if f.draft.CopyBillingToShipping {
			f.draft.BillingAddress = f.draft.ShippingAddress
		}
	}
	if a, ok := c.DefaultAddress(customers.AddressBilling); ok && !f.draft.CopyBillingToShipping {
		f.draft.BillingAddress = fromCustomerAddress(a)
	}

	f.revalidate(FieldFirstName, FieldLastName, FieldEmail, FieldMobileNumber,
		FieldWhatsAppNumber, FieldShippingAddress, FieldBillingAddress)
}

// Validate runs every rule and replaces the stored messages.
func (f *Form) Validate() Errors {
	f.errors = Validate(f.draft)
	return f.errors.Clone()
}

// Reset discards the draft and its messages.
func (f *Form) Reset() {
	f.draft = NewDraftOrder()
	f.errors = Errors{}
}

func (f *Form) revalidate(fields ...Field) {
	for _, field := range fields {
		if field == FieldCopyBillingToShipping {
			field = FieldBillingAddress
		}
		delete(f.errors, string(field))
		for k, v := range ValidateField(f.draft, field) {
			f.errors[k] = v
		}
	}
}

func fromCustomerAddress(a customers.Address) Address {
	return Address{
		Address: a.Address,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		PinCode: a.PinCode,
	}
}
