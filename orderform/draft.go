// Package orderform holds the draft order behind the "create order" form:
// its default state, the mutations the form performs on it, the derived
// price summary and the field validation rules.
package orderform

import "errors"

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentLink           PaymentMethod = "payment-link"
	PaymentQR             PaymentMethod = "qr"
)

// PaymentMethods maps every accepted payment method to its display label.
var PaymentMethods = map[PaymentMethod]string{
	PaymentCashOnDelivery: "Cash on Delivery",
	PaymentLink:           "Payment Link",
	PaymentQR:             "QR Payment",
}

func (m PaymentMethod) Valid() bool {
	_, ok := PaymentMethods[m]
	return ok
}

const DefaultCountry = "India"

var ErrUnknownField = errors.New("unknown field")

type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
}

type AddressField string

const (
	AddressStreet  AddressField = "address"
	AddressCity    AddressField = "city"
	AddressState   AddressField = "state"
	AddressCountry AddressField = "country"
	AddressPinCode AddressField = "pinCode"
)

// Set assigns one field of the address by its form name.
func (a *Address) Set(field AddressField, value string) error {
	switch field {
	case AddressStreet:
		a.Address = value
	case AddressCity:
		a.City = value
	case AddressState:
		a.State = value
	case AddressCountry:
		a.Country = value
	case AddressPinCode:
		a.PinCode = value
	default:
		return ErrUnknownField
	}
	return nil
}

// LineItem is one product row of the draft. Price and the optional metadata
// are a snapshot of the catalog product taken when the row was added.
type LineItem struct {
	ID            string   `json:"id"`
	ProductCode   string   `json:"productCode"`
	ProductName   string   `json:"productName"`
	Price         float64  `json:"price"`
	Quantity      int      `json:"quantity"`
	Total         float64  `json:"total"`
	Image         string   `json:"image,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Discount      *float64 `json:"discount,omitempty"`
	Color         string   `json:"color,omitempty"`
	Size          string   `json:"size,omitempty"`
	Seller        string   `json:"seller,omitempty"`
}

type DraftOrder struct {
	// Customer details
	MobileNumber       string `json:"mobileNumber"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	SearchMobileNumber string `json:"searchMobileNumber"`
	WhatsAppNumber     string `json:"whatsappNumber"`

	// Addresses
	ShippingAddress       Address `json:"shippingAddress"`
	BillingAddress        Address `json:"billingAddress"`
	CopyBillingToShipping bool    `json:"copyBillingToShipping"`

	Products []LineItem `json:"products"`

	// Pricing
	CouponCode      string  `json:"couponCode"`
	TotalDiscount   float64 `json:"totalDiscount"`
	ShippingCharges float64 `json:"shippingCharges"`
	BankDiscount    float64 `json:"bankDiscount"`
	CouponDiscount  float64 `json:"couponDiscount"`

	PaymentMode PaymentMethod `json:"paymentMode"`
}

// NewDraftOrder returns the draft every form session starts from.
func NewDraftOrder() DraftOrder {
	return DraftOrder{
		ShippingAddress: Address{Country: DefaultCountry},
		BillingAddress:  Address{Country: DefaultCountry},
		Products:        []LineItem{},
		PaymentMode:     PaymentCashOnDelivery,
	}
}

// Clone returns a copy that shares no line-item storage with d.
func (d DraftOrder) Clone() DraftOrder {
	out := d
	out.Products = make([]LineItem, len(d.Products))
	copy(out.Products, d.Products)
	return out
}

// Summary derives the price summary from the current state.
func (d DraftOrder) Summary() Summary {
	return CalculateSummary(d.Products, d.TotalDiscount, d.CouponDiscount, d.BankDiscount, d.ShippingCharges)
}
