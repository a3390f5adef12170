package orderform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func validDraft() DraftOrder {
	d := NewDraftOrder()
	d.MobileNumber = "+91-9876543210"
	d.FirstName = "John"
	d.LastName = "Doe"
	d.Email = "john.doe@example.com"
	d.ShippingAddress = filledShipping()
	d.SetCopyBillingToShipping(true)
	d.Products = []LineItem{{ID: "a", ProductCode: "PROD001", Price: 200, Quantity: 1, Total: 200}}
	return d
}

func TestValidate_ValidDraft(t *testing.T) {
	errs := Validate(validDraft())

	assert.True(t, errs.Empty(), "unexpected errors: %v", errs)
}

func TestValidate_DefaultDraft(t *testing.T) {
	errs := Validate(NewDraftOrder())

	want := Errors{
		"mobileNumber": "Mobile number is required",
		"firstName":    "First name is required",
		"lastName":     "Last name is required",
		"email":        "Email is required",
		"shippingAddress": Errors{
			"address": "Address is required",
			"city":    "City is required",
			"state":   "State is required",
			"pinCode": "PIN code is required",
		},
		"billingAddress": Errors{
			"address": "Billing address is required when not copied from shipping",
			"city":    "City is required",
			"state":   "State is required",
			"pinCode": "PIN code is required",
		},
		"products": "At least one product is required",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_PinCode(t *testing.T) {
	cases := []struct {
		pin  string
		want string
	}{
		{"400001", ""},
		{"40000", "Please enter a valid 6-digit PIN code"},
		{"4000011", "Please enter a valid 6-digit PIN code"},
		{"40000a", "Please enter a valid 6-digit PIN code"},
		{"", "PIN code is required"},
	}
	for _, tc := range cases {
		t.Run(tc.pin, func(t *testing.T) {
			d := validDraft()
			d.ShippingAddress.PinCode = tc.pin

			errs := Validate(d)

			assert.Equal(t, tc.want, errs.Get("shippingAddress.pinCode"))
		})
	}
}

func TestValidate_Phone(t *testing.T) {
	cases := []struct {
		number string
		valid  bool
	}{
		{"9876543210", true},
		{"+91-9876543210", true},
		{"+91 98765 43210", true},
		{"(022) 2345-6789", true},
		{"12345", false},
		{"98765abc10", false},
		{"+9198765432101234", false},
	}
	for _, tc := range cases {
		t.Run(tc.number, func(t *testing.T) {
			d := validDraft()
			d.MobileNumber = tc.number
			d.WhatsAppNumber = tc.number

			errs := Validate(d)

			if tc.valid {
				assert.Empty(t, errs.Get("mobileNumber"))
				assert.Empty(t, errs.Get("whatsappNumber"))
				return
			}
			assert.Equal(t, "Please enter a valid mobile number", errs.Get("mobileNumber"))
			assert.Equal(t, "Please enter a valid WhatsApp number", errs.Get("whatsappNumber"))
		})
	}
}

func TestValidate_WhatsAppOptional(t *testing.T) {
	d := validDraft()
	d.WhatsAppNumber = ""

	assert.Empty(t, Validate(d).Get("whatsappNumber"))
}

func TestValidate_Names(t *testing.T) {
	d := validDraft()
	d.FirstName = "J"
	d.LastName = "  "

	errs := Validate(d)

	assert.Equal(t, "First name must be at least 2 characters", errs.Get("firstName"))
	assert.Equal(t, "Last name is required", errs.Get("lastName"))
}

func TestValidate_Email(t *testing.T) {
	d := validDraft()
	d.Email = "not-an-email"

	assert.Equal(t, "Please enter a valid email address", Validate(d).Get("email"))
}

func TestValidate_BillingOnlyWhenNotMirrored(t *testing.T) {
	d := validDraft()
	d.CopyBillingToShipping = true
	d.BillingAddress = Address{}

	assert.Nil(t, Validate(d)["billingAddress"])

	d.CopyBillingToShipping = false
	errs := Validate(d)
	assert.Equal(t, "Billing address is required when not copied from shipping", errs.Get("billingAddress.address"))
	assert.Equal(t, "PIN code is required", errs.Get("billingAddress.pinCode"))

	d.BillingAddress = filledShipping()
	d.BillingAddress.PinCode = "12345"
	assert.Equal(t, "Please enter a valid 6-digit PIN code", Validate(d).Get("billingAddress.pinCode"))
}

func TestValidate_ShippingAlwaysRequired(t *testing.T) {
	d := validDraft()
	d.ShippingAddress.City = ""

	assert.Equal(t, "City is required", Validate(d).Get("shippingAddress.city"))
}

func TestValidate_LineItemsAndAdjustments(t *testing.T) {
	d := validDraft()
	d.Products = append(d.Products, LineItem{ID: "b", Price: -1, Quantity: 0})
	d.TotalDiscount = -5
	d.ShippingCharges = -1

	errs := Validate(d)

	assert.Equal(t, "Quantity must be at least 1", errs.Get("products.1.quantity"))
	assert.Equal(t, "Price cannot be negative", errs.Get("products.1.price"))
	assert.Equal(t, "Total discount cannot be negative", errs.Get("totalDiscount"))
	assert.Equal(t, "Shipping charges cannot be negative", errs.Get("shippingCharges"))
}

func TestValidate_PaymentMode(t *testing.T) {
	for _, mode := range []PaymentMethod{PaymentCashOnDelivery, PaymentLink, PaymentQR} {
		d := validDraft()
		d.PaymentMode = mode
		assert.Empty(t, Validate(d).Get("paymentMode"), mode)
	}

	d := validDraft()
	d.PaymentMode = ""
	assert.Equal(t, "Please select a payment method", Validate(d).Get("paymentMode"))

	d.PaymentMode = "card"
	assert.Equal(t, "Please select a payment method", Validate(d).Get("paymentMode"))
}

func TestValidateField_OnlyThatField(t *testing.T) {
	d := NewDraftOrder()

	errs := ValidateField(d, FieldEmail)

	assert.Equal(t, Errors{"email": "Email is required"}, errs)
}

func TestValidateField_MirrorFlagChecksBilling(t *testing.T) {
	d := NewDraftOrder()

	errs := ValidateField(d, FieldCopyBillingToShipping)

	assert.Contains(t, errs, "billingAddress")
	assert.Len(t, errs, 1)
}

func TestErrors_AddGet(t *testing.T) {
	errs := Errors{}
	errs.Add("shippingAddress.city", "City is required")
	errs.Add("shippingAddress.city", "second message is ignored")
	errs.Add("products", "At least one product is required")
	errs.Add("products.0.quantity", "shadowed by the string above")

	assert.Equal(t, "City is required", errs.Get("shippingAddress.city"))
	assert.Equal(t, "At least one product is required", errs.Get("products"))
	assert.Empty(t, errs.Get("products.0.quantity"))
	assert.Empty(t, errs.Get("shippingAddress"))
	assert.Empty(t, errs.Get("nothing.here"))
}
