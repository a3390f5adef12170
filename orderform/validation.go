package orderform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field names a top-level draft field as the form knows it.
type Field string

const (
	FieldMobileNumber          Field = "mobileNumber"
	FieldFirstName             Field = "firstName"
	FieldLastName              Field = "lastName"
	FieldEmail                 Field = "email"
	FieldSearchMobileNumber    Field = "searchMobileNumber"
	FieldWhatsAppNumber        Field = "whatsappNumber"
	FieldShippingAddress       Field = "shippingAddress"
	FieldBillingAddress        Field = "billingAddress"
	FieldCopyBillingToShipping Field = "copyBillingToShipping"
	FieldProducts              Field = "products"
	FieldCouponCode            Field = "couponCode"
	FieldTotalDiscount         Field = "totalDiscount"
	FieldShippingCharges       Field = "shippingCharges"
	FieldBankDiscount          Field = "bankDiscount"
	FieldCouponDiscount        Field = "couponDiscount"
	FieldPaymentMode           Field = "paymentMode"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[\d\s\-()]{10,15}$`)
	pinCodePattern = regexp.MustCompile(`^\d{6}$`)

	validate = validator.New()
)

type rule func(d DraftOrder, errs Errors)

// rules run in form order so exhaustive validation is deterministic.
var rules = []struct {
	field Field
	check rule
}{
	{FieldMobileNumber, checkMobile},
	{FieldFirstName, checkName(FieldFirstName, "First name")},
	{FieldLastName, checkName(FieldLastName, "Last name")},
	{FieldEmail, checkEmail},
	{FieldWhatsAppNumber, checkWhatsApp},
	{FieldShippingAddress, checkShipping},
	{FieldBillingAddress, checkBilling},
	{FieldProducts, checkProducts},
	{FieldTotalDiscount, checkNonNegative(FieldTotalDiscount, "Total discount", func(d DraftOrder) float64 { return d.TotalDiscount })},
	{FieldShippingCharges, checkNonNegative(FieldShippingCharges, "Shipping charges", func(d DraftOrder) float64 { return d.ShippingCharges })},
	{FieldBankDiscount, checkNonNegative(FieldBankDiscount, "Bank discount", func(d DraftOrder) float64 { return d.BankDiscount })},
	{FieldCouponDiscount, checkNonNegative(FieldCouponDiscount, "Coupon discount", func(d DraftOrder) float64 { return d.CouponDiscount })},
	{FieldPaymentMode, checkPaymentMode},
}

// Validate checks every field of d and returns all messages at once.
func Validate(d DraftOrder) Errors {
	errs := Errors{}
	for _, r := range rules {
		r.check(d, errs)
	}
	return errs
}

// ValidateField checks only the rules that depend on field. Toggling the
// mirror flag re-checks the billing address.
func ValidateField(d DraftOrder, field Field) Errors {
	if field == FieldCopyBillingToShipping {
		field = FieldBillingAddress
	}
	errs := Errors{}
	for _, r := range rules {
		if r.field == field {
			r.check(d, errs)
		}
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkMobile(d DraftOrder, errs Errors) {
	switch {
	case blank(d.MobileNumber):
		errs.Add(string(FieldMobileNumber), "Mobile number is required")
	case !phonePattern.MatchString(d.MobileNumber):
		errs.Add(string(FieldMobileNumber), "Please enter a valid mobile number")
	}
}

func checkName(field Field, label string) rule {
	return func(d DraftOrder, errs Errors) {
		value := d.FirstName
		if field == FieldLastName {
			value = d.LastName
		}
		value = strings.TrimSpace(value)
		switch {
		case value == "":
			errs.Add(string(field), label+" is required")
		case utf8.RuneCountInString(value) < 2:
			errs.Add(string(field), label+" must be at least 2 characters")
		}
	}
}

func checkEmail(d DraftOrder, errs Errors) {
	switch {
	case blank(d.Email):
		errs.Add(string(FieldEmail), "Email is required")
	case validate.Var(strings.TrimSpace(d.Email), "email") != nil:
		errs.Add(string(FieldEmail), "Please enter a valid email address")
	}
}

func checkWhatsApp(d DraftOrder, errs Errors) {
	if d.WhatsAppNumber == "" {
		return
	}
	if !phonePattern.MatchString(d.WhatsAppNumber) {
		errs.Add(string(FieldWhatsAppNumber), "Please enter a valid WhatsApp number")
	}
}

func checkAddress(prefix Field, a Address, errs Errors) {
	path := func(f AddressField) string { return string(prefix) + "." + string(f) }
	if blank(a.Address) {
		errs.Add(path(AddressStreet), "Address is required")
	}
	if blank(a.City) {
		errs.Add(path(AddressCity), "City is required")
	}
	if blank(a.State) {
		errs.Add(path(AddressState), "State is required")
	}
	switch {
	case blank(a.PinCode):
		errs.Add(path(AddressPinCode), "PIN code is required")
	case !pinCodePattern.MatchString(a.PinCode):
		errs.Add(path(AddressPinCode), "Please enter a valid 6-digit PIN code")
	}
}

func checkShipping(d DraftOrder, errs Errors) {
	checkAddress(FieldShippingAddress, d.ShippingAddress, errs)
}

// checkBilling skips the billing address while it mirrors shipping.
func checkBilling(d DraftOrder, errs Errors) {
	if d.CopyBillingToShipping {
		return
	}
	if blank(d.BillingAddress.Address) {
		errs.Add(string(FieldBillingAddress)+"."+string(AddressStreet), "Billing address is required when not copied from shipping")
	}
	checkAddress(FieldBillingAddress, d.BillingAddress, errs)
}

func checkProducts(d DraftOrder, errs Errors) {
	if len(d.Products) == 0 {
		errs.Add(string(FieldProducts), "At least one product is required")
		return
	}
	for i, item := range d.Products {
		prefix := fmt.Sprintf("%s.%d.", FieldProducts, i)
		if item.Quantity < 1 {
			errs.Add(prefix+"quantity", "Quantity must be at least 1")
		}
		if item.Price < 0 {
			errs.Add(prefix+"price", "Price cannot be negative")
		}
	}
}

func checkNonNegative(field Field, label string, value func(DraftOrder) float64) rule {
	return func(d DraftOrder, errs Errors) {
		if value(d) < 0 {
			errs.Add(string(field), label+" cannot be negative")
		}
	}
}

func checkPaymentMode(d DraftOrder, errs Errors) {
	if !d.PaymentMode.Valid() {
		errs.Add(string(FieldPaymentMode), "Please select a payment method")
	}
}
