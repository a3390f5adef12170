package orderform

import "errors"

type AddressKind string

const (
	ShippingAddress AddressKind = "shipping"
	BillingAddress  AddressKind = "billing"
)

var (
	ErrBillingReadOnly    = errors.New("billing address mirrors shipping and cannot be edited")
	ErrUnknownAddressKind = errors.New("address type must be shipping or billing")
)

// SetCopyBillingToShipping toggles the mirror flag. Turning it on copies the
// shipping address into billing once; turning it off leaves billing holding
// whatever it last mirrored.
func (d *DraftOrder) SetCopyBillingToShipping(on bool) {
	d.CopyBillingToShipping = on
	if on {
		d.BillingAddress = d.ShippingAddress
	}
}

// SetAddressField edits one field of the shipping or billing address. While
// mirrored, shipping edits are propagated to billing and billing edits are
// refused.
func (d *DraftOrder) SetAddressField(kind AddressKind, field AddressField, value string) error {
	switch kind {
	case ShippingAddress:
		if err := d.ShippingAddress.Set(field, value); err != nil {
			return err
		}
		if d.CopyBillingToShipping {
			d.BillingAddress = d.ShippingAddress
		}
		return nil
	case BillingAddress:
		if d.CopyBillingToShipping {
			return ErrBillingReadOnly
		}
		return d.BillingAddress.Set(field, value)
	default:
		return ErrUnknownAddressKind
	}
}
