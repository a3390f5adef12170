package models

// All returns every table the service migrates.
func All() []interface{} {
	return []interface{}{
		&Product{},
		&Customer{},
		&CustomerAddress{},
		&Coupon{},
		&Order{},
		&OrderItem{},
		&QRFile{},
	}
}
