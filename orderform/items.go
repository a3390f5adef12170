package orderform

import "github.com/junaidrashid-git/orderdesk/catalog"

// AddProduct merges p into the line items by product code. An existing row
// gains one unit; otherwise a new row with quantity 1 is appended using newID.
func (d *DraftOrder) AddProduct(p catalog.Product, newID func() string) LineItem {
	for i := range d.Products {
		item := &d.Products[i]
		if item.ProductCode == p.Code {
			item.Quantity++
			item.Total = lineTotal(item.Price, item.Quantity).InexactFloat64()
			return *item
		}
	}

	item := LineItem{
		ID:            newID(),
		ProductCode:   p.Code,
		ProductName:   p.Name,
		Price:         p.Price,
		Quantity:      1,
		Total:         p.Price,
		Image:         p.Image,
		OriginalPrice: p.OriginalPrice,
		Discount:      p.Discount,
	}
	d.Products = append(d.Products, item)
	return item
}

// SetQuantity updates a row and its total. A quantity of zero or less removes
// the row. Unknown ids are ignored.
func (d *DraftOrder) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		d.RemoveProduct(id)
		return
	}
	for i := range d.Products {
		if d.Products[i].ID == id {
			d.Products[i].Quantity = quantity
			d.Products[i].Total = lineTotal(d.Products[i].Price, quantity).InexactFloat64()
			return
		}
	}
}

func (d *DraftOrder) RemoveProduct(id string) {
	kept := d.Products[:0]
	for _, item := range d.Products {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	d.Products = kept
}

// LineItem looks up a row by id.
func (d DraftOrder) LineItem(id string) (LineItem, bool) {
	for _, item := range d.Products {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}
