package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Item is an immutable order line fixed at order creation: a product
// reference, the display name/price/image captured at checkout time, and the
// quantity to pack. The quantity is what the inventory adjuster deducts at
// pack-complete.
type Item struct {
	productID kernel.UUID
	name      string
	price     float64
	quantity  int
	image     string

	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// NewItem creates a validated order line. Product ID must be valid, name must
// not be empty, price must not be negative and quantity must be positive.
func NewItem(productID kernel.UUID, name string, price float64, quantity int, image string) (Item, error) {
	item := Item{
		image:         image,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product display name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at checkout.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the number of units to pack.
func (i Item) Quantity() int {
	return i.quantity
}

// Image returns the product image URL, which may be empty.
func (i Item) Image() string {
	return i.image
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%f is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
