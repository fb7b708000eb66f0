package types

type Delivery string

const (
	DeliveryFull Delivery = "full"
	DeliveryDiff Delivery = "diff"
)

func (d Delivery) String() string {
	return string(d)
}
