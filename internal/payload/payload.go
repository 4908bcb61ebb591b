// Package payload builds the RFMS order and customer request bodies
// from extracted purchase order data plus the operator-verified sold-to
// details.
package payload

import "encoding/json"

// Address is the RFMS address block shared by sold-to and ship-to.
type Address struct {
	LastName   string `json:"lastName"`
	FirstName  string `json:"firstName"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	County     string `json:"county"`
}

// SoldTo identifies the billing customer. CustomerID is the numeric
// RFMS id as a string; the API rejects bare numbers.
type SoldTo struct {
	CustomerType string `json:"customerType"`
	CustomerID   string `json:"customerId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Phone1       string `json:"phone1"`
	Phone2       string `json:"phone2"`
	Email        string `json:"email"`
}

// ShipTo is the job site party on the order.
type ShipTo struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Product is a line on the order. Quantity carries the purchase order
// value; the fixed product is a placeholder the store prices later.
type Product struct {
	ProductID   string `json:"productId"`
	ColorID     string `json:"colorId"`
	Quantity    string `json:"quantity"`
	PriceLevel  string `json:"priceLevel"`
	LineGroupID string `json:"lineGroupId"`
}

// Order is the flat order-creation body RFMS accepts.
type Order struct {
	Category              string    `json:"category"`
	PONumber              string    `json:"poNumber"`
	JobNumber             string    `json:"jobNumber"`
	StoreNumber           string    `json:"storeNumber"`
	Salesperson1          string    `json:"salesperson1"`
	Salesperson2          string    `json:"salesperson2"`
	SoldTo                SoldTo    `json:"soldTo"`
	ShipTo                ShipTo    `json:"shipTo"`
	PrivateNotes          string    `json:"privateNotes"`
	PublicNotes           string    `json:"publicNotes"`
	WorkOrderNotes        string    `json:"workOrderNotes"`
	MeasureDate           *string   `json:"measureDate"`
	EstimatedDeliveryDate string    `json:"estimatedDeliveryDate"`
	PriceLevel            string    `json:"priceLevel"`
	UserOrderTypeID       string    `json:"userOrderTypeId"`
	ServiceTypeID         string    `json:"serviceTypeId"`
	ContractTypeID        string    `json:"contractTypeId"`
	AdSourceID            string    `json:"adSourceId"`
	Lines                 []string  `json:"lines"`
	Products              []Product `json:"products"`
}

// Customer is the customer-creation body.
type Customer struct {
	CustomerType          string  `json:"customerType"`
	EntryType             string  `json:"entryType"`
	CustomerAddress       Address `json:"customerAddress"`
	ShipToAddress         Address `json:"shipToAddress"`
	Phone1                string  `json:"phone1"`
	Phone2                string  `json:"phone2"`
	Email                 string  `json:"email"`
	TaxStatus             string  `json:"taxStatus"`
	TaxMethod             string  `json:"taxMethod"`
	PreferredSalesperson1 string  `json:"preferredSalesperson1"`
	PreferredSalesperson2 string  `json:"preferredSalesperson2"`
	StoreNumber           string  `json:"storeNumber"`
}

// JSON renders the order for logging and troubleshooting.
func (o *Order) JSON() string {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
