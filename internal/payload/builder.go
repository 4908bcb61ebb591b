package payload

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/extract"
)

var (
	// ErrMissingCustomerID is returned when the operator has not
	// resolved the sold-to builder against RFMS yet.
	ErrMissingCustomerID = errors.New("missing sold-to customer id")

	// ErrMissingCustomerName is returned when no usable customer name
	// survived extraction or verification.
	ErrMissingCustomerName = errors.New("customer first and last name are required")
)

// Fixed order attributes for the store's workflow.
const (
	orderCategory   = "Order"
	orderPriceLevel = "3"
	userOrderTypeID = "18"
	serviceTypeID   = "8"
	contractTypeID  = "1"
	adSourceID      = "1"

	soldToCustomerType = "BUILDERS"
	newCustomerType    = "INSURANCE"

	deliveryLeadDays = 14
)

// Party is the operator-verified sold-to information. Fields left empty
// fall back to what was extracted from the document, then to store
// defaults.
type Party struct {
	ID           string
	FirstName    string
	LastName     string
	BusinessName string
	Address1     string
	Address2     string
	City         string
	State        string
	PostCode     string
	Phone        string
	Phone2       string
	Email        string
}

// Builder assembles RFMS payloads using the store configuration.
type Builder struct {
	cfg *config.Config
	now func() time.Time
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg, now: time.Now}
}

// BuildOrder builds the order-creation payload for an extracted record
// sold to the given builder. The sold-to id is the one thing only the
// operator can supply. manual carries operator corrections in the same
// field vocabulary as the record; its non-empty fields beat extracted
// values, which beat alternate locations and configured defaults. The
// record itself is never mutated.
func (b *Builder) BuildOrder(rec *extract.Record, soldTo Party, manual *extract.Record) (*Order, error) {
	if soldTo.ID == "" {
		return nil, ErrMissingCustomerID
	}

	if manual != nil {
		merged := *rec
		merged.Override(manual)
		rec = &merged
	}

	supervisorName := rec.SupervisorName
	if supervisorName == "" {
		supervisorName = strings.TrimSpace(firstNonEmpty(soldTo.FirstName, "Unknown") + " " + firstNonEmpty(soldTo.LastName, "Supervisor"))
	}

	var phone3, phone4 string
	if len(rec.ExtraPhones) > 0 {
		phone3 = rec.ExtraPhones[0]
	}
	if len(rec.ExtraPhones) > 1 {
		phone4 = rec.ExtraPhones[1]
	}

	supervisorPhone := firstNonEmpty(rec.SupervisorPhone, phone3, rec.Phone, b.cfg.FallbackSupervisorPhone)

	poNumber := rec.PONumber
	if poNumber == "" {
		poNumber = "PDF-" + b.now().Format("20060102150405")
	}

	soldToFirst, soldToLast := soldToNames(rec, soldTo)
	shipToFirst, shipToLast := shipToNames(rec)

	order := &Order{
		Category:     orderCategory,
		PONumber:     poNumber,
		JobNumber:    supervisorName + " & " + supervisorPhone,
		StoreNumber:  b.cfg.StoreNumber,
		Salesperson1: b.cfg.Salesperson,
		Salesperson2: "",
		SoldTo: SoldTo{
			CustomerType: soldToCustomerType,
			CustomerID:   soldTo.ID,
			FirstName:    soldToFirst,
			LastName:     soldToLast,
			Address1:     soldTo.Address1,
			Address2:     soldTo.Address2,
			City:         soldTo.City,
			State:        firstNonEmpty(soldTo.State, b.cfg.DefaultState),
			PostalCode:   soldTo.PostCode,
			Phone1:       firstNonEmpty(phone3, soldTo.Phone, rec.Phone),
			Phone2:       firstNonEmpty(phone4, rec.Phone2),
			Email:        firstNonEmpty(soldTo.Email, rec.Email, b.cfg.FallbackEmail),
		},
		ShipTo: ShipTo{
			FirstName:  shipToFirst,
			LastName:   shipToLast,
			Address1:   firstNonEmpty(rec.Address1, rec.ShipToAddress1),
			Address2:   firstNonEmpty(rec.Address2, rec.ShipToAddress2),
			City:       firstNonEmpty(rec.City, rec.ShipToCity),
			State:      firstNonEmpty(rec.State, rec.ShipToState, b.cfg.DefaultState),
			PostalCode: firstNonEmpty(rec.PostCode, rec.ShipToPostCode),
		},
		PrivateNotes:          privateNotes(rec, phone3, phone4),
		PublicNotes:           publicNotes(rec),
		WorkOrderNotes:        workOrderNotes(rec, phone3, phone4),
		MeasureDate:           nil,
		EstimatedDeliveryDate: b.now().AddDate(0, 0, deliveryLeadDays).Format("2006-01-02"),
		PriceLevel:            orderPriceLevel,
		UserOrderTypeID:       userOrderTypeID,
		ServiceTypeID:         serviceTypeID,
		ContractTypeID:        contractTypeID,
		AdSourceID:            adSourceID,
		Lines:                 []string{},
		Products: []Product{
			{
				ProductID:   b.cfg.ProductID,
				ColorID:     b.cfg.ProductColorID,
				Quantity:    rec.DollarValue.String(),
				PriceLevel:  b.cfg.ProductPriceLevel,
				LineGroupID: b.cfg.ProductLineGroup,
			},
		},
	}
	return order, nil
}

// BuildCustomer builds the payload that creates the job-site customer
// in RFMS when they do not exist yet.
func (b *Builder) BuildCustomer(rec *extract.Record) (*Customer, error) {
	first := rec.FirstName
	last := rec.LastName
	if first == "" && last == "" && rec.CustomerName != "" {
		first, last = splitName(rec.CustomerName)
	}
	if last == "" {
		return nil, ErrMissingCustomerName
	}

	addr := Address{
		LastName:   last,
		FirstName:  first,
		Address1:   rec.Address1,
		Address2:   rec.Address2,
		City:       rec.City,
		State:      firstNonEmpty(rec.State, b.cfg.DefaultState),
		PostalCode: rec.PostCode,
	}

	return &Customer{
		CustomerType:          newCustomerType,
		EntryType:             "Customer",
		CustomerAddress:       addr,
		ShipToAddress:         addr,
		Phone1:                rec.Phone,
		Phone2:                rec.Phone2,
		Email:                 rec.Email,
		TaxStatus:             "Tax",
		TaxMethod:             "SalesTax",
		PreferredSalesperson1: b.cfg.Salesperson,
		PreferredSalesperson2: "",
		StoreNumber:           b.cfg.StoreNumber,
	}, nil
}

// BuildSecondOrder clones the primary order for the second job of a
// billing group. The second PO number is derived from the first and the
// description comes from the operator's general scope of works.
func (b *Builder) BuildSecondOrder(primary *Order, rec *extract.Record, scopeOfWorks, poSuffix string, secondValue string) *Order {
	second := *primary
	second.PONumber = DeriveSecondPO(primary.PONumber, poSuffix)
	second.PublicNotes = strings.TrimSpace(scopeOfWorks)

	jobNumber := strings.TrimSpace(rec.SupervisorName + " " + rec.SupervisorPhone)
	if jobNumber == "" {
		jobNumber = second.PONumber
	}
	second.JobNumber = jobNumber

	if secondValue != "" {
		products := make([]Product, len(primary.Products))
		copy(products, primary.Products)
		for i := range products {
			products[i].Quantity = secondValue
		}
		second.Products = products
	}
	return &second
}

// DeriveSecondPO builds the billing-group partner PO number. A trailing
// numeric segment like "-01" is replaced by the suffix; anything else
// gets the suffix appended.
func DeriveSecondPO(poNumber, suffix string) string {
	suffix = strings.TrimPrefix(strings.TrimSpace(suffix), "-")
	if suffix == "" {
		return poNumber
	}
	if i := strings.LastIndex(poNumber, "-"); i >= 0 && isDigits(poNumber[i+1:]) {
		return poNumber[:i+1] + suffix
	}
	return fmt.Sprintf("%s-%s", poNumber, suffix)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch {
	case len(parts) >= 2:
		return parts[0], strings.Join(parts[1:], " ")
	case len(parts) == 1:
		return "", parts[0]
	}
	return "", ""
}

func soldToNames(rec *extract.Record, soldTo Party) (first, last string) {
	business := strings.TrimSpace(firstNonEmpty(soldTo.BusinessName, rec.BusinessName))
	if business != "" {
		return "", business
	}
	first = soldTo.FirstName
	last = soldTo.LastName
	if first == "" && last == "" {
		return "Unknown", ""
	}
	return first, last
}

func shipToNames(rec *extract.Record) (first, last string) {
	if rec.CustomerName != "" {
		return splitName(rec.CustomerName)
	}
	return "Site", "Customer"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
