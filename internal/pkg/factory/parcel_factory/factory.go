package parcel_factory

import (
	"strings"
	"time"

	"courier-system/internal/entities"
)

// Fixed tariff constants, all RM.
const (
	standardBase  = 8.00
	standardPerKg = 2.50

	expressBase  = 15.00
	expressPerKg = 4.00
	urgentBase   = 10.00
	urgentPerKg  = 1.50

	internationalBase  = 25.00
	internationalPerKg = 8.00
	customsPerKg       = 5.00
)

type ParcelFactory struct{}

func New() *ParcelFactory {
	return &ParcelFactory{}
}

// CreateParcel builds a parcel of the requested kind and prices it from the
// variant tariff and the weight. The second return value reports whether the
// kind was unrecognized and standard pricing was applied instead. The parcel
// is not registered anywhere; that is up to the caller.
func (f *ParcelFactory) CreateParcel(kind, id, senderID, receiverID string, weight float64, dimensions, description, extra string) (*entities.Parcel, bool) {
	parsedKind, recognized := parseKind(kind)

	p := &entities.Parcel{
		ID:          id,
		Kind:        parsedKind,
		Description: description,
		Weight:      weight,
		Dimensions:  dimensions,
		Status:      entities.ParcelCreated,
		CreatedAt:   time.Now().UTC(),
		SenderID:    senderID,
		ReceiverID:  receiverID,
	}

	switch parsedKind {
	case entities.ExpressParcel:
		p.UrgentFee = urgentBase + urgentPerKg*weight
		p.Price = expressBase + expressPerKg*weight + p.UrgentFee
	case entities.InternationalParcel:
		p.CustomsFee = customsPerKg * weight
		p.Price = internationalBase + internationalPerKg*weight + p.CustomsFee
		p.DestinationCountry = extra
	default:
		p.Price = standardBase + standardPerKg*weight
	}

	return p, !recognized
}

func parseKind(raw string) (entities.ParcelKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "STANDARD":
		return entities.StandardParcel, true
	case "EXPRESS":
		return entities.ExpressParcel, true
	case "INTERNATIONAL":
		return entities.InternationalParcel, true
	default:
		return entities.StandardParcel, false
	}
}
