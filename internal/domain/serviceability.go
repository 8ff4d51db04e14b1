package domain

import (
	"encoding/json"

	"serviceability-relay/internal/apperr"
)

// ServiceabilityRequest is a pincode serviceability query as received from
// the caller. Weight and COD are pointers so an absent field can be told
// apart from an explicit zero.
type ServiceabilityRequest struct {
	PickupPincode   string
	DeliveryPincode string
	Weight          *float64
	COD             *float64
}

// Validate checks required fields for presence only. A zero weight and a
// blank pincode count as absent; numeric plausibility of pincodes is left
// to the provider.
func (r ServiceabilityRequest) Validate() error {
	if r.DeliveryPincode == "" {
		return apperr.MissingField("delivery_pincode")
	}
	if r.PickupPincode == "" {
		return apperr.MissingField("pickup_pincode")
	}
	if r.Weight == nil || *r.Weight == 0 {
		return apperr.MissingField("weight")
	}
	return nil
}

// Payload is the RapidShyp serviceability request body: pincodes as numeric
// strings, weight in float kilograms, cod as an integer rupee value.
type Payload struct {
	PickupPincode   string  `json:"pickup_pincode"`
	DeliveryPincode string  `json:"delivery_pincode"`
	Weight          float64 `json:"weight"`
	COD             int     `json:"cod"`
}

// Payload maps a validated request onto the RapidShyp schema. COD defaults
// to 0 when absent; everything else carries over unchanged.
func (r ServiceabilityRequest) Payload() Payload {
	var cod float64
	if r.COD != nil {
		cod = *r.COD
	}
	return Payload{
		PickupPincode:   r.PickupPincode,
		DeliveryPincode: r.DeliveryPincode,
		Weight:          *r.Weight,
		COD:             int(cod),
	}
}

// CheckResult is the successful outcome of a serviceability check: the
// upstream response body, relayed verbatim.
type CheckResult struct {
	Data json.RawMessage
}
