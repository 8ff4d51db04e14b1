package handlers

import (
	"encoding/json"
	"strconv"
)

// envelope is the uniform response shape for the relay API.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// pincodeString accepts both JSON strings and bare numbers. Pincodes are
// relayed as-is: no numeric validation happens here.
type pincodeString string

func (p *pincodeString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = pincodeString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = pincodeString(n.String())
	return nil
}

// flexNumber accepts a JSON number or a numeric string.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		*f = flexNumber(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexNumber(v)
	return nil
}

type checkServiceabilityRequest struct {
	PickupPincode   pincodeString `json:"pickup_pincode"`
	DeliveryPincode pincodeString `json:"delivery_pincode"`
	Weight          *flexNumber   `json:"weight"`
	COD             *flexNumber   `json:"cod"`
}
