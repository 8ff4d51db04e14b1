package handlers

import "serviceability-relay/internal/domain"

func (r checkServiceabilityRequest) toModel() domain.ServiceabilityRequest {
	m := domain.ServiceabilityRequest{
		PickupPincode:   string(r.PickupPincode),
		DeliveryPincode: string(r.DeliveryPincode),
	}
	if r.Weight != nil {
		w := float64(*r.Weight)
		m.Weight = &w
	}
	if r.COD != nil {
		c := float64(*r.COD)
		m.COD = &c
	}
	return m
}
