package pharmacy

import (
	"errors"
	"math"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

const (
	MaxDistanceKm = 999.9
	MaxRating     = 5.0
)

var ErrPharmacyIsNotConstructed = errors.New("Pharmacy must be created via NewPharmacy constructor")

// Pharmacy is a store customers can order from. Distance and rating keep one
// decimal place.
type Pharmacy struct {
	id         kernel.UUID
	name       string
	distanceKm float64
	rating     float64
	address    string
	pin        kernel.MapPin

	isConstructed bool
}

func NewPharmacy(
	id kernel.UUID,
	name string,
	distanceKm, rating float64,
	address string,
	pin kernel.MapPin,
) (*Pharmacy, error) {
	p := &Pharmacy{
		address:       strings.TrimSpace(address),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setDistance(distanceKm),
		p.setRating(rating),
		p.setPin(pin),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pharmacy) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPharmacyIsNotConstructed
	}
	return nil
}

func (p *Pharmacy) ID() kernel.UUID {
	return p.id
}

func (p *Pharmacy) Name() string {
	return p.name
}

func (p *Pharmacy) DistanceKm() float64 {
	return p.distanceKm
}

func (p *Pharmacy) Rating() float64 {
	return p.rating
}

func (p *Pharmacy) Address() string {
	return p.address
}

func (p *Pharmacy) Pin() kernel.MapPin {
	return p.pin
}

func (p *Pharmacy) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pharmacy) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Pharmacy) setDistance(km float64) error {
	if km < 0 || km > MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distance", km, 0, MaxDistanceKm)
	}
	p.distanceKm = roundTenth(km)
	return nil
}

func (p *Pharmacy) setRating(rating float64) error {
	if rating < 0 || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, MaxRating)
	}
	p.rating = roundTenth(rating)
	return nil
}

func (p *Pharmacy) setPin(pin kernel.MapPin) error {
	if err := pin.Validate(); err != nil {
		return err
	}
	p.pin = pin
	return nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
