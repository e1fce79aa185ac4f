package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

const (
	// PercentMin is the smallest offset a map pin can have.
	PercentMin Percent = 0
	// PercentMax is the largest offset a map pin can have.
	PercentMax Percent = 100
)

// ErrMapPinIsNotConstructed is returned when a zero MapPin is used.
var ErrMapPinIsNotConstructed = errs.NewValueIsRequiredError(
	"map pin must be created via NewMapPin or ParseMapPin constructors")

// Percent is an offset on the customer dashboard map, in percent of the map size.
type Percent int

// String renders the offset the way the template's style attribute expects, e.g. "32%".
func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}

// ParsePercent reads "32%", "32" or " 32 % " into a Percent.
func ParsePercent(raw string) (Percent, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("percent", fmt.Errorf("%q is not a percentage", raw))
	}
	return Percent(v), nil
}

// MapPin places a pharmacy on the customer dashboard map.
// Both offsets are within [PercentMin..PercentMax].
type MapPin struct { //nolint:recvcheck //using for validation
	top   Percent
	left  Percent
	guard guard.ConstructorGuard
}

// NewMapPin builds a pin from numeric offsets.
func NewMapPin(top, left Percent) (MapPin, error) {
	pin := MapPin{guard: guard.NewConstructorGuard()}

	if err := errors.Join(pin.setTop(top), pin.setLeft(left)); err != nil {
		return MapPin{}, err
	}

	return pin, nil
}

// ParseMapPin builds a pin from the textual offsets used by the seed fixtures ("32%", "48%").
func ParseMapPin(top, left string) (MapPin, error) {
	t, topErr := ParsePercent(top)
	l, leftErr := ParsePercent(left)
	if err := errors.Join(topErr, leftErr); err != nil {
		return MapPin{}, err
	}
	return NewMapPin(t, l)
}

// DefaultMapPin is where pharmacies created without coordinates are drawn.
func DefaultMapPin() MapPin {
	return MapPin{top: 40, left: 40, guard: guard.NewConstructorGuard()}
}

func (p MapPin) Validate() error {
	return p.guard.Validate(ErrMapPinIsNotConstructed)
}

func (p MapPin) Top() Percent {
	return p.top
}

func (p MapPin) Left() Percent {
	return p.left
}

func (p MapPin) String() string {
	return fmt.Sprintf("MapPin(%s,%s)", p.top, p.left)
}

func (p *MapPin) setTop(top Percent) error {
	if top < PercentMin || top > PercentMax {
		return errs.NewValueIsOutOfRangeError("top", top, PercentMin, PercentMax)
	}
	p.top = top
	return nil
}

func (p *MapPin) setLeft(left Percent) error {
	if left < PercentMin || left > PercentMax {
		return errs.NewValueIsOutOfRangeError("left", left, PercentMin, PercentMax)
	}
	p.left = left
	return nil
}
