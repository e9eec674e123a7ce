package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when attempting to use improperly
// initialized Dimensions. Use the NewDimensions constructor.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions represents the physical size of a package in centimeters.
// It is an immutable value object; all sides must be non-negative.
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64

	guard guard.ConstructorGuard
}

// NewDimensions creates Dimensions with the specified sides in centimeters.
// Returns an error when any side is negative.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	if length < 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("length", fmt.Errorf("%f is negative", length))
	}
	if width < 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("width", fmt.Errorf("%f is negative", width))
	}
	if height < 0 {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("height", fmt.Errorf("%f is negative", height))
	}

	return Dimensions{
		length: length,
		width:  width,
		height: height,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Dimensions were properly constructed using the constructor.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Length returns the longest side in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns the cubic volume in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// String returns a human-readable representation in the form "LxWxH cm".
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1fx%.1fx%.1f cm", d.length, d.width, d.height)
}
