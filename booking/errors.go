package booking

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("NOT_FOUND")
	ErrInvalidRequest = errors.New("INVALID_REQUEST")
	ErrInvalidStatus  = errors.New("INVALID_STATUS")
	ErrInvalidType    = errors.New("INVALID_TYPE")
)

// SeatUnavailableError liệt kê các ghế xung đột để client chọn ghế khác.
type SeatUnavailableError struct {
	SeatIds []uint
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("SEAT_UNAVAILABLE: %v", e.SeatIds)
}

// IsDomainError phân biệt lỗi nghiệp vụ (không retry) với lỗi store (retry được).
func IsDomainError(err error) bool {
	var unavailable *SeatUnavailableError
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidType) ||
		errors.As(err, &unavailable)
}
