package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/homecost-go/pkg/utils"
)

// ErrInvalidParameter сигнализирует о параметрах, при которых формула не определена
var ErrInvalidParameter = errors.New("invalid parameter")

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s должно быть в диапазоне [%d; %d], получено %d",
			ErrInvalidParameter, name, minInclusive, maxInclusive, value)
	}
	return nil
}

// CheckMonths проверяет срок кредита в месяцах
func CheckMonths(months int) error {
	return ValidateIntRange("months", months, 1, int(^uint(0)>>1))
}

// CheckAmortizationFactor проверяет множитель (1+r)^n перед делением на (x-1).
// Значение 1 или бесконечность делают аннуитетную формулу неопределенной.
func CheckAmortizationFactor(factor float64) error {
	if !utils.IsFinite(factor) {
		return fmt.Errorf("%w: (1+r)^n не является конечным числом", ErrInvalidParameter)
	}
	if factor == 1 {
		return fmt.Errorf("%w: (1+r)^n = 1, знаменатель аннуитетной формулы равен нулю", ErrInvalidParameter)
	}
	return nil
}
