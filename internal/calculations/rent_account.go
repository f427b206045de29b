package calculations

// RentAccount накапливает расходы на аренду с фиксированной месячной ставкой
type RentAccount struct {
	monthlyRent float64
	months      int
}

func NewRentAccount(monthlyRent float64) *RentAccount {
	return &RentAccount{monthlyRent: monthlyRent}
}

func (r *RentAccount) MonthlyRent() float64 { return r.monthlyRent }

func (r *RentAccount) YearlyRent() float64 { return 12 * r.monthlyRent }

// TotalCost возвращает накопленную аренду: число оплаченных месяцев * месячная аренда
func (r *RentAccount) TotalCost() float64 {
	return float64(r.months) * r.monthlyRent
}

func (r *RentAccount) AddMonth() { r.months++ }

// AddYear добавляет годовую аренду одной операцией
func (r *RentAccount) AddYear() { r.months += 12 }

// Reset обнуляет накопленную сумму перед повторным проходом
func (r *RentAccount) Reset() { r.months = 0 }
