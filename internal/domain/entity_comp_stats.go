package domain

// Vitals - ресурс с потолком (здоровье, еда, вода). Всегда в [0, Max].
type Vitals struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// NewVitals создает полный ресурс
func NewVitals(max int) Vitals {
	return Vitals{Current: max, Max: max}
}

// Damage отнимает amount. Возвращает true ровно один раз: когда ресурс
// только что опустился до нуля.
func (v *Vitals) Damage(amount int) bool {
	if v.Current == 0 || amount <= 0 {
		return false
	}

	v.Current -= amount
	if v.Current <= 0 {
		v.Current = 0
		return true
	}
	return false
}

// Depleted - ресурс исчерпан
func (v Vitals) Depleted() bool {
	return v.Current <= 0
}

// Fraction возвращает долю от максимума (для цвета в HUD)
func (v Vitals) Fraction() float64 {
	if v.Max <= 0 {
		return 0
	}
	return float64(v.Current) / float64(v.Max)
}
