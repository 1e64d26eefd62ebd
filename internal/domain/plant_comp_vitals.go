package domain

// TakeDamage наносит урон здоровью. Возвращает true, если растение погибло
// именно на этом вызове (терминальный переход one-way).
func (v *VitalsComponent) TakeDamage(amount float64) bool {
	if v.IsDead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	v.Health -= amount

	if v.Health <= 0 {
		v.Health = 0
		v.IsDead = true
		return true
	}
	return false
}

// Recover восстанавливает здоровье. Мертвых не лечим.
func (v *VitalsComponent) Recover(amount float64) {
	if v.IsDead || amount <= 0 {
		return
	}
	v.Health += amount
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
}

// Hydrate пополняет запас воды.
func (v *VitalsComponent) Hydrate(amount float64) {
	v.Water += amount
	if v.Water > 1 {
		v.Water = 1
	}
	if v.Water < 0 {
		v.Water = 0
	}
}

// Feed пополняет запас нутриентов.
func (v *VitalsComponent) Feed(amount float64) {
	v.Nutrient += amount
	if v.Nutrient > 1 {
		v.Nutrient = 1
	}
	if v.Nutrient < 0 {
		v.Nutrient = 0
	}
}

// RelieveStress снижает стресс (не ниже нуля).
func (v *VitalsComponent) RelieveStress(amount float64) {
	if amount <= 0 {
		return
	}
	v.Stress -= amount
	if v.Stress < 0 {
		v.Stress = 0
	}
}
