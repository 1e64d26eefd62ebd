package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// Jitter возвращает base, смещенный на случайную величину в пределах ±spread.
// Используется при экспрессии фенотипа: каждое растение чуть отличается от эталона сорта.
func Jitter(rng *mrand.Rand, base, spread float64) float64 {
	if spread <= 0 {
		return base
	}
	return base + (rng.Float64()*2-1)*spread
}
