package domain

import (
	"fmt"
	"strconv"
)

// PlantID - упакованный идентификатор (Zone + Index)
type PlantID uint64

// Конфигурация битов
const (
	bitsIndex = 48
	bitsZone  = 16

	// Сдвиги
	shiftZone = bitsIndex

	// Маски (для извлечения значений)
	maskIndex = (1 << bitsIndex) - 1 // 0x0000FFFFFFFFFFFF
	maskZone  = (1 << bitsZone) - 1  // 0xFFFF
)

// --- КОНСТРУКТОР ---

// PackPlantID создает ID из компонентов
func PackPlantID(zoneID ZoneID, index uint64) PlantID {
	id := index & maskIndex
	id |= (uint64(zoneID) & maskZone) << shiftZone
	return PlantID(id)
}

// --- МЕТОДЫ ДОСТУПА ---

func (id PlantID) Zone() ZoneID {
	return ZoneID((id >> shiftZone) & maskZone)
}

func (id PlantID) Index() uint64 {
	return uint64(id & maskIndex)
}

// --- СЕРИАЛИЗАЦИЯ (Для фронтенда) ---

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших int64
func (id PlantID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON парсит строку или число из JSON
func (id *PlantID) UnmarshalJSON(data []byte) error {
	// Удаляем кавычки, если есть
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = PlantID(val)
	return nil
}

// String для логов: выводим красиво [Zone:Idx]
func (id PlantID) String() string {
	return fmt.Sprintf("[%d:%d]", id.Zone(), id.Index())
}

// ZoneID - идентификатор зоны выращивания (грядка, тент, комната).
// Среда запрашивается у провайдера по зоне.
type ZoneID uint16
