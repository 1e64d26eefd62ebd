package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p WaterPayload) Validate() error {
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if p.Amount > 1 {
		return errors.New("amount exceeds container capacity")
	}
	return nil
}

func (p FeedPayload) Validate() error {
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if p.Amount > 1 {
		return errors.New("amount exceeds dose limit")
	}
	return nil
}

func (p TransplantPayload) Validate() error {
	if p.Container == "" {
		return errors.New("container is required")
	}
	return nil
}

func (p ConsolePayload) Validate() error {
	if p.Line == "" {
		return errors.New("console line is empty")
	}
	return nil
}
