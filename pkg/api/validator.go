package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Хендлеры вызывают Validate автоматически (см. handlers.WithPayload).
type Validator interface {
	Validate() error
}

func (p MutatePayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	if p.Component == "" {
		return errors.New("component is required")
	}
	if p.Field == "" {
		return errors.New("field is required")
	}
	if len(p.Value) == 0 {
		return errors.New("value is required")
	}
	return nil
}

func (p MutateBatchPayload) Validate() error {
	if len(p.Requests) == 0 {
		return errors.New("batch is empty")
	}
	for _, req := range p.Requests {
		if err := req.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p InspectPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

func (p SnapshotCreatePayload) Validate() error {
	if len(p.EntityIDs) == 0 {
		return errors.New("entityIds is empty")
	}
	return nil
}

func (p SnapshotIDPayload) Validate() error {
	if p.SnapshotID == "" {
		return errors.New("snapshotId is required")
	}
	return nil
}
