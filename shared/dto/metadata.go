package dto

import (
	"corais/shared/constant"
	"corais/shared/model"
	"corais/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	if !model.CreatedAt.IsZero() {
		m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	}

	if !model.ModifiedAt.IsZero() {
		m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	}
}
