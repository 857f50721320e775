package dto

import (
	"agency/shared/constant"
	"agency/shared/model"
	"agency/shared/timezone"
)

// Metadata is the audit block rendered in admin responses, with timestamps in the business zone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func MetadataFrom(mod model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(mod.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(mod.ModifiedAt, constant.DateFormat),
		CreatedBy:  mod.CreatedBy,
		ModifiedBy: mod.ModifiedBy,
	}
}
