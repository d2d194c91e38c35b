package mapper

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/model"
)

type DataRecordMapper struct{}

func NewDataRecordMapper() *DataRecordMapper {
	return &DataRecordMapper{}
}

func (m *DataRecordMapper) ToEntity(r *model.DataRecord) *entity.DataRecord {
	if r == nil {
		return nil
	}

	fields := map[string]interface{}{}
	if len(r.Fields) > 0 {
		_ = json.Unmarshal(r.Fields, &fields)
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.DataRecord{
		Id:          r.Id,
		CandidateId: r.CandidateId,
		Fields:      fields,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *DataRecordMapper) ToModel(r *entity.DataRecord) *model.DataRecord {
	if r == nil {
		return nil
	}

	fieldsJSON, err := json.Marshal(r.Fields)
	if err != nil {
		fieldsJSON = []byte("{}")
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.DataRecord{
		Id:          r.Id,
		CandidateId: r.CandidateId,
		Fields:      datatypes.JSON(fieldsJSON),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}
