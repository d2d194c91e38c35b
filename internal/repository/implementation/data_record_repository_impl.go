package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/mapper"
	"talent-search-be/internal/model"
	"talent-search-be/internal/repository/contract"
)

type DataRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DataRecordMapper
}

func NewDataRecordRepository(db *gorm.DB) contract.DataRecordRepository {
	return &DataRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewDataRecordMapper(),
	}
}

func (r *DataRecordRepositoryImpl) Create(ctx context.Context, record *entity.DataRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *DataRecordRepositoryImpl) FieldsFor(ctx context.Context, candidateIds []uuid.UUID) (map[uuid.UUID]map[string]interface{}, error) {
	result := make(map[uuid.UUID]map[string]interface{}, len(candidateIds))
	if len(candidateIds) == 0 {
		return result, nil
	}

	var models []*model.DataRecord
	err := r.db.WithContext(ctx).
		Where("candidate_id IN ?", candidateIds).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	for _, m := range models {
		e := r.mapper.ToEntity(m)
		result[e.CandidateId] = e.Fields
	}
	return result, nil
}

func (r *DataRecordRepositoryImpl) DisplayNamesFor(ctx context.Context, candidateIds []uuid.UUID) (map[uuid.UUID]*string, error) {
	result := make(map[uuid.UUID]*string, len(candidateIds))
	if len(candidateIds) == 0 {
		return result, nil
	}

	type row struct {
		CandidateId uuid.UUID
		FullName    *string
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("data_records").
		Select("candidate_id, fields ->> 'fullName' AS full_name").
		Where("candidate_id IN ?", candidateIds).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		result[rw.CandidateId] = rw.FullName
	}
	return result, nil
}
