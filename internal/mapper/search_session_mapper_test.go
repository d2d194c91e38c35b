package mapper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-search-be/internal/entity"
	"talent-search-be/internal/model"
)

func TestSearchSessionMapperRoundTrip(t *testing.T) {
	m := NewSearchSessionMapper()

	sess := &entity.SearchSession{
		Id:     uuid.New(),
		UserId: uuid.New(),
		QueryHistory: []entity.QueryHistoryEntry{
			{Query: "golang engineer", Timestamp: time.Now().UTC().Truncate(time.Second)},
			{Query: "kubernetes", Timestamp: time.Now().UTC().Truncate(time.Second)},
		},
		CurrentContext: "golang engineer → kubernetes",
		Version:        3,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}

	back := m.ToEntity(m.ToModel(sess))
	require.NotNil(t, back)

	assert.Equal(t, sess.Id, back.Id)
	assert.Equal(t, sess.UserId, back.UserId)
	assert.Equal(t, sess.CurrentContext, back.CurrentContext)
	assert.Equal(t, sess.Version, back.Version)
	require.Len(t, back.QueryHistory, 2)
	assert.Equal(t, "golang engineer", back.QueryHistory[0].Query)
	assert.Equal(t, "kubernetes", back.QueryHistory[1].Query)
}

func TestSearchSessionMapperMalformedHistory(t *testing.T) {
	m := NewSearchSessionMapper()

	s := &model.SearchSession{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		QueryHistory: []byte(`{not an array`),
		Version:      1,
	}

	got := m.ToEntity(s)
	require.NotNil(t, got)
	assert.Empty(t, got.QueryHistory)
	assert.NotNil(t, got.QueryHistory)
}

func TestSearchSessionMapperNil(t *testing.T) {
	m := NewSearchSessionMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
