package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sasakirione/pokesim/core"
)

// sampleEntity is a test implementation of the Entity interface.
type sampleEntity struct {
	id         string
	entityType string
}

func (s *sampleEntity) GetID() string   { return s.id }
func (s *sampleEntity) GetType() string { return s.entityType }

func TestEntity_Implementation(t *testing.T) {
	tests := []struct {
		name         string
		entity       *sampleEntity
		expectedID   string
		expectedType string
	}{
		{
			name:         "creature entity",
			entity:       &sampleEntity{id: "creature-001", entityType: core.EntityTypeCreature},
			expectedID:   "creature-001",
			expectedType: "creature",
		},
		{
			name:         "party entity",
			entity:       &sampleEntity{id: "party-red", entityType: core.EntityTypeParty},
			expectedID:   "party-red",
			expectedType: "party",
		},
		{
			name:         "battle entity",
			entity:       &sampleEntity{id: "battle-01", entityType: core.EntityTypeBattle},
			expectedID:   "battle-01",
			expectedType: "battle",
		},
		{
			name:         "empty values",
			entity:       &sampleEntity{},
			expectedID:   "",
			expectedType: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _ core.Entity = tt.entity

			assert.Equal(t, tt.expectedID, tt.entity.GetID())
			assert.Equal(t, tt.expectedType, tt.entity.GetType())
		})
	}
}
