package repository

import (
	"testing"
	"time"

	"medical-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"
)

var queryNow = time.Date(2012, 12, 12, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestBuildVisitConditions_NilFilter(t *testing.T) {
	assert.Empty(t, BuildVisitConditions(nil, queryNow))
}

func TestBuildVisitConditions_EmptyFilter(t *testing.T) {
	assert.Empty(t, BuildVisitConditions(&entity.VisitFilter{}, queryNow))
}

func TestBuildVisitConditions_SingleFields(t *testing.T) {
	tests := []struct {
		name     string
		filter   *entity.VisitFilter
		expected clause.Expression
	}{
		{
			name:     "visit id",
			filter:   &entity.VisitFilter{VisitID: int64Ptr(7)},
			expected: clause.Eq{Column: clause.Column{Table: "visits", Name: "id"}, Value: int64(7)},
		},
		{
			name:     "doctor id",
			filter:   &entity.VisitFilter{DoctorID: int64Ptr(1)},
			expected: clause.Eq{Column: clause.Column{Table: "visits", Name: "doctor_id"}, Value: int64(1)},
		},
		{
			name:   "doctor specialization",
			filter: &entity.VisitFilter{DoctorSpecialization: strPtr("Surgeon")},
			expected: clause.Expr{
				SQL:  "visits.doctor_id IN (SELECT id FROM doctors WHERE specialization = ?)",
				Vars: []interface{}{"Surgeon"},
			},
		},
		{
			name:     "patient id",
			filter:   &entity.VisitFilter{PatientID: int64Ptr(3)},
			expected: clause.Eq{Column: clause.Column{Table: "visits", Name: "patient_id"}, Value: int64(3)},
		},
		{
			name:   "only available",
			filter: &entity.VisitFilter{OnlyAvailable: boolPtr(true)},
			expected: clause.And(
				clause.Eq{Column: clause.Column{Table: "visits", Name: "patient_id"}, Value: nil},
				clause.Gte{Column: clause.Column{Table: "visits", Name: "start_time"}, Value: queryNow},
			),
		},
		{
			name:     "start time lower bound",
			filter:   &entity.VisitFilter{StartTime: timePtr(queryNow.Add(time.Hour))},
			expected: clause.Gte{Column: clause.Column{Table: "visits", Name: "start_time"}, Value: queryNow.Add(time.Hour)},
		},
		{
			name:     "end time upper bound",
			filter:   &entity.VisitFilter{EndTime: timePtr(queryNow.Add(2 * time.Hour))},
			expected: clause.Lte{Column: clause.Column{Table: "visits", Name: "end_time"}, Value: queryNow.Add(2 * time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions := BuildVisitConditions(tt.filter, queryNow)

			require.Len(t, conditions, 1)
			assert.Equal(t, tt.expected, conditions[0])
		})
	}
}

func TestBuildVisitConditions_OnlyAvailableFalse(t *testing.T) {
	conditions := BuildVisitConditions(&entity.VisitFilter{OnlyAvailable: boolPtr(false)}, queryNow)

	assert.Empty(t, conditions, "an explicit false must not constrain the query")
}

// Independent bounds are legal on their own and together, even when together
// they describe an empty window. The store answers with zero rows, not an
// error.
func TestBuildVisitConditions_BothTimeBounds(t *testing.T) {
	filter := &entity.VisitFilter{
		StartTime: timePtr(queryNow.Add(time.Hour)),
		EndTime:   timePtr(queryNow.Add(2 * time.Hour)),
	}

	conditions := BuildVisitConditions(filter, queryNow)

	require.Len(t, conditions, 2)
	assert.Equal(t, clause.Gte{Column: clause.Column{Table: "visits", Name: "start_time"}, Value: queryNow.Add(time.Hour)}, conditions[0])
	assert.Equal(t, clause.Lte{Column: clause.Column{Table: "visits", Name: "end_time"}, Value: queryNow.Add(2 * time.Hour)}, conditions[1])
}

func TestBuildVisitConditions_AllFields(t *testing.T) {
	filter := &entity.VisitFilter{
		VisitID:              int64Ptr(7),
		DoctorID:             int64Ptr(1),
		DoctorSpecialization: strPtr("Surgeon"),
		PatientID:            int64Ptr(3),
		OnlyAvailable:        boolPtr(true),
		StartTime:            timePtr(queryNow.Add(time.Hour)),
		EndTime:              timePtr(queryNow.Add(8 * time.Hour)),
	}

	conditions := BuildVisitConditions(filter, queryNow)

	assert.Len(t, conditions, 7)
}
