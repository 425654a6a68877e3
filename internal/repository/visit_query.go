package repository

import (
	"time"

	"medical-clinic-api/internal/domain/entity"

	"gorm.io/gorm/clause"
)

// BuildVisitConditions folds a VisitFilter into the list of query conditions
// to AND together. Only fields present on the filter contribute a condition;
// an absent field never constrains the query. The caller executes the fold,
// so everything ORM-specific stays inside this package.
func BuildVisitConditions(filter *entity.VisitFilter, now time.Time) []clause.Expression {
	conditions := make([]clause.Expression, 0)
	if filter == nil {
		return conditions
	}
	if filter.VisitID != nil {
		conditions = append(conditions, visitIDEquals(*filter.VisitID))
	}
	if filter.DoctorID != nil {
		conditions = append(conditions, doctorIDEquals(*filter.DoctorID))
	}
	if filter.DoctorSpecialization != nil {
		conditions = append(conditions, doctorSpecializationEquals(*filter.DoctorSpecialization))
	}
	if filter.PatientID != nil {
		conditions = append(conditions, patientIDEquals(*filter.PatientID))
	}
	if filter.OnlyAvailable != nil && *filter.OnlyAvailable {
		conditions = append(conditions, visitIsAvailable(now))
	}
	if filter.StartTime != nil {
		conditions = append(conditions, startTimeAfterOrEquals(*filter.StartTime))
	}
	if filter.EndTime != nil {
		conditions = append(conditions, endTimeBeforeOrEquals(*filter.EndTime))
	}
	return conditions
}

func visitIDEquals(visitID int64) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: "visits", Name: "id"}, Value: visitID}
}

func doctorIDEquals(doctorID int64) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: "visits", Name: "doctor_id"}, Value: doctorID}
}

// doctorSpecializationEquals constrains through the doctor reference with a
// subquery so the condition stays a plain expression instead of a join.
func doctorSpecializationEquals(specialization string) clause.Expression {
	return clause.Expr{
		SQL:  "visits.doctor_id IN (SELECT id FROM doctors WHERE specialization = ?)",
		Vars: []interface{}{specialization},
	}
}

func patientIDEquals(patientID int64) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: "visits", Name: "patient_id"}, Value: patientID}
}

// visitIsAvailable is the compound "open slot in the future" predicate.
func visitIsAvailable(now time.Time) clause.Expression {
	return clause.And(
		clause.Eq{Column: clause.Column{Table: "visits", Name: "patient_id"}, Value: nil},
		clause.Gte{Column: clause.Column{Table: "visits", Name: "start_time"}, Value: now},
	)
}

func startTimeAfterOrEquals(startTime time.Time) clause.Expression {
	return clause.Gte{Column: clause.Column{Table: "visits", Name: "start_time"}, Value: startTime}
}

func endTimeBeforeOrEquals(endTime time.Time) clause.Expression {
	return clause.Lte{Column: clause.Column{Table: "visits", Name: "end_time"}, Value: endTime}
}
