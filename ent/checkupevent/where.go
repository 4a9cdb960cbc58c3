// Code generated by ent, DO NOT EDIT.

package checkupevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halehq/hale/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CheckupID applies equality check predicate on the "checkup_id" field. It's identical to CheckupIDEQ.
func CheckupID(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldCheckupID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldAction, v))
}

// Bmi applies equality check predicate on the "bmi" field. It's identical to BmiEQ.
func Bmi(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldBmi, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldCategory, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldGoal, v))
}

// LookupCount applies equality check predicate on the "lookup_count" field. It's identical to LookupCountEQ.
func LookupCount(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldLookupCount, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CheckupIDEQ applies the EQ predicate on the "checkup_id" field.
func CheckupIDEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldCheckupID, v))
}

// CheckupIDNEQ applies the NEQ predicate on the "checkup_id" field.
func CheckupIDNEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldCheckupID, v))
}

// CheckupIDIn applies the In predicate on the "checkup_id" field.
func CheckupIDIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldCheckupID, vs...))
}

// CheckupIDNotIn applies the NotIn predicate on the "checkup_id" field.
func CheckupIDNotIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldCheckupID, vs...))
}

// CheckupIDGT applies the GT predicate on the "checkup_id" field.
func CheckupIDGT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldCheckupID, v))
}

// CheckupIDGTE applies the GTE predicate on the "checkup_id" field.
func CheckupIDGTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldCheckupID, v))
}

// CheckupIDLT applies the LT predicate on the "checkup_id" field.
func CheckupIDLT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldCheckupID, v))
}

// CheckupIDLTE applies the LTE predicate on the "checkup_id" field.
func CheckupIDLTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldCheckupID, v))
}

// CheckupIDContains applies the Contains predicate on the "checkup_id" field.
func CheckupIDContains(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContains(FieldCheckupID, v))
}

// CheckupIDHasPrefix applies the HasPrefix predicate on the "checkup_id" field.
func CheckupIDHasPrefix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasPrefix(FieldCheckupID, v))
}

// CheckupIDHasSuffix applies the HasSuffix predicate on the "checkup_id" field.
func CheckupIDHasSuffix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasSuffix(FieldCheckupID, v))
}

// CheckupIDEqualFold applies the EqualFold predicate on the "checkup_id" field.
func CheckupIDEqualFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEqualFold(FieldCheckupID, v))
}

// CheckupIDContainsFold applies the ContainsFold predicate on the "checkup_id" field.
func CheckupIDContainsFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContainsFold(FieldCheckupID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContainsFold(FieldAction, v))
}

// BmiEQ applies the EQ predicate on the "bmi" field.
func BmiEQ(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldBmi, v))
}

// BmiNEQ applies the NEQ predicate on the "bmi" field.
func BmiNEQ(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldBmi, v))
}

// BmiIn applies the In predicate on the "bmi" field.
func BmiIn(vs ...float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldBmi, vs...))
}

// BmiNotIn applies the NotIn predicate on the "bmi" field.
func BmiNotIn(vs ...float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldBmi, vs...))
}

// BmiGT applies the GT predicate on the "bmi" field.
func BmiGT(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldBmi, v))
}

// BmiGTE applies the GTE predicate on the "bmi" field.
func BmiGTE(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldBmi, v))
}

// BmiLT applies the LT predicate on the "bmi" field.
func BmiLT(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldBmi, v))
}

// BmiLTE applies the LTE predicate on the "bmi" field.
func BmiLTE(v float64) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldBmi, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContainsFold(FieldCategory, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldContainsFold(FieldGoal, v))
}

// LookupCountEQ applies the EQ predicate on the "lookup_count" field.
func LookupCountEQ(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldLookupCount, v))
}

// LookupCountNEQ applies the NEQ predicate on the "lookup_count" field.
func LookupCountNEQ(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldLookupCount, v))
}

// LookupCountIn applies the In predicate on the "lookup_count" field.
func LookupCountIn(vs ...int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldLookupCount, vs...))
}

// LookupCountNotIn applies the NotIn predicate on the "lookup_count" field.
func LookupCountNotIn(vs ...int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldLookupCount, vs...))
}

// LookupCountGT applies the GT predicate on the "lookup_count" field.
func LookupCountGT(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldLookupCount, v))
}

// LookupCountGTE applies the GTE predicate on the "lookup_count" field.
func LookupCountGTE(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldLookupCount, v))
}

// LookupCountLT applies the LT predicate on the "lookup_count" field.
func LookupCountLT(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldLookupCount, v))
}

// LookupCountLTE applies the LTE predicate on the "lookup_count" field.
func LookupCountLTE(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldLookupCount, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckupEvent) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckupEvent) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckupEvent) predicate.CheckupEvent {
	return predicate.CheckupEvent(sql.NotPredicates(p))
}
