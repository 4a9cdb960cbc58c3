// Code generated by ent, DO NOT EDIT.

package lookupevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/halehq/hale/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CheckupID applies equality check predicate on the "checkup_id" field. It's identical to CheckupIDEQ.
func CheckupID(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldCheckupID, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldQuery, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldSource, v))
}

// Condition applies equality check predicate on the "condition" field. It's identical to ConditionEQ.
func Condition(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldCondition, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CheckupIDEQ applies the EQ predicate on the "checkup_id" field.
func CheckupIDEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldCheckupID, v))
}

// CheckupIDNEQ applies the NEQ predicate on the "checkup_id" field.
func CheckupIDNEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldCheckupID, v))
}

// CheckupIDIn applies the In predicate on the "checkup_id" field.
func CheckupIDIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldCheckupID, vs...))
}

// CheckupIDNotIn applies the NotIn predicate on the "checkup_id" field.
func CheckupIDNotIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldCheckupID, vs...))
}

// CheckupIDGT applies the GT predicate on the "checkup_id" field.
func CheckupIDGT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldCheckupID, v))
}

// CheckupIDGTE applies the GTE predicate on the "checkup_id" field.
func CheckupIDGTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldCheckupID, v))
}

// CheckupIDLT applies the LT predicate on the "checkup_id" field.
func CheckupIDLT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldCheckupID, v))
}

// CheckupIDLTE applies the LTE predicate on the "checkup_id" field.
func CheckupIDLTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldCheckupID, v))
}

// CheckupIDContains applies the Contains predicate on the "checkup_id" field.
func CheckupIDContains(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContains(FieldCheckupID, v))
}

// CheckupIDHasPrefix applies the HasPrefix predicate on the "checkup_id" field.
func CheckupIDHasPrefix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasPrefix(FieldCheckupID, v))
}

// CheckupIDHasSuffix applies the HasSuffix predicate on the "checkup_id" field.
func CheckupIDHasSuffix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasSuffix(FieldCheckupID, v))
}

// CheckupIDEqualFold applies the EqualFold predicate on the "checkup_id" field.
func CheckupIDEqualFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEqualFold(FieldCheckupID, v))
}

// CheckupIDContainsFold applies the ContainsFold predicate on the "checkup_id" field.
func CheckupIDContainsFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContainsFold(FieldCheckupID, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContainsFold(FieldQuery, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContainsFold(FieldSource, v))
}

// ConditionEQ applies the EQ predicate on the "condition" field.
func ConditionEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEQ(FieldCondition, v))
}

// ConditionNEQ applies the NEQ predicate on the "condition" field.
func ConditionNEQ(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNEQ(FieldCondition, v))
}

// ConditionIn applies the In predicate on the "condition" field.
func ConditionIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldIn(FieldCondition, vs...))
}

// ConditionNotIn applies the NotIn predicate on the "condition" field.
func ConditionNotIn(vs ...string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldNotIn(FieldCondition, vs...))
}

// ConditionGT applies the GT predicate on the "condition" field.
func ConditionGT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGT(FieldCondition, v))
}

// ConditionGTE applies the GTE predicate on the "condition" field.
func ConditionGTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldGTE(FieldCondition, v))
}

// ConditionLT applies the LT predicate on the "condition" field.
func ConditionLT(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLT(FieldCondition, v))
}

// ConditionLTE applies the LTE predicate on the "condition" field.
func ConditionLTE(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldLTE(FieldCondition, v))
}

// ConditionContains applies the Contains predicate on the "condition" field.
func ConditionContains(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContains(FieldCondition, v))
}

// ConditionHasPrefix applies the HasPrefix predicate on the "condition" field.
func ConditionHasPrefix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasPrefix(FieldCondition, v))
}

// ConditionHasSuffix applies the HasSuffix predicate on the "condition" field.
func ConditionHasSuffix(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldHasSuffix(FieldCondition, v))
}

// ConditionEqualFold applies the EqualFold predicate on the "condition" field.
func ConditionEqualFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldEqualFold(FieldCondition, v))
}

// ConditionContainsFold applies the ContainsFold predicate on the "condition" field.
func ConditionContainsFold(v string) predicate.LookupEvent {
	return predicate.LookupEvent(sql.FieldContainsFold(FieldCondition, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LookupEvent) predicate.LookupEvent {
	return predicate.LookupEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LookupEvent) predicate.LookupEvent {
	return predicate.LookupEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LookupEvent) predicate.LookupEvent {
	return predicate.LookupEvent(sql.NotPredicates(p))
}
