// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/halehq/hale/ent/checkupevent"
	"github.com/halehq/hale/ent/lookupevent"
	"github.com/halehq/hale/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkupeventMixin := schema.CheckupEvent{}.Mixin()
	checkupeventMixinFields0 := checkupeventMixin[0].Fields()
	_ = checkupeventMixinFields0
	checkupeventFields := schema.CheckupEvent{}.Fields()
	_ = checkupeventFields
	// checkupeventDescTimestamp is the schema descriptor for timestamp field.
	checkupeventDescTimestamp := checkupeventMixinFields0[1].Descriptor()
	// checkupevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkupevent.DefaultTimestamp = checkupeventDescTimestamp.Default.(func() time.Time)
	// checkupeventDescCheckupID is the schema descriptor for checkup_id field.
	checkupeventDescCheckupID := checkupeventFields[0].Descriptor()
	// checkupevent.CheckupIDValidator is a validator for the "checkup_id" field. It is called by the builders before save.
	checkupevent.CheckupIDValidator = checkupeventDescCheckupID.Validators[0].(func(string) error)
	// checkupeventDescAction is the schema descriptor for action field.
	checkupeventDescAction := checkupeventFields[1].Descriptor()
	// checkupevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	checkupevent.ActionValidator = checkupeventDescAction.Validators[0].(func(string) error)
	// checkupeventDescBmi is the schema descriptor for bmi field.
	checkupeventDescBmi := checkupeventFields[2].Descriptor()
	// checkupevent.DefaultBmi holds the default value on creation for the bmi field.
	checkupevent.DefaultBmi = checkupeventDescBmi.Default.(float64)
	// checkupeventDescCategory is the schema descriptor for category field.
	checkupeventDescCategory := checkupeventFields[3].Descriptor()
	// checkupevent.DefaultCategory holds the default value on creation for the category field.
	checkupevent.DefaultCategory = checkupeventDescCategory.Default.(string)
	// checkupeventDescGoal is the schema descriptor for goal field.
	checkupeventDescGoal := checkupeventFields[4].Descriptor()
	// checkupevent.DefaultGoal holds the default value on creation for the goal field.
	checkupevent.DefaultGoal = checkupeventDescGoal.Default.(string)
	// checkupeventDescLookupCount is the schema descriptor for lookup_count field.
	checkupeventDescLookupCount := checkupeventFields[5].Descriptor()
	// checkupevent.DefaultLookupCount holds the default value on creation for the lookup_count field.
	checkupevent.DefaultLookupCount = checkupeventDescLookupCount.Default.(int)
	// checkupeventDescDurationSecs is the schema descriptor for duration_secs field.
	checkupeventDescDurationSecs := checkupeventFields[6].Descriptor()
	// checkupevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	checkupevent.DefaultDurationSecs = checkupeventDescDurationSecs.Default.(int)
	lookupeventMixin := schema.LookupEvent{}.Mixin()
	lookupeventMixinFields0 := lookupeventMixin[0].Fields()
	_ = lookupeventMixinFields0
	lookupeventFields := schema.LookupEvent{}.Fields()
	_ = lookupeventFields
	// lookupeventDescTimestamp is the schema descriptor for timestamp field.
	lookupeventDescTimestamp := lookupeventMixinFields0[1].Descriptor()
	// lookupevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lookupevent.DefaultTimestamp = lookupeventDescTimestamp.Default.(func() time.Time)
	// lookupeventDescCheckupID is the schema descriptor for checkup_id field.
	lookupeventDescCheckupID := lookupeventFields[0].Descriptor()
	// lookupevent.CheckupIDValidator is a validator for the "checkup_id" field. It is called by the builders before save.
	lookupevent.CheckupIDValidator = lookupeventDescCheckupID.Validators[0].(func(string) error)
	// lookupeventDescQuery is the schema descriptor for query field.
	lookupeventDescQuery := lookupeventFields[1].Descriptor()
	// lookupevent.QueryValidator is a validator for the "query" field. It is called by the builders before save.
	lookupevent.QueryValidator = lookupeventDescQuery.Validators[0].(func(string) error)
	// lookupeventDescSource is the schema descriptor for source field.
	lookupeventDescSource := lookupeventFields[2].Descriptor()
	// lookupevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	lookupevent.SourceValidator = lookupeventDescSource.Validators[0].(func(string) error)
	// lookupeventDescCondition is the schema descriptor for condition field.
	lookupeventDescCondition := lookupeventFields[3].Descriptor()
	// lookupevent.DefaultCondition holds the default value on creation for the condition field.
	lookupevent.DefaultCondition = lookupeventDescCondition.Default.(string)
}
