// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edubox/adapt/ent/clusterartifact"
	"github.com/edubox/adapt/ent/interactionevent"
	"github.com/edubox/adapt/ent/masterystate"
	"github.com/edubox/adapt/ent/quizattempt"
	"github.com/edubox/adapt/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clusterartifactFields := schema.ClusterArtifact{}.Fields()
	_ = clusterartifactFields
	// clusterartifactDescVersion is the schema descriptor for version field.
	clusterartifactDescVersion := clusterartifactFields[0].Descriptor()
	// clusterartifact.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	clusterartifact.VersionValidator = clusterartifactDescVersion.Validators[0].(func(string) error)
	// clusterartifactDescSampleCount is the schema descriptor for sample_count field.
	clusterartifactDescSampleCount := clusterartifactFields[1].Descriptor()
	// clusterartifact.SampleCountValidator is a validator for the "sample_count" field. It is called by the builders before save.
	clusterartifact.SampleCountValidator = clusterartifactDescSampleCount.Validators[0].(func(int) error)
	// clusterartifactDescCreatedAt is the schema descriptor for created_at field.
	clusterartifactDescCreatedAt := clusterartifactFields[3].Descriptor()
	// clusterartifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	clusterartifact.DefaultCreatedAt = clusterartifactDescCreatedAt.Default.(func() time.Time)
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescUserID is the schema descriptor for user_id field.
	interactioneventDescUserID := interactioneventFields[0].Descriptor()
	// interactionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interactionevent.UserIDValidator = interactioneventDescUserID.Validators[0].(func(string) error)
	// interactioneventDescVideoID is the schema descriptor for video_id field.
	interactioneventDescVideoID := interactioneventFields[1].Descriptor()
	// interactionevent.VideoIDValidator is a validator for the "video_id" field. It is called by the builders before save.
	interactionevent.VideoIDValidator = interactioneventDescVideoID.Validators[0].(func(string) error)
	// interactioneventDescPauseCount is the schema descriptor for pause_count field.
	interactioneventDescPauseCount := interactioneventFields[2].Descriptor()
	// interactionevent.PauseCountValidator is a validator for the "pause_count" field. It is called by the builders before save.
	interactionevent.PauseCountValidator = interactioneventDescPauseCount.Validators[0].(func(int) error)
	// interactioneventDescRewatchCount is the schema descriptor for rewatch_count field.
	interactioneventDescRewatchCount := interactioneventFields[3].Descriptor()
	// interactionevent.RewatchCountValidator is a validator for the "rewatch_count" field. It is called by the builders before save.
	interactionevent.RewatchCountValidator = interactioneventDescRewatchCount.Validators[0].(func(int) error)
	// interactioneventDescSkipRatio is the schema descriptor for skip_ratio field.
	interactioneventDescSkipRatio := interactioneventFields[4].Descriptor()
	// interactionevent.SkipRatioValidator is a validator for the "skip_ratio" field. It is called by the builders before save.
	interactionevent.SkipRatioValidator = func() func(float64) error {
		validators := interactioneventDescSkipRatio.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(skip_ratio float64) error {
			for _, fn := range fns {
				if err := fn(skip_ratio); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// interactioneventDescWatchPercentage is the schema descriptor for watch_percentage field.
	interactioneventDescWatchPercentage := interactioneventFields[5].Descriptor()
	// interactionevent.WatchPercentageValidator is a validator for the "watch_percentage" field. It is called by the builders before save.
	interactionevent.WatchPercentageValidator = func() func(float64) error {
		validators := interactioneventDescWatchPercentage.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(watch_percentage float64) error {
			for _, fn := range fns {
				if err := fn(watch_percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	masterystateFields := schema.MasteryState{}.Fields()
	_ = masterystateFields
	// masterystateDescUserID is the schema descriptor for user_id field.
	masterystateDescUserID := masterystateFields[0].Descriptor()
	// masterystate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masterystate.UserIDValidator = masterystateDescUserID.Validators[0].(func(string) error)
	// masterystateDescConceptID is the schema descriptor for concept_id field.
	masterystateDescConceptID := masterystateFields[1].Descriptor()
	// masterystate.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masterystate.ConceptIDValidator = masterystateDescConceptID.Validators[0].(func(string) error)
	// masterystateDescPKnown is the schema descriptor for p_known field.
	masterystateDescPKnown := masterystateFields[2].Descriptor()
	// masterystate.PKnownValidator is a validator for the "p_known" field. It is called by the builders before save.
	masterystate.PKnownValidator = func() func(float64) error {
		validators := masterystateDescPKnown.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(p_known float64) error {
			for _, fn := range fns {
				if err := fn(p_known); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// masterystateDescUpdatedAt is the schema descriptor for updated_at field.
	masterystateDescUpdatedAt := masterystateFields[3].Descriptor()
	// masterystate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masterystate.DefaultUpdatedAt = masterystateDescUpdatedAt.Default.(func() time.Time)
	// masterystate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masterystate.UpdateDefaultUpdatedAt = masterystateDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescTimestamp is the schema descriptor for timestamp field.
	quizattemptDescTimestamp := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizattempt.DefaultTimestamp = quizattemptDescTimestamp.Default.(func() time.Time)
	// quizattemptDescAttemptID is the schema descriptor for attempt_id field.
	quizattemptDescAttemptID := quizattemptFields[0].Descriptor()
	// quizattempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizattempt.AttemptIDValidator = quizattemptDescAttemptID.Validators[0].(func(string) error)
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptFields[1].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescTopicID is the schema descriptor for topic_id field.
	quizattemptDescTopicID := quizattemptFields[2].Descriptor()
	// quizattempt.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	quizattempt.TopicIDValidator = quizattemptDescTopicID.Validators[0].(func(string) error)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[3].Descriptor()
	// quizattempt.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizattempt.ScoreValidator = func() func(float64) error {
		validators := quizattemptDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizattemptDescAvgTime is the schema descriptor for avg_time field.
	quizattemptDescAvgTime := quizattemptFields[4].Descriptor()
	// quizattempt.AvgTimeValidator is a validator for the "avg_time" field. It is called by the builders before save.
	quizattempt.AvgTimeValidator = quizattemptDescAvgTime.Validators[0].(func(float64) error)
	// quizattemptDescNewDifficulty is the schema descriptor for new_difficulty field.
	quizattemptDescNewDifficulty := quizattemptFields[5].Descriptor()
	// quizattempt.NewDifficultyValidator is a validator for the "new_difficulty" field. It is called by the builders before save.
	quizattempt.NewDifficultyValidator = quizattemptDescNewDifficulty.Validators[0].(func(string) error)
	// quizattemptDescSpeedLabel is the schema descriptor for speed_label field.
	quizattemptDescSpeedLabel := quizattemptFields[6].Descriptor()
	// quizattempt.SpeedLabelValidator is a validator for the "speed_label" field. It is called by the builders before save.
	quizattempt.SpeedLabelValidator = quizattemptDescSpeedLabel.Validators[0].(func(string) error)
	// quizattemptDescMastery is the schema descriptor for mastery field.
	quizattemptDescMastery := quizattemptFields[7].Descriptor()
	// quizattempt.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	quizattempt.MasteryValidator = func() func(float64) error {
		validators := quizattemptDescMastery.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery float64) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// quizattemptDescBehaviorCluster is the schema descriptor for behavior_cluster field.
	quizattemptDescBehaviorCluster := quizattemptFields[8].Descriptor()
	// quizattempt.BehaviorClusterValidator is a validator for the "behavior_cluster" field. It is called by the builders before save.
	quizattempt.BehaviorClusterValidator = quizattemptDescBehaviorCluster.Validators[0].(func(string) error)
	// quizattemptDescAction is the schema descriptor for action field.
	quizattemptDescAction := quizattemptFields[9].Descriptor()
	// quizattempt.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizattempt.ActionValidator = quizattemptDescAction.Validators[0].(func(string) error)
	// quizattemptDescMessage is the schema descriptor for message field.
	quizattemptDescMessage := quizattemptFields[10].Descriptor()
	// quizattempt.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	quizattempt.MessageValidator = quizattemptDescMessage.Validators[0].(func(string) error)
	// quizattemptDescNextDifficulty is the schema descriptor for next_difficulty field.
	quizattemptDescNextDifficulty := quizattemptFields[11].Descriptor()
	// quizattempt.NextDifficultyValidator is a validator for the "next_difficulty" field. It is called by the builders before save.
	quizattempt.NextDifficultyValidator = quizattemptDescNextDifficulty.Validators[0].(func(string) error)
}
