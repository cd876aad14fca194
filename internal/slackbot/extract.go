package slackbot

import (
	"fmt"
	"strings"

	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/slack-go/slack"
)

// submissionValues is a typed view over the nested state of a submitted
// modal. Reads of required fields record what is missing instead of failing
// one by one, so an extraction either yields a complete record or a single
// error naming every absent field.
type submissionValues struct {
	values  map[string]map[string]slack.BlockAction
	missing []string
}

func newSubmissionValues(view slack.View) *submissionValues {
	v := &submissionValues{}
	if view.State != nil {
		v.values = view.State.Values
	}
	return v
}

func (v *submissionValues) action(blockID, actionID string) (slack.BlockAction, bool) {
	block, ok := v.values[blockID]
	if !ok {
		return slack.BlockAction{}, false
	}
	action, ok := block[actionID]
	return action, ok
}

func (v *submissionValues) require(blockID, actionID, value string) string {
	if value == "" {
		v.missing = append(v.missing, blockID+"."+actionID)
	}
	return value
}

func (v *submissionValues) text(blockID, actionID string) string {
	action, _ := v.action(blockID, actionID)
	return v.require(blockID, actionID, action.Value)
}

func (v *submissionValues) optionalText(blockID, actionID string) string {
	action, _ := v.action(blockID, actionID)
	return action.Value
}

func (v *submissionValues) selected(blockID, actionID string) string {
	action, _ := v.action(blockID, actionID)
	return v.require(blockID, actionID, action.SelectedOption.Value)
}

func (v *submissionValues) selectedValues(blockID, actionID string) []string {
	action, ok := v.action(blockID, actionID)
	if !ok || len(action.SelectedOptions) == 0 {
		v.missing = append(v.missing, blockID+"."+actionID)
		return nil
	}

	values := make([]string, 0, len(action.SelectedOptions))
	for _, option := range action.SelectedOptions {
		values = append(values, option.Value)
	}
	return values
}

func (v *submissionValues) date(blockID, actionID string) string {
	action, _ := v.action(blockID, actionID)
	return v.require(blockID, actionID, action.SelectedDate)
}

func (v *submissionValues) timeOfDay(blockID, actionID string) string {
	action, _ := v.action(blockID, actionID)
	return v.require(blockID, actionID, action.SelectedTime)
}

func (v *submissionValues) err() error {
	if len(v.missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required submission fields: %s", strings.Join(v.missing, ", "))
}

// extractSchedule reads a schedule submission atomically: any missing field
// fails the whole extraction and no record is produced.
func extractSchedule(callback slack.InteractionCallback) (domain.ScheduleRecord, error) {
	v := newSubmissionValues(callback.View)

	record := domain.ScheduleRecord{
		TeamID:             callback.Team.ID,
		UserID:             callback.User.ID,
		BatchName:          v.text(blockBatchName, actionBatchName),
		Name:               v.text(blockCandidateName, actionCandidateName),
		StudentCode:        v.text(blockStudentCode, actionStudentCode),
		Email:              v.text(blockEmail, actionEmail),
		CompanyName:        v.selected(blockCompany, actionCompany),
		InterviewDate:      v.date(blockInterviewDate, actionInterviewDate),
		InterviewStartTime: v.timeOfDay(blockStartTime, actionStartTime),
		InterviewEndTime:   v.timeOfDay(blockEndTime, actionEndTime),
		InterviewRound:     v.text(blockRound, actionRound),
		InterviewType:      v.selectedValues(blockInterviewType, actionInterviewType),
	}

	if callback.Team.ID == "" {
		v.missing = append(v.missing, "team.id")
	}

	if err := v.err(); err != nil {
		return domain.ScheduleRecord{}, err
	}

	return record, nil
}

// extractExperience reads a feedback submission atomically. Multi-select
// topic lists are joined into a single comma-separated string.
func extractExperience(callback slack.InteractionCallback) (domain.ExperienceRecord, error) {
	v := newSubmissionValues(callback.View)

	record := domain.ExperienceRecord{
		TeamID:                      callback.Team.ID,
		UserID:                      callback.User.ID,
		BatchName:                   v.text(blockBatchName, actionBatchName),
		StudentCode:                 v.text(blockStudentCode, actionStudentCode),
		Email:                       v.text(blockEmail, actionEmail),
		CompanyName:                 v.selected(blockCompany, actionCompany),
		InterviewRound:              v.text(blockRound, actionRound),
		InterviewType:               v.selected(blockInterviewType, actionInterviewType),
		InterviewerDetails:          v.text(blockInterviewerDetails, actionInterviewerDetails),
		QuestionsAsked:              v.text(blockQuestionsAsked, actionQuestionsAsked),
		CodingTopicsAsked:           strings.Join(v.selectedValues(blockCodingTopics, actionCodingTopics), ", "),
		DSATopicsAsked:              strings.Join(v.selectedValues(blockDSATopics, actionDSATopics), ", "),
		WhatWentWell:                v.text(blockWhatWentWell, actionWhatWentWell),
		WhatWentWrong:               v.text(blockWhatWentWrong, actionWhatWentWrong),
		ExtentTopicsCovered:         v.text(blockExtentCovered, actionExtentCovered),
		TopicsNotOrPartiallyCovered: v.text(blockTopicsNotCovered, actionTopicsNotCovered),
		MovedToNextRoundOrAnOffer:   v.selected(blockMovedToNextRound, actionMovedToNextRound),
		WantToChange:                v.text(blockWantToChange, actionWantToChange),
		AssignmentOrRelevantDocLink: v.optionalText(blockDocLink, actionDocLink),
	}

	if callback.Team.ID == "" {
		v.missing = append(v.missing, "team.id")
	}

	if err := v.err(); err != nil {
		return domain.ExperienceRecord{}, err
	}

	return record, nil
}
