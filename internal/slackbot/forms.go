package slackbot

import (
	"github.com/mockdesk/mockdesk/internal/domain"

	"github.com/slack-go/slack"
)

// Callback ids shared by shortcuts and the modals they open.
const (
	CallbackInterviewSchedule   = "interview_schedule"
	CallbackInterviewExperience = "interview_experience"
)

// Block and action ids of the modal input fields. Extraction reads the
// submitted state back through the same ids.
const (
	blockBatchName          = "batch_name_block"
	blockCandidateName      = "candidate_name_block"
	blockStudentCode        = "student_code_block"
	blockEmail              = "email_block"
	blockCompany            = "company_block"
	blockInterviewDate      = "interview_date_block"
	blockStartTime          = "start_time_block"
	blockEndTime            = "end_time_block"
	blockRound              = "round_block"
	blockInterviewType      = "interview_type_block"
	blockInterviewerDetails = "interviewer_details_block"
	blockQuestionsAsked     = "questions_asked_block"
	blockCodingTopics       = "coding_topics_block"
	blockDSATopics          = "dsa_topics_block"
	blockWhatWentWell       = "what_went_well_block"
	blockWhatWentWrong      = "what_went_wrong_block"
	blockExtentCovered      = "extent_topics_covered_block"
	blockTopicsNotCovered   = "topics_not_covered_block"
	blockMovedToNextRound   = "moved_to_next_round_block"
	blockWantToChange       = "want_to_change_block"
	blockDocLink            = "doc_link_block"

	actionBatchName          = "batch_name"
	actionCandidateName      = "candidate_name"
	actionStudentCode        = "student_code"
	actionEmail              = "email"
	actionCompany            = "company"
	actionInterviewDate      = "interview_date"
	actionStartTime          = "start_time"
	actionEndTime            = "end_time"
	actionRound              = "round"
	actionInterviewType      = "interview_type"
	actionInterviewerDetails = "interviewer_details"
	actionQuestionsAsked     = "questions_asked"
	actionCodingTopics       = "coding_topics"
	actionDSATopics          = "dsa_topics"
	actionWhatWentWell       = "what_went_well"
	actionWhatWentWrong      = "what_went_wrong"
	actionExtentCovered      = "extent_topics_covered"
	actionTopicsNotCovered   = "topics_not_covered"
	actionMovedToNextRound   = "moved_to_next_round"
	actionWantToChange       = "want_to_change"
	actionDocLink            = "doc_link"
)

// NewScheduleModal builds the interview-schedule form. Every call produces an
// independent view so concurrent renders for different workspaces cannot see
// each other's option lists.
func NewScheduleModal(companies, interviewTypes []string) slack.ModalViewRequest {
	blocks := []slack.Block{
		textInput(blockBatchName, actionBatchName, "Batch / Domain", false, false),
		textInput(blockCandidateName, actionCandidateName, "Candidate Name", false, false),
		textInput(blockStudentCode, actionStudentCode, "Student Code", false, false),
		textInput(blockEmail, actionEmail, "Candidate Email", false, false),
		staticSelect(blockCompany, actionCompany, "Company", companies),
		datePicker(blockInterviewDate, actionInterviewDate, "Interview Date"),
		timePicker(blockStartTime, actionStartTime, "Start Time"),
		timePicker(blockEndTime, actionEndTime, "End Time"),
		textInput(blockRound, actionRound, "Interview Round", false, false),
		multiStaticSelect(blockInterviewType, actionInterviewType, "Interview Type", interviewTypes),
	}

	return modalView(CallbackInterviewSchedule, "Schedule Interview", blocks)
}

// NewExperienceModal builds the interview-feedback form. Same copy-on-render
// contract as NewScheduleModal.
func NewExperienceModal(companies, interviewTypes, codingTopics, dsaTopics []string) slack.ModalViewRequest {
	docLink := textInput(blockDocLink, actionDocLink, "Assignment / Relevant Doc Link", false, true)

	blocks := []slack.Block{
		textInput(blockBatchName, actionBatchName, "Batch", false, false),
		textInput(blockStudentCode, actionStudentCode, "Student Code", false, false),
		textInput(blockEmail, actionEmail, "Email", false, false),
		staticSelect(blockCompany, actionCompany, "Company", companies),
		textInput(blockRound, actionRound, "Interview Round", false, false),
		staticSelect(blockInterviewType, actionInterviewType, "Interview Type", interviewTypes),
		textInput(blockInterviewerDetails, actionInterviewerDetails, "Interviewer Details", true, false),
		textInput(blockQuestionsAsked, actionQuestionsAsked, "Questions Asked", true, false),
		multiStaticSelect(blockCodingTopics, actionCodingTopics, "Coding Topics Asked", codingTopics),
		multiStaticSelect(blockDSATopics, actionDSATopics, "DSA Topics Asked", dsaTopics),
		textInput(blockWhatWentWell, actionWhatWentWell, "What Went Well", true, false),
		textInput(blockWhatWentWrong, actionWhatWentWrong, "What Went Wrong", true, false),
		textInput(blockExtentCovered, actionExtentCovered, "To What Extent Were Topics Covered", false, false),
		textInput(blockTopicsNotCovered, actionTopicsNotCovered, "Topics Not Or Partially Covered", true, false),
		yesNoSelect(blockMovedToNextRound, actionMovedToNextRound, "Moved To Next Round Or Got An Offer"),
		textInput(blockWantToChange, actionWantToChange, "What Would You Change", true, false),
		docLink,
	}

	return modalView(CallbackInterviewExperience, "Interview Experience", blocks)
}

func modalView(callbackID, title string, blocks []slack.Block) slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: callbackID,
		Title:      slack.NewTextBlockObject(slack.PlainTextType, title, true, false),
		Submit:     slack.NewTextBlockObject(slack.PlainTextType, "Submit", true, false),
		Close:      slack.NewTextBlockObject(slack.PlainTextType, "Cancel", true, false),
		Blocks:     slack.Blocks{BlockSet: blocks},
	}
}

func textInput(blockID, actionID, label string, multiline, optional bool) *slack.InputBlock {
	element := slack.NewPlainTextInputBlockElement(nil, actionID)
	element.Multiline = multiline

	block := slack.NewInputBlock(blockID, plainText(label), nil, element)
	block.Optional = optional
	return block
}

func staticSelect(blockID, actionID, label string, labels []string) *slack.InputBlock {
	element := slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, nil, actionID, selectOptions(labels)...)
	return slack.NewInputBlock(blockID, plainText(label), nil, element)
}

func multiStaticSelect(blockID, actionID, label string, labels []string) *slack.InputBlock {
	element := slack.NewOptionsMultiSelectBlockElement(slack.MultiOptTypeStatic, nil, actionID, selectOptions(labels)...)
	return slack.NewInputBlock(blockID, plainText(label), nil, element)
}

func yesNoSelect(blockID, actionID, label string) *slack.InputBlock {
	options := []*slack.OptionBlockObject{
		slack.NewOptionBlockObject("yes", plainText("Yes"), nil),
		slack.NewOptionBlockObject("no", plainText("No"), nil),
	}
	element := slack.NewOptionsSelectBlockElement(slack.OptTypeStatic, nil, actionID, options...)
	return slack.NewInputBlock(blockID, plainText(label), nil, element)
}

func datePicker(blockID, actionID, label string) *slack.InputBlock {
	return slack.NewInputBlock(blockID, plainText(label), nil, slack.NewDatePickerBlockElement(actionID))
}

func timePicker(blockID, actionID, label string) *slack.InputBlock {
	return slack.NewInputBlock(blockID, plainText(label), nil, slack.NewTimePickerBlockElement(actionID))
}

// selectOptions maps stored names to options: title-cased label, machine
// value derived by trim/lower/space-to-hyphen.
func selectOptions(labels []string) []*slack.OptionBlockObject {
	options := make([]*slack.OptionBlockObject, 0, len(labels))
	for _, label := range labels {
		options = append(options, slack.NewOptionBlockObject(domain.OptionValue(label), plainText(domain.TitleCase(label)), nil))
	}
	return options
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}
