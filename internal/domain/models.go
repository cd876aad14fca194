package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workspace is one installed Slack workspace. Created on the first successful
// OAuth callback; the access token is overwritten on every re-authorization.
type Workspace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID      string             `bson:"teamId" json:"teamId"`
	Name        string             `bson:"name" json:"name"`
	AccessToken string             `bson:"accessToken" json:"-"`
	Companies   []string           `bson:"companies" json:"companies"`
	CalendarID  string             `bson:"calendarId,omitempty" json:"calendarId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleRecord is one scheduled mock interview. Immutable once created;
// uniqueness is enforced on (studentCode, companyName, interviewDate,
// interviewStartTime, interviewEndTime).
type ScheduleRecord struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID             string             `bson:"teamId" json:"teamId"`
	UserID             string             `bson:"userId" json:"userId"`
	BatchName          string             `bson:"batchName" json:"batchName"`
	Name               string             `bson:"name" json:"name"`
	StudentCode        string             `bson:"studentCode" json:"studentCode"`
	Email              string             `bson:"email" json:"email"`
	CompanyName        string             `bson:"companyName" json:"companyName"`
	InterviewDate      string             `bson:"interviewDate" json:"interviewDate"`
	InterviewStartTime string             `bson:"interviewStartTime" json:"interviewStartTime"`
	InterviewEndTime   string             `bson:"interviewEndTime" json:"interviewEndTime"`
	InterviewRound     string             `bson:"interviewRound" json:"interviewRound"`
	InterviewType      []string           `bson:"interviewType" json:"interviewType"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExperienceRecord is one interview-feedback submission. Immutable once
// created; uniqueness is enforced on (studentCode, companyName, interviewRound).
type ExperienceRecord struct {
	ID                          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamID                      string             `bson:"teamId" json:"teamId"`
	UserID                      string             `bson:"userId" json:"userId"`
	BatchName                   string             `bson:"batchName" json:"batchName"`
	StudentCode                 string             `bson:"studentCode" json:"studentCode"`
	Email                       string             `bson:"email" json:"email"`
	CompanyName                 string             `bson:"companyName" json:"companyName"`
	InterviewRound              string             `bson:"interviewRound" json:"interviewRound"`
	InterviewType               string             `bson:"interviewType" json:"interviewType"`
	InterviewerDetails          string             `bson:"interviewerDetails" json:"interviewerDetails"`
	QuestionsAsked              string             `bson:"questionsAsked" json:"questionsAsked"`
	CodingTopicsAsked           string             `bson:"codingTopicsAsked" json:"codingTopicsAsked"`
	DSATopicsAsked              string             `bson:"dsaTopicsAsked" json:"dsaTopicsAsked"`
	WhatWentWell                string             `bson:"whatWentWell" json:"whatWentWell"`
	WhatWentWrong               string             `bson:"whatWentWrong" json:"whatWentWrong"`
	ExtentTopicsCovered         string             `bson:"extentTopicsCovered" json:"extentTopicsCovered"`
	TopicsNotOrPartiallyCovered string             `bson:"topicsNotOrPartiallyCovered" json:"topicsNotOrPartiallyCovered"`
	MovedToNextRoundOrAnOffer   string             `bson:"movedToNextRoundOrAnOffer" json:"movedToNextRoundOrAnOffer"`
	WantToChange                string             `bson:"wantToChange" json:"wantToChange"`
	AssignmentOrRelevantDocLink string             `bson:"assignmentOrRelevantDocLink,omitempty" json:"assignmentOrRelevantDocLink,omitempty"`
	CreatedAt                   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GlobalSetting is a named configuration entry holding a list of strings, a
// scalar string, or both. List values merge via set union, the scalar is
// replaced on update.
type GlobalSetting struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	ArrayValue  []string           `bson:"arrayValue" json:"arrayValue"`
	StringValue string             `bson:"stringValue" json:"stringValue"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Well-known global setting names used to populate form dropdowns.
const (
	SettingInterviewTypes = "interviewTypes"
	SettingCodingTopics   = "codingTopics"
	SettingDSATopics      = "dsaTopics"
)
