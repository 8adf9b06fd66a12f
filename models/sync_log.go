// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStep is one stage of a sync run.
type SyncStep string

const (
	SyncStepPrepareInitial SyncStep = "PREPARE_INITIAL"
	SyncStepPush           SyncStep = "PUSH"
	SyncStepPullCentral    SyncStep = "PULL_CENTRAL"
	SyncStepPullRemote     SyncStep = "PULL_REMOTE"
	SyncStepIntegrate      SyncStep = "INTEGRATE"
)

// SyncSteps lists the steps in the order a run executes them.
func SyncSteps() []SyncStep {
	return []SyncStep{
		SyncStepPrepareInitial,
		SyncStepPush,
		SyncStepPullCentral,
		SyncStepPullRemote,
		SyncStepIntegrate,
	}
}

// SyncErrorCode classifies the failure recorded for a run.
type SyncErrorCode string

const (
	SyncErrorCodeConnection                SyncErrorCode = "CONNECTION_ERROR"
	SyncErrorCodeSiteAuthFailed            SyncErrorCode = "SITE_AUTH_FAILED"
	SyncErrorCodeSiteNotFound              SyncErrorCode = "SITE_NOT_FOUND"
	SyncErrorCodeIntegrationTimeoutReached SyncErrorCode = "INTEGRATION_TIMEOUT_REACHED"
	SyncErrorCodeIntegrationNotStarted     SyncErrorCode = "INTEGRATION_NOT_STARTED"
	SyncErrorCodeAPI                       SyncErrorCode = "API_ERROR"
	SyncErrorCodeIntegration               SyncErrorCode = "INTEGRATION_ERROR"
	SyncErrorCodeUnknown                   SyncErrorCode = "UNKNOWN"
)

// SyncStepLog holds the timing and progress of a single step.
type SyncStepLog struct {
	Started  *time.Time `json:"started,omitempty"`
	Finished *time.Time `json:"finished,omitempty"`
	Total    *int64     `json:"total,omitempty"`
	Done     *int64     `json:"done,omitempty"`
}

// SyncLog is the persisted record of one sync run.
type SyncLog struct {
	ID           string                   `json:"id"`
	Started      time.Time                `json:"started"`
	Finished     *time.Time               `json:"finished,omitempty"`
	Steps        map[SyncStep]SyncStepLog `json:"steps"`
	ErrorMessage *string                  `json:"error_message,omitempty"`
	ErrorCode    *SyncErrorCode           `json:"error_code,omitempty"`
}

// Step returns the log of step, creating an empty one when missing.
func (l *SyncLog) Step(step SyncStep) SyncStepLog {
	if l.Steps == nil {
		l.Steps = make(map[SyncStep]SyncStepLog)
	}
	return l.Steps[step]
}

// SetStep stores the log of step.
func (l *SyncLog) SetStep(step SyncStep, s SyncStepLog) {
	if l.Steps == nil {
		l.Steps = make(map[SyncStep]SyncStepLog)
	}
	l.Steps[step] = s
}

// SyncStatus is what the site reports about its sync state.
type SyncStatus struct {
	IsRunning               bool     `json:"is_running"`
	SiteID                  *int64   `json:"site_id,omitempty"`
	SiteUUID                *string  `json:"site_uuid,omitempty"`
	QueueInitialised        bool     `json:"queue_initialised"`
	InitialRemoteDataSynced bool     `json:"initial_remote_data_synced"`
	PushCursor              int64    `json:"push_cursor"`
	CentralCursor           int64    `json:"central_cursor"`
	LastRun                 *SyncLog `json:"last_run,omitempty"`
	LastSuccessfulRun       *SyncLog `json:"last_successful_run,omitempty"`
}
