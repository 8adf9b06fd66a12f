// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Site side sync errors.
var (
	ErrIntegrationNotStarted     = errors.New("central server did not start integrating the pushed records")
	ErrIntegrationTimeoutReached = errors.New("timed out waiting for central integration")
	ErrTranslatorNotFound        = errors.New("no translator for table")
	ErrSyncLogger                = errors.New("failed to persist sync log")
	ErrSyncAlreadyRunning        = errors.New("sync is already running")
	ErrIntegrationFailed         = errors.New("failed to integrate record")
)

// Central side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrSiteNotInitialised  = errors.New("site is not initialised")
	ErrRemoteTablePushed   = errors.New("table is not pushed by sites")
)
