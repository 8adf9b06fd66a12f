// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/site-sync/models"
)

// mapHTTPError returns nil for 2xx responses and a sentinel error wrapping
// the decoded [models.APIError] (or the raw body) otherwise. Callers can
// reach the API error with [errors.As].
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := responseDetail(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, detail)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConflict, detail)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w", ErrBadGateway, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("%w: http %d: %w", ErrUnexpectedStatus, resp.StatusCode(), detail)
	}
}

func responseDetail(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))

	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Code != "" {
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
		}
		return apiErr
	}
	if body == "" {
		return errors.New(http.StatusText(resp.StatusCode()))
	}
	return errors.New(body)
}
