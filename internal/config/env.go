// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, STORAGE_DB_, SERVER_, SYNC_, LOG_ and
// CENTRAL_ variables. Unset variables leave their fields zero so that the
// flag, file and default sources can still fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("parse env configuration: %w", err)
	}
	return nil
}
