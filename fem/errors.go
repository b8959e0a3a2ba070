// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// ConfigurationError indicates an inconsistent DOF partition or boundary
// specification. Detected once, before iterating; fatal, not retried.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func confErr(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{io.Sf("fem: "+format, args...)}
}

// SingularSystemError indicates that the reduced tangent is not invertible to
// working precision. Fatal for the current increment; surfaces to the driver
// as a divergence.
type SingularSystemError struct {
	msg string
}

func (e *SingularSystemError) Error() string { return e.msg }

func singErr(format string, args ...interface{}) *SingularSystemError {
	return &SingularSystemError{io.Sf("fem: "+format, args...)}
}
