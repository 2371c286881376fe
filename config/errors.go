// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid value")

// ErrDecode wraps YAML syntax errors and unknown keys.
var ErrDecode = errors.New("config: cannot decode")
