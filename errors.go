// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package ssa

import "errors"

// ErrInvalidArgument is returned when a caller-supplied fs, k, or text
// argument is out of range for the operation requested.
var ErrInvalidArgument = errors.New("ssa: invalid argument")
