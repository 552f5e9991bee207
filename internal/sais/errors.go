// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sais

import "errors"

// ErrInvalidArgument reports a nil, negative, or out-of-range
// argument. No mutation has occurred by the time it is returned.
var ErrInvalidArgument = errors.New("sais: invalid argument")

// ErrResourceExhausted reports an allocation failure somewhere in the
// recursion. The caller must discard SA; it is not rolled back.
var ErrResourceExhausted = errors.New("sais: resource exhausted")
