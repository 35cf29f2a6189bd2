// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// MaxIDAttempts exposes maxIDAttempts to the service_test package.
const MaxIDAttempts = maxIDAttempts
