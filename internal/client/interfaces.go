// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/atotto/clipboard"

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// WriteAll implements [Clipboard] on top of atotto/clipboard.
func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
