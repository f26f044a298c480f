// Copyright (c) 2023 wetrycode
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apiresponse

import (
	"fmt"
	"strings"
)

// Mode the output mode of the finalizer
type Mode uint

const (
	// ModeGateway full envelopes and JSON failure messages
	ModeGateway Mode = iota
	// ModeOffline bare bodies and "[status] message" failure messages
	ModeOffline
)

// GetTypeName the configuration name of the mode
func (m Mode) GetTypeName() string {
	switch m {
	case ModeGateway:
		return "gateway"
	case ModeOffline:
		return "offline"
	}
	return "unknown"
}

func (m Mode) String() string {
	return m.GetTypeName()
}

// ParseMode parse a configuration value into a Mode, empty means gateway
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gateway":
		return ModeGateway, nil
	case "offline":
		return ModeOffline, nil
	}
	return ModeGateway, fmt.Errorf("%w: %s", ErrInvalidMode, name)
}
