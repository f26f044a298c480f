// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package apiresponse

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefix of the environment variables overriding settings
	EnvPrefix = "APIRESPONSE"
	// ResponseModeKey settings key of the output mode
	ResponseModeKey = "response.mode"
	// LogLevelKey settings key of the log level
	LogLevelKey = "log.level"
)

type Settings interface {
	// GetValue the value of a settings key
	GetValue(key string) (interface{}, error)
}

type Configuration struct {
	*viper.Viper
}

var onceConfig sync.Once
var Config *Configuration = nil

// NewConfiguration a configuration holding the defaults, overridable through
// APIRESPONSE_* environment variables
func NewConfiguration() *Configuration {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(LogLevelKey, "info")
	v.SetDefault(ResponseModeKey, ModeGateway.GetTypeName())
	return &Configuration{v}
}

func newDefaultConfig() {
	onceConfig.Do(func() {
		Config = NewConfiguration()
	})

}

func (c *Configuration) GetValue(key string) (interface{}, error) {
	if !c.IsSet(key) {
		return nil, fmt.Errorf("settings key %s not set", key)
	}
	return c.Get(key), nil
}

// Load read settings.yaml from dir
func (c *Configuration) Load(dir string) error {
	c.AddConfigPath(dir)
	c.SetConfigName("settings")
	c.SetConfigType("yaml")
	if err := c.ReadInConfig(); err != nil {
		return fmt.Errorf("read settings from %s: %w", dir, err)
	}
	return nil
}

func (c *Configuration) load(dir string) bool {
	return c.Load(dir) == nil
}

// Mode the configured output mode
func (c *Configuration) Mode() (Mode, error) {
	return ParseMode(c.GetString(ResponseModeKey))
}

// NewFromConfig create a finalizer using the mode of config. opts are applied afterwards.
func NewFromConfig(config *Configuration, opts ...Option) (*Finalizer, error) {
	mode, err := config.Mode()
	if err != nil {
		return nil, err
	}
	return NewFinalizer(append([]Option{WithMode(mode)}, opts...)...), nil
}

func initSettings() {
	newDefaultConfig()
	wd, _ := os.Getwd()
	Config.load(wd)
}
