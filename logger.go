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

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger = logrus.New()
var ProcessId string = uuid.New().String()

// DefaultFieldHook stamps every entry with the host and the process id
type DefaultFieldHook struct {
	hostname string
}

func newDefaultFieldHook() *DefaultFieldHook {
	name, _ := os.Hostname()
	return &DefaultFieldHook{hostname: name}
}

func (hook *DefaultFieldHook) Fire(entry *logrus.Entry) error {
	entry.Data["hostname"] = hook.hostname
	entry.Data["processId"] = ProcessId
	return nil
}

func (hook *DefaultFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// GetLogger a named entry of the package logger
func GetLogger(Name string) *logrus.Entry {

	log := logger.WithFields(logrus.Fields{
		"logName": Name,
	})

	return log
}

// logLevel the level configured under log.level, unit test runs only log errors
func logLevel(config *Configuration) (logrus.Level, error) {
	level := config.GetString("log.level")
	if _, ex := os.LookupEnv("UNITTEST"); ex {
		level = "error"
	}
	level = strings.TrimSpace(level)
	if level == "" {
		level = "info"
	}
	return logrus.ParseLevel(level)
}

// ConfigureLogger apply the log settings of config to the package logger
func ConfigureLogger(config *Configuration) error {
	level, err := logLevel(config)
	if err != nil {
		return fmt.Errorf("parse level: %w", err)
	}
	logger.SetReportCaller(true)
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceQuote:      true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.SetLevel(level)
	hooks := make(logrus.LevelHooks)
	hooks.Add(newDefaultFieldHook())
	logger.ReplaceHooks(hooks)
	return nil
}

func initLog() {
	if err := ConfigureLogger(Config); err != nil {
		panic(fmt.Errorf("fatal error parse level: %s", err))
	}
}
