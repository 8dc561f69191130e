/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package utils

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"":        logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("TESTLOG")
	if !SetLoggerLevel("TESTLOG", "debug") {
		t.Fatal("SetLoggerLevel did not find registered logger")
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Fatalf("logger level = %v, want debug", l.GetLevel())
	}
	if SetLoggerLevel("UNKNOWN", "debug") {
		t.Fatal("SetLoggerLevel found an unregistered logger")
	}
}

func TestColorFormatter(t *testing.T) {
	f := &ColorFormatter{LoggerName: "FMT", NameWidth: 10}
	entry := &logrus.Entry{
		Logger:  NewLogger("FMT"),
		Level:   logrus.InfoLevel,
		Message: "hello",
	}
	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(string(out), "hello") {
		t.Fatalf("formatted line missing message: %q", out)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Fatal("formatted line missing trailing newline")
	}
}
