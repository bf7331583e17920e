// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package locale detects the process locale from the POSIX environment.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Detect resolves the preferred locale from LC_ALL, LC_MESSAGES and LANG, in
// that precedence order. Unset or unparseable values fall back to en-US.
func Detect() (language.Tag, error) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		return language.Parse(parseEnvLc(v))
	}
	return language.AmericanEnglish, nil
}

func parseEnvLc(s string) string {
	// strip the ".UTF-8" style encoding suffix and any "@euro" modifier
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '@'); i >= 0 {
		s = s[:i]
	}
	// "C" means "ANSI-C" and "POSIX", if locale set to C, we can simple
	// set returned language to "en_US"
	if s == "C" || s == "POSIX" {
		return "en_US"
	}
	return s
}
