// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package unitfmt

import (
	"embed"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed units
var unitsFS embed.FS

// unitTable maps locales to localized base-unit symbols, loaded once from
// the embedded TOML dictionaries.
type unitTable struct {
	names   []string
	dicts   map[string]map[string]string
	matcher language.Matcher
}

var loadUnits = sync.OnceValue(func() *unitTable {
	t := &unitTable{dicts: make(map[string]map[string]string)}
	var names []string
	dirs, err := unitsFS.ReadDir("units")
	if err != nil {
		logrus.Errorf("read unit symbol bundles error: %v", err)
	}
	for _, d := range dirs {
		if d.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(d.Name(), ".toml")
		if !ok {
			continue
		}
		dict := make(map[string]string)
		fd, err := unitsFS.Open(path.Join("units", d.Name()))
		if err != nil {
			logrus.Errorf("load unit symbols '%s' error: %v", name, err)
			continue
		}
		if _, err := toml.NewDecoder(fd).Decode(&dict); err != nil {
			_ = fd.Close()
			logrus.Errorf("load unit symbols '%s' error: %v", name, err)
			continue
		}
		_ = fd.Close()
		t.dicts[name] = dict
		names = append(names, name)
	}
	// en-US leads so the matcher falls back to it
	var tags []language.Tag
	for _, n := range append(pickFirst(names, "en-US"), others(names, "en-US")...) {
		tag, err := language.Parse(n)
		if err != nil {
			logrus.Errorf("unit symbols locale '%s' error: %v", n, err)
			continue
		}
		tags = append(tags, tag)
		t.names = append(t.names, n)
	}
	if len(tags) == 0 {
		tags = []language.Tag{language.AmericanEnglish}
		t.names = []string{"en-US"}
	}
	t.matcher = language.NewMatcher(tags)
	return t
})

func pickFirst(names []string, want string) []string {
	for _, n := range names {
		if n == want {
			return []string{want}
		}
	}
	return nil
}

func others(names []string, skip string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != skip {
			out = append(out, n)
		}
	}
	return out
}

// byteSymbol resolves the localized symbol for the byte, "B" unless a
// bundle overrides it. French writes the octet as "o".
func byteSymbol(tag language.Tag) string {
	t := loadUnits()
	_, i, _ := t.matcher.Match(tag)
	if d, ok := t.dicts[t.names[i]]; ok {
		if s, ok := d["B"]; ok {
			return s
		}
	}
	return "B"
}
