package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"default", nil, "en-US"},
		{"lang", map[string]string{"LANG": "fr_FR.UTF-8"}, "fr-FR"},
		{"posix", map[string]string{"LANG": "C"}, "en-US"},
		{"lc-all-wins", map[string]string{"LANG": "de_DE.UTF-8", "LC_ALL": "fr_FR.UTF-8"}, "fr-FR"},
		{"modifier", map[string]string{"LANG": "de_DE.UTF-8@euro"}, "de-DE"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
				t.Setenv(k, "")
			}
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			tag, err := Detect()
			require.NoError(t, err)
			assert.Equal(t, c.want, tag.String())
		})
	}
}
