package flagx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Addr string `json:"addr" yaml:"addr"`
	Port int    `json:"port" yaml:"port"`
}

func TestDecodeConfigFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	tests := []struct {
		name    string
		path    string
		want    sample
		wantErr string
	}{
		{name: "json", path: write("c.json", `{"addr":"a:1","port":7}`), want: sample{Addr: "a:1", Port: 7}},
		{name: "yaml", path: write("c.yaml", "addr: b:2\nport: 8\n"), want: sample{Addr: "b:2", Port: 8}},
		{name: "yml upper case", path: write("c.YML", "addr: c:3\n"), want: sample{Addr: "c:3"}},
		{name: "broken json", path: write("bad.json", `{`), wantErr: "failed to decode config file"},
		{name: "missing", path: filepath.Join(dir, "nope.json"), wantErr: "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got sample
			err := DecodeConfigFile(tt.path, &got)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
