package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messages []string

func (m *messages) Printf(message string, args ...interface{}) {
	*m = append(*m, fmt.Sprintf(message, args...))
}

func writeEnvFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveFindsKey(t *testing.T) {
	path := writeEnvFile(t, "WDS_SOCKET_PORT=443\nREACT_APP_BACKEND_URL=https://backend.example.com\n")

	value := Source{Path: path, Key: DefaultKey}.Resolve(nil)

	require.True(t, value.IsDefined())
	assert.Equal(t, "https://backend.example.com", value.StringValue())
}

func TestResolveHandlesDotenvSyntax(t *testing.T) {
	path := writeEnvFile(t, "# frontend settings\n\nexport REACT_APP_BACKEND_URL=\"http://localhost:8001/\"\n")

	value := Source{Path: path, Key: DefaultKey}.Resolve(nil)

	assert.Equal(t, "http://localhost:8001", value.StringValue())
}

func TestResolveValueContainingEquals(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=http://host:8001?a=b\n")

	value := Source{Path: path, Key: DefaultKey}.Resolve(nil)

	assert.Equal(t, "http://host:8001?a=b", value.StringValue())
}

func TestResolveIgnoresMalformedLines(t *testing.T) {
	for name, content := range map[string]string{
		"garbage before":           "SOME GARBAGE LINE\nREACT_APP_BACKEND_URL=http://a:8001\n",
		"unterminated quote after": "REACT_APP_BACKEND_URL=http://a:8001\nBROKEN=\"unterminated\n",
	} {
		t.Run(name, func(t *testing.T) {
			var logged messages

			value := Source{Path: writeEnvFile(t, content), Key: DefaultKey}.Resolve(&logged)

			require.True(t, value.IsDefined(), "logged: %v", logged)
			assert.Equal(t, "http://a:8001", value.StringValue())
			assert.Empty(t, logged)
		})
	}
}

func TestResolveTakesDollarSignLiterally(t *testing.T) {
	for name, line := range map[string]string{
		"unquoted":      `REACT_APP_BACKEND_URL=http://h$PORT`,
		"double quoted": `REACT_APP_BACKEND_URL="http://h$PORT"`,
		"single quoted": `REACT_APP_BACKEND_URL='http://h$PORT'`,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeEnvFile(t, "PORT=8001\n"+line+"\n")

			value := Source{Path: path, Key: DefaultKey}.Resolve(nil)

			assert.Equal(t, "http://h$PORT", value.StringValue())
		})
	}
}

func TestResolveUsesFirstAssignment(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=http://first\nREACT_APP_BACKEND_URL=http://second\n")

	value := Source{Path: path, Key: DefaultKey}.Resolve(nil)

	assert.Equal(t, "http://first", value.StringValue())
}

func TestResolveDoesNotMatchKeyPrefix(t *testing.T) {
	path := writeEnvFile(t, "# REACT_APP_BACKEND_URL=http://commented\nREACT_APP_BACKEND_URL_OLD=http://old\nREACT_APP_BACKEND_URL=http://current\n")

	value := Source{Path: path, Key: DefaultKey}.Resolve(nil)

	assert.Equal(t, "http://current", value.StringValue())
}

func TestResolveUnparseableKeyLine(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=\"http://a:8001\n")
	var logged messages

	value := Source{Path: path, Key: DefaultKey}.Resolve(&logged)

	assert.False(t, value.IsDefined())
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Error parsing REACT_APP_BACKEND_URL")
}

func TestResolveMissingKey(t *testing.T) {
	path := writeEnvFile(t, "OTHER=1\n")
	var logged messages

	value := Source{Path: path, Key: DefaultKey}.Resolve(&logged)

	assert.False(t, value.IsDefined())
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "does not define REACT_APP_BACKEND_URL")
}

func TestResolveEmptyValue(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=\n")
	var logged messages

	value := Source{Path: path, Key: DefaultKey}.Resolve(&logged)

	assert.False(t, value.IsDefined())
	assert.Len(t, logged, 1)
}

func TestResolveMissingFile(t *testing.T) {
	var logged messages

	value := Source{Path: filepath.Join(t.TempDir(), "nope.env"), Key: DefaultKey}.Resolve(&logged)

	assert.False(t, value.IsDefined())
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "Error reading")
}

func TestDefaultSource(t *testing.T) {
	s := DefaultSource()
	assert.Equal(t, "/app/frontend/.env", s.Path)
	assert.Equal(t, "REACT_APP_BACKEND_URL", s.Key)
	assert.Equal(t, "REACT_APP_BACKEND_URL in /app/frontend/.env", s.String())
}
