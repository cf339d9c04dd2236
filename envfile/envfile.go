// Package envfile resolves the backend base URL from a dotenv-style file.
package envfile

import (
	"bufio"
	"os"
	"strings"

	"github.com/statuscheck/smoke-tests/framework"

	"github.com/joho/godotenv"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultPath is where the frontend keeps its environment, including the backend URL.
const DefaultPath = "/app/frontend/.env"

// DefaultKey is the variable that holds the backend base URL.
const DefaultKey = "REACT_APP_BACKEND_URL"

// Source identifies one variable in one env file.
type Source struct {
	Path string
	Key  string
}

// DefaultSource returns the Source used when no overrides are given.
func DefaultSource() Source {
	return Source{Path: DefaultPath, Key: DefaultKey}
}

func (s Source) String() string {
	return s.Key + " in " + s.Path
}

// Resolve reads the file and returns the variable's value, with surrounding whitespace and any
// trailing slashes removed. Only the first line that assigns the variable is parsed, so other
// lines in the file never affect the result. The result is undefined if the file cannot be read,
// if that line cannot be parsed, or if the variable is missing or empty; the reason is written to
// logger.
func (s Source) Resolve(logger framework.Logger) ldvalue.OptionalString {
	if logger == nil {
		logger = framework.NullLogger()
	}
	line, found, err := s.findLine()
	if err != nil {
		logger.Printf("Error reading %s: %s", s.Path, err)
		return ldvalue.OptionalString{}
	}
	if !found {
		logger.Printf("%s does not define %s", s.Path, s.Key)
		return ldvalue.OptionalString{}
	}
	vars, err := godotenv.Unmarshal(line)
	if err != nil {
		logger.Printf("Error parsing %s in %s: %s", s.Key, s.Path, err)
		return ldvalue.OptionalString{}
	}
	value := strings.TrimRight(strings.TrimSpace(vars[s.Key]), "/")
	if value == "" {
		logger.Printf("%s defines %s, but it is empty", s.Path, s.Key)
		return ldvalue.OptionalString{}
	}
	return ldvalue.NewOptionalString(value)
}

// findLine returns the first assignment to s.Key in the file, rewritten so that godotenv takes
// any '$' in the value literally.
func (s Source) findLine() (string, bool, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		statement := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(statement, "export"); ok && rest != strings.TrimLeft(rest, " \t") {
			statement = strings.TrimLeft(rest, " \t")
		}
		name, value, ok := strings.Cut(statement, "=")
		if !ok || strings.TrimSpace(name) != s.Key {
			continue
		}
		value = strings.TrimSpace(value)
		if !strings.HasPrefix(value, "'") {
			// godotenv expands $NAME in unquoted and double-quoted values
			value = strings.ReplaceAll(value, "$", `\$`)
		}
		return s.Key + "=" + value, true, nil
	}
	return "", false, scanner.Err()
}
