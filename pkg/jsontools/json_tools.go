package jsontools

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"strings"
)

// PrettyJSONString returns a human readable JSON formatted string.
func PrettyJSONString(input string) string {
	return PrettyJSON([]byte(input))
}

// PrettyJSON returns a human readable JSON formatted string.
func PrettyJSON(input []byte) string {
	var prettyJSON bytes.Buffer
	_ = json.Indent(&prettyJSON, input, "", "  ")
	return strings.TrimSpace(prettyJSON.String())
}

// PrettyJSONReader reads all of reader and returns it as a human readable JSON formatted string.
func PrettyJSONReader(reader io.Reader) (string, error) {
	input, err := ioutil.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return PrettyJSON(input), nil
}
