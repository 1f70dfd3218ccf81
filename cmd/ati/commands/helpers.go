package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/datapip-io/ati/internal/logger"
	"github.com/datapip-io/ati/pkg/ati"
	"github.com/datapip-io/ati/pkg/aticlient"
	"github.com/itchyny/gojq"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output modes.
const (
	OutputFormatRaw   = "raw"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// Common static errors used throughout the commands package.
var (
	ErrAuthRequired   = errors.New("auth is required (flag --auth, env ATI_AUTH, or config file)")
	ErrParamsRequired = errors.New("params are required (flag --params, env ATI_PARAMS, or config file)")
	ErrBodyNotJSON    = errors.New("response body is not JSON")
)

// createClient builds an SDK client from the resolved viper configuration.
func createClient(allRows bool) (ati.Client, error) {
	auth := viper.GetString("auth")
	if auth == "" {
		return nil, ErrAuthRequired
	}

	params := viper.GetString("params")
	if params == "" {
		return nil, ErrParamsRequired
	}

	config := &ati.Config{
		Params:      params,
		Auth:        auth,
		AllRows:     allRows,
		DataFormat:  ati.Format(viper.GetString("format")),
		APIEndpoint: viper.GetString("endpoint"),
	}

	if viper.GetBool("verbose") {
		config.Logger = logger.New(true)
		config.Debug = true
	}

	client, err := aticlient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// effectiveFormat is the format the CLI requested, before per-operation
// revalidation inside the SDK.
func effectiveFormat() ati.Format {
	return ati.Format(viper.GetString("format"))
}

// writeBody writes a response body to stdout, ensuring a trailing newline.
func writeBody(body []byte) {
	_, _ = os.Stdout.Write(body)

	if len(body) > 0 && body[len(body)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

// writeBodyJSON re-indents a JSON body for readability; non-JSON bodies
// (html, xml, csv responses) are written as-is.
func writeBodyJSON(body []byte) {
	var buf bytes.Buffer

	err := json.Indent(&buf, body, "", "  ")
	if err != nil {
		writeBody(body)

		return
	}

	writeBody(buf.Bytes())
}

// writeBodyYAML converts a JSON body to YAML; non-JSON bodies are written
// as-is.
func writeBodyYAML(body []byte) {
	var decoded any

	err := json.Unmarshal(body, &decoded)
	if err != nil {
		writeBody(body)

		return
	}

	encoder := yaml.NewEncoder(os.Stdout)

	err = encoder.Encode(decoded)
	if err != nil {
		writeBody(body)

		return
	}

	_ = encoder.Close()
}

// applyJQ runs a gojq expression over a JSON body and returns one rendered
// line per produced value.
func applyJQ(expr string, body []byte) ([]string, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing jq expression: %w", err)
	}

	var input any

	err = json.Unmarshal(body, &input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBodyNotJSON, err)
	}

	var lines []string

	iter := query.Run(input)

	for {
		value, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := value.(error); isErr {
			return nil, fmt.Errorf("running jq expression: %w", err)
		}

		rendered, err := gojq.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("rendering jq result: %w", err)
		}

		lines = append(lines, string(rendered))
	}

	return lines, nil
}
