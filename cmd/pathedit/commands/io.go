package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yamledit/pathedit"
	"github.com/yamledit/pathedit/internal/config"
)

// readInput reads a file, or stdin for "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return data, nil
}

// readDocument loads a YAML or JSON document; JSON is valid YAML.
func (a *app) readDocument(cmd *cobra.Command, name string) (map[string]interface{}, error) {
	data, err := readInput(cmd, name)
	if err != nil {
		return nil, err
	}
	doc, err := pathedit.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Debug().Str("file", name).Int("keys", len(doc)).Msg("document loaded")
	return doc, nil
}

func (a *app) write(cmd *cobra.Command, v interface{}) error {
	var (
		out []byte
		err error
	)
	if strings.EqualFold(a.cfg.Output, config.FormatJSON) {
		out, err = json.MarshalIndent(v, "", strings.Repeat(" ", a.cfg.Indent))
		if err == nil {
			out = append(out, '\n')
		}
	} else {
		out, err = pathedit.MarshalYAML(v, a.cfg.Indent)
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
