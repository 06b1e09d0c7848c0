package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// PeviewConfig represents configuration for the peview tool
type PeviewConfig struct {
	Debug       bool   `json:"debug" jsonschema:"title=Debug,description=Enable debug logging"`
	Bits        int    `json:"bits" jsonschema:"title=Bits,description=Override bitness (32 or 64)"`
	ProfilePath string `json:"profilePath" jsonschema:"title=Profile Path,description=Path for CPU profile output"`
}

var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Generate JSON schema for configuration",
	Long:   "Generate JSON schema for the peview configuration",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := new(jsonschema.Reflector)
		bts, err := json.MarshalIndent(reflector.Reflect(&PeviewConfig{}), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal schema: %w", err)
		}
		fmt.Println(string(bts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
