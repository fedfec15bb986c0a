package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	adversarial "github.com/jacksliwoski/anti-ai-ai-club"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the protection level catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := json.MarshalIndent(adversarial.DescribeLevels(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
