package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	adversarial "github.com/jacksliwoski/anti-ai-ai-club"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/wavio"
)

var verifyFlagInput string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Heuristically check a WAV file for adversarial protection",
	RunE: func(cmd *cobra.Command, args []string) error {
		channels, sampleRate, err := wavio.Load(verifyFlagInput)
		if err != nil {
			return err
		}
		report, err := adversarial.Verify(cmd.Context(), wavio.Downmix(channels), sampleRate)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyFlagInput, "input", "", "input WAV file")
	_ = verifyCmd.MarkFlagRequired("input")
}
