package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	adversarial "github.com/jacksliwoski/anti-ai-ai-club"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/config"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/logger"
	"github.com/jacksliwoski/anti-ai-ai-club/internal/wavio"
)

var (
	protectFlagInput  string
	protectFlagOutput string
	protectFlagArtist string
	protectFlagTitle  string
	protectFlagLevel  string
)

var protectCmd = &cobra.Command{
	Use:   "protect",
	Short: "Embed adversarial protection into a WAV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.L()
		level := protectFlagLevel
		if level == "" {
			level = config.Get().Protection.DefaultLevel
		}

		channels, sampleRate, err := wavio.Load(protectFlagInput)
		if err != nil {
			return err
		}
		log.Infow("loaded", "file", protectFlagInput, "channels", len(channels), "sample_rate", sampleRate)

		protected, record, err := adversarial.Protect(cmd.Context(), channels, sampleRate,
			protectFlagArtist, protectFlagTitle, adversarial.WithLevel(level))
		if err != nil {
			return err
		}
		if err := wavio.Save(protectFlagOutput, protected, sampleRate); err != nil {
			return err
		}
		log.Infow("protected", "file", protectFlagOutput, "signature", record.WatermarkSignature, "level", record.ProtectionLevel)

		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	protectCmd.Flags().StringVar(&protectFlagInput, "input", "", "input WAV file")
	protectCmd.Flags().StringVar(&protectFlagOutput, "output", "", "output WAV file")
	protectCmd.Flags().StringVar(&protectFlagArtist, "artist", "Unknown Artist", "artist name used to derive the signature")
	protectCmd.Flags().StringVar(&protectFlagTitle, "title", "Unknown Track", "track title used to derive the signature")
	protectCmd.Flags().StringVar(&protectFlagLevel, "level", "", "protection level: light, medium, aggressive, nuclear")
	_ = protectCmd.MarkFlagRequired("input")
	_ = protectCmd.MarkFlagRequired("output")
}
