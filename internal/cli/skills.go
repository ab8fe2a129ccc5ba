package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	skillsFile string
	skillsJSON bool
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the active skill vocabulary",
	Args:  cobra.NoArgs,
	RunE:  runSkills,
}

func init() {
	skillsCmd.Flags().StringVar(&skillsFile, "skills-file", "", "skill vocabulary file (.txt, .json, .yaml, .toml)")
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "output the vocabulary as a JSON array")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, _ []string) error {
	vocab, err := resolveVocabulary(cmd, settings(), skillsFile)
	if err != nil {
		return err
	}

	if skillsJSON {
		return outputJSON(cmd, vocab.Skills(), false)
	}
	for _, skill := range vocab.Skills() {
		fmt.Fprintln(cmd.OutOrStdout(), skill)
	}
	return nil
}
