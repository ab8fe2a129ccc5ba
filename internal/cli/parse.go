package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-parser/internal/domain"
	"resume-parser/internal/service"
	"resume-parser/internal/vocabulary"
	"resume-parser/pkg/logger"
)

var (
	parsePretty     bool
	parseNoRaw      bool
	parseEngine     string
	parseSkillsFile string
	parseMatchMode  string
	parseLogLevel   string
)

// contactSummary is the parse output without the raw text.
type contactSummary struct {
	Skills []string `json:"skills"`
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a resume and print the extraction result",
	Long: `Parses a PDF resume and prints the extraction result as JSON.
Settings not given as flags are read from the environment
(PDF_ENGINE, SKILLS_FILE, SKILLS, SKILL_MATCH_MODE).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "indent the JSON output")
	parseCmd.Flags().BoolVar(&parseNoRaw, "no-raw", false, "omit the extracted text from the output")
	parseCmd.Flags().StringVar(&parseEngine, "engine", "", "PDF engine: fitz or native")
	parseCmd.Flags().StringVar(&parseSkillsFile, "skills-file", "", "skill vocabulary file (.txt, .json, .yaml, .toml)")
	parseCmd.Flags().StringVar(&parseMatchMode, "match-mode", "", "skill match mode: substring or word")
	parseCmd.Flags().StringVar(&parseLogLevel, "log-level", "warn", "log level written to stderr")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := settings()
	appLogger := logger.NewLoggerWithWriter(cmd.ErrOrStderr(), parseLogLevel, cfg.GetLogFormat())

	vocab, err := resolveVocabulary(cmd, cfg, parseSkillsFile)
	if err != nil {
		return err
	}

	mode, err := domain.ParseSkillMatchMode(stringSetting(cmd, "match-mode", parseMatchMode, cfg.GetSkillMatchMode()))
	if err != nil {
		return err
	}

	extractor, err := service.NewTextExtractor(stringSetting(cmd, "engine", parseEngine, cfg.GetPDFEngine()), appLogger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	result, err := service.NewResumeService(extractor, vocab, mode, appLogger).Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	var out interface{} = result
	if parseNoRaw {
		out = contactSummary{Skills: result.Skills, Emails: result.Emails, Phones: result.Phones}
	}
	return outputJSON(cmd, out, parsePretty)
}

// resolveVocabulary prefers an explicit --skills-file over the environment.
func resolveVocabulary(cmd *cobra.Command, cfg domain.Config, skillsFile string) (domain.SkillVocabulary, error) {
	if cmd.Flags().Changed("skills-file") {
		return vocabulary.Resolve(skillsFile, "")
	}
	return vocabulary.Resolve(cfg.GetSkillsFile(), cfg.GetSkills())
}

func outputJSON(cmd *cobra.Command, v interface{}, pretty bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return nil
}
