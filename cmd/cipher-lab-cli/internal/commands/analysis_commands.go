package commands

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/cipher-lab/internal/app"
	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/keyspace"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	captionStyle   = lipgloss.NewStyle().Faint(true)
	highlightStyle = lipgloss.NewStyle().Bold(true)
)

var tableHeaders = [analysis.ColumnCount]string{"Algorithm", "Key Size (bits)", "Time Taken (µs)", "Brute Force Attempts"}

// AnalysisCommandHandler encapsulates the comparison table, keyspace and performance commands.
type AnalysisCommandHandler struct {
	analysisService    analysis.AnalysisService
	keyspaceService    keyspace.KeyspaceService
	performanceService algorithms.PerformanceService
	logger             logger.Logger
}

// NewAnalysisCommandHandler initializes and returns an AnalysisCommandHandler instance.
func NewAnalysisCommandHandler(loggerInstance logger.Logger) (*AnalysisCommandHandler, error) {
	analysisService, err := app.NewAnalysisService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %w", err)
	}

	keyspaceService, err := app.NewKeyspaceService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create keyspace service: %w", err)
	}

	performanceService, err := app.NewPerformanceService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create performance service: %w", err)
	}

	return &AnalysisCommandHandler{
		analysisService:    analysisService,
		keyspaceService:    keyspaceService,
		performanceService: performanceService,
		logger:             loggerInstance,
	}, nil
}

// parseSortOrder maps "asc" and "desc" to the ascending flag.
func parseSortOrder(order string) (bool, error) {
	switch strings.ToLower(order) {
	case "asc", "":
		return true, nil
	case "desc":
		return false, nil
	default:
		return false, fmt.Errorf("invalid sort order %q, expected asc or desc", order)
	}
}

// renderAnalysisTable draws the comparison table with an arrow on the sorted column.
func renderAnalysisTable(result *analysis.Table) string {
	headers := make([]string, analysis.ColumnCount)
	for i, header := range tableHeaders {
		switch result.Indicators[i] {
		case analysis.IndicatorAscending:
			header += " ▲"
		case analysis.IndicatorDescending:
			header += " ▼"
		}
		headers[i] = header
	}

	rows := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, []string{
			row.Algorithm,
			fmt.Sprint(row.KeySize),
			fmt.Sprintf("%g", row.TimeTaken),
			row.BruteForceAttempts.String(),
		})
	}

	sorted := int(result.Sort.Column)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == sorted {
				return cellStyle.Inherit(highlightStyle)
			}
			return cellStyle
		})

	caption := captionStyle.Render(fmt.Sprintf("Plaintext size: %d, memory usage: %s MiB", result.PlaintextSize, result.MemoryUsage))
	return lipgloss.JoinVertical(lipgloss.Left, t.String(), caption)
}

// AnalyzeCmd prints the algorithm comparison table
func (commandHandler *AnalysisCommandHandler) AnalyzeCmd(cmd *cobra.Command, _ []string) {
	plaintextSize, err := cmd.Flags().GetInt("plaintext-size")
	if err != nil {
		commandHandler.logger.Error("invalid plaintext-size flag ", err)
		return
	}

	sortBy, err := cmd.Flags().GetString("sort-by")
	if err != nil {
		commandHandler.logger.Error("invalid sort-by flag ", err)
		return
	}

	sortOrder, err := cmd.Flags().GetString("sort-order")
	if err != nil {
		commandHandler.logger.Error("invalid sort-order flag ", err)
		return
	}

	column, err := analysis.ParseColumn(sortBy)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ascending, err := parseSortOrder(sortOrder)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.analysisService.Table(cmd.Context(), plaintextSize, analysis.SortState{Column: column, Ascending: ascending})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderAnalysisTable(result))
}

// KeyspaceCmd prints 2^bits exactly and in scientific notation
func (commandHandler *AnalysisCommandHandler) KeyspaceCmd(cmd *cobra.Command, _ []string) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		commandHandler.logger.Error("invalid bits flag ", err)
		return
	}

	report, err := commandHandler.keyspaceService.Describe(cmd.Context(), bits)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Key bit length: %d\n", report.KeyBitLength)
	fmt.Fprintf(out, "Keyspace: %s\n", report.Keyspace.String())
	fmt.Fprintf(out, "Scientific notation: %s\n", report.Notation.String())
}

// PerformanceCmd prints the synthetic performance curve of an algorithm
func (commandHandler *AnalysisCommandHandler) PerformanceCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}

	report, err := commandHandler.performanceService.Curve(cmd.Context(), algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	rows := make([][]string, 0, len(report.Points))
	for _, point := range report.Points {
		rows = append(rows, []string{fmt.Sprint(point.InputSize), fmt.Sprintf("%.3f", point.Complexity)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(report.AxisX, report.AxisY).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(cmd.OutOrStdout(), lipgloss.JoinVertical(lipgloss.Left,
		highlightStyle.Render(report.Algorithm), t.String(), captionStyle.Render(report.Caption)))
}

// AlgorithmsCmd lists the demonstrated algorithms and their minimum key lengths
func (commandHandler *AnalysisCommandHandler) AlgorithmsCmd(cmd *cobra.Command, _ []string) {
	rows := make([][]string, 0)
	for _, algorithm := range algorithms.Catalog() {
		kind := "cipher"
		if algorithm.IsHash() {
			kind = "hash"
		}
		rows = append(rows, []string{algorithm.Name, fmt.Sprint(algorithm.KeySize), kind})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Algorithm", "Key Size (bits)", "Kind").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
}

// InitAnalysisCommands registers the comparison and keyspace commands
func InitAnalysisCommands(rootCmd *cobra.Command, loggerInstance logger.Logger) error {
	handler, err := NewAnalysisCommandHandler(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create analysis command handler %w", err)
	}

	var analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Compare the algorithms in a sortable table",
		Run:   handler.AnalyzeCmd,
	}
	analyzeCmd.Flags().IntP("plaintext-size", "s", algorithms.DefaultPlaintextSize, "Plaintext size in bytes")
	analyzeCmd.Flags().StringP("sort-by", "", "name", "Sort column (name, keySize, timeTaken, bruteForceAttempts or its index)")
	analyzeCmd.Flags().StringP("sort-order", "", "asc", "Sort order (asc or desc)")
	rootCmd.AddCommand(analyzeCmd)

	var keyspaceCmd = &cobra.Command{
		Use:   "keyspace",
		Short: "Compute the keyspace 2^bits of a key length",
		Run:   handler.KeyspaceCmd,
	}
	keyspaceCmd.Flags().IntP("bits", "b", 256, "Key length in bits")
	rootCmd.AddCommand(keyspaceCmd)

	var performanceCmd = &cobra.Command{
		Use:   "performance",
		Short: "Show the synthetic performance curve of an algorithm",
		Run:   handler.PerformanceCmd,
	}
	performanceCmd.Flags().StringP("algorithm", "a", algorithms.AlgorithmAES, fmt.Sprintf("Algorithm (%s)", strings.Join(algorithms.Names(), ", ")))
	rootCmd.AddCommand(performanceCmd)

	var algorithmsCmd = &cobra.Command{
		Use:   "algorithms",
		Short: "List the demonstrated algorithms",
		Run:   handler.AlgorithmsCmd,
	}
	rootCmd.AddCommand(algorithmsCmd)

	return nil
}
