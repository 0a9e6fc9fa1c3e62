package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/cipher-lab/internal/app"
	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/ciphers"
	"github.com/MGTheTrain/cipher-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// CipherCommandHandler encapsulates logic for encrypting, decrypting and hashing via CLI.
type CipherCommandHandler struct {
	cipherService ciphers.CipherService
	logger        logger.Logger
}

// NewCipherCommandHandler initializes and returns a CipherCommandHandler instance
// backed by the processors for every demonstrated algorithm.
func NewCipherCommandHandler(loggerInstance logger.Logger) (*CipherCommandHandler, error) {
	registry, err := cryptography.NewRegistry(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create processor registry: %w", err)
	}

	cipherService, err := app.NewCipherService(registry, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	return &CipherCommandHandler{
		cipherService: cipherService,
		logger:        loggerInstance,
	}, nil
}

// readInput returns the value of the text flag, or the contents of the file flag when set.
func readInput(cmd *cobra.Command, textFlag, fileFlag string) (string, error) {
	filePath, err := cmd.Flags().GetString(fileFlag)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", fileFlag, err)
	}

	if filePath != "" {
		content, err := os.ReadFile(filepath.Clean(filePath))
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(content), "\r\n"), nil
	}

	text, err := cmd.Flags().GetString(textFlag)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", textFlag, err)
	}
	return text, nil
}

// emit writes result to the output file or stdout and optionally to the clipboard.
func (commandHandler *CipherCommandHandler) emit(cmd *cobra.Command, result string) {
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	if outputFilePath != "" {
		if err := os.WriteFile(outputFilePath, []byte(result), 0600); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("Result saved to ", outputFilePath)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}

	copyResult, err := cmd.Flags().GetBool("copy")
	if err != nil {
		commandHandler.logger.Error("invalid copy flag ", err)
		return
	}
	if copyResult {
		if err := writeClipboard(result); err != nil {
			commandHandler.logger.Error("failed to copy to clipboard: ", err)
			return
		}
		commandHandler.logger.Info("Result copied to clipboard")
	}
}

// EncryptCmd encrypts plaintext, or hashes it for SHA-256
func (commandHandler *CipherCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}

	key, err := readInput(cmd, "key", "key-file")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plaintext, err := readInput(cmd, "plaintext", "input-file")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.cipherService.Encrypt(cmd.Context(), algorithm, key, plaintext)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.emit(cmd, result)
}

// DecryptCmd decrypts a base64 ciphertext
func (commandHandler *CipherCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}

	key, err := readInput(cmd, "key", "key-file")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ciphertext, err := readInput(cmd, "ciphertext", "input-file")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.cipherService.Decrypt(cmd.Context(), algorithm, key, ciphertext)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.emit(cmd, result)
}

// ExampleCmd runs the fixed example for one algorithm, or for all when none is given
func (commandHandler *CipherCommandHandler) ExampleCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}

	names := algorithms.Names()
	if algorithm != "" {
		names = []string{algorithm}
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		result, err := commandHandler.cipherService.RunExample(cmd.Context(), name)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}

		fmt.Fprintf(out, "Algorithm: %s\n", result.Algorithm)
		fmt.Fprintf(out, "Plaintext: %s\n", result.Plaintext)
		fmt.Fprintf(out, "Key: %s\n", result.Key)
		fmt.Fprintf(out, "Result: %s\n\n", result.Result)
	}
}

// GenerateKeyCmd generates a random passphrase long enough for the algorithm
// and persists it in a selected directory, or prints it when no directory is given
func (commandHandler *CipherCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) {
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	key, err := commandHandler.cipherService.GenerateKey(cmd.Context(), algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if keyDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return
	}

	uniqueID := uuid.New()
	fileName := fmt.Sprintf("%s-%s-key.txt", uniqueID, strings.ToLower(strings.ReplaceAll(algorithm, "-", "")))
	keyFilePath := filepath.Join(keyDir, fileName)
	if err := os.WriteFile(keyFilePath, []byte(key), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info(algorithm, " key saved to ", keyFilePath)
}

// InitCipherCommands registers cipher-related commands
func InitCipherCommands(rootCmd *cobra.Command, loggerInstance logger.Logger) error {
	handler, err := NewCipherCommandHandler(loggerInstance)
	if err != nil {
		return fmt.Errorf("failed to create cipher command handler %w", err)
	}

	algorithmUsage := fmt.Sprintf("Algorithm (%s)", strings.Join(algorithms.Names(), ", "))

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with AES, 3DES or RC4, or hash it with SHA-256",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("algorithm", "a", algorithms.AlgorithmAES, algorithmUsage)
	encryptCmd.Flags().StringP("key", "k", "", "Passphrase")
	encryptCmd.Flags().StringP("key-file", "", "", "Path to a file holding the passphrase")
	encryptCmd.Flags().StringP("plaintext", "p", "", "Text to encrypt")
	encryptCmd.Flags().StringP("input-file", "", "", "Path to a file holding the text to encrypt")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to the output file, stdout if empty")
	encryptCmd.Flags().BoolP("copy", "", false, "Copy the result to the clipboard")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a base64 ciphertext",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("algorithm", "a", algorithms.AlgorithmAES, algorithmUsage)
	decryptCmd.Flags().StringP("key", "k", "", "Passphrase")
	decryptCmd.Flags().StringP("key-file", "", "", "Path to a file holding the passphrase")
	decryptCmd.Flags().StringP("ciphertext", "c", "", "Base64 ciphertext to decrypt")
	decryptCmd.Flags().StringP("input-file", "", "", "Path to a file holding the ciphertext")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to the output file, stdout if empty")
	decryptCmd.Flags().BoolP("copy", "", false, "Copy the result to the clipboard")
	rootCmd.AddCommand(decryptCmd)

	var exampleCmd = &cobra.Command{
		Use:   "example",
		Short: "Run the fixed example for an algorithm, or for all algorithms",
		Run:   handler.ExampleCmd,
	}
	exampleCmd.Flags().StringP("algorithm", "a", "", algorithmUsage)
	rootCmd.AddCommand(exampleCmd)

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a random passphrase satisfying the algorithm's key length",
		Run:   handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("algorithm", "a", algorithms.AlgorithmAES, algorithmUsage)
	generateKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the key, stdout if empty")
	rootCmd.AddCommand(generateKeyCmd)

	return nil
}
